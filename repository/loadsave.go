// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package repository

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
)

// the version of the fixture file
// exact match is required
const fixtureVersion = "pokedex-fixtures v1.0"

type fixtureFile struct {
	Version string `json:"version"`
	Fixtures
}

// LoadFixtures - read a fixture file written by SaveFixtures
func LoadFixtures(fileName string) (Fixtures, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return Fixtures{}, err
	}

	var f fixtureFile
	err = json.Unmarshal(data, &f)
	if nil != err {
		return Fixtures{}, err
	}

	if fixtureVersion != f.Version {
		return Fixtures{}, fmt.Errorf("expected version: %q but read: %q", fixtureVersion, f.Version)
	}
	return f.Fixtures, nil
}

// SaveFixtures - write records to a fixture file
func SaveFixtures(fileName string, fixtures Fixtures) error {
	data, err := json.MarshalIndent(fixtureFile{
		Version:  fixtureVersion,
		Fixtures: fixtures,
	}, "", "  ")
	if nil != err {
		return err
	}
	return ioutil.WriteFile(fileName, data, 0600)
}
