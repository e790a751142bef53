// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/pokedex/configuration"
	"github.com/bitmark-inc/pokedex/fault"
)

type sample struct {
	BatchDelay int      `gluamapper:"batch_delay"`
	BaseURL    string   `gluamapper:"base_url"`
	Repository string   `gluamapper:"repository"`
	Types      []string `gluamapper:"types"`
}

func writeFile(t *testing.T, content string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "pokedex.conf")
	if err := ioutil.WriteFile(fileName, []byte(content), 0600); nil != err {
		t.Fatalf("write file error: %s", err)
	}
	return fileName, func() { os.RemoveAll(dir) }
}

func TestParseConfigurationFile(t *testing.T) {
	fileName, cleanup := writeFile(t, `
local M = {}
M.batch_delay = 25
M.base_url = "http://localhost:8080/api/v2"
M.types = { "fire", "flying" }
return M
`)
	defer cleanup()

	s := sample{
		BatchDelay: 50,
		Repository: "api",
	}
	err := configuration.ParseConfigurationFile(fileName, &s)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, 25, s.BatchDelay, "wrong batch delay")
	assert.Equal(t, "http://localhost:8080/api/v2", s.BaseURL, "wrong base url")
	assert.Equal(t, "api", s.Repository, "default was overwritten")
	assert.Equal(t, []string{"fire", "flying"}, s.Types, "wrong types")
}

func TestParseConfigurationFileNotTable(t *testing.T) {
	fileName, cleanup := writeFile(t, `return 42`)
	defer cleanup()

	s := sample{}
	err := configuration.ParseConfigurationFile(fileName, &s)
	assert.Equal(t, fault.ConfigurationFile, err, "wrong error")
}

func TestParseConfigurationFileNotPointer(t *testing.T) {
	err := configuration.ParseConfigurationFile("unused", sample{})
	assert.Equal(t, fault.InvalidStructPointer, err, "wrong error")
}

func TestParseConfigurationFileMissing(t *testing.T) {
	s := sample{}
	err := configuration.ParseConfigurationFile("/no/such/file.conf", &s)
	assert.NotNil(t, err, "missing file accepted")
}
