// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package repository

import (
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/pokedex/fault"
	"github.com/bitmark-inc/pokedex/pokeapi"
)

// repository kinds
const (
	KindAPI     = "api"
	KindFixture = "fixture"
)

// Configuration - selection of the implementation
type Configuration struct {
	Kind        string `gluamapper:"repository" json:"repository"`
	FixtureFile string `gluamapper:"fixture_file" json:"fixture_file"`
}

// Dependencies - collaborators of the live implementation
type Dependencies struct {
	Requester Requester
	Lister    Lister
	Endpoints pokeapi.Endpoints
	Log       *logger.L
}

// New - create the configured repository, blank kind is the live one
func New(configuration Configuration, dependencies Dependencies) (Repository, error) {
	switch strings.ToLower(strings.TrimSpace(configuration.Kind)) {
	case "", KindAPI:
		return NewAPI(dependencies.Requester, dependencies.Lister, dependencies.Endpoints, dependencies.Log), nil

	case KindFixture:
		if "" == configuration.FixtureFile {
			return nil, fault.MissingFixtureFile
		}
		fixtures, err := LoadFixtures(configuration.FixtureFile)
		if nil != err {
			return nil, err
		}
		if nil != dependencies.Log {
			dependencies.Log.Infof("fixtures: %s  pokémon: %d", configuration.FixtureFile, len(fixtures.Pokemon))
		}
		return NewFixture(fixtures), nil

	default:
		return nil, fault.UnknownRepositoryKind
	}
}
