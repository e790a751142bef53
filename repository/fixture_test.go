// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package repository_test

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/pokedex/fixtures"
	"github.com/bitmark-inc/pokedex/repository"
)

func TestFixtureLookups(t *testing.T) {
	r := repository.NewFixture(sampleFixtures())
	ctx := context.Background()

	assert.Equal(t, "pikachu", r.GetPokemonByID(ctx, 25).Name, "wrong id lookup")
	assert.Equal(t, 133, r.GetPokemonByName(ctx, "Eevee").ID, "name lookup is case sensitive")
	assert.Nil(t, r.GetPokemonByID(ctx, 151), "unknown id resolved")
	assert.Nil(t, r.GetPokemonByName(ctx, "mew"), "unknown name resolved")

	assert.Equal(t, "squirtle", r.GetPokemonSpecies(ctx, 7).Name, "wrong species")
	assert.Nil(t, r.GetPokemonSpecies(ctx, 8), "unknown species resolved")

	chain := r.GetEvolutionChain(ctx, fixtures.ChainURL(67))
	assert.Equal(t, 3, len(chain.Chain.EvolvesTo), "wrong branch count")
	assert.Nil(t, r.GetEvolutionChain(ctx, fixtures.ChainURL(3)), "absent chain resolved")
	assert.Nil(t, r.GetEvolutionChain(ctx, "not a url"), "malformed url resolved")

	assert.Equal(t, "ground", r.GetType(ctx, "GROUND").Name, "wrong type")
	assert.Nil(t, r.GetType(ctx, "dragon"), "unknown type resolved")
	assert.Equal(t, "overgrow", r.GetAbility(ctx, "overgrow").Name, "wrong ability")
}

func TestFixtureWindow(t *testing.T) {
	r := repository.NewFixture(sampleFixtures())
	ctx := context.Background()
	total := len(fixtures.Pokemon())

	items := []struct {
		limit    int
		offset   int
		expected int
		first    string
	}{
		{3, 0, 3, "bulbasaur"},
		{3, 3, 3, "charmander"},
		{100, 10, total - 10, "jolteon"},
		{0, 0, total, "bulbasaur"},
		{5, -2, 5, "bulbasaur"},
		{5, total, 0, ""},
		{5, total + 5, 0, ""},
	}

	for i, item := range items {
		all := r.GetAllPokemon(ctx, item.limit, item.offset)
		names := r.ListPokemonNames(ctx, item.limit, item.offset)
		assert.Equal(t, item.expected, len(all), "%d: wrong count", i)
		assert.Equal(t, item.expected, len(names), "%d: wrong name count", i)
		if item.expected > 0 {
			assert.Equal(t, item.first, all[0].Name, "%d: wrong first", i)
			assert.Equal(t, item.first, names[0].Name, "%d: wrong first name", i)
		}
	}
}

func TestFixtureFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "pokedex-fixtures")
	assert.Nil(t, err, "temp dir error")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "fixtures.json")
	err = repository.SaveFixtures(fileName, sampleFixtures())
	assert.Nil(t, err, "save error")

	loaded, err := repository.LoadFixtures(fileName)
	assert.Nil(t, err, "load error")
	assert.Equal(t, len(fixtures.Pokemon()), len(loaded.Pokemon), "wrong pokémon count")
	assert.Equal(t, sampleFixtures().EvolutionChains[0], loaded.EvolutionChains[0], "chain changed by the file")

	r := repository.NewFixture(loaded)
	assert.Equal(t, "charizard", r.GetPokemonByID(context.Background(), 6).Name, "wrong lookup after load")
}

func TestFixtureFileErrors(t *testing.T) {
	dir, err := ioutil.TempDir("", "pokedex-fixtures")
	assert.Nil(t, err, "temp dir error")
	defer os.RemoveAll(dir)

	_, err = repository.LoadFixtures(filepath.Join(dir, "absent.json"))
	assert.True(t, os.IsNotExist(err), "missing file not reported")

	fileName := filepath.Join(dir, "old.json")
	err = ioutil.WriteFile(fileName, []byte(`{"version":"pokedex-fixtures v0.1","pokemon":[]}`), 0600)
	assert.Nil(t, err, "write error")

	_, err = repository.LoadFixtures(fileName)
	assert.NotNil(t, err, "old version accepted")
}
