// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/pokedex/cache"
	"github.com/bitmark-inc/pokedex/catalog"
	"github.com/bitmark-inc/pokedex/fixtures"
	"github.com/bitmark-inc/pokedex/pokeapi"
	"github.com/bitmark-inc/pokedex/repository"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func writeConfiguration(t *testing.T, content string) (string, func()) {
	dir, err := ioutil.TempDir("", "pokedex")
	assert.Nil(t, err, "wrong TempDir")

	fileName := filepath.Join(dir, "pokedex.conf")
	err = ioutil.WriteFile(fileName, []byte(content), 0600)
	assert.Nil(t, err, "wrong WriteFile")

	return fileName, func() {
		os.RemoveAll(dir)
	}
}

func TestGetConfiguration(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.batch_delay = 10
M.page_size = 12
M.roster_limit = 251
M.roster_offset = 151
M.rate_limit = 2.5
M.repository = "fixture"
M.fixture_file = "snapshot.json"
M.logging = {
    directory = "logs",
    file = "test.log",
    size = 4096,
    count = 2,
}
return M
`)
	defer cleanup()

	conf, err := getConfiguration(fileName)
	assert.Nil(t, err, "wrong getConfiguration")

	dir := filepath.Dir(fileName)
	assert.Equal(t, filepath.Clean(dir), conf.DataDirectory, "wrong data directory")
	assert.Equal(t, 12, conf.PageSize, "wrong page size")
	assert.Equal(t, filepath.Join(dir, "snapshot.json"), conf.FixtureFile, "wrong fixture file")
	assert.Equal(t, filepath.Join(dir, "logs"), conf.Logging.Directory, "wrong log directory")
	assert.Equal(t, filepath.Join(dir, defaultFavoritesDirectory), conf.FavoritesDirectory, "wrong favorites directory")

	info, err := os.Stat(conf.FavoritesDirectory)
	assert.Nil(t, err, "favorites directory not created")
	assert.True(t, info.IsDir(), "favorites is not a directory")

	assert.Equal(t, cache.Options{
		BatchDelay:   10 * time.Millisecond,
		FetchTimeout: pokeapi.DefaultTimeout * time.Second,
	}, conf.cacheOptions(), "wrong cache options")

	assert.Equal(t, pokeapi.Configuration{
		BaseURL:   pokeapi.DefaultBaseURL,
		Timeout:   pokeapi.DefaultTimeout,
		RateLimit: 2.5,
		RateBurst: pokeapi.DefaultRateBurst,
	}, conf.network(), "wrong network")

	assert.Equal(t, repository.Configuration{
		Kind:        repository.KindFixture,
		FixtureFile: filepath.Join(dir, "snapshot.json"),
	}, conf.repositoryConfiguration(), "wrong repository")

	assert.Equal(t, catalog.Configuration{
		RosterLimit:  251,
		RosterOffset: 151,
	}, conf.catalogConfiguration(), "wrong catalog")

	assert.Equal(t, 2*time.Second, conf.dedupingInterval(), "wrong deduping interval")
}

func TestGetConfigurationCorrectsLimits(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `
return {
    page_size = 0,
    roster_limit = -3,
    roster_offset = -1,
}
`)
	defer cleanup()

	conf, err := getConfiguration(fileName)
	assert.Nil(t, err, "wrong getConfiguration")
	assert.Equal(t, 20, conf.PageSize, "wrong page size")
	assert.Equal(t, catalog.DefaultRosterLimit, conf.RosterLimit, "wrong roster limit")
	assert.Equal(t, 0, conf.RosterOffset, "wrong roster offset")
}

func TestGetConfigurationBadLogFile(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `
return {
    logging = {
        file = "sub/pokedex.log",
    },
}
`)
	defer cleanup()

	_, err := getConfiguration(fileName)
	assert.NotNil(t, err, "path accepted as log file")
}

func TestGetConfigurationMissingDataDirectory(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `
return {
    data_directory = "does-not-exist",
}
`)
	defer cleanup()

	_, err := getConfiguration(fileName)
	assert.True(t, os.IsNotExist(err), "wrong error")
}
