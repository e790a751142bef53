// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/pokedex/cache"
	"github.com/bitmark-inc/pokedex/catalog"
	"github.com/bitmark-inc/pokedex/configuration"
	"github.com/bitmark-inc/pokedex/listing"
	"github.com/bitmark-inc/pokedex/pokeapi"
	"github.com/bitmark-inc/pokedex/repository"
	"github.com/bitmark-inc/pokedex/swr"
	"github.com/bitmark-inc/pokedex/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory      = "."
	defaultFavoritesDirectory = "favorites"

	defaultLogDirectory = "log"
	defaultLogFile      = "pokedex.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// Configuration - all the settings of the front end
type Configuration struct {
	DataDirectory      string               `gluamapper:"data_directory" json:"data_directory"`
	BatchDelay         int                  `gluamapper:"batch_delay" json:"batch_delay"`             // ms
	DedupingInterval   int                  `gluamapper:"deduping_interval" json:"deduping_interval"` // ms
	PageSize           int                  `gluamapper:"page_size" json:"page_size"`
	RosterLimit        int                  `gluamapper:"roster_limit" json:"roster_limit"`
	RosterOffset       int                  `gluamapper:"roster_offset" json:"roster_offset"`
	BaseURL            string               `gluamapper:"base_url" json:"base_url"`
	RequestTimeout     int                  `gluamapper:"request_timeout" json:"request_timeout"` // s
	RateLimit          float64              `gluamapper:"rate_limit" json:"rate_limit"`
	RateBurst          int                  `gluamapper:"rate_burst" json:"rate_burst"`
	Repository         string               `gluamapper:"repository" json:"repository"`
	FixtureFile        string               `gluamapper:"fixture_file" json:"fixture_file"`
	FavoritesDirectory string               `gluamapper:"favorites_directory" json:"favorites_directory"`
	Logging            logger.Configuration `gluamapper:"logging" json:"logging"`
}

func defaultConfiguration() *Configuration {
	return &Configuration{
		DataDirectory:      defaultDataDirectory,
		BatchDelay:         int(cache.DefaultBatchDelay / time.Millisecond),
		DedupingInterval:   int(swr.DefaultDedupingInterval / time.Millisecond),
		PageSize:           listing.DefaultPageSize,
		RosterLimit:        catalog.DefaultRosterLimit,
		RosterOffset:       0,
		BaseURL:            pokeapi.DefaultBaseURL,
		RequestTimeout:     pokeapi.DefaultTimeout,
		RateLimit:          pokeapi.DefaultRateLimit,
		RateBurst:          pokeapi.DefaultRateBurst,
		Repository:         repository.KindAPI,
		FavoritesDirectory: defaultFavoritesDirectory,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}
}

// will read decode and verify the configuration, a blank file name
// gives the defaults relative to the current directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := defaultConfiguration()

	baseDirectory, err := os.Getwd()
	if nil != err {
		return nil, err
	}

	if "" != configurationFileName {
		configurationFileName, err = filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}

		// absolute path to the main directory
		baseDirectory, _ = filepath.Split(configurationFileName)

		if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
			return nil, err
		}
	}

	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	}
	options.DataDirectory = util.EnsureAbsolute(baseDirectory, options.DataDirectory)

	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	if options.PageSize < 1 {
		options.PageSize = listing.DefaultPageSize
	}
	if options.RosterLimit < 1 {
		options.RosterLimit = catalog.DefaultRosterLimit
	}
	if options.RosterOffset < 0 {
		options.RosterOffset = 0
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.FixtureFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// log file must be a plain name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
		&options.FavoritesDirectory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := util.EnsureDirectory(*d); nil != err {
			return nil, err
		}
	}

	return options, nil
}

func (c *Configuration) cacheOptions() cache.Options {
	return cache.Options{
		BatchDelay:   time.Duration(c.BatchDelay) * time.Millisecond,
		FetchTimeout: time.Duration(c.RequestTimeout) * time.Second,
	}
}

func (c *Configuration) network() pokeapi.Configuration {
	return pokeapi.Configuration{
		BaseURL:   c.BaseURL,
		Timeout:   c.RequestTimeout,
		RateLimit: c.RateLimit,
		RateBurst: c.RateBurst,
	}
}

func (c *Configuration) repositoryConfiguration() repository.Configuration {
	return repository.Configuration{
		Kind:        c.Repository,
		FixtureFile: c.FixtureFile,
	}
}

func (c *Configuration) catalogConfiguration() catalog.Configuration {
	return catalog.Configuration{
		RosterLimit:  c.RosterLimit,
		RosterOffset: c.RosterOffset,
	}
}

func (c *Configuration) dedupingInterval() time.Duration {
	return time.Duration(c.DedupingInterval) * time.Millisecond
}
