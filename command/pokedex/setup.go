// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/pokedex/cache"
	"github.com/bitmark-inc/pokedex/catalog"
	"github.com/bitmark-inc/pokedex/favorites"
	"github.com/bitmark-inc/pokedex/pokeapi"
	"github.com/bitmark-inc/pokedex/repository"
)

type metadata struct {
	file    string
	config  *Configuration
	verbose bool
	e       io.Writer
	w       io.Writer

	log        *logger.L
	cache      *cache.Cache
	lister     *pokeapi.Lister
	repository repository.Repository
	catalog    *catalog.Catalog
	store      favorites.Store
	favorites  *favorites.Favorites
}

// build the data access stack; the caller must call finalise
func initialise(m *metadata) error {
	conf := m.config

	if m.verbose {
		if nil == conf.Logging.Levels {
			conf.Logging.Levels = make(map[string]string)
		}
		conf.Logging.Levels[logger.DefaultTag] = "info"
	}

	// start logging
	err := logger.Initialise(conf.Logging)
	if nil != err {
		return err
	}

	log := logger.New("main")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("configuration: %+v", conf)
	m.log = log

	network := conf.network()
	endpoints := pokeapi.NewEndpoints(network.BaseURL)
	fetcher := pokeapi.NewFetcher(network, logger.New("pokeapi"))

	m.cache = cache.New(fetcher, conf.cacheOptions(), logger.New("cache"))
	m.lister = pokeapi.NewLister(endpoints, fetcher, logger.New("pokeapi"))

	dependencies := repository.Dependencies{
		Requester: m.cache,
		Lister:    m.lister,
		Endpoints: endpoints,
		Log:       logger.New("repository"),
	}
	m.repository, err = repository.New(conf.repositoryConfiguration(), dependencies)
	if nil != err {
		log.Criticalf("repository error: %s", err)
		return err
	}

	m.catalog = catalog.New(m.repository, conf.catalogConfiguration(), logger.New("catalog"))

	log.Infof("favorites: %q", conf.FavoritesDirectory)
	store, err := favorites.OpenLevelDB(conf.FavoritesDirectory)
	if nil != err {
		log.Criticalf("favorites store error: %s", err)
		return err
	}
	m.store = store

	m.favorites, err = favorites.New(store, logger.New("favorites"))
	if nil != err {
		log.Criticalf("favorites error: %s", err)
		return err
	}

	return nil
}

// release everything in reverse order of creation
func finalise(m *metadata) {
	if nil != m.store {
		if err := m.store.Close(); nil != err {
			m.log.Errorf("favorites store close error: %s", err)
		}
	}
	if nil != m.cache {
		stats := m.cache.Stats()
		m.log.Infof("cache: %+v", stats)
		m.cache.Dispose()
	}
	if nil != m.log {
		m.log.Info("finished")
		logger.Finalise()
	}
}
