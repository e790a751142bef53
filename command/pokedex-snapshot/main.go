// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Write a fixture file for the fixture repository from the live
// service
//
//   pokedex-snapshot [--limit=N] [--offset=N] [--base-url=URL] FILE
package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/pokedex/cache"
	"github.com/bitmark-inc/pokedex/catalog"
	"github.com/bitmark-inc/pokedex/pokeapi"
	"github.com/bitmark-inc/pokedex/repository"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "limit", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'l'},
		{Long: "offset", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'o'},
		{Long: "base-url", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'b'},
		{Long: "log-directory", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'd'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		fmt.Printf("%s: version: %s\n", program, version)
		return
	}

	if len(options["help"]) > 0 || 1 != len(arguments) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--limit=N] [--offset=N] [--base-url=URL] [--log-directory=DIR] FILE", program)
	}

	limit := intOption(program, "limit", options["limit"], catalog.DefaultRosterLimit)
	offset := intOption(program, "offset", options["offset"], 0)
	if limit < 1 || offset < 0 {
		exitwithstatus.Message("%s: invalid window: limit: %d  offset: %d", program, limit, offset)
	}

	baseURL := ""
	if 0 != len(options["base-url"]) {
		baseURL = options["base-url"][0]
	}

	logDirectory := "."
	if 0 != len(options["log-directory"]) {
		logDirectory = options["log-directory"][0]
	}

	level := "info"
	if len(options["verbose"]) > 0 {
		level = "debug"
	}

	logging := logger.Configuration{
		Directory: logDirectory,
		File:      "pokedex-snapshot.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: level,
		},
	}
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)

	network := pokeapi.Configuration{
		BaseURL: baseURL,
	}
	endpoints := pokeapi.NewEndpoints(network.BaseURL)
	fetcher := pokeapi.NewFetcher(network, logger.New("pokeapi"))
	lister := pokeapi.NewLister(endpoints, fetcher, logger.New("pokeapi"))

	c := cache.New(fetcher, cache.Options{}, logger.New("cache"))
	defer c.Dispose()

	r := repository.NewAPI(c, lister, endpoints, logger.New("repository"))

	fixtures, err := snapshot(context.Background(), r, lister, limit, offset, log)
	if nil != err {
		log.Criticalf("snapshot error: %s", err)
		exitwithstatus.Message("%s: snapshot error: %s", program, err)
	}

	fileName := arguments[0]
	err = repository.SaveFixtures(fileName, fixtures)
	if nil != err {
		log.Criticalf("save: %q  error: %s", fileName, err)
		exitwithstatus.Message("%s: save: %q  error: %s", program, fileName, err)
	}

	log.Infof("cache: %+v", c.Stats())
	fmt.Printf("%s: pokémon: %d  species: %d  chains: %d  types: %d  abilities: %d\n",
		fileName,
		len(fixtures.Pokemon),
		len(fixtures.Species),
		len(fixtures.EvolutionChains),
		len(fixtures.Types),
		len(fixtures.Abilities),
	)
}

func intOption(program string, name string, values []string, defaultValue int) int {
	if 0 == len(values) {
		return defaultValue
	}
	n, err := strconv.Atoi(values[0])
	if nil != err {
		exitwithstatus.Message("%s: option: %s  error: %s", program, name, err)
	}
	return n
}
