// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "pokedex"
	app.Usage = "browse the PokeAPI catalog"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " configuration `FILE` [built in defaults]",
		},
	}

	listFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "search, s",
			Value: "",
			Usage: " name contains `TEXT`",
		},
		cli.StringSliceFlag{
			Name:  "type, t",
			Usage: " must have type `NAME`, repeat for more",
		},
		cli.StringFlag{
			Name:  "sort, o",
			Value: "id-asc",
			Usage: " `ORDER` [id-asc|id-desc|name-asc|name-desc]",
		},
		cli.IntFlag{
			Name:  "page, p",
			Value: 1,
			Usage: " page `NUMBER`",
		},
		cli.IntFlag{
			Name:  "limit, l",
			Value: 0,
			Usage: " page size `COUNT` [configured page_size]",
		},
		cli.StringFlag{
			Name:  "query, q",
			Value: "",
			Usage: " settings as a query string `QUERY` e.g. \"type=fire&sort=name-asc&page=2\"",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "list",
			Usage:     "list the roster, filtered, sorted and paginated",
			ArgsUsage: " ",
			Flags:     listFlags,
			Action:    runList,
		},
		{
			Name:      "show",
			Usage:     "details of one pokémon",
			ArgsUsage: "ID|NAME",
			Action:    runShow,
		},
		{
			Name:      "evolution",
			Usage:     "evolution chain of a pokémon",
			ArgsUsage: "ID|NAME",
			Action:    runEvolution,
		},
		{
			Name:      "types",
			Usage:     "type effectiveness against a pokémon, all type names without argument",
			ArgsUsage: "[ID|NAME]",
			Action:    runTypes,
		},
		{
			Name:      "compare",
			Usage:     "compare the stats of two pokémon, a random pair without arguments",
			ArgsUsage: "[ID|NAME ID|NAME]",
			Action:    runCompare,
		},
		{
			Name:      "search",
			Usage:     "find pokémon by name",
			ArgsUsage: "QUERY",
			Action:    runSearch,
		},
		{
			Name:      "favorite",
			Usage:     "add or remove a favorite",
			ArgsUsage: "ID|NAME",
			Action:    runFavorite,
		},
		{
			Name:  "favorites",
			Usage: "list the favorites",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "clear",
					Usage: " remove all favorites first",
				},
			},
			Action: runFavorites,
		},
		{
			Name:   "random",
			Usage:  "a random pokémon from the roster window",
			Action: runRandom,
		},
		{
			Name:  "stats",
			Usage: "request cache statistics, useful with the fixture repository",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "reset",
					Usage: " zero the counters after printing them",
				},
			},
			Action: runStats,
		},
		{
			Name:      "watch",
			Usage:     "list, then list again whenever the configuration file changes",
			ArgsUsage: " ",
			Flags:     listFlags,
			Action:    runWatch,
		},
		{
			Name:  "version",
			Usage: "display version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and build the stack
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "help" == command || "h" == command || "" == command {
			return nil
		}

		file := c.GlobalString("config")
		if verbose {
			fmt.Fprintf(e, "reading config file: %q\n", file)
		}

		configuration, err := getConfiguration(file)
		if nil != err {
			return err
		}

		m := &metadata{
			file:    file,
			config:  configuration,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		c.App.Metadata["config"] = m

		return initialise(m)
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.verbose && nil != m.cache {
			fmt.Fprintf(m.e, "cache: %+v\n", m.cache.Stats())
		}
		finalise(m)
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}
