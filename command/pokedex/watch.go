// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/pokedex/background"
	"github.com/bitmark-inc/pokedex/catalog"
	"github.com/bitmark-inc/pokedex/fault"
	"github.com/bitmark-inc/pokedex/swr"
)

// print the list and print it again whenever the configuration file
// changes, until interrupted
func runWatch(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	log := m.log

	if "" == m.file {
		return fault.ConfigurationFile
	}

	state, err := listState(c, m.config.PageSize)
	if nil != err {
		return err
	}
	keepPageSize := c.IsSet("limit") || "" != c.String("query")

	// the roster window and page size follow the file
	fetch := func(ctx context.Context) (interface{}, error) {
		conf, err := getConfiguration(m.file)
		if nil != err {
			return nil, err
		}
		s := state
		if !keepPageSize && conf.PageSize != s.PageSize {
			s = s.SetPageSize(conf.PageSize)
		}
		roster, err := catalog.New(m.repository, conf.catalogConfiguration(), logger.New("catalog")).Load(ctx)
		if nil != err {
			return nil, err
		}
		return newPage(s, s.Apply(roster), m.favorites.IsFavorite), nil
	}

	resource := swr.New(fetch, swr.Options{
		DedupingInterval: m.config.dedupingInterval(),
		OnError: func(err error) {
			log.Errorf("list error: %s", err)
		},
	})
	defer resource.Close()

	unsubscribe := resource.Subscribe(func(s swr.State) {
		switch {
		case s.IsError:
			fmt.Fprintf(m.e, "error: %s\n", s.Err)
		case s.IsLoading, s.IsValidating:
		default:
			_ = printJson(m.w, s.Data)
		}
	})
	defer unsubscribe()

	watcher, err := newConfigWatcher(m.file, logger.New("watcher"))
	if nil != err {
		return err
	}
	err = watcher.Start()
	if nil != err {
		return err
	}

	_ = resource.Execute(context.Background())

	processes := background.Start(background.Processes{
		watcher,
		swr.NewRevalidator(resource, watcher.Changes(), logger.New("revalidator")),
	}, nil)
	defer processes.Stop()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)

	select {
	case sig := <-ch:
		log.Infof("received signal: %v", sig)
	case <-watcher.Stopped():
		log.Info("watcher stopped")
	}

	return nil
}
