// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/pokedex/background"
	"github.com/bitmark-inc/pokedex/fault"
	"github.com/bitmark-inc/pokedex/fixtures"
)

func TestConfigWatcher(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, "return {}\n")
	defer cleanup()

	w, err := newConfigWatcher(fileName, logger.New(fixtures.LogCategory))
	assert.Nil(t, err, "wrong newConfigWatcher")

	err = w.Start()
	assert.Nil(t, err, "wrong Start")
	assert.Equal(t, fault.WatcherAlreadyStarted, w.Start(), "second Start allowed")

	processes := background.Start(background.Processes{w}, nil)
	defer processes.Stop()

	err = ioutil.WriteFile(fileName, []byte("return { page_size = 5 }\n"), 0600)
	assert.Nil(t, err, "wrong WriteFile")

	select {
	case <-w.Changes():
	case <-time.After(5 * time.Second):
		t.Fatal("no change signalled")
	}

	err = os.Remove(fileName)
	assert.Nil(t, err, "wrong Remove")

	select {
	case <-w.Stopped():
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestConfigWatcherMissingFile(t *testing.T) {
	_, err := newConfigWatcher("/does/not/exist.conf", logger.New(fixtures.LogCategory))
	assert.True(t, os.IsNotExist(err), "wrong error")
}
