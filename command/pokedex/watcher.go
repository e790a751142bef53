// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/pokedex/fault"
)

// watches the configuration file and signals every change on a
// channel of capacity one, surplus events are dropped
type configWatcher struct {
	sync.Mutex

	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	started  bool
	change   chan struct{}
	stopped  chan struct{}
}

func newConfigWatcher(targetFile string, log *logger.L) (*configWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", targetFile, err)
		return nil, err
	}

	if _, err := os.Stat(filePath); nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &configWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, 1),
		stopped:  make(chan struct{}),
	}, nil
}

// Start - begin watching; the directory is watched since editors often
// replace the file instead of writing it
func (w *configWatcher) Start() error {
	w.Lock()
	defer w.Unlock()

	if w.started {
		return fault.WatcherAlreadyStarted
	}

	err := w.watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}
	w.started = true
	return nil
}

// Changes - one signal per burst of modifications
func (w *configWatcher) Changes() <-chan struct{} {
	return w.change
}

// Stopped - closed when Run returns
func (w *configWatcher) Stopped() <-chan struct{} {
	return w.stopped
}

// Run - background process, ends at shutdown or when the file is removed
func (w *configWatcher) Run(args interface{}, shutdown <-chan struct{}) {
	log := w.log
	defer close(w.stopped)
	defer close(w.change)
	defer w.watcher.Close()

	log.Infof("watching: %q", w.filePath)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			log.Errorf("watcher error: %s", err)

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue loop
			}
			log.Debugf("file event: %v", event)

			if isRemove(event) {
				log.Errorf("file %s removed, stop", w.filePath)
				break loop
			}

			if isChange(event) {
				w.send()
			}
		}
	}

	log.Info("stopped")
}

func (w *configWatcher) send() {
	select {
	case w.change <- struct{}{}:
		w.log.Info("sending config change event…")
	default:
		w.log.Debug("event channel full, discard event")
	}
}

func isRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func isChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
