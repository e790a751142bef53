// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package swr

import (
	"context"

	"github.com/bitmark-inc/logger"
)

// Revalidator - background process that revalidates a resource each
// time a trigger arrives
type Revalidator struct {
	log      *logger.L
	resource *Resource
	trigger  <-chan struct{}
}

// NewRevalidator - create the process, start it with background.Start
func NewRevalidator(resource *Resource, trigger <-chan struct{}, log *logger.L) *Revalidator {
	return &Revalidator{
		log:      log,
		resource: resource,
		trigger:  trigger,
	}
}

// Run - wait for triggers until shutdown or the trigger channel closes
func (rv *Revalidator) Run(args interface{}, shutdown <-chan struct{}) {
	log := rv.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case _, ok := <-rv.trigger:
			if !ok {
				break loop
			}
			log.Debug("revalidate")
			err := rv.resource.Revalidate(context.Background())
			if nil != err {
				log.Errorf("revalidate error: %s", err)
			}
		}
	}

	log.Info("stopped")
}
