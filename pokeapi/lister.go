// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pokeapi

import (
	"context"
	"encoding/json"

	"golang.org/x/sync/singleflight"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/pokedex/model"
)

// BodyFetcher - source of resource bodies
type BodyFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Lister - listing calls, these bypass the batching cache and are
// never cached; identical calls already in progress are shared
type Lister struct {
	log       *logger.L
	endpoints Endpoints
	fetcher   BodyFetcher
	group     singleflight.Group
}

// NewLister - create a lister
func NewLister(endpoints Endpoints, fetcher BodyFetcher, log *logger.L) *Lister {
	return &Lister{
		log:       log,
		endpoints: endpoints,
		fetcher:   fetcher,
	}
}

// List - one page of creature names
func (l *Lister) List(ctx context.Context, limit int, offset int) (*model.ListPage, error) {
	return l.page(ctx, l.endpoints.List(limit, offset))
}

// Types - all type names
func (l *Lister) Types(ctx context.Context) (*model.ListPage, error) {
	return l.page(ctx, l.endpoints.Types())
}

func (l *Lister) page(ctx context.Context, url string) (*model.ListPage, error) {
	v, err, shared := l.group.Do(url, func() (interface{}, error) {
		body, err := l.fetcher.Fetch(ctx, url)
		if nil != err {
			return nil, err
		}
		var page model.ListPage
		err = json.Unmarshal(body, &page)
		if nil != err {
			return nil, err
		}
		return &page, nil
	})
	if nil != err {
		l.log.Warnf("list: %q  error: %s", url, err)
		return nil, err
	}
	if shared {
		l.log.Debugf("list: %q shared", url)
	}
	return v.(*model.ListPage), nil
}
