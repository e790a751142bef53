// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pokeapi

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/pokedex/util"
)

// defaults for the zero configuration
const (
	DefaultTimeout   = 10 // seconds
	DefaultRateLimit = 20 // requests per second
	DefaultRateBurst = 10
)

// Configuration - network settings
type Configuration struct {
	BaseURL   string  `gluamapper:"base_url" json:"base_url"`
	Timeout   int     `gluamapper:"request_timeout" json:"request_timeout"`
	RateLimit float64 `gluamapper:"rate_limit" json:"rate_limit"`
	RateBurst int     `gluamapper:"rate_burst" json:"rate_burst"`
}

// Fetcher - rate limited GET of a resource body
type Fetcher struct {
	log     *logger.L
	client  *http.Client
	limiter *rate.Limiter
}

// NewFetcher - create a fetcher, zero values in the configuration take
// the defaults
func NewFetcher(configuration Configuration, log *logger.L) *Fetcher {
	timeout := configuration.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	rateLimit := configuration.RateLimit
	if rateLimit <= 0 {
		rateLimit = DefaultRateLimit
	}
	burst := configuration.RateBurst
	if burst <= 0 {
		burst = DefaultRateBurst
	}

	return &Fetcher{
		log: log,
		client: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(rateLimit), burst),
	}
}

// Fetch - body of the resource at url
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if err := limit(ctx, f.limiter); nil != err {
		f.log.Warnf("rate limit: %q  error: %s", url, err)
		return nil, err
	}

	f.log.Debugf("GET: %s", url)
	start := time.Now()

	body, err := util.FetchBody(ctx, f.client, url)
	if nil != err {
		f.log.Errorf("GET: %q  error: %s", url, err)
		return nil, err
	}

	f.log.Debugf("GET: %s  bytes: %d  time: %s", url, len(body), time.Since(start))
	return body, nil
}
