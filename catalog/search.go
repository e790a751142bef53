// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog

import (
	"context"
	"strings"
	"sync"

	"github.com/bitmark-inc/pokedex/model"
)

const (
	searchListLimit   = 100
	searchResultLimit = 5
)

// Search - an exact name match if there is one, otherwise up to five
// creatures whose names contain the query among the first hundred
func (c *Catalog) Search(ctx context.Context, query string) []*model.Pokemon {
	query = strings.ToLower(strings.TrimSpace(query))
	if "" == query {
		return []*model.Pokemon{}
	}

	if p := c.repository.GetPokemonByName(ctx, query); nil != p {
		return []*model.Pokemon{p}
	}

	matches := []string{}
	for _, r := range c.repository.ListPokemonNames(ctx, searchListLimit, 0) {
		if strings.Contains(r.Name, query) {
			matches = append(matches, r.Name)
			if len(matches) == searchResultLimit {
				break
			}
		}
	}

	found := make([]*model.Pokemon, len(matches))
	var wg sync.WaitGroup
	for i, name := range matches {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			found[i] = c.repository.GetPokemonByName(ctx, name)
		}(i, name)
	}
	wg.Wait()

	results := make([]*model.Pokemon, 0, len(found))
	for _, p := range found {
		if nil != p {
			results = append(results, p)
		}
	}
	c.log.Debugf("search: %q  matches: %d  resolved: %d", query, len(matches), len(results))
	return results
}
