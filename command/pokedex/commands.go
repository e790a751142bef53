// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"net/url"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/pokedex/catalog"
	"github.com/bitmark-inc/pokedex/compare"
	"github.com/bitmark-inc/pokedex/effectiveness"
	"github.com/bitmark-inc/pokedex/evolution"
	"github.com/bitmark-inc/pokedex/fault"
	"github.com/bitmark-inc/pokedex/listing"
	"github.com/bitmark-inc/pokedex/model"
)

func runList(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	ctx := context.Background()

	state, err := listState(c, m.config.PageSize)
	if nil != err {
		return err
	}

	roster, err := m.catalog.Load(ctx)
	if nil != err {
		return err
	}

	return printJson(m.w, newPage(state, state.Apply(roster), m.favorites.IsFavorite))
}

// list settings from the --query form overridden by individual flags
func listState(c *cli.Context, pageSize int) (listing.State, error) {
	state := listing.NewState(pageSize)

	if q := c.String("query"); "" != q {
		v, err := url.ParseQuery(q)
		if nil != err {
			return state, err
		}
		state = listing.FromValues(v, pageSize)
	}

	filters := state.Filters
	changed := false
	if c.IsSet("search") {
		filters.Search = c.String("search")
		changed = true
	}
	if c.IsSet("type") {
		filters.Types = []string{}
		for _, t := range c.StringSlice("type") {
			filters.Types = append(filters.Types, strings.ToLower(strings.TrimSpace(t)))
		}
		changed = true
	}
	if c.IsSet("sort") {
		filters.Sort = c.String("sort")
		changed = true
	}
	if !listing.IsSortOrder(filters.Sort) {
		return state, fault.UnknownSortOrder
	}

	page := state.Page
	if changed {
		state = state.SetFilters(filters)
		page = 1
	}

	if c.IsSet("limit") {
		size := c.Int("limit")
		if size < 1 {
			return state, fault.InvalidPageSize
		}
		state = state.SetPageSize(size)
		page = 1
	}

	if c.IsSet("page") {
		page = c.Int("page")
	}
	if page < 1 {
		return state, fault.InvalidCount
	}

	return state.SetPage(page), nil
}

func runShow(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	idOrName, err := identifier(c)
	if nil != err {
		return err
	}

	d, err := m.catalog.Detail(context.Background(), idOrName)
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		Number   string          `json:"number"`
		Favorite bool            `json:"favorite"`
		Detail   *catalog.Detail `json:"detail"`
	}{
		Number:   compare.FormatID(d.Pokemon.ID),
		Favorite: m.favorites.IsFavorite(d.Pokemon.ID),
		Detail:   d,
	})
}

func runEvolution(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	ctx := context.Background()

	p, err := lookup(c, m)
	if nil != err {
		return err
	}

	stages := evolution.Stages{}
	if species := m.repository.GetPokemonSpecies(ctx, p.ID); nil != species {
		chain := m.repository.GetEvolutionChain(ctx, species.EvolutionChain.URL)
		stages = evolution.Flatten(ctx, chain, m.repository)
	}

	type step struct {
		evolution.Entry
		Condition string `json:"condition,omitempty"`
	}
	levels := make([][]step, len(stages))
	for i, level := range stages {
		levels[i] = make([]step, len(level))
		for j, e := range level {
			levels[i][j] = step{Entry: e, Condition: e.Condition()}
		}
	}

	return printJson(m.w, struct {
		Name   string   `json:"name"`
		Stages [][]step `json:"stages"`
	}{
		Name:   p.Name,
		Stages: levels,
	})
}

func runTypes(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	ctx := context.Background()

	// without an argument list the type names known to the service
	if 0 == c.NArg() {
		types, err := m.lister.Types(ctx)
		if nil != err {
			return err
		}
		return printJson(m.w, types.Names())
	}

	p, err := lookup(c, m)
	if nil != err {
		return err
	}

	groups := effectiveness.ForTypes(ctx, m.repository, p.TypeNames())

	return printJson(m.w, struct {
		Name        string               `json:"name"`
		Types       []string             `json:"types"`
		Weaknesses  []string             `json:"weaknesses"`
		Resistances []string             `json:"resistances"`
		Immunities  []string             `json:"immunities"`
		Groups      effectiveness.Groups `json:"groups"`
	}{
		Name:        p.Name,
		Types:       p.TypeNames(),
		Weaknesses:  groups.Weaknesses(),
		Resistances: groups.Resistances(),
		Immunities:  groups.Immunities(),
		Groups:      groups,
	})
}

func runCompare(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	ctx := context.Background()

	var first, second *model.Pokemon

	switch c.NArg() {
	case 0:
		_, err := m.catalog.Load(ctx)
		if nil != err {
			return err
		}
		first, second = m.catalog.RandomPair()
	case 2:
		first = m.catalog.Lookup(ctx, c.Args().Get(0))
		second = m.catalog.Lookup(ctx, c.Args().Get(1))
	default:
		return fault.InvalidCount
	}

	if nil == first || nil == second {
		return fault.MissingPokemon
	}

	return printJson(m.w, compare.Compare(first, second))
}

func runSearch(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	query := strings.Join(c.Args(), " ")
	if "" == strings.TrimSpace(query) {
		return fault.EmptyQuery
	}

	results := m.catalog.Search(context.Background(), query)
	return printJson(m.w, summarise(results, m.favorites.IsFavorite))
}

func runFavorite(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	p, err := lookup(c, m)
	if nil != err {
		return err
	}

	added, err := m.favorites.Toggle(p)
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		ID       int    `json:"id"`
		Name     string `json:"name"`
		Favorite bool   `json:"favorite"`
	}{
		ID:       p.ID,
		Name:     p.Name,
		Favorite: added,
	})
}

func runFavorites(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if c.Bool("clear") {
		err := m.favorites.Clear()
		if nil != err {
			return err
		}
	}

	return printJson(m.w, summarise(m.favorites.List(), m.favorites.IsFavorite))
}

func runRandom(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id := m.catalog.RandomID()
	p := m.repository.GetPokemonByID(context.Background(), id)
	if nil == p {
		return fault.MissingPokemon
	}

	return printJson(m.w, summarise([]*model.Pokemon{p}, m.favorites.IsFavorite)[0])
}

func runStats(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	if c.Bool("reset") {
		return printJson(m.w, m.cache.ResetStats())
	}
	return printJson(m.w, m.cache.Stats())
}

// the single identifier or name argument
func identifier(c *cli.Context) (string, error) {
	if 1 != c.NArg() {
		return "", fault.InvalidCount
	}
	idOrName := strings.TrimSpace(c.Args().Get(0))
	if "" == idOrName {
		return "", fault.InvalidIdentifier
	}
	return idOrName, nil
}

func lookup(c *cli.Context, m *metadata) (*model.Pokemon, error) {
	idOrName, err := identifier(c)
	if nil != err {
		return nil, err
	}
	p := m.catalog.Lookup(context.Background(), idOrName)
	if nil == p {
		return nil, fault.MissingPokemon
	}
	return p, nil
}
