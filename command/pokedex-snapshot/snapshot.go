// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/pokedex/fault"
	"github.com/bitmark-inc/pokedex/model"
	"github.com/bitmark-inc/pokedex/repository"
)

type typeLister interface {
	Types(ctx context.Context) (*model.ListPage, error)
}

// collect the roster window and everything the detail view refers to
func snapshot(ctx context.Context, r repository.Repository, lister typeLister, limit int, offset int, log *logger.L) (repository.Fixtures, error) {

	roster := r.GetAllPokemon(ctx, limit, offset)
	if 0 == len(roster) {
		return repository.Fixtures{}, fault.RosterUnavailable
	}
	log.Infof("pokémon: %d", len(roster))

	species := make([]*model.Species, len(roster))
	each(len(roster), func(i int) {
		species[i] = r.GetPokemonSpecies(ctx, roster[i].ID)
	})

	chainURLs := []string{}
	seen := make(map[string]struct{})
	for _, s := range species {
		if nil == s || "" == s.EvolutionChain.URL {
			continue
		}
		if _, ok := seen[s.EvolutionChain.URL]; ok {
			continue
		}
		seen[s.EvolutionChain.URL] = struct{}{}
		chainURLs = append(chainURLs, s.EvolutionChain.URL)
	}

	chains := make([]*model.EvolutionChain, len(chainURLs))
	each(len(chainURLs), func(i int) {
		chains[i] = r.GetEvolutionChain(ctx, chainURLs[i])
	})

	var typeNames []string
	if page, err := lister.Types(ctx); nil == err {
		typeNames = page.Names()
	} else {
		log.Warnf("type list error: %s, using the roster types", err)
		typeNames = unique(roster, func(p *model.Pokemon) []string {
			return p.TypeNames()
		})
	}

	types := make([]*model.Type, len(typeNames))
	each(len(typeNames), func(i int) {
		types[i] = r.GetType(ctx, typeNames[i])
	})

	abilityNames := unique(roster, func(p *model.Pokemon) []string {
		names := make([]string, len(p.Abilities))
		for i, a := range p.Abilities {
			names[i] = a.Ability.Name
		}
		return names
	})

	abilities := make([]*model.Ability, len(abilityNames))
	each(len(abilityNames), func(i int) {
		abilities[i] = r.GetAbility(ctx, abilityNames[i])
	})

	f := repository.Fixtures{
		Pokemon:         roster,
		Species:         []*model.Species{},
		EvolutionChains: []*model.EvolutionChain{},
		Types:           []*model.Type{},
		Abilities:       []*model.Ability{},
	}
	for _, s := range species {
		if nil != s {
			f.Species = append(f.Species, s)
		}
	}
	for _, c := range chains {
		if nil != c {
			f.EvolutionChains = append(f.EvolutionChains, c)
		}
	}
	for _, t := range types {
		if nil != t {
			f.Types = append(f.Types, t)
		}
	}
	for _, a := range abilities {
		if nil != a {
			f.Abilities = append(f.Abilities, a)
		}
	}
	return f, nil
}

// run fn for 0..n-1 concurrently and wait for all of them
func each(n int, fn func(i int)) {
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			fn(i)
		}(i)
	}
	wg.Wait()
}

// names in first seen order
func unique(roster []*model.Pokemon, names func(*model.Pokemon) []string) []string {
	result := []string{}
	seen := make(map[string]struct{})
	for _, p := range roster {
		for _, name := range names(p) {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			result = append(result, name)
		}
	}
	return result
}
