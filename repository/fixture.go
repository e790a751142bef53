// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package repository

import (
	"context"
	"strings"

	"github.com/bitmark-inc/pokedex/model"
	"github.com/bitmark-inc/pokedex/pokeapi"
)

// Fixtures - in-memory records for the fixture repository
type Fixtures struct {
	Pokemon         []*model.Pokemon        `json:"pokemon"`
	Species         []*model.Species        `json:"species"`
	EvolutionChains []*model.EvolutionChain `json:"evolution_chains"`
	Types           []*model.Type           `json:"types"`
	Abilities       []*model.Ability        `json:"abilities"`
}

type fixtureRepository struct {
	roster    []*model.Pokemon
	byID      map[int]*model.Pokemon
	byName    map[string]*model.Pokemon
	species   map[int]*model.Species
	chains    map[int]*model.EvolutionChain
	types     map[string]*model.Type
	abilities map[string]*model.Ability
}

// NewFixture - repository over fixed records, no network and no timers
func NewFixture(fixtures Fixtures) Repository {
	r := &fixtureRepository{
		roster:    make([]*model.Pokemon, 0, len(fixtures.Pokemon)),
		byID:      make(map[int]*model.Pokemon),
		byName:    make(map[string]*model.Pokemon),
		species:   make(map[int]*model.Species),
		chains:    make(map[int]*model.EvolutionChain),
		types:     make(map[string]*model.Type),
		abilities: make(map[string]*model.Ability),
	}

	for _, p := range fixtures.Pokemon {
		if nil == p {
			continue
		}
		r.roster = append(r.roster, p)
		r.byID[p.ID] = p
		r.byName[strings.ToLower(p.Name)] = p
	}
	for _, s := range fixtures.Species {
		if nil != s {
			r.species[s.ID] = s
		}
	}
	for _, c := range fixtures.EvolutionChains {
		if nil != c {
			r.chains[c.ID] = c
		}
	}
	for _, t := range fixtures.Types {
		if nil != t {
			r.types[strings.ToLower(t.Name)] = t
		}
	}
	for _, a := range fixtures.Abilities {
		if nil != a {
			r.abilities[strings.ToLower(a.Name)] = a
		}
	}
	return r
}

// GetAllPokemon - slice of the roster, a non-positive limit takes the
// remainder
func (r *fixtureRepository) GetAllPokemon(ctx context.Context, limit int, offset int) []*model.Pokemon {
	start, end := window(len(r.roster), limit, offset)
	result := make([]*model.Pokemon, end-start)
	copy(result, r.roster[start:end])
	return result
}

func (r *fixtureRepository) GetPokemonByID(ctx context.Context, id int) *model.Pokemon {
	return r.byID[id]
}

func (r *fixtureRepository) GetPokemonByName(ctx context.Context, name string) *model.Pokemon {
	return r.byName[strings.ToLower(strings.TrimSpace(name))]
}

func (r *fixtureRepository) GetPokemonSpecies(ctx context.Context, id int) *model.Species {
	return r.species[id]
}

func (r *fixtureRepository) GetEvolutionChain(ctx context.Context, url string) *model.EvolutionChain {
	id, ok := pokeapi.EvolutionChainID(url)
	if !ok {
		return nil
	}
	return r.chains[id]
}

func (r *fixtureRepository) ListPokemonNames(ctx context.Context, limit int, offset int) []model.NamedResource {
	start, end := window(len(r.roster), limit, offset)
	result := make([]model.NamedResource, 0, end-start)
	for _, p := range r.roster[start:end] {
		result = append(result, model.NamedResource{Name: p.Name})
	}
	return result
}

func (r *fixtureRepository) GetType(ctx context.Context, name string) *model.Type {
	return r.types[strings.ToLower(name)]
}

func (r *fixtureRepository) GetAbility(ctx context.Context, name string) *model.Ability {
	return r.abilities[strings.ToLower(name)]
}

// bounds of limit/offset applied to n items
func window(n int, limit int, offset int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > n {
		offset = n
	}
	end := n
	if limit > 0 && offset+limit < n {
		end = offset + limit
	}
	return offset, end
}
