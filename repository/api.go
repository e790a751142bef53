// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package repository

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/pokedex/model"
	"github.com/bitmark-inc/pokedex/pokeapi"
)

type apiRepository struct {
	log       *logger.L
	requester Requester
	lister    Lister
	endpoints pokeapi.Endpoints
}

// NewAPI - repository over the remote service
func NewAPI(requester Requester, lister Lister, endpoints pokeapi.Endpoints, log *logger.L) Repository {
	return &apiRepository{
		log:       log,
		requester: requester,
		lister:    lister,
		endpoints: endpoints,
	}
}

// GetAllPokemon - resolve one listing page to full records
//
// every name is resolved concurrently; failures are dropped so the
// result may be shorter than the page but keeps listing order
func (r *apiRepository) GetAllPokemon(ctx context.Context, limit int, offset int) []*model.Pokemon {
	page, err := r.lister.List(ctx, limit, offset)
	if nil != err {
		r.log.Errorf("list: limit: %d  offset: %d  error: %s", limit, offset, err)
		return []*model.Pokemon{}
	}

	names := page.Names()
	outcomes := make([]*model.Pokemon, len(names))

	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			outcomes[i] = r.GetPokemonByName(ctx, name)
		}(i, name)
	}
	wg.Wait()

	result := make([]*model.Pokemon, 0, len(outcomes))
	for _, p := range outcomes {
		if nil != p {
			result = append(result, p)
		}
	}

	if len(result) != len(names) {
		r.log.Warnf("resolved: %d of: %d", len(result), len(names))
	}
	return result
}

func (r *apiRepository) GetPokemonByID(ctx context.Context, id int) *model.Pokemon {
	if id <= 0 {
		r.log.Warnf("invalid id: %d", id)
		return nil
	}
	var p model.Pokemon
	if !r.get(ctx, r.endpoints.PokemonByID(id), &p) {
		return nil
	}
	return &p
}

func (r *apiRepository) GetPokemonByName(ctx context.Context, name string) *model.Pokemon {
	name = strings.TrimSpace(name)
	if "" == name {
		return nil
	}
	var p model.Pokemon
	if !r.get(ctx, r.endpoints.PokemonByName(name), &p) {
		return nil
	}
	return &p
}

func (r *apiRepository) GetPokemonSpecies(ctx context.Context, id int) *model.Species {
	if id <= 0 {
		r.log.Warnf("invalid species id: %d", id)
		return nil
	}
	var s model.Species
	if !r.get(ctx, r.endpoints.Species(id), &s) {
		return nil
	}
	return &s
}

func (r *apiRepository) GetEvolutionChain(ctx context.Context, url string) *model.EvolutionChain {
	if "" == url {
		return nil
	}
	var chain model.EvolutionChain
	if !r.get(ctx, url, &chain) {
		return nil
	}
	return &chain
}

func (r *apiRepository) ListPokemonNames(ctx context.Context, limit int, offset int) []model.NamedResource {
	page, err := r.lister.List(ctx, limit, offset)
	if nil != err {
		r.log.Errorf("list names: limit: %d  offset: %d  error: %s", limit, offset, err)
		return []model.NamedResource{}
	}
	return page.Results
}

func (r *apiRepository) GetType(ctx context.Context, name string) *model.Type {
	if "" == name {
		return nil
	}
	var t model.Type
	if !r.get(ctx, r.endpoints.Type(name), &t) {
		return nil
	}
	return &t
}

func (r *apiRepository) GetAbility(ctx context.Context, name string) *model.Ability {
	if "" == name {
		return nil
	}
	var a model.Ability
	if !r.get(ctx, r.endpoints.Ability(name), &a) {
		return nil
	}
	return &a
}

// fetch through the cache and decode, false on any failure
func (r *apiRepository) get(ctx context.Context, url string, v interface{}) bool {
	body, err := r.requester.Request(ctx, url)
	if nil != err {
		r.log.Errorf("request: %q  error: %s", url, err)
		return false
	}
	err = json.Unmarshal(body, v)
	if nil != err {
		r.log.Errorf("decode: %q  error: %s", url, err)
		return false
	}
	return true
}
