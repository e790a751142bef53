// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package repository

import (
	"context"

	"github.com/bitmark-inc/pokedex/model"
)

// Repository - data access used by the front end and the derived
// engines
type Repository interface {
	GetAllPokemon(ctx context.Context, limit int, offset int) []*model.Pokemon
	GetPokemonByID(ctx context.Context, id int) *model.Pokemon
	GetPokemonByName(ctx context.Context, name string) *model.Pokemon
	GetPokemonSpecies(ctx context.Context, id int) *model.Species
	GetEvolutionChain(ctx context.Context, url string) *model.EvolutionChain
	ListPokemonNames(ctx context.Context, limit int, offset int) []model.NamedResource
	GetType(ctx context.Context, name string) *model.Type
	GetAbility(ctx context.Context, name string) *model.Ability
}

// Requester - batched, cached access to resource bodies
type Requester interface {
	Request(ctx context.Context, url string) ([]byte, error)
}

// Lister - unbatched listing access
type Lister interface {
	List(ctx context.Context, limit int, offset int) (*model.ListPage, error)
}
