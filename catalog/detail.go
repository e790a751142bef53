// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/bitmark-inc/pokedex/effectiveness"
	"github.com/bitmark-inc/pokedex/evolution"
	"github.com/bitmark-inc/pokedex/fault"
	"github.com/bitmark-inc/pokedex/model"
)

// language of the descriptive texts
const textLanguage = "en"

// AbilityInfo - ability with its short description
type AbilityInfo struct {
	Name        string `json:"name"`
	IsHidden    bool   `json:"isHidden"`
	Description string `json:"description,omitempty"`
}

// Detail - everything the detail view shows for one creature
type Detail struct {
	Pokemon       *model.Pokemon       `json:"pokemon"`
	Genus         string               `json:"genus,omitempty"`
	Description   string               `json:"description,omitempty"`
	Abilities     []AbilityInfo        `json:"abilities"`
	Evolution     evolution.Stages     `json:"evolution"`
	Effectiveness effectiveness.Groups `json:"effectiveness"`
	Neighbours    Neighbours           `json:"neighbours"`
}

// Lookup - creature by identifier or by name
func (c *Catalog) Lookup(ctx context.Context, idOrName string) *model.Pokemon {
	idOrName = strings.TrimSpace(idOrName)
	if id, err := strconv.Atoi(idOrName); nil == err {
		return c.repository.GetPokemonByID(ctx, id)
	}
	return c.repository.GetPokemonByName(ctx, idOrName)
}

// Detail - collect the detail view; only a missing creature is an
// error, missing species, chain, types or abilities leave their parts
// empty
func (c *Catalog) Detail(ctx context.Context, idOrName string) (*Detail, error) {
	p := c.Lookup(ctx, idOrName)
	if nil == p {
		return nil, fault.MissingPokemon
	}

	d := &Detail{
		Pokemon:    p,
		Abilities:  make([]AbilityInfo, len(p.Abilities)),
		Evolution:  evolution.Stages{},
		Neighbours: c.Neighbours(p.ID),
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		species := c.repository.GetPokemonSpecies(ctx, p.ID)
		if nil == species {
			return
		}
		d.Genus = species.Genus(textLanguage)
		d.Description = species.FlavorText(textLanguage)
		chain := c.repository.GetEvolutionChain(ctx, species.EvolutionChain.URL)
		d.Evolution = evolution.Flatten(ctx, chain, c.repository)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		d.Effectiveness = effectiveness.ForTypes(ctx, c.repository, p.TypeNames())
	}()

	for i, slot := range p.Abilities {
		wg.Add(1)
		go func(i int, slot model.AbilitySlot) {
			defer wg.Done()
			info := AbilityInfo{
				Name:     slot.Ability.Name,
				IsHidden: slot.IsHidden,
			}
			if a := c.repository.GetAbility(ctx, slot.Ability.Name); nil != a {
				info.Description = a.ShortEffect(textLanguage)
			}
			d.Abilities[i] = info
		}(i, slot)
	}

	wg.Wait()
	return d, nil
}
