// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package evolution - flattening of an evolution tree into display
// stages
package evolution

import (
	"context"
	"fmt"
	"sync"

	"github.com/bitmark-inc/pokedex/model"
)

// only the first child of a node is descended into; siblings are shown
// at their depth but their descendants are not
const followFirstBranchOnly = true

// Source - lookup of the creature behind a species name
type Source interface {
	GetPokemonByName(ctx context.Context, name string) *model.Pokemon
}

// Entry - one creature within a stage
type Entry struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Sprite   string `json:"sprite,omitempty"`
	MinLevel *int   `json:"min_level,omitempty"`
	Trigger  string `json:"trigger,omitempty"`
	Item     string `json:"item,omitempty"`
}

// Stages - depth levels, the first holds only the base creature
type Stages [][]Entry

// Condition - readable evolution requirement, blank for the base
// creature
func (e Entry) Condition() string {
	switch {
	case nil != e.MinLevel:
		return fmt.Sprintf("Level %d", *e.MinLevel)
	case "" != e.Item && "" != e.Trigger:
		return e.Trigger + ": " + e.Item
	case "" != e.Item:
		return e.Item
	default:
		return e.Trigger
	}
}

// Contains - true if the creature appears in any stage
func (s Stages) Contains(id int) bool {
	for _, level := range s {
		for _, e := range level {
			if id == e.ID {
				return true
			}
		}
	}
	return false
}

type workItem struct {
	node  *model.ChainLink
	depth int
}

// Flatten - stages of a chain
//
// if the base creature cannot be resolved the result is empty; a child
// that cannot be resolved is skipped and a level left empty is dropped
func Flatten(ctx context.Context, chain *model.EvolutionChain, source Source) Stages {
	if nil == chain {
		return Stages{}
	}

	root := source.GetPokemonByName(ctx, chain.Chain.Species.Name)
	if nil == root {
		return Stages{}
	}

	// levels[d] collects the creatures at depth d+1
	levels := [][]Entry{}

	worklist := []workItem{{node: &chain.Chain, depth: 0}}
	for len(worklist) > 0 {
		current := worklist[0]
		worklist = worklist[1:]

		children := current.node.EvolvesTo
		if 0 == len(children) {
			continue
		}

		for len(levels) <= current.depth {
			levels = append(levels, []Entry{})
		}
		levels[current.depth] = append(levels[current.depth], resolve(ctx, children, source)...)

		next := children
		if followFirstBranchOnly {
			next = children[:1]
		}
		for i := range next {
			worklist = append(worklist, workItem{node: &next[i], depth: current.depth + 1})
		}
	}

	stages := Stages{{newEntry(root, nil)}}
	for _, level := range levels {
		if len(level) > 0 {
			stages = append(stages, level)
		}
	}
	return stages
}

// look up all children concurrently, result keeps the source order
func resolve(ctx context.Context, children []model.ChainLink, source Source) []Entry {
	found := make([]*model.Pokemon, len(children))

	var wg sync.WaitGroup
	for i := range children {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			found[i] = source.GetPokemonByName(ctx, children[i].Species.Name)
		}(i)
	}
	wg.Wait()

	entries := make([]Entry, 0, len(children))
	for i, p := range found {
		if nil == p {
			continue
		}
		var detail *model.EvolutionDetail
		if len(children[i].EvolutionDetails) > 0 {
			detail = &children[i].EvolutionDetails[0]
		}
		entries = append(entries, newEntry(p, detail))
	}
	return entries
}

func newEntry(p *model.Pokemon, detail *model.EvolutionDetail) Entry {
	e := Entry{
		ID:     p.ID,
		Name:   p.Name,
		Sprite: p.SpriteURL(),
	}
	if nil == detail {
		return e
	}

	// a zero level means no level requirement
	if nil != detail.MinLevel && 0 != *detail.MinLevel {
		level := *detail.MinLevel
		e.MinLevel = &level
	}
	if nil != detail.Trigger {
		e.Trigger = detail.Trigger.Name
	}
	if nil != detail.Item {
		e.Item = detail.Item.Name
	}
	return e
}
