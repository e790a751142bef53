// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package effectiveness

import (
	"context"
	"sync"

	"github.com/bitmark-inc/pokedex/model"
)

// Table - attacking type → multiplier
type Table map[string]float64

// TypeSource - lookup of type records
type TypeSource interface {
	GetType(ctx context.Context, name string) *model.Type
}

// Compose - fold the defensive relations of several types into one
// table
//
// a type starts at 1 when first mentioned, a double relation multiplies
// by 2 and a half relation by 0.5; an immunity from any of the sets
// forces 0 whatever else is folded in
func Compose(relations ...*model.DamageRelations) Table {
	table := make(Table)
	immune := make(map[string]struct{})

	scale := func(name string, factor float64) {
		value, ok := table[name]
		if !ok {
			value = 1
		}
		table[name] = value * factor
	}

	for _, r := range relations {
		if nil == r {
			continue
		}
		for _, t := range r.DoubleDamageFrom {
			scale(t.Name, 2)
		}
		for _, t := range r.HalfDamageFrom {
			scale(t.Name, 0.5)
		}
		for _, t := range r.NoDamageFrom {
			immune[t.Name] = struct{}{}
		}
	}

	for name := range immune {
		table[name] = 0
	}
	return table
}

// ForTypes - classified table for a set of type names, the types are
// looked up concurrently and a failed lookup contributes nothing
func ForTypes(ctx context.Context, source TypeSource, typeNames []string) Groups {
	relations := make([]*model.DamageRelations, len(typeNames))

	var wg sync.WaitGroup
	for i, name := range typeNames {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			t := source.GetType(ctx, name)
			if nil != t {
				relations[i] = &t.DamageRelations
			}
		}(i, name)
	}
	wg.Wait()

	return Classify(Compose(relations...))
}
