// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package evolution_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/pokedex/evolution"
	"github.com/bitmark-inc/pokedex/fixtures"
	"github.com/bitmark-inc/pokedex/model"
	"github.com/bitmark-inc/pokedex/repository"
	"github.com/bitmark-inc/pokedex/repository/mocks"
)

func fixtureRepository() repository.Repository {
	return repository.NewFixture(repository.Fixtures{
		Pokemon:         fixtures.Pokemon(),
		EvolutionChains: fixtures.EvolutionChains(),
	})
}

func names(stages evolution.Stages) [][]string {
	result := make([][]string, len(stages))
	for i, level := range stages {
		result[i] = []string{}
		for _, e := range level {
			result[i] = append(result[i], e.Name)
		}
	}
	return result
}

func TestFlattenLinearChain(t *testing.T) {
	r := fixtureRepository()
	chain := r.GetEvolutionChain(context.Background(), fixtures.ChainURL(1))

	stages := evolution.Flatten(context.Background(), chain, r)

	assert.Equal(t, [][]string{{"bulbasaur"}, {"ivysaur"}, {"venusaur"}}, names(stages), "wrong stages")

	base := stages[0][0]
	assert.Equal(t, 1, base.ID, "wrong base id")
	assert.Nil(t, base.MinLevel, "base has a level")
	assert.Equal(t, "", base.Trigger, "base has a trigger")
	assert.Equal(t, "", base.Condition(), "base has a condition")

	ivysaur := stages[1][0]
	assert.Equal(t, 16, *ivysaur.MinLevel, "wrong ivysaur level")
	assert.Equal(t, "level-up", ivysaur.Trigger, "wrong ivysaur trigger")
	assert.Equal(t, "Level 16", ivysaur.Condition(), "wrong ivysaur condition")
	assert.Contains(t, ivysaur.Sprite, "official-artwork", "wrong sprite")

	assert.Equal(t, "Level 32", stages[2][0].Condition(), "wrong venusaur condition")

	assert.True(t, stages.Contains(3), "venusaur missing")
	assert.False(t, stages.Contains(4), "charmander present")
}

func TestFlattenBranchingChain(t *testing.T) {
	r := fixtureRepository()
	chain := r.GetEvolutionChain(context.Background(), fixtures.ChainURL(67))

	stages := evolution.Flatten(context.Background(), chain, r)

	assert.Equal(t, [][]string{{"eevee"}, {"vaporeon", "jolteon", "flareon"}}, names(stages), "wrong stages")
	assert.Equal(t, "use-item: water-stone", stages[1][0].Condition(), "wrong vaporeon condition")
	assert.Equal(t, "thunder-stone", stages[1][1].Item, "wrong jolteon item")
	assert.Nil(t, stages[1][2].MinLevel, "flareon has a level")
}

func TestFlattenRootFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRepository(ctl)
	r.EXPECT().GetPokemonByName(gomock.Any(), "bulbasaur").Return(nil).Times(1)

	chain := fixtures.EvolutionChains()[0]
	stages := evolution.Flatten(context.Background(), chain, r)

	assert.Equal(t, 0, len(stages), "stages without a base")
	assert.Equal(t, 0, len(evolution.Flatten(context.Background(), nil, r)), "stages from nil chain")
}

func TestFlattenSkipsFailedChildren(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRepository(ctl)
	r.EXPECT().GetPokemonByName(gomock.Any(), "eevee").Return(fixtures.PokemonNamed("eevee")).Times(1)
	r.EXPECT().GetPokemonByName(gomock.Any(), "vaporeon").Return(fixtures.PokemonNamed("vaporeon")).Times(1)
	r.EXPECT().GetPokemonByName(gomock.Any(), "jolteon").Return(nil).Times(1)
	r.EXPECT().GetPokemonByName(gomock.Any(), "flareon").Return(fixtures.PokemonNamed("flareon")).Times(1)

	chain := fixtures.EvolutionChains()[2]
	stages := evolution.Flatten(context.Background(), chain, r)

	assert.Equal(t, [][]string{{"eevee"}, {"vaporeon", "flareon"}}, names(stages), "wrong stages")
}

func TestFlattenDropsEmptyLevel(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRepository(ctl)
	r.EXPECT().GetPokemonByName(gomock.Any(), "bulbasaur").Return(fixtures.PokemonNamed("bulbasaur")).Times(1)
	r.EXPECT().GetPokemonByName(gomock.Any(), "ivysaur").Return(nil).Times(1)
	r.EXPECT().GetPokemonByName(gomock.Any(), "venusaur").Return(fixtures.PokemonNamed("venusaur")).Times(1)

	chain := fixtures.EvolutionChains()[0]
	stages := evolution.Flatten(context.Background(), chain, r)

	assert.Equal(t, [][]string{{"bulbasaur"}, {"venusaur"}}, names(stages), "empty level kept")
}

func TestFlattenFirstDetailWins(t *testing.T) {
	five := 5
	zero := 0
	trade := model.NamedResource{Name: "trade"}
	chain := &model.EvolutionChain{
		ID: 99,
		Chain: model.ChainLink{
			Species: model.NamedResource{Name: "eevee"},
			EvolvesTo: []model.ChainLink{
				{
					Species: model.NamedResource{Name: "pikachu"},
					EvolutionDetails: []model.EvolutionDetail{
						{MinLevel: &zero, Trigger: &trade},
						{MinLevel: &five},
					},
				},
			},
		},
	}

	stages := evolution.Flatten(context.Background(), chain, fixtureRepository())

	assert.Equal(t, 2, len(stages), "wrong stage count")
	assert.Nil(t, stages[1][0].MinLevel, "zero level kept or second detail used")
	assert.Equal(t, "trade", stages[1][0].Condition(), "wrong condition")
}
