// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"fmt"

	"github.com/bitmark-inc/pokedex/model"
)

// BaseURL - address the sample records link to
const BaseURL = "https://pokeapi.co/api/v2"

const (
	spriteFormat  = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/%d.png"
	artworkFormat = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork/%d.png"
)

// stat names in record order
var statNames = []string{
	"hp",
	"attack",
	"defense",
	"special-attack",
	"special-defense",
	"speed",
}

type creatureData struct {
	id        int
	name      string
	types     []string
	stats     [6]int
	abilities []string
	moves     []string
}

var creatures = []creatureData{
	{1, "bulbasaur", []string{"grass", "poison"}, [6]int{45, 49, 49, 65, 65, 45}, []string{"overgrow", "chlorophyll"}, []string{"razor-wind", "vine-whip"}},
	{2, "ivysaur", []string{"grass", "poison"}, [6]int{60, 62, 63, 80, 80, 60}, []string{"overgrow", "chlorophyll"}, []string{"vine-whip"}},
	{3, "venusaur", []string{"grass", "poison"}, [6]int{80, 82, 83, 100, 100, 80}, []string{"overgrow", "chlorophyll"}, []string{"vine-whip", "solar-beam"}},
	{4, "charmander", []string{"fire"}, [6]int{39, 52, 43, 60, 50, 65}, []string{"blaze", "solar-power"}, []string{"scratch", "ember"}},
	{5, "charmeleon", []string{"fire"}, [6]int{58, 64, 58, 80, 65, 80}, []string{"blaze", "solar-power"}, []string{"ember"}},
	{6, "charizard", []string{"fire", "flying"}, [6]int{78, 84, 78, 109, 85, 100}, []string{"blaze", "solar-power"}, []string{"ember", "wing-attack"}},
	{7, "squirtle", []string{"water"}, [6]int{44, 48, 65, 50, 64, 43}, []string{"torrent", "rain-dish"}, []string{"tackle", "water-gun"}},
	{25, "pikachu", []string{"electric"}, [6]int{35, 55, 40, 50, 50, 90}, []string{"static", "lightning-rod"}, []string{"thunder-shock"}},
	{133, "eevee", []string{"normal"}, [6]int{55, 55, 50, 45, 65, 55}, []string{"run-away", "adaptability"}, []string{"tackle"}},
	{134, "vaporeon", []string{"water"}, [6]int{130, 65, 60, 110, 95, 65}, []string{"water-absorb", "hydration"}, []string{"water-gun"}},
	{135, "jolteon", []string{"electric"}, [6]int{65, 65, 60, 110, 95, 130}, []string{"volt-absorb", "quick-feet"}, []string{"thunder-shock"}},
	{136, "flareon", []string{"fire"}, [6]int{65, 130, 60, 95, 110, 65}, []string{"flash-fire", "guts"}, []string{"ember"}},
}

// creature id → evolution chain id
var chainOf = map[int]int{
	1: 1, 2: 1, 3: 1,
	4: 2, 5: 2, 6: 2,
	7: 3,
	25: 10,
	133: 67, 134: 67, 135: 67, 136: 67,
}

func link(kind string, name string) model.NamedResource {
	return model.NamedResource{
		Name: name,
		URL:  fmt.Sprintf("%s/%s/%s/", BaseURL, kind, name),
	}
}

func links(kind string, names ...string) []model.NamedResource {
	r := make([]model.NamedResource, len(names))
	for i, name := range names {
		r[i] = link(kind, name)
	}
	return r
}

// Pokemon - fresh copies of all sample creatures in identifier order
func Pokemon() []*model.Pokemon {
	result := make([]*model.Pokemon, 0, len(creatures))
	for _, c := range creatures {
		result = append(result, makePokemon(c))
	}
	return result
}

// PokemonNamed - fresh copy of one sample creature, nil if unknown
func PokemonNamed(name string) *model.Pokemon {
	for _, c := range creatures {
		if c.name == name {
			return makePokemon(c)
		}
	}
	return nil
}

func makePokemon(c creatureData) *model.Pokemon {
	p := &model.Pokemon{
		ID:             c.id,
		Name:           c.name,
		BaseExperience: 64,
		Height:         7,
		Weight:         69,
		Species: model.NamedResource{
			Name: c.name,
			URL:  fmt.Sprintf("%s/pokemon-species/%d/", BaseURL, c.id),
		},
	}
	p.Sprites.FrontDefault = fmt.Sprintf(spriteFormat, c.id)
	p.Sprites.Other.OfficialArtwork.FrontDefault = fmt.Sprintf(artworkFormat, c.id)

	for i, t := range c.types {
		p.Types = append(p.Types, model.TypeSlot{Slot: i + 1, Type: link("type", t)})
	}
	for i, value := range c.stats {
		p.Stats = append(p.Stats, model.StatValue{BaseStat: value, Stat: link("stat", statNames[i])})
	}
	for i, a := range c.abilities {
		p.Abilities = append(p.Abilities, model.AbilitySlot{
			Ability:  link("ability", a),
			IsHidden: i == len(c.abilities)-1,
			Slot:     i + 1,
		})
	}
	for _, m := range c.moves {
		p.Moves = append(p.Moves, model.MoveEntry{Move: link("move", m)})
	}
	return p
}

// ChainURL - address of an evolution chain
func ChainURL(id int) string {
	return fmt.Sprintf("%s/evolution-chain/%d/", BaseURL, id)
}

// Species - species records for every sample creature
func Species() []*model.Species {
	result := make([]*model.Species, 0, len(creatures))
	for _, c := range creatures {
		s := &model.Species{
			ID:          c.id,
			Name:        c.name,
			Order:       c.id,
			CaptureRate: 45,
			FlavorTextEntries: []model.FlavorTextEntry{
				{
					FlavorText: fmt.Sprintf("A sample\nrecord for\f%s.", c.name),
					Language:   link("language", "en"),
					Version:    link("version", "red"),
				},
			},
			Genera: []model.Genus{
				{Genus: "Sample Pokémon", Language: link("language", "en")},
			},
			EvolutionChain: model.ResourceLink{URL: ChainURL(chainOf[c.id])},
		}
		result = append(result, s)
	}
	return result
}

func level(n int) *int {
	return &n
}

func levelUp(n int) []model.EvolutionDetail {
	trigger := link("evolution-trigger", "level-up")
	return []model.EvolutionDetail{{MinLevel: level(n), Trigger: &trigger}}
}

func useItem(item string) []model.EvolutionDetail {
	trigger := link("evolution-trigger", "use-item")
	i := link("item", item)
	return []model.EvolutionDetail{{Trigger: &trigger, Item: &i}}
}

// EvolutionChains - chains 1 (bulbasaur), 2 (charmander) and 67
// (eevee, branching); the chains of squirtle and pikachu are absent
func EvolutionChains() []*model.EvolutionChain {
	return []*model.EvolutionChain{
		{
			ID: 1,
			Chain: model.ChainLink{
				Species:          link("pokemon-species", "bulbasaur"),
				EvolutionDetails: []model.EvolutionDetail{},
				EvolvesTo: []model.ChainLink{
					{
						Species:          link("pokemon-species", "ivysaur"),
						EvolutionDetails: levelUp(16),
						EvolvesTo: []model.ChainLink{
							{
								Species:          link("pokemon-species", "venusaur"),
								EvolutionDetails: levelUp(32),
							},
						},
					},
				},
			},
		},
		{
			ID: 2,
			Chain: model.ChainLink{
				Species: link("pokemon-species", "charmander"),
				EvolvesTo: []model.ChainLink{
					{
						Species:          link("pokemon-species", "charmeleon"),
						EvolutionDetails: levelUp(16),
						EvolvesTo: []model.ChainLink{
							{
								Species:          link("pokemon-species", "charizard"),
								EvolutionDetails: levelUp(36),
							},
						},
					},
				},
			},
		},
		{
			ID: 67,
			Chain: model.ChainLink{
				Species: link("pokemon-species", "eevee"),
				EvolvesTo: []model.ChainLink{
					{
						Species:          link("pokemon-species", "vaporeon"),
						EvolutionDetails: useItem("water-stone"),
					},
					{
						Species:          link("pokemon-species", "jolteon"),
						EvolutionDetails: useItem("thunder-stone"),
					},
					{
						Species:          link("pokemon-species", "flareon"),
						EvolutionDetails: useItem("fire-stone"),
					},
				},
			},
		},
	}
}

type relations struct {
	name       string
	doubleFrom []string
	halfFrom   []string
	noFrom     []string
	doubleTo   []string
	halfTo     []string
	noTo       []string
}

var typeData = []relations{
	{"electric", []string{"ground"}, []string{"flying", "steel", "electric"}, nil, []string{"flying", "water"}, []string{"grass", "electric", "dragon"}, []string{"ground"}},
	{"fire", []string{"ground", "rock", "water"}, []string{"bug", "steel", "fire", "grass", "ice", "fairy"}, nil, []string{"bug", "steel", "grass", "ice"}, []string{"rock", "fire", "water", "dragon"}, nil},
	{"flying", []string{"rock", "electric", "ice"}, []string{"fighting", "bug", "grass"}, []string{"ground"}, []string{"fighting", "bug", "grass"}, []string{"rock", "steel", "electric"}, nil},
	{"grass", []string{"flying", "poison", "bug", "fire", "ice"}, []string{"ground", "water", "grass", "electric"}, nil, []string{"ground", "rock", "water"}, []string{"flying", "poison", "bug", "steel", "fire", "grass", "dragon"}, nil},
	{"ground", []string{"water", "grass", "ice"}, []string{"poison", "rock"}, []string{"electric"}, []string{"poison", "rock", "steel", "fire", "electric"}, []string{"bug", "grass"}, []string{"flying"}},
	{"normal", []string{"fighting"}, nil, []string{"ghost"}, nil, []string{"rock", "steel"}, []string{"ghost"}},
	{"poison", []string{"ground", "psychic"}, []string{"fighting", "poison", "bug", "grass", "fairy"}, nil, []string{"grass", "fairy"}, []string{"poison", "ground", "rock", "ghost"}, []string{"steel"}},
	{"water", []string{"grass", "electric"}, []string{"steel", "fire", "water", "ice"}, nil, []string{"ground", "rock", "fire"}, []string{"water", "grass", "dragon"}, nil},
}

// Types - damage relations of the types the sample creatures use, plus
// ground
func Types() []*model.Type {
	result := make([]*model.Type, 0, len(typeData))
	for i, r := range typeData {
		result = append(result, &model.Type{
			ID:   i + 1,
			Name: r.name,
			DamageRelations: model.DamageRelations{
				DoubleDamageFrom: links("type", r.doubleFrom...),
				DoubleDamageTo:   links("type", r.doubleTo...),
				HalfDamageFrom:   links("type", r.halfFrom...),
				HalfDamageTo:     links("type", r.halfTo...),
				NoDamageFrom:     links("type", r.noFrom...),
				NoDamageTo:       links("type", r.noTo...),
			},
		})
	}
	return result
}

// TypeNamed - one type record, nil if unknown
func TypeNamed(name string) *model.Type {
	for _, t := range Types() {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// Abilities - a couple of ability records
func Abilities() []*model.Ability {
	return []*model.Ability{
		{
			ID:   65,
			Name: "overgrow",
			EffectEntries: []model.EffectEntry{
				{
					Effect:      "When this Pokémon has 1/3 or less of its HP remaining, its grass-type moves inflict 1.5× as much regular damage.",
					ShortEffect: "Strengthens grass moves to inflict 1.5× damage at 1/3 max HP or less.",
					Language:    link("language", "en"),
				},
			},
		},
		{
			ID:   66,
			Name: "blaze",
			EffectEntries: []model.EffectEntry{
				{
					Effect:      "When this Pokémon has 1/3 or less of its HP remaining, its fire-type moves inflict 1.5× as much regular damage.",
					ShortEffect: "Strengthens fire moves to inflict 1.5× damage at 1/3 max HP or less.",
					Language:    link("language", "en"),
				},
			},
		},
	}
}
