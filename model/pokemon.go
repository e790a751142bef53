// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package model

// Pokemon - a single creature record
type Pokemon struct {
	ID             int           `json:"id"`
	Name           string        `json:"name"`
	BaseExperience int           `json:"base_experience"`
	Height         int           `json:"height"` // decimetres
	Weight         int           `json:"weight"` // hectograms
	Sprites        Sprites       `json:"sprites"`
	Types          []TypeSlot    `json:"types"`
	Stats          []StatValue   `json:"stats"`
	Abilities      []AbilitySlot `json:"abilities"`
	Moves          []MoveEntry   `json:"moves"`
	Species        NamedResource `json:"species"`
}

// Sprites - image links
type Sprites struct {
	FrontDefault string       `json:"front_default"`
	Other        OtherSprites `json:"other"`
}

// OtherSprites - alternative artwork
type OtherSprites struct {
	OfficialArtwork struct {
		FrontDefault string `json:"front_default"`
	} `json:"official-artwork"`
}

// TypeSlot - one of the creature's types
type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// StatValue - base value of one stat
type StatValue struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

// AbilitySlot - one ability
type AbilitySlot struct {
	Ability  NamedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
}

// MoveEntry - a learnable move
type MoveEntry struct {
	Move NamedResource `json:"move"`
}

// TypeNames - type labels in slot order
func (p *Pokemon) TypeNames() []string {
	names := make([]string, len(p.Types))
	for i, t := range p.Types {
		names[i] = t.Type.Name
	}
	return names
}

// HasType - true if one of the creature's types is the given label
func (p *Pokemon) HasType(name string) bool {
	for _, t := range p.Types {
		if t.Type.Name == name {
			return true
		}
	}
	return false
}

// Stat - base value of a stat, zero if the creature does not have it
func (p *Pokemon) Stat(name string) (int, bool) {
	for _, s := range p.Stats {
		if s.Stat.Name == name {
			return s.BaseStat, true
		}
	}
	return 0, false
}

// TotalStats - sum of all base values
func (p *Pokemon) TotalStats() int {
	total := 0
	for _, s := range p.Stats {
		total += s.BaseStat
	}
	return total
}

// MoveNames - learnable move names in record order
func (p *Pokemon) MoveNames() []string {
	names := make([]string, len(p.Moves))
	for i, m := range p.Moves {
		names[i] = m.Move.Name
	}
	return names
}

// SpriteURL - official artwork if present, otherwise the default
// sprite
func (p *Pokemon) SpriteURL() string {
	if "" != p.Sprites.Other.OfficialArtwork.FrontDefault {
		return p.Sprites.Other.OfficialArtwork.FrontDefault
	}
	return p.Sprites.FrontDefault
}
