// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package model

// Type - type record
type Type struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	DamageRelations DamageRelations `json:"damage_relations"`
}

// DamageRelations - how this type interacts with the others
type DamageRelations struct {
	DoubleDamageFrom []NamedResource `json:"double_damage_from"`
	DoubleDamageTo   []NamedResource `json:"double_damage_to"`
	HalfDamageFrom   []NamedResource `json:"half_damage_from"`
	HalfDamageTo     []NamedResource `json:"half_damage_to"`
	NoDamageFrom     []NamedResource `json:"no_damage_from"`
	NoDamageTo       []NamedResource `json:"no_damage_to"`
}

// Ability - ability record
type Ability struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	EffectEntries []EffectEntry `json:"effect_entries"`
}

// EffectEntry - ability description in one language
type EffectEntry struct {
	Effect      string        `json:"effect"`
	ShortEffect string        `json:"short_effect"`
	Language    NamedResource `json:"language"`
}

// ShortEffect - short description in the language
func (a *Ability) ShortEffect(language string) string {
	for _, e := range a.EffectEntries {
		if e.Language.Name == language {
			return e.ShortEffect
		}
	}
	return ""
}
