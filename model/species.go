// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package model

import (
	"strings"
)

// Species - species record
type Species struct {
	ID                   int               `json:"id"`
	Name                 string            `json:"name"`
	Order                int               `json:"order"`
	GenderRate           int               `json:"gender_rate"`
	CaptureRate          int               `json:"capture_rate"`
	BaseHappiness        int               `json:"base_happiness"`
	IsBaby               bool              `json:"is_baby"`
	IsLegendary          bool              `json:"is_legendary"`
	IsMythical           bool              `json:"is_mythical"`
	HatchCounter         int               `json:"hatch_counter"`
	HasGenderDifferences bool              `json:"has_gender_differences"`
	FormsSwitchable      bool              `json:"forms_switchable"`
	FlavorTextEntries    []FlavorTextEntry `json:"flavor_text_entries"`
	Genera               []Genus           `json:"genera"`
	EvolutionChain       ResourceLink      `json:"evolution_chain"`
}

// ResourceLink - unnamed link
type ResourceLink struct {
	URL string `json:"url"`
}

// FlavorTextEntry - description text for one game version
type FlavorTextEntry struct {
	FlavorText string        `json:"flavor_text"`
	Language   NamedResource `json:"language"`
	Version    NamedResource `json:"version"`
}

// Genus - category label in one language
type Genus struct {
	Genus    string        `json:"genus"`
	Language NamedResource `json:"language"`
}

// FlavorText - first flavor text in the language, the source text
// contains hard line breaks and form feeds which are folded to spaces
func (s *Species) FlavorText(language string) string {
	for _, entry := range s.FlavorTextEntries {
		if entry.Language.Name == language {
			return strings.Join(strings.Fields(entry.FlavorText), " ")
		}
	}
	return ""
}

// Genus - genus label in the language
func (s *Species) Genus(language string) string {
	for _, g := range s.Genera {
		if g.Language.Name == language {
			return g.Genus
		}
	}
	return ""
}
