// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package model

// EvolutionChain - evolution tree rooted at the base species
type EvolutionChain struct {
	ID    int       `json:"id"`
	Chain ChainLink `json:"chain"`
}

// ChainLink - one node of the evolution tree
type ChainLink struct {
	Species          NamedResource     `json:"species"`
	EvolutionDetails []EvolutionDetail `json:"evolution_details"`
	EvolvesTo        []ChainLink       `json:"evolves_to"`
}

// EvolutionDetail - conditions to evolve into a node from its parent
type EvolutionDetail struct {
	MinLevel *int           `json:"min_level"`
	Trigger  *NamedResource `json:"trigger"`
	Item     *NamedResource `json:"item"`
}
