// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pokeapi

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultBaseURL - public service root
const DefaultBaseURL = "https://pokeapi.co/api/v2"

var chainPattern = regexp.MustCompile(`/evolution-chain/(\d+)/`)

// Endpoints - URL construction for one service root
type Endpoints struct {
	BaseURL string
}

// NewEndpoints - blank base selects the public service
func NewEndpoints(baseURL string) Endpoints {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if "" == baseURL {
		baseURL = DefaultBaseURL
	}
	return Endpoints{BaseURL: baseURL}
}

// PokemonByID - creature record by identifier
func (e Endpoints) PokemonByID(id int) string {
	return fmt.Sprintf("%s/pokemon/%d", e.BaseURL, id)
}

// PokemonByName - creature record by name, names are lower cased
func (e Endpoints) PokemonByName(name string) string {
	return fmt.Sprintf("%s/pokemon/%s", e.BaseURL, strings.ToLower(name))
}

// Species - species record by identifier
func (e Endpoints) Species(id int) string {
	return fmt.Sprintf("%s/pokemon-species/%d", e.BaseURL, id)
}

// Type - type record by name
func (e Endpoints) Type(name string) string {
	return fmt.Sprintf("%s/type/%s", e.BaseURL, strings.ToLower(name))
}

// Ability - ability record by name
func (e Endpoints) Ability(name string) string {
	return fmt.Sprintf("%s/ability/%s", e.BaseURL, strings.ToLower(name))
}

// List - one page of the creature listing
func (e Endpoints) List(limit int, offset int) string {
	return fmt.Sprintf("%s/pokemon?limit=%d&offset=%d", e.BaseURL, limit, offset)
}

// Types - listing of all types
func (e Endpoints) Types() string {
	return e.BaseURL + "/type"
}

// EvolutionChainID - identifier embedded in an evolution chain URL
func EvolutionChainID(url string) (int, bool) {
	m := chainPattern.FindStringSubmatch(url)
	if nil == m {
		return 0, false
	}
	id, err := strconv.Atoi(m[1])
	if nil != err {
		return 0, false
	}
	return id, true
}
