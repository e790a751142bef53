// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/pokedex/compare"
	"github.com/bitmark-inc/pokedex/listing"
	"github.com/bitmark-inc/pokedex/model"
)

// one line of a list
type summary struct {
	ID       int      `json:"id"`
	Number   string   `json:"number"`
	Name     string   `json:"name"`
	Types    []string `json:"types"`
	Total    int      `json:"total"`
	Sprite   string   `json:"sprite,omitempty"`
	Favorite bool     `json:"favorite"`
}

type page struct {
	Items      []summary `json:"items"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	TotalPages int       `json:"totalPages"`
	Query      string    `json:"query"`
}

func summarise(items []*model.Pokemon, isFavorite func(int) bool) []summary {
	s := make([]summary, len(items))
	for i, p := range items {
		s[i] = summary{
			ID:     p.ID,
			Number: compare.FormatID(p.ID),
			Name:   compare.FormatName(p.Name),
			Types:  p.TypeNames(),
			Total:  p.TotalStats(),
			Sprite: p.SpriteURL(),
		}
		if nil != isFavorite {
			s[i].Favorite = isFavorite(p.ID)
		}
	}
	return s
}

func newPage(state listing.State, result listing.Result, isFavorite func(int) bool) page {
	return page{
		Items:      summarise(result.Items, isFavorite),
		Total:      result.Total,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: result.TotalPages,
		Query:      state.Values().Encode(),
	}
}
