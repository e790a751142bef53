// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package compare - side by side stat comparison of two creatures
package compare

import (
	"github.com/bitmark-inc/pokedex/model"
)

// bar scales
const (
	MaximumStat  = 255
	MaximumTotal = 600
)

// Verdict - how a value compares to the other creature's
type Verdict string

// verdicts
const (
	Higher Verdict = "higher"
	Lower  Verdict = "lower"
	Equal  Verdict = "equal"
)

// Row - one stat of one side
type Row struct {
	Stat       string  `json:"stat"`
	Label      string  `json:"label"`
	Value      int     `json:"value"`
	Other      int     `json:"other"`
	Percentage float64 `json:"percentage"`
	Verdict    Verdict `json:"verdict"`
}

// Side - one creature's card
type Side struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Number          string   `json:"number"`
	Types           []string `json:"types"`
	Height          float64  `json:"height"` // metres
	Weight          float64  `json:"weight"` // kilograms
	Rows            []Row    `json:"rows"`
	Total           int      `json:"total"`
	TotalPercentage float64  `json:"totalPercentage"`
	TotalVerdict    Verdict  `json:"totalVerdict"`
}

// Comparison - both sides, each judged against the other
type Comparison struct {
	First  Side `json:"first"`
	Second Side `json:"second"`
}

// Compare - build both sides
func Compare(first *model.Pokemon, second *model.Pokemon) Comparison {
	return Comparison{
		First:  side(first, second),
		Second: side(second, first),
	}
}

// rows follow the stats of p; a stat the other lacks counts as 0
func side(p *model.Pokemon, other *model.Pokemon) Side {
	s := Side{
		ID:              p.ID,
		Name:            FormatName(p.Name),
		Number:          FormatID(p.ID),
		Types:           p.TypeNames(),
		Height:          float64(p.Height) / 10,
		Weight:          float64(p.Weight) / 10,
		Rows:            make([]Row, 0, len(p.Stats)),
		Total:           p.TotalStats(),
		TotalPercentage: percentage(p.TotalStats(), MaximumTotal),
		TotalVerdict:    verdict(p.TotalStats(), other.TotalStats()),
	}

	for _, stat := range p.Stats {
		otherValue, _ := other.Stat(stat.Stat.Name)
		s.Rows = append(s.Rows, Row{
			Stat:       stat.Stat.Name,
			Label:      FormatStatName(stat.Stat.Name),
			Value:      stat.BaseStat,
			Other:      otherValue,
			Percentage: percentage(stat.BaseStat, MaximumStat),
			Verdict:    verdict(stat.BaseStat, otherValue),
		})
	}
	return s
}

func verdict(value int, other int) Verdict {
	switch {
	case value > other:
		return Higher
	case value < other:
		return Lower
	default:
		return Equal
	}
}

func percentage(value int, maximum int) float64 {
	p := float64(value) / float64(maximum) * 100
	if p > 100 {
		return 100
	}
	return p
}
