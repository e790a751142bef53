// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package effectiveness

import (
	"sort"
	"strconv"
)

// Groups - attacking types bucketed by multiplier, each bucket sorted
// by name
type Groups struct {
	Quadruple []string `json:"quadruple"`
	Double    []string `json:"double"`
	Normal    []string `json:"normal"`
	Half      []string `json:"half"`
	Quarter   []string `json:"quarter"`
	Immune    []string `json:"immune"`
}

// Classify - bucket a table by exact multiplier, values outside the six
// buckets are left out
func Classify(table Table) Groups {
	g := Groups{
		Quadruple: []string{},
		Double:    []string{},
		Normal:    []string{},
		Half:      []string{},
		Quarter:   []string{},
		Immune:    []string{},
	}

	for name, value := range table {
		switch value {
		case 4:
			g.Quadruple = append(g.Quadruple, name)
		case 2:
			g.Double = append(g.Double, name)
		case 1:
			g.Normal = append(g.Normal, name)
		case 0.5:
			g.Half = append(g.Half, name)
		case 0.25:
			g.Quarter = append(g.Quarter, name)
		case 0:
			g.Immune = append(g.Immune, name)
		}
	}

	for _, bucket := range [][]string{g.Quadruple, g.Double, g.Normal, g.Half, g.Quarter, g.Immune} {
		sort.Strings(bucket)
	}
	return g
}

// Weaknesses - types dealing more than normal damage
func (g Groups) Weaknesses() []string {
	return join(g.Quadruple, g.Double)
}

// Resistances - types dealing less than normal damage but not none
func (g Groups) Resistances() []string {
	return join(g.Half, g.Quarter)
}

// Immunities - types dealing no damage
func (g Groups) Immunities() []string {
	return join(g.Immune)
}

func join(buckets ...[]string) []string {
	result := []string{}
	for _, b := range buckets {
		result = append(result, b...)
	}
	return result
}

// Label - display form of a multiplier
func Label(multiplier float64) string {
	switch multiplier {
	case 0.5:
		return "½×"
	case 0.25:
		return "¼×"
	default:
		return strconv.FormatFloat(multiplier, 'g', -1, 64) + "×"
	}
}
