// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listing

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/bitmark-inc/pokedex/model"
)

// sort orders
const (
	SortIDAsc    = "id-asc"
	SortIDDesc   = "id-desc"
	SortNameAsc  = "name-asc"
	SortNameDesc = "name-desc"
)

// DefaultSort - order of a fresh list
const DefaultSort = SortIDAsc

// IsSortOrder - true for the four known orders
func IsSortOrder(order string) bool {
	switch order {
	case SortIDAsc, SortIDDesc, SortNameAsc, SortNameDesc:
		return true
	default:
		return false
	}
}

// FilterByName - creatures whose name contains the query, ignoring
// case; a blank query keeps everything
func FilterByName(items []*model.Pokemon, query string) []*model.Pokemon {
	query = strings.ToLower(strings.TrimSpace(query))
	result := make([]*model.Pokemon, 0, len(items))
	for _, p := range items {
		if strings.Contains(strings.ToLower(p.Name), query) {
			result = append(result, p)
		}
	}
	return result
}

// FilterByTypes - creatures having every one of the types
func FilterByTypes(items []*model.Pokemon, types []string) []*model.Pokemon {
	result := make([]*model.Pokemon, 0, len(items))
scan_items:
	for _, p := range items {
		for _, t := range types {
			if !p.HasType(t) {
				continue scan_items
			}
		}
		result = append(result, p)
	}
	return result
}

// Sort - stably sorted copy, an unknown order leaves the input order
func Sort(items []*model.Pokemon, order string) []*model.Pokemon {
	result := make([]*model.Pokemon, len(items))
	copy(result, items)

	var less func(i, j int) bool
	switch order {
	case SortIDAsc:
		less = func(i, j int) bool { return result[i].ID < result[j].ID }
	case SortIDDesc:
		less = func(i, j int) bool { return result[i].ID > result[j].ID }
	case SortNameAsc:
		c := collate.New(language.English)
		less = func(i, j int) bool { return c.CompareString(result[i].Name, result[j].Name) < 0 }
	case SortNameDesc:
		c := collate.New(language.English)
		less = func(i, j int) bool { return c.CompareString(result[i].Name, result[j].Name) > 0 }
	default:
		return result
	}

	sort.SliceStable(result, less)
	return result
}

// Paginate - items of a 1-based page; a page out of range is empty
func Paginate(items []*model.Pokemon, page int, pageSize int) []*model.Pokemon {
	if page < 1 || pageSize < 1 {
		return []*model.Pokemon{}
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []*model.Pokemon{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages - number of pages needed for n items
func TotalPages(n int, pageSize int) int {
	if pageSize < 1 {
		return 0
	}
	return (n + pageSize - 1) / pageSize
}

// Result - one rendered page
type Result struct {
	Items      []*model.Pokemon `json:"items"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
}

// Apply - name filter, type filter, sort, then paginate
func Apply(items []*model.Pokemon, filters Filters, page int, pageSize int) Result {
	selected := FilterByName(items, filters.Search)
	if len(filters.Types) > 0 {
		selected = FilterByTypes(selected, filters.Types)
	}
	selected = Sort(selected, filters.Sort)

	return Result{
		Items:      Paginate(selected, page, pageSize),
		Total:      len(selected),
		Page:       page,
		PageSize:   pageSize,
		TotalPages: TotalPages(len(selected), pageSize),
	}
}
