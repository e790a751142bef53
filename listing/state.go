// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listing

import (
	"net/url"
	"strconv"

	"github.com/bitmark-inc/pokedex/model"
)

// DefaultPageSize - items per page of a fresh list
const DefaultPageSize = 20

// Filters - user selected list settings
type Filters struct {
	Search string   `json:"search"`
	Types  []string `json:"types"`
	Sort   string   `json:"sort"`
}

// State - settings of one list view
type State struct {
	Filters         Filters `json:"filters"`
	Page            int     `json:"page"`
	PageSize        int     `json:"pageSize"`
	defaultPageSize int
}

// NewState - fresh list, page size below 1 takes the default
func NewState(pageSize int) State {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return State{
		Filters: Filters{
			Types: []string{},
			Sort:  DefaultSort,
		},
		Page:            1,
		PageSize:        pageSize,
		defaultPageSize: pageSize,
	}
}

// SetPage - move to another page, filters unchanged
func (s State) SetPage(page int) State {
	s.Page = page
	return s
}

// SetPageSize - change the page size and return to the first page
func (s State) SetPageSize(pageSize int) State {
	if pageSize < 1 {
		pageSize = s.defaultPageSize
	}
	s.PageSize = pageSize
	s.Page = 1
	return s
}

// SetFilters - replace the filters and return to the first page
func (s State) SetFilters(filters Filters) State {
	if "" == filters.Sort {
		filters.Sort = DefaultSort
	}
	if nil == filters.Types {
		filters.Types = []string{}
	}
	s.Filters = filters
	s.Page = 1
	return s
}

// Reset - back to the initial settings
func (s State) Reset() State {
	return NewState(s.defaultPageSize)
}

// Apply - the page of items selected by this state
func (s State) Apply(items []*model.Pokemon) Result {
	return Apply(items, s.Filters, s.Page, s.PageSize)
}

// Values - query form of the settings that differ from a fresh list
func (s State) Values() url.Values {
	v := url.Values{}
	if 1 != s.Page {
		v.Set("page", strconv.Itoa(s.Page))
	}
	for _, t := range s.Filters.Types {
		v.Add("type", t)
	}
	if DefaultSort != s.Filters.Sort {
		v.Set("sort", s.Filters.Sort)
	}
	if s.defaultPageSize != s.PageSize {
		v.Set("limit", strconv.Itoa(s.PageSize))
	}
	if "" != s.Filters.Search {
		v.Set("search", s.Filters.Search)
	}
	return v
}

// FromValues - state described by a query, missing or unreadable
// values take the defaults
func FromValues(v url.Values, pageSize int) State {
	s := NewState(pageSize)

	if types, ok := v["type"]; ok {
		s.Filters.Types = append([]string{}, types...)
	}
	if sort := v.Get("sort"); "" != sort {
		s.Filters.Sort = sort
	}
	s.Filters.Search = v.Get("search")

	if n, err := strconv.Atoi(v.Get("limit")); nil == err && n > 0 {
		s.PageSize = n
	}
	if n, err := strconv.Atoi(v.Get("page")); nil == err {
		s.Page = n
	}
	return s
}
