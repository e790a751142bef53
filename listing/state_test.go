// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listing_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/pokedex/fixtures"
	"github.com/bitmark-inc/pokedex/listing"
)

func TestNewState(t *testing.T) {
	s := listing.NewState(0)

	assert.Equal(t, 1, s.Page, "wrong page")
	assert.Equal(t, listing.DefaultPageSize, s.PageSize, "wrong page size")
	assert.Equal(t, listing.SortIDAsc, s.Filters.Sort, "wrong sort")
	assert.Equal(t, 0, len(s.Values()), "fresh state has query values")
}

func TestStateReducer(t *testing.T) {
	s := listing.NewState(5).SetPage(3)
	assert.Equal(t, 3, s.Page, "page not set")

	s = s.SetFilters(listing.Filters{Types: []string{"fire"}})
	assert.Equal(t, 1, s.Page, "filters did not reset the page")
	assert.Equal(t, listing.SortIDAsc, s.Filters.Sort, "blank sort not defaulted")

	s = s.SetPage(2).SetPageSize(10)
	assert.Equal(t, 1, s.Page, "page size did not reset the page")
	assert.Equal(t, 10, s.PageSize, "page size not set")

	s = s.Reset()
	assert.Equal(t, listing.NewState(5), s, "reset did not restore the initial state")
}

func TestStateApply(t *testing.T) {
	s := listing.NewState(3).SetFilters(listing.Filters{Sort: listing.SortIDDesc}).SetPage(2)

	r := s.Apply(fixtures.Pokemon())
	assert.Equal(t, []string{"eevee", "pikachu", "squirtle"}, names(r.Items), "wrong page")
	assert.Equal(t, 12, r.Total, "wrong total")
	assert.Equal(t, 4, r.TotalPages, "wrong page count")
}

func TestStateValues(t *testing.T) {
	s := listing.NewState(20).
		SetFilters(listing.Filters{
			Search: "char",
			Types:  []string{"fire", "flying"},
			Sort:   listing.SortNameDesc,
		}).
		SetPage(2)

	v := s.Values()
	assert.Equal(t, "page=2&search=char&sort=name-desc&type=fire&type=flying", v.Encode(), "wrong query")

	restored := listing.FromValues(v, 20)
	assert.Equal(t, s, restored, "state not restored")
}

func TestFromValuesDefaults(t *testing.T) {
	v, err := url.ParseQuery("page=x&limit=-3")
	assert.Nil(t, err, "parse error")

	s := listing.FromValues(v, 20)
	assert.Equal(t, listing.NewState(20), s, "bad values not defaulted")
}
