// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package model

// NamedResource - link to another resource
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ListPage - one page of the paginated listing endpoint
type ListPage struct {
	Count    int             `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  []NamedResource `json:"results"`
}

// Names - names of the results in listing order
func (page *ListPage) Names() []string {
	if nil == page {
		return nil
	}
	names := make([]string, len(page.Results))
	for i, r := range page.Results {
		names[i] = r.Name
	}
	return names
}
