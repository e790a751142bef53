// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pokeapi - access to the public PokeAPI REST service
//
// Endpoints builds resource URLs, Fetcher performs rate limited GET
// requests and is the network side of the batching cache, Lister
// performs the unbatched listing calls.
package pokeapi
