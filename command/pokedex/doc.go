// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Browse the PokeAPI catalog from the command line, output is JSON
//
// e.g. the fire types sorted by name, ten to a page:
//
//   pokedex --config=pokedex.conf list --type=fire --sort=name-asc --limit=10
//
// see pokedex.conf.sample for the configuration settings
package main
