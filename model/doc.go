// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package model - records returned by the remote pokémon API
//
// the JSON field names follow the remote resource so that a response
// body can be decoded directly, only the fields used by the rest of
// the program are declared
package model
