// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package swr - stale-while-revalidate wrapper around one fetch
// operation
//
// A Resource keeps the last good value visible while it is being
// refreshed, exposes loading/error/validating flags and suppresses
// refreshes that arrive too soon after the previous request.
package swr
