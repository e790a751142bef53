// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package repository - typed access to creature data
//
// Two implementations share the Repository contract: the live one reads
// through the batching cache, the fixture one serves records loaded in
// memory. Lookups never return errors, a missing or unreadable record
// is nil and the reason is logged.
package repository
