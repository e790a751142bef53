// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package catalog - the loaded roster and the operations of the
// browsing views built on it: navigation, random pick, search and the
// detail aggregate
package catalog
