// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listing - filter, sort and paginate a loaded roster
//
// All functions are pure; State holds the list settings of one view
// and is updated by value.
package listing
