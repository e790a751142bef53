// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package favorites - the user's favourite creatures, kept in insertion
// order in an injected store
package favorites
