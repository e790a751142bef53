// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package effectiveness - damage multipliers taken by a creature from
// each attacking type, composed over all of its own types
package effectiveness
