// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cache - batching, de-duplicating read cache in front of a
// Fetcher
//
// Requests arriving within the batch window are collected and the
// distinct URLs are fetched concurrently when the window closes. Every
// caller waiting on the same URL receives the same result. Successful
// bodies stay cached until Clear.
package cache
