// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cache

//go:generate mockgen -destination=mocks/fetcher.go -package=mocks github.com/bitmark-inc/pokedex/cache Fetcher
