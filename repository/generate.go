// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package repository

//go:generate mockgen -destination=mocks/repository.go -package=mocks github.com/bitmark-inc/pokedex/repository Repository
