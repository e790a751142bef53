// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	CacheDisposed         = ProcessError("cache is disposed")
	ConfigurationFile     = InvalidError("configuration file is not a Lua table")
	EmptyQuery            = InvalidError("empty query")
	FavoriteRecordCorrupt = ProcessError("favorite record is corrupt")
	InvalidCount          = InvalidError("invalid count")
	InvalidIdentifier     = InvalidError("invalid identifier")
	InvalidPageSize       = InvalidError("invalid page size")
	InvalidStructPointer  = InvalidError("invalid struct pointer")
	MissingFixtureFile    = InvalidError("fixture file is required")
	MissingPokemon        = InvalidError("pokémon is required")
	NotFound              = NotFoundError("resource not found")
	RateLimiting          = InvalidError("rate limiting")
	RemoteRequestFailed   = ProcessError("remote request failed")
	RosterUnavailable     = ProcessError("failed to fetch pokémon data")
	UnknownRepositoryKind = InvalidError("unknown repository kind")
	UnknownSortOrder      = InvalidError("unknown sort order")
	WatcherAlreadyStarted = ExistsError("watcher already started")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// Error - the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// IsErrExists - determine the class of an error, wrapped errors are
// unwrapped first
func IsErrExists(e error) bool {
	var target ExistsError
	return errors.As(e, &target)
}

// IsErrInvalid - see IsErrExists
func IsErrInvalid(e error) bool {
	var target InvalidError
	return errors.As(e, &target)
}

// IsErrNotFound - see IsErrExists
func IsErrNotFound(e error) bool {
	var target NotFoundError
	return errors.As(e, &target)
}

// IsErrProcess - see IsErrExists
func IsErrProcess(e error) bool {
	var target ProcessError
	return errors.As(e, &target)
}
