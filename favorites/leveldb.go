// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package favorites

import (
	"encoding/binary"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

const currentDBVersion = 1

// outside the record prefix
var versionKey = []byte("version")

// LevelDBStore - store in a LevelDB database directory
type LevelDBStore struct {
	db *leveldb.DB
}

// OpenLevelDB - open or create the database
func OpenLevelDB(directory string) (*LevelDBStore, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: false,
	}

	db, err := leveldb.OpenFile(directory, opt)
	if nil != err {
		return nil, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		err = putVersion(db, currentDBVersion)
		if nil != err {
			db.Close()
			return nil, err
		}
		return &LevelDBStore{db: db}, nil
	} else if nil != err {
		db.Close()
		return nil, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}
	version := int(binary.BigEndian.Uint32(versionValue))
	if currentDBVersion != version {
		db.Close()
		return nil, fmt.Errorf("incompatible database version: expected: %d  actual: %d", currentDBVersion, version)
	}

	return &LevelDBStore{db: db}, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}

// Put - add or replace a record
func (l *LevelDBStore) Put(key []byte, value []byte) error {
	return l.db.Put(key, value, nil)
}

// Delete - remove a record
func (l *LevelDBStore) Delete(key []byte) error {
	return l.db.Delete(key, nil)
}

// Iterate - see Store
func (l *LevelDBStore) Iterate(prefix []byte, fn func(key []byte, value []byte) error) error {
	iter := l.db.NewIterator(ldb_util.BytesPrefix(prefix), nil)
	defer iter.Release()

	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := make([]byte, len(iter.Key()))
		copy(key, iter.Key())

		value := make([]byte, len(iter.Value()))
		copy(value, iter.Value())

		if err := fn(key, value); nil != err {
			return err
		}
	}
	return iter.Error()
}

// Close - close the database
func (l *LevelDBStore) Close() error {
	return l.db.Close()
}
