// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package favorites

import (
	"bytes"
	"sort"
	"sync"
)

// Store - key/value persistence for favorite records
type Store interface {
	Put(key []byte, value []byte) error
	Delete(key []byte) error

	// calls fn in key order for every record whose key has the prefix;
	// the slices passed to fn are copies
	Iterate(prefix []byte, fn func(key []byte, value []byte) error) error

	Close() error
}

// MemoryStore - store that lives as long as the process
type MemoryStore struct {
	sync.Mutex
	records map[string][]byte
}

// NewMemoryStore - empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string][]byte),
	}
}

// Put - add or replace a record
func (m *MemoryStore) Put(key []byte, value []byte) error {
	m.Lock()
	defer m.Unlock()
	m.records[string(key)] = append([]byte{}, value...)
	return nil
}

// Delete - remove a record, absent keys are ignored
func (m *MemoryStore) Delete(key []byte) error {
	m.Lock()
	defer m.Unlock()
	delete(m.records, string(key))
	return nil
}

// Iterate - see Store
func (m *MemoryStore) Iterate(prefix []byte, fn func(key []byte, value []byte) error) error {
	m.Lock()
	keys := make([]string, 0, len(m.records))
	for k := range m.records {
		if bytes.HasPrefix([]byte(k), prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	values := make([][]byte, len(keys))
	for i, k := range keys {
		values[i] = append([]byte{}, m.records[k]...)
	}
	m.Unlock()

	for i, k := range keys {
		if err := fn([]byte(k), values[i]); nil != err {
			return err
		}
	}
	return nil
}

// Close - nothing to release
func (m *MemoryStore) Close() error {
	return nil
}
