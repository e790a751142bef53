// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package favorites

import (
	"encoding/binary"
	"encoding/json"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/pokedex/fault"
	"github.com/bitmark-inc/pokedex/model"
)

// record key: prefix followed by a big endian sequence number so that
// key order is insertion order
var recordPrefix = []byte("F")

const sequenceSize = 8

type entry struct {
	key     []byte
	pokemon *model.Pokemon
}

// Favorites - favourite list backed by a store
type Favorites struct {
	sync.RWMutex

	log          *logger.L
	store        Store
	entries      []entry
	nextSequence uint64
}

// New - load the existing favorites; unreadable records are logged and
// removed from the store
func New(store Store, log *logger.L) (*Favorites, error) {
	f := &Favorites{
		log:     log,
		store:   store,
		entries: []entry{},
	}

	corrupt := [][]byte{}
	err := store.Iterate(recordPrefix, func(key []byte, value []byte) error {
		if len(recordPrefix)+sequenceSize != len(key) {
			corrupt = append(corrupt, key)
			return nil
		}

		var p model.Pokemon
		if err := json.Unmarshal(value, &p); nil != err || 0 == p.ID {
			corrupt = append(corrupt, key)
			return nil
		}

		f.entries = append(f.entries, entry{key: key, pokemon: &p})
		sequence := binary.BigEndian.Uint64(key[len(recordPrefix):])
		if sequence >= f.nextSequence {
			f.nextSequence = sequence + 1
		}
		return nil
	})
	if nil != err {
		return nil, err
	}

	for _, key := range corrupt {
		log.Warnf("remove record: %x  error: %s", key, fault.FavoriteRecordCorrupt)
		if err := store.Delete(key); nil != err {
			return nil, err
		}
	}

	log.Infof("favorites: %d", len(f.entries))
	return f, nil
}

// IsFavorite - membership by identifier
func (f *Favorites) IsFavorite(id int) bool {
	f.RLock()
	defer f.RUnlock()
	return f.index(id) >= 0
}

// Toggle - add the creature at the end of the list, or remove it if
// already present; returns true if it was added
func (f *Favorites) Toggle(p *model.Pokemon) (bool, error) {
	if nil == p {
		return false, fault.MissingPokemon
	}

	f.Lock()
	defer f.Unlock()

	if i := f.index(p.ID); i >= 0 {
		err := f.store.Delete(f.entries[i].key)
		if nil != err {
			return false, err
		}
		f.entries = append(f.entries[:i], f.entries[i+1:]...)
		f.log.Debugf("removed: %d %s", p.ID, p.Name)
		return false, nil
	}

	value, err := json.Marshal(p)
	if nil != err {
		return false, err
	}

	key := make([]byte, len(recordPrefix)+sequenceSize)
	copy(key, recordPrefix)
	binary.BigEndian.PutUint64(key[len(recordPrefix):], f.nextSequence)

	err = f.store.Put(key, value)
	if nil != err {
		return false, err
	}
	f.nextSequence++
	f.entries = append(f.entries, entry{key: key, pokemon: p})
	f.log.Debugf("added: %d %s", p.ID, p.Name)
	return true, nil
}

// List - favorites in the order they were added
func (f *Favorites) List() []*model.Pokemon {
	f.RLock()
	defer f.RUnlock()

	result := make([]*model.Pokemon, len(f.entries))
	for i, e := range f.entries {
		result[i] = e.pokemon
	}
	return result
}

// Count - number of favorites
func (f *Favorites) Count() int {
	f.RLock()
	defer f.RUnlock()
	return len(f.entries)
}

// Clear - remove every favorite
func (f *Favorites) Clear() error {
	f.Lock()
	defer f.Unlock()

	for len(f.entries) > 0 {
		err := f.store.Delete(f.entries[0].key)
		if nil != err {
			return err
		}
		f.entries = f.entries[1:]
	}
	f.entries = []entry{}
	f.log.Info("cleared")
	return nil
}

// position of id in the list, -1 if absent
func (f *Favorites) index(id int) int {
	for i, e := range f.entries {
		if id == e.pokemon.ID {
			return i
		}
	}
	return -1
}
