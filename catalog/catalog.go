// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/pokedex/fault"
	"github.com/bitmark-inc/pokedex/model"
	"github.com/bitmark-inc/pokedex/repository"
)

// DefaultRosterLimit - first generation
const DefaultRosterLimit = 151

// Configuration - roster window
type Configuration struct {
	RosterLimit  int `gluamapper:"roster_limit" json:"roster_limit"`
	RosterOffset int `gluamapper:"roster_offset" json:"roster_offset"`
}

// Catalog - roster holder
type Catalog struct {
	sync.RWMutex

	log        *logger.L
	repository repository.Repository
	limit      int
	offset     int

	roster    []*model.Pokemon
	maximumID int

	randomLock sync.Mutex
	random     *rand.Rand
}

// Neighbours - identifiers either side of a creature, nil at the ends
type Neighbours struct {
	Previous *int `json:"previous"`
	Next     *int `json:"next"`
}

// New - create an empty catalog, call Load to fill it
func New(r repository.Repository, configuration Configuration, log *logger.L) *Catalog {
	limit := configuration.RosterLimit
	if limit <= 0 {
		limit = DefaultRosterLimit
	}
	offset := configuration.RosterOffset
	if offset < 0 {
		offset = 0
	}

	return &Catalog{
		log:        log,
		repository: r,
		limit:      limit,
		offset:     offset,
		random:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Load - fetch the roster; an empty roster is the one failure reported
// to the caller
func (c *Catalog) Load(ctx context.Context) ([]*model.Pokemon, error) {
	roster := c.repository.GetAllPokemon(ctx, c.limit, c.offset)
	if 0 == len(roster) {
		c.log.Errorf("roster empty: limit: %d  offset: %d", c.limit, c.offset)
		return nil, fault.RosterUnavailable
	}

	maximum := 0
	for _, p := range roster {
		if p.ID > maximum {
			maximum = p.ID
		}
	}

	c.Lock()
	c.roster = roster
	c.maximumID = maximum
	c.Unlock()

	c.log.Infof("roster: %d  maximum id: %d", len(roster), maximum)
	return roster, nil
}

// Roster - the last loaded roster
func (c *Catalog) Roster() []*model.Pokemon {
	c.RLock()
	defer c.RUnlock()
	return c.roster
}

// maximum identifier reachable by navigation
func (c *Catalog) maximum() int {
	c.RLock()
	defer c.RUnlock()
	if c.maximumID > 0 {
		return c.maximumID
	}
	return c.offset + c.limit
}

// Neighbours - previous and next identifiers, next stops at the highest
// identifier of the roster
func (c *Catalog) Neighbours(id int) Neighbours {
	n := Neighbours{}
	if id > 1 {
		previous := id - 1
		n.Previous = &previous
	}
	if id >= 1 && id < c.maximum() {
		next := id + 1
		n.Next = &next
	}
	return n
}

// RandomID - an identifier within the roster window
func (c *Catalog) RandomID() int {
	c.randomLock.Lock()
	defer c.randomLock.Unlock()
	return c.offset + 1 + c.random.Intn(c.limit)
}

// RandomPair - two different creatures of the loaded roster, nil if
// fewer than two are loaded
func (c *Catalog) RandomPair() (*model.Pokemon, *model.Pokemon) {
	roster := c.Roster()
	if len(roster) < 2 {
		return nil, nil
	}

	c.randomLock.Lock()
	defer c.randomLock.Unlock()

	i := c.random.Intn(len(roster))
	j := c.random.Intn(len(roster) - 1)
	if j >= i {
		j++
	}
	return roster[i], roster[j]
}
