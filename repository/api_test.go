// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package repository_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/pokedex/cache"
	"github.com/bitmark-inc/pokedex/fault"
	"github.com/bitmark-inc/pokedex/fixtures"
	"github.com/bitmark-inc/pokedex/model"
	"github.com/bitmark-inc/pokedex/pokeapi"
	"github.com/bitmark-inc/pokedex/repository"
)

type memoryRequester struct {
	sync.Mutex
	bodies    map[string][]byte
	requested []string
}

func (m *memoryRequester) Request(ctx context.Context, url string) ([]byte, error) {
	m.Lock()
	defer m.Unlock()
	m.requested = append(m.requested, url)
	body, ok := m.bodies[url]
	if !ok {
		return nil, fault.NotFound
	}
	return body, nil
}

func (m *memoryRequester) put(t *testing.T, url string, v interface{}) {
	body, err := json.Marshal(v)
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}
	m.bodies[url] = body
}

type staticLister struct {
	page *model.ListPage
	err  error
}

func (l *staticLister) List(ctx context.Context, limit int, offset int) (*model.ListPage, error) {
	return l.page, l.err
}

func newAPI(t *testing.T, names ...string) (repository.Repository, *memoryRequester) {
	e := pokeapi.NewEndpoints("")
	requester := &memoryRequester{bodies: make(map[string][]byte)}
	for _, p := range fixtures.Pokemon() {
		requester.put(t, e.PokemonByName(p.Name), p)
		requester.put(t, e.PokemonByID(p.ID), p)
	}
	for _, s := range fixtures.Species() {
		requester.put(t, e.Species(s.ID), s)
	}
	for _, c := range fixtures.EvolutionChains() {
		requester.put(t, fixtures.ChainURL(c.ID), c)
	}
	for _, ty := range fixtures.Types() {
		requester.put(t, e.Type(ty.Name), ty)
	}
	for _, a := range fixtures.Abilities() {
		requester.put(t, e.Ability(a.Name), a)
	}

	page := &model.ListPage{Count: len(names)}
	for _, name := range names {
		page.Results = append(page.Results, model.NamedResource{Name: name, URL: e.PokemonByName(name)})
	}

	r := repository.NewAPI(requester, &staticLister{page: page}, e, logger.New("testing"))
	return r, requester
}

func TestAPIGetAllPokemonKeepsOrderAndDropsFailures(t *testing.T) {
	r, _ := newAPI(t, "charizard", "missingno", "bulbasaur", "eevee")

	all := r.GetAllPokemon(context.Background(), 4, 0)

	names := make([]string, len(all))
	for i, p := range all {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"charizard", "bulbasaur", "eevee"}, names, "wrong roster")
}

func TestAPIGetAllPokemonListingFailure(t *testing.T) {
	e := pokeapi.NewEndpoints("")
	requester := &memoryRequester{bodies: make(map[string][]byte)}
	lister := &staticLister{err: errors.New("offline")}
	r := repository.NewAPI(requester, lister, e, logger.New("testing"))

	all := r.GetAllPokemon(context.Background(), 151, 0)
	assert.NotNil(t, all, "nil roster")
	assert.Equal(t, 0, len(all), "roster not empty")

	names := r.ListPokemonNames(context.Background(), 100, 0)
	assert.NotNil(t, names, "nil names")
	assert.Equal(t, 0, len(names), "names not empty")
}

func TestAPISingleLookups(t *testing.T) {
	r, requester := newAPI(t, "bulbasaur")
	ctx := context.Background()

	p := r.GetPokemonByName(ctx, "  BULBASAUR ")
	assert.NotNil(t, p, "name lookup failed")
	assert.Equal(t, 1, p.ID, "wrong id")
	assert.Equal(t, "https://pokeapi.co/api/v2/pokemon/bulbasaur", requester.requested[0], "name not lower cased")

	p = r.GetPokemonByID(ctx, 6)
	assert.Equal(t, "charizard", p.Name, "wrong creature")

	assert.Nil(t, r.GetPokemonByID(ctx, 0), "invalid id resolved")
	assert.Nil(t, r.GetPokemonByID(ctx, 9999), "unknown id resolved")
	assert.Nil(t, r.GetPokemonByName(ctx, ""), "blank name resolved")

	s := r.GetPokemonSpecies(ctx, 4)
	assert.Equal(t, fixtures.ChainURL(2), s.EvolutionChain.URL, "wrong species")

	chain := r.GetEvolutionChain(ctx, s.EvolutionChain.URL)
	assert.Equal(t, "charmander", chain.Chain.Species.Name, "wrong chain root")
	assert.Nil(t, r.GetEvolutionChain(ctx, fixtures.ChainURL(3)), "absent chain resolved")

	ty := r.GetType(ctx, "Fire")
	assert.Equal(t, "fire", ty.Name, "wrong type")

	a := r.GetAbility(ctx, "blaze")
	assert.Equal(t, 66, a.ID, "wrong ability")
	assert.Nil(t, r.GetAbility(ctx, "levitate"), "unknown ability resolved")

	names := r.ListPokemonNames(ctx, 1, 0)
	assert.Equal(t, "bulbasaur", names[0].Name, "wrong listed name")
}

func TestAPIDecodeFailure(t *testing.T) {
	r, requester := newAPI(t)
	requester.bodies["https://pokeapi.co/api/v2/pokemon/glitch"] = []byte("<html>")

	assert.Nil(t, r.GetPokemonByName(context.Background(), "glitch"), "bad body decoded")
}

// the complete live stack against a local server
func TestAPIThroughBatchingCache(t *testing.T) {
	var lock sync.Mutex
	hits := make(map[string]int)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/pokemon", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"count":2,"next":null,"previous":null,"results":[{"name":"pikachu","url":""},{"name":"eevee","url":""}]}`))
	})
	mux.HandleFunc("/api/v2/pokemon/", func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/api/v2/pokemon/")
		lock.Lock()
		hits[name]++
		lock.Unlock()

		p := fixtures.PokemonNamed(name)
		if nil == p {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(p)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	log := logger.New("testing")
	e := pokeapi.NewEndpoints(server.URL + "/api/v2")
	f := pokeapi.NewFetcher(pokeapi.Configuration{}, log)
	c := cache.New(f, cache.Options{BatchDelay: 100 * time.Millisecond}, log)
	defer c.Dispose()

	r := repository.NewAPI(c, pokeapi.NewLister(e, f, log), e, log)

	var wg sync.WaitGroup
	found := make([]*model.Pokemon, 4)
	for i := range found {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			found[i] = r.GetPokemonByName(context.Background(), "pikachu")
		}(i)
	}
	wg.Wait()

	for i, p := range found {
		assert.Equal(t, 25, p.ID, "%d: wrong creature", i)
	}

	all := r.GetAllPokemon(context.Background(), 2, 0)
	assert.Equal(t, 2, len(all), "wrong roster size")
	assert.Equal(t, "pikachu", all[0].Name, "wrong order")
	assert.Equal(t, "eevee", all[1].Name, "wrong order")

	assert.Nil(t, r.GetPokemonByName(context.Background(), "missingno"), "missing record resolved")

	lock.Lock()
	defer lock.Unlock()
	assert.Equal(t, 1, hits["pikachu"], "pikachu fetched more than once")
	assert.Equal(t, 1, hits["eevee"], "eevee fetched more than once")
}
