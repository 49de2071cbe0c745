// Package catalog retrieves movie and TV data from the upstream catalog API
// and guarantees a renderable result even when the API is unreachable, the
// credential is missing, or the credential has been rejected.
package catalog

import (
	"log"
	"strings"
	"sync/atomic"

	"showdb/internal/types"
)

// Gateway wraps the API client with the fallback policy. Availability state is
// per-instance: once the upstream rejects the credential with a 401, the
// gateway stops calling the network for the rest of its lifetime and serves
// fixtures instead. The flip is one-way; independent gateways (one per test,
// for example) do not affect each other.
type Gateway struct {
	client   *Client
	fixtures Fixtures
	disabled atomic.Bool
}

func NewGateway(client *Client, fixtures Fixtures) *Gateway {
	return &Gateway{
		client:   client,
		fixtures: fixtures,
	}
}

// Disabled reports whether live calls have been switched off.
func (g *Gateway) Disabled() bool {
	return g.disabled.Load()
}

// live reports whether the next operation should attempt the network.
func (g *Gateway) live() bool {
	return g.client != nil && g.client.HasCredentials() && !g.disabled.Load()
}

// observe classifies a failed call. A 401 permanently disables live calls;
// anything else only falls back for this call.
func (g *Gateway) observe(op string, err error) {
	if IsAuthDenied(err) {
		g.disabled.Store(true)
		log.Printf("catalog: %s returned 401, disabling live API calls: %v", op, err)
		return
	}
	log.Printf("catalog: %s failed, using fallback data: %v", op, err)
}

// Trending returns this week's trending titles for the given kind, or the
// fixture list when the API is unusable or returns nothing.
func (g *Gateway) Trending(kind types.MediaType) []types.Title {
	fallback := g.fixtures.ForKind(kind)
	if !g.live() {
		return fallback
	}

	results, err := g.client.Trending(kind)
	if err != nil {
		g.observe("trending", err)
		return fallback
	}
	if len(results) == 0 {
		return fallback
	}
	return g.fillPosters(results)
}

// Popular returns a page of popular titles, with the same fallback behavior
// as Trending.
func (g *Gateway) Popular(kind types.MediaType, page int) []types.Title {
	fallback := g.fixtures.ForKind(kind)
	if !g.live() {
		return fallback
	}

	results, err := g.client.Popular(kind, page)
	if err != nil {
		g.observe("popular", err)
		return fallback
	}
	if len(results) == 0 {
		return fallback
	}
	return g.fillPosters(results)
}

// Search performs a combined movie and series search. Without network access
// it filters the fixture union by case-insensitive substring match on the
// display name; an empty live result falls back to the same local filter.
func (g *Gateway) Search(query string) []types.Title {
	if !g.live() {
		return g.localSearch(query)
	}

	results, err := g.client.SearchMulti(query)
	if err != nil {
		g.observe("search", err)
		return g.localSearch(query)
	}
	if len(results) == 0 {
		return g.localSearch(query)
	}
	return g.fillPosters(results)
}

// Details returns full details for one title, falling back to the fixture
// entry for that id. Returns nil when the title is unknown on both paths.
func (g *Gateway) Details(kind types.MediaType, id int) *types.Details {
	if !g.live() {
		return g.fixtureDetails(kind, id)
	}

	if kind == types.MediaMovie {
		movie, err := g.client.MovieDetails(id)
		if err != nil {
			g.observe("details", err)
			return g.fixtureDetails(kind, id)
		}
		return &types.Details{MediaType: kind, Movie: movie}
	}

	series, err := g.client.SeriesDetails(id)
	if err != nil {
		g.observe("details", err)
		return g.fixtureDetails(kind, id)
	}
	return &types.Details{MediaType: kind, Series: series}
}

// Similar returns titles similar to the given one. There is no local fallback
// for this operation; any unusable path yields an empty list.
func (g *Gateway) Similar(kind types.MediaType, id int) []types.Title {
	if !g.live() {
		return []types.Title{}
	}

	results, err := g.client.Similar(kind, id)
	if err != nil {
		g.observe("similar", err)
		return []types.Title{}
	}
	return results
}

// fillPosters substitutes fixture poster art for remote items that share an id
// with a fixture but carry no poster of their own. Everything else passes
// through unchanged.
func (g *Gateway) fillPosters(results []types.Title) []types.Title {
	merged := make([]types.Title, len(results))
	for i, item := range results {
		if item.PosterPath == "" {
			if fixture := g.fixtures.Find(item.MediaType, item.ID); fixture != nil {
				item.PosterPath = fixture.PosterPath
			}
		}
		merged[i] = item
	}
	return merged
}

func (g *Gateway) localSearch(query string) []types.Title {
	q := strings.ToLower(query)
	matches := []types.Title{}
	for _, t := range g.fixtures.Union() {
		if strings.Contains(strings.ToLower(t.Name), q) {
			matches = append(matches, t)
		}
	}
	return matches
}

func (g *Gateway) fixtureDetails(kind types.MediaType, id int) *types.Details {
	fixture := g.fixtures.Find(kind, id)
	if fixture == nil {
		return nil
	}
	if kind == types.MediaMovie {
		return &types.Details{MediaType: kind, Movie: &types.MovieDetails{Title: *fixture}}
	}
	return &types.Details{MediaType: kind, Series: &types.SeriesDetails{Title: *fixture}}
}
