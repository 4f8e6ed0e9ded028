// Package library scans a Jellyfin movie library for titles that are
// already streamable on allow-listed services. It reuses the same TMDB
// watch-provider lookup the webhook decision uses, so a scan answers the
// question "which of my downloaded movies could I have declined?".
package library

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"jellygate/jellyfin"
	"jellygate/mediaid"
	"jellygate/tmdb"
)

// defaultConcurrency bounds parallel TMDB lookups during a scan
const defaultConcurrency = 10

// ProviderLookup fetches flatrate provider names for a movie
type ProviderLookup interface {
	WatchProviders(ctx context.Context, tmdbID, region string) ([]string, error)
}

// TitleLookup resolves a TMDB ID to movie details
type TitleLookup interface {
	Movie(ctx context.Context, tmdbID string) (*tmdb.Movie, error)
}

// MovieLister enumerates library items with paths
type MovieLister interface {
	Movies(ctx context.Context) ([]jellyfin.Item, error)
}

// Result describes one library item after scanning
type Result struct {
	// Name is the library item name
	Name string
	// TMDBID is the identifier extracted from the item path; empty when
	// the path carries no tag
	TMDBID string
	// Title is the TMDB movie title, when it could be resolved
	Title string
	// Providers is the allow-listed services the movie streams on
	Providers []string
	// Err records a lookup failure for this item
	Err error
}

// Streamable reports whether the item is available on at least one
// allow-listed service
func (r Result) Streamable() bool {
	return len(r.Providers) > 0
}

// Scanner walks the Jellyfin library and checks streaming availability
type Scanner struct {
	movies      MovieLister
	titles      TitleLookup
	providers   ProviderLookup
	allowed     []string
	region      string
	concurrency int
	logger      zerolog.Logger
}

// NewScanner creates a library scanner
func NewScanner(movies MovieLister, titles TitleLookup, providers ProviderLookup, allowed []string, region string, logger zerolog.Logger) (*Scanner, error) {
	if movies == nil {
		return nil, fmt.Errorf("movie lister is required")
	}
	if providers == nil {
		return nil, fmt.Errorf("provider lookup is required")
	}
	if region == "" {
		return nil, fmt.Errorf("region is required")
	}

	return &Scanner{
		movies:      movies,
		titles:      titles,
		providers:   providers,
		allowed:     allowed,
		region:      region,
		concurrency: defaultConcurrency,
		logger:      logger,
	}, nil
}

// Scan enumerates the library and looks up availability for every item
// with a TMDB tag in its path. Items without a tag are included in the
// results with an empty TMDBID so the report can call them out.
// Per-item lookup failures are recorded on the result, not fatal.
func (s *Scanner) Scan(ctx context.Context) ([]Result, error) {
	items, err := s.movies.Movies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate library: %w", err)
	}

	results := make([]Result, len(items))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	var mu sync.Mutex

	for i, item := range items {
		i := i
		result := Result{Name: item.Name}

		tmdbID, ok := mediaid.FromPath(item.Path)
		if !ok {
			s.logger.Debug().
				Str("name", item.Name).
				Str("path", item.Path).
				Msg("No TMDB tag in library path")
			results[i] = result
			continue
		}
		result.TMDBID = tmdbID

		g.Go(func() error {
			scanned := s.scanOne(ctx, result)
			mu.Lock()
			results[i] = scanned
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// scanOne resolves title and availability for a single tagged item
func (s *Scanner) scanOne(ctx context.Context, result Result) Result {
	if s.titles != nil {
		movie, err := s.titles.Movie(ctx, result.TMDBID)
		if err != nil {
			s.logger.Warn().
				Err(err).
				Str("tmdb_id", result.TMDBID).
				Str("name", result.Name).
				Msg("Failed to resolve movie title")
		} else {
			result.Title = movie.Title
		}
	}

	raw, err := s.providers.WatchProviders(ctx, result.TMDBID, s.region)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("tmdb_id", result.TMDBID).
			Str("name", result.Name).
			Msg("Provider lookup failed during scan")
		result.Err = err
		return result
	}

	for _, name := range raw {
		if slices.Contains(s.allowed, name) {
			result.Providers = append(result.Providers, name)
		}
	}

	return result
}

// Summary aggregates scan results for reporting
type Summary struct {
	Total      int
	Streamable int
	Untagged   int
	Failed     int
}

// Summarize computes aggregate counts over scan results
func Summarize(results []Result) Summary {
	var s Summary
	s.Total = len(results)
	for _, r := range results {
		switch {
		case r.Err != nil:
			s.Failed++
		case r.TMDBID == "":
			s.Untagged++
		case r.Streamable():
			s.Streamable++
		}
	}
	return s
}

// SortByName orders results alphabetically for stable report output
func SortByName(results []Result) {
	sort.Slice(results, func(i, j int) bool {
		return results[i].Name < results[j].Name
	})
}
