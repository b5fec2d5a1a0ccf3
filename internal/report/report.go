// Package report produces the ranked best/recommended-for-N-players
// report by walking listing pages and querying per-game statistics.
package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/micadam/bgg"
)

// PageFetcher retrieves one page of the ranked game listing.
type PageFetcher interface {
	FetchRankedPage(ctx context.Context, page int) ([]bgg.RankedGame, error)
}

// StatsFetcher retrieves player-count statistics for one game.
type StatsFetcher interface {
	FetchPlayerCountStats(ctx context.Context, id string) (*bgg.PlayerCountStats, error)
}

// URLBuilder derives the display URL for a game id.
type URLBuilder interface {
	GameURL(id string) string
}

// Source is the full client surface the pipeline consumes. *bgg.Client
// satisfies it; tests substitute fakes.
type Source interface {
	PageFetcher
	StatsFetcher
	URLBuilder
}

// Row is one matching game in the report.
type Row struct {
	Rating bgg.Classification // Best or Recommended, never Unrated
	Game   bgg.RankedGame
	Weight float64
	URL    string
}

// Pipeline walks listing pages in order and emits one Row per game
// rated best or recommended for the target player count.
type Pipeline struct {
	source Source
	logger *slog.Logger
}

// New creates a report pipeline.
func New(source Source, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		source: source,
		logger: logger,
	}
}

// Run fetches pages 1..pages, fetches statistics for every listed game
// in rank order, and calls emit for each game suited to the target
// player count. Rows come out in page-then-rank order, one pass, as
// soon as each is known. The first error stops the run.
func (p *Pipeline) Run(ctx context.Context, players, pages int, emit func(Row) error) error {
	for page := 1; page <= pages; page++ {
		p.logger.Debug("fetching listing page", "page", page)

		games, err := p.source.FetchRankedPage(ctx, page)
		if err != nil {
			return fmt.Errorf("fetch listing page %d: %w", page, err)
		}

		for _, game := range games {
			p.logger.Debug("fetching game stats", "id", game.ID, "name", game.Name)

			stats, err := p.source.FetchPlayerCountStats(ctx, game.ID)
			if err != nil {
				return fmt.Errorf("fetch stats for game %s: %w", game.ID, err)
			}

			rating, ok := rate(stats, players)
			if !ok {
				continue
			}

			row := Row{
				Rating: rating,
				Game:   game,
				Weight: stats.Weight,
				URL:    p.source.GameURL(game.ID),
			}
			if err := emit(row); err != nil {
				return err
			}
		}
	}
	return nil
}

// rate checks the target count against the best set first, then the
// recommended set. No membership means no row.
func rate(stats *bgg.PlayerCountStats, players int) (bgg.Classification, bool) {
	switch {
	case stats.Best.Contains(players):
		return bgg.Best, true
	case stats.Recommended.Contains(players):
		return bgg.Recommended, true
	default:
		return bgg.Unrated, false
	}
}
