// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/republication-tracker/pkg/types"
)

// BatchOptions controls ScoreAll.
type BatchOptions struct {
	// Workers bounds concurrent scoring calls. Zero or less means one.
	Workers int

	// RankBase is the rank of the first candidate; later candidates get
	// consecutive ranks in input order.
	RankBase int
}

// BatchOptionsFromConfig derives batch options from the scoring config.
func BatchOptionsFromConfig(cfg types.ScoringConfig) BatchOptions {
	return BatchOptions{Workers: cfg.Workers, RankBase: cfg.RankBase}
}

// ScoreAll scores every candidate of one provider result list against
// query. Candidates are ranked by their position in the list and scored
// concurrently; records come back in input order. The first failure cancels
// the remaining work and no records are returned.
func ScoreAll(ctx context.Context, query types.QueryArticle, candidates []types.CandidateArticle, clf Classifier, opts BatchOptions) ([]Record, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	records := make([]Record, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, c := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rank := opts.RankBase + i
			r, err := Score(query, c, clf, rank)
			if err != nil {
				return fmt.Errorf("candidate %d (rank %d): %w", i, rank, err)
			}
			records[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}
