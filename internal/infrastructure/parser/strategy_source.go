package parser

import (
	"context"
	"fmt"
	"log/slog"

	"MediaMap/internal/config"
	"MediaMap/internal/domain"
	"MediaMap/internal/loader"
	"MediaMap/internal/ports"
)

// StrategySource implements ArticleSource via registered dataset loaders.
type StrategySource struct {
	registry *loader.Registry
	datasets []config.DatasetConfig
	logger   *slog.Logger
}

var _ ports.ArticleSource = (*StrategySource)(nil)

// NewStrategySource wires the loader registry with config-defined datasets.
func NewStrategySource(reg *loader.Registry, datasets []config.DatasetConfig, log *slog.Logger) *StrategySource {
	return &StrategySource{
		registry: reg,
		datasets: datasets,
		logger:   log,
	}
}

// FetchAll loads every configured dataset in order and concatenates the records.
// Positions are renumbered so they index the combined sequence.
func (s *StrategySource) FetchAll(ctx context.Context) ([]domain.Record, error) {
	if s.registry == nil {
		return nil, fmt.Errorf("loader registry is not configured")
	}

	s.debug("fetch all", "datasets", len(s.datasets))

	var aggregated []domain.Record
	for _, ds := range s.datasets {
		s.debug("process dataset", "dataset", ds.Name, "format", ds.Format, "path", ds.Path)
		strategy, err := s.registry.Resolve(ds.Format)
		if err != nil {
			return nil, fmt.Errorf("dataset %s: %w", ds.Name, err)
		}

		req := loader.Request{
			Name:    ds.Name,
			Path:    ds.Path,
			Options: ds.Options,
		}

		results, err := strategy.Load(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("load dataset %s: %w", ds.Name, err)
		}

		offset := len(aggregated)
		for i := range results {
			results[i].Article.Position = offset + i
			if results[i].Article.Source == "" {
				results[i].Article.Source = ds.Name
			}
		}
		s.debug("dataset produced records", "dataset", ds.Name, "count", len(results))
		aggregated = append(aggregated, results...)
	}

	s.debug("strategy source done", "total_records", len(aggregated))
	return aggregated, nil
}

func (s *StrategySource) debug(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
