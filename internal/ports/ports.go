package ports

import (
	"context"

	"MediaMap/internal/domain"
	"MediaMap/internal/graph"
)

// ArticleSource supplies the whole pre-annotated dataset in one pass.
type ArticleSource interface {
	FetchAll(ctx context.Context) ([]domain.Record, error)
}

// PipelineMetrics observes the curation pass.
type PipelineMetrics interface {
	ArticleProcessed()
	ArticleRejected()
	TokensDropped(kind string, n int)
}

// DatasetReader exposes a curated dataset to presentation adapters.
type DatasetReader interface {
	Ordered(mode domain.SortMode) []domain.ProcessedArticle
	Get(id string) (domain.ProcessedArticle, error)
	Graph(id string) (graph.Graph, error)
	Rejected() []domain.Rejection
	Len() int
}
