package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"MediaMap/internal/curation"
	"MediaMap/internal/domain"
	"MediaMap/internal/ports"
)

// PipelineDeps wires the driven adapters into the curation pipeline.
type PipelineDeps struct {
	Source          ports.ArticleSource
	Metrics         ports.PipelineMetrics
	Logger          *slog.Logger
	FailOnMalformed bool
}

// Pipeline turns a raw dataset into a filtered, scored, read-only Dataset.
type Pipeline struct {
	source          ports.ArticleSource
	metrics         ports.PipelineMetrics
	logger          *slog.Logger
	failOnMalformed bool
}

// NewPipeline constructs the curation component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		source:          deps.Source,
		metrics:         deps.Metrics,
		logger:          deps.Logger,
		failOnMalformed: deps.FailOnMalformed,
	}
}

// Load fetches every record once, filters and scores each article, and returns
// the resulting dataset. In strict mode the first malformed article aborts the
// load; otherwise it is recorded as a rejection and skipped.
func (p *Pipeline) Load(ctx context.Context) (*Dataset, error) {
	if p.source == nil {
		return nil, fmt.Errorf("article source is not configured")
	}

	records, err := p.source.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch articles: %w", err)
	}

	processed := make([]domain.ProcessedArticle, 0, len(records))
	var rejected []domain.Rejection
	ids := make(map[string]struct{}, len(records))
	explicit := explicitIDs(records)

	for _, rec := range records {
		article := rec.Article
		if article.ID == "" {
			article.ID = autoID(article.Position, explicit)
		}

		reason := rec.Err
		if reason == nil {
			if _, dup := ids[article.ID]; dup {
				reason = fmt.Errorf("%w: duplicate id %q", domain.ErrMalformedArticle, article.ID)
			}
		}

		var result domain.ProcessedArticle
		if reason == nil {
			result, reason = curation.Process(article)
		}

		if reason != nil {
			if p.failOnMalformed {
				return nil, fmt.Errorf("article %d (%q): %w", article.Position, article.Title, reason)
			}
			p.warn("article rejected", "position", article.Position, "id", article.ID, "title", article.Title, "reason", reason)
			rejected = append(rejected, domain.Rejection{
				Position: article.Position,
				ID:       article.ID,
				Title:    article.Title,
				Reason:   reason,
			})
			if p.metrics != nil {
				p.metrics.ArticleRejected()
			}
			continue
		}

		ids[article.ID] = struct{}{}
		processed = append(processed, result)
		p.observe(result)
	}

	p.info("dataset loaded", "articles", len(processed), "rejected", len(rejected))
	return NewDataset(processed, rejected), nil
}

func explicitIDs(records []domain.Record) map[string]struct{} {
	out := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if rec.Article.ID != "" {
			out[rec.Article.ID] = struct{}{}
		}
	}
	return out
}

// autoID names an article without a dataset id after its position. Positions
// that clash with an explicit id get a "#" prefix until they are unique.
func autoID(position int, explicit map[string]struct{}) string {
	id := strconv.Itoa(position)
	for {
		if _, taken := explicit[id]; !taken {
			return id
		}
		id = "#" + id
	}
}

func (p *Pipeline) observe(a domain.ProcessedArticle) {
	if p.metrics == nil {
		return
	}
	p.metrics.ArticleProcessed()
	p.metrics.TokensDropped("entities", len(a.RawEntities)-len(a.Entities))
	p.metrics.TokensDropped("concepts", len(a.RawConcepts)-len(a.Concepts))
	p.metrics.TokensDropped("triples", len(a.RawTriples)-len(a.Triples))
}

func (p *Pipeline) info(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Pipeline) warn(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}
