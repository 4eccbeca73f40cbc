package usecase

import (
	"fmt"

	"MediaMap/internal/curation"
	"MediaMap/internal/domain"
	"MediaMap/internal/graph"
	"MediaMap/internal/ports"
)

// Dataset is the curated article collection. It is never modified after
// NewDataset returns, so any number of readers may share it.
type Dataset struct {
	articles []domain.ProcessedArticle
	byID     map[string]int
	rejected []domain.Rejection
}

var _ ports.DatasetReader = (*Dataset)(nil)

// NewDataset copies the given articles, in dataset order, into a read-only collection.
func NewDataset(articles []domain.ProcessedArticle, rejected []domain.Rejection) *Dataset {
	d := &Dataset{
		articles: make([]domain.ProcessedArticle, len(articles)),
		byID:     make(map[string]int, len(articles)),
		rejected: make([]domain.Rejection, len(rejected)),
	}
	copy(d.articles, articles)
	copy(d.rejected, rejected)
	for i, a := range d.articles {
		d.byID[a.ID] = i
	}
	return d
}

// Len returns the number of accepted articles.
func (d *Dataset) Len() int {
	return len(d.articles)
}

// Ordered returns the articles arranged for mode in a fresh slice.
func (d *Dataset) Ordered(mode domain.SortMode) []domain.ProcessedArticle {
	return curation.Order(d.articles, mode)
}

// Get looks an article up by id.
func (d *Dataset) Get(id string) (domain.ProcessedArticle, error) {
	i, ok := d.byID[id]
	if !ok {
		return domain.ProcessedArticle{}, fmt.Errorf("%w: %s", domain.ErrArticleNotFound, id)
	}
	return d.articles[i], nil
}

// Graph projects the filtered triples of one article.
func (d *Dataset) Graph(id string) (graph.Graph, error) {
	a, err := d.Get(id)
	if err != nil {
		return graph.Graph{}, err
	}
	return graph.Project(a.Triples), nil
}

// Rejected lists the articles dropped as malformed.
func (d *Dataset) Rejected() []domain.Rejection {
	out := make([]domain.Rejection, len(d.rejected))
	copy(out, d.rejected)
	return out
}
