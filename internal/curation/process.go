package curation

import (
	"sort"

	"MediaMap/internal/domain"
)

// Process filters the token lists of an article and attaches its score.
// The input is left untouched; the original lists are kept on the result.
func Process(a domain.Article) (domain.ProcessedArticle, error) {
	score, err := Score(a)
	if err != nil {
		return domain.ProcessedArticle{}, err
	}
	penalty, err := InsultPenalty(a)
	if err != nil {
		return domain.ProcessedArticle{}, err
	}

	filtered := a
	filtered.Entities = FilterTokens(a.Entities)
	filtered.Concepts = FilterTokens(a.Concepts)
	filtered.Triples = FilterTriples(a.Triples)

	return domain.ProcessedArticle{
		Article:       filtered,
		Score:         score,
		InsultPenalty: penalty,
		RawEntities:   a.Entities,
		RawConcepts:   a.Concepts,
		RawTriples:    a.Triples,
	}, nil
}

// Order returns a new slice with the articles arranged for the given mode.
// SortByScore is a stable descending sort; any other mode keeps input order.
func Order(articles []domain.ProcessedArticle, mode domain.SortMode) []domain.ProcessedArticle {
	out := make([]domain.ProcessedArticle, len(articles))
	copy(out, articles)

	if mode != domain.SortByScore {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}
