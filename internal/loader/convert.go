package loader

import (
	"fmt"

	"MediaMap/internal/domain"
)

// Sentiment converts a decoded label map. Null values are dropped so that a
// missing label never reads as zero.
func Sentiment(raw map[string]*float64) domain.Sentiment {
	if raw == nil {
		return nil
	}
	s := make(domain.Sentiment, len(raw))
	for label, v := range raw {
		if v == nil {
			continue
		}
		s[domain.SentimentLabel(label)] = *v
	}
	return s
}

// Triples converts decoded [subject, verb, object] lists.
func Triples(raw [][]string) ([]domain.Triple, error) {
	triples := make([]domain.Triple, 0, len(raw))
	for i, t := range raw {
		if len(t) != 3 {
			return nil, fmt.Errorf("%w: triple %d has %d parts, want 3", domain.ErrMalformedArticle, i, len(t))
		}
		triples = append(triples, domain.Triple{Subject: t[0], Verb: t[1], Object: t[2]})
	}
	return triples, nil
}
