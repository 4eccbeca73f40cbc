package parser

import (
	"fmt"

	"MediaMap/internal/domain"
	"MediaMap/internal/loader"
)

// articleRecord is the on-disk shape of one annotated article.
// Numeric fields are pointers so that null and absent stay distinguishable from zero.
type articleRecord struct {
	ID              string              `json:"id" yaml:"id"`
	Source          string              `json:"source" yaml:"source"`
	Title           string              `json:"title" yaml:"title"`
	URL             string              `json:"url" yaml:"url"`
	Sentiment       map[string]*float64 `json:"sentiment" yaml:"sentiment"`
	TripleSentiment map[string]*float64 `json:"triple_sentiment" yaml:"triple_sentiment"`
	InsultRating    *float64            `json:"insult_rating" yaml:"insult_rating"`
	Entities        []string            `json:"entities" yaml:"entities"`
	Concepts        []string            `json:"concepts" yaml:"concepts"`
	Triples         [][]string          `json:"triples" yaml:"triples"`
}

// toRecord converts a decoded record. Structural problems are reported on the
// record rather than failing the whole dataset.
func (r articleRecord) toRecord(position int) domain.Record {
	article := domain.Article{
		ID:              r.ID,
		Position:        position,
		Source:          r.Source,
		Title:           r.Title,
		URL:             r.URL,
		Sentiment:       loader.Sentiment(r.Sentiment),
		TripleSentiment: loader.Sentiment(r.TripleSentiment),
		InsultRating:    r.InsultRating,
		Entities:        r.Entities,
		Concepts:        r.Concepts,
	}

	triples, err := loader.Triples(r.Triples)
	if err != nil {
		return domain.Record{Article: article, Err: err}
	}
	article.Triples = triples

	return domain.Record{Article: article}
}

func malformed(position int, err error) domain.Record {
	return domain.Record{
		Article: domain.Article{Position: position},
		Err:     fmt.Errorf("%w: decode: %v", domain.ErrMalformedArticle, err),
	}
}
