package domain

import (
	"encoding/json"
	"fmt"
)

// SentimentLabel names one bucket of a sentiment distribution.
type SentimentLabel string

const (
	VeryPositive SentimentLabel = "very_positive"
	VeryNegative SentimentLabel = "very_negative"
	Positive     SentimentLabel = "positive"
	Negative     SentimentLabel = "negative"
	Neutral      SentimentLabel = "neutral"
)

// Labels lists sentiment labels in display order.
var Labels = []SentimentLabel{VeryPositive, VeryNegative, Positive, Negative, Neutral}

// Title returns the human readable label name.
func (l SentimentLabel) Title() string {
	switch l {
	case VeryPositive:
		return "Very Positive"
	case VeryNegative:
		return "Very Negative"
	case Positive:
		return "Positive"
	case Negative:
		return "Negative"
	case Neutral:
		return "Neutral"
	default:
		return string(l)
	}
}

// Sentiment maps labels to model scores in [0,1].
type Sentiment map[SentimentLabel]float64

// Get reports the score for label and whether it was present.
func (s Sentiment) Get(label SentimentLabel) (float64, bool) {
	v, ok := s[label]
	return v, ok
}

// Triple is an extracted (subject, verb, object) relation.
type Triple struct {
	Subject string
	Verb    string
	Object  string
}

// MarshalJSON encodes the triple as a 3-element array.
func (t Triple) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]string{t.Subject, t.Verb, t.Object})
}

// UnmarshalJSON accepts exactly three strings.
func (t *Triple) UnmarshalJSON(data []byte) error {
	var parts []string
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("%w: triple: %v", ErrMalformedArticle, err)
	}
	if len(parts) != 3 {
		return fmt.Errorf("%w: triple has %d parts, want 3", ErrMalformedArticle, len(parts))
	}
	t.Subject, t.Verb, t.Object = parts[0], parts[1], parts[2]
	return nil
}

// Article is a pre-annotated news article as supplied by a dataset.
type Article struct {
	ID              string
	Position        int
	Source          string
	Title           string
	URL             string
	Sentiment       Sentiment
	TripleSentiment Sentiment
	// InsultRating is nil when the dataset did not carry it.
	InsultRating *float64
	Entities     []string
	Concepts     []string
	Triples      []Triple
}

// Record is one dataset entry as read from a source. Err is set when the
// entry could not be decoded into an Article.
type Record struct {
	Article Article
	Err     error
}

// ProcessedArticle is an Article with noise tokens removed and a score attached.
// The embedded Article carries the filtered lists; the Raw* fields keep the
// lists as they were received.
type ProcessedArticle struct {
	Article
	Score         float64
	InsultPenalty float64
	RawEntities   []string
	RawConcepts   []string
	RawTriples    []Triple
}

// DistinctConcepts returns the concepts that are not also entities.
func (p ProcessedArticle) DistinctConcepts() []string {
	entities := make(map[string]struct{}, len(p.Entities))
	for _, e := range p.Entities {
		entities[e] = struct{}{}
	}

	out := make([]string, 0, len(p.Concepts))
	for _, c := range p.Concepts {
		if _, ok := entities[c]; ok {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Rejection describes an article dropped during processing.
type Rejection struct {
	Position int
	ID       string
	Title    string
	Reason   error
}
