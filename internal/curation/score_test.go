package curation

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"MediaMap/internal/domain"
)

const epsilon = 1e-9

func ptr(v float64) *float64 { return &v }

func zeroSentiment() domain.Sentiment {
	return domain.Sentiment{
		domain.VeryPositive: 0,
		domain.VeryNegative: 0,
		domain.Positive:     0,
		domain.Negative:     0,
		domain.Neutral:      0,
	}
}

func newArticle() domain.Article {
	return domain.Article{
		Title:           "sample",
		Sentiment:       zeroSentiment(),
		TripleSentiment: zeroSentiment(),
		InsultRating:    ptr(0),
	}
}

func TestScorePositiveArticle(t *testing.T) {
	t.Parallel()

	a := newArticle()
	a.Sentiment[domain.VeryPositive] = 0.8
	a.Sentiment[domain.Neutral] = 0.2

	got, err := Score(a)
	if err != nil {
		t.Fatalf("Score error: %v", err)
	}
	if math.Abs(got-0.712) > epsilon {
		t.Fatalf("Score = %f, want 0.712", got)
	}
}

func TestScoreInsultDominates(t *testing.T) {
	t.Parallel()

	a := newArticle()
	a.InsultRating = ptr(0.5)

	got, err := Score(a)
	if err != nil {
		t.Fatalf("Score error: %v", err)
	}
	if math.Abs(got-(-25)) > epsilon {
		t.Fatalf("Score = %f, want -25", got)
	}
}

func TestScoreAllTerms(t *testing.T) {
	t.Parallel()

	a := newArticle()
	a.Sentiment = domain.Sentiment{
		domain.VeryPositive: 0.5,
		domain.VeryNegative: 0.1,
		domain.Positive:     0.9,
		domain.Negative:     0.2,
		domain.Neutral:      0.3,
	}
	a.TripleSentiment = domain.Sentiment{
		domain.VeryPositive: 0.4,
		domain.VeryNegative: 0.3,
		domain.Negative:     0.1,
		domain.Neutral:      0.6,
	}
	a.InsultRating = ptr(0.1)

	want := 0.125 + 0.16 - 0.01 - 0.09 - 0.04 - 0.01 + 0.3 + 0.6 - 1
	got, err := Score(a)
	if err != nil {
		t.Fatalf("Score error: %v", err)
	}
	if math.Abs(got-want) > epsilon {
		t.Fatalf("Score = %f, want %f", got, want)
	}
}

func TestScoreIgnoresPositiveLabel(t *testing.T) {
	t.Parallel()

	a := newArticle()
	delete(a.Sentiment, domain.Positive)
	delete(a.TripleSentiment, domain.Positive)

	if _, err := Score(a); err != nil {
		t.Fatalf("positive label must be optional: %v", err)
	}
}

func TestScoreRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	cases := map[string]func(a *domain.Article){
		"missing insult": func(a *domain.Article) { a.InsultRating = nil },
		"nan insult":     func(a *domain.Article) { a.InsultRating = ptr(math.NaN()) },
		"missing very_negative": func(a *domain.Article) {
			delete(a.Sentiment, domain.VeryNegative)
		},
		"missing triple neutral": func(a *domain.Article) {
			delete(a.TripleSentiment, domain.Neutral)
		},
		"infinite negative": func(a *domain.Article) {
			a.Sentiment[domain.Negative] = math.Inf(1)
		},
		"nil sentiment": func(a *domain.Article) { a.Sentiment = nil },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			a := newArticle()
			mutate(&a)
			if _, err := Score(a); !errors.Is(err, domain.ErrMalformedArticle) {
				t.Fatalf("expected ErrMalformedArticle, got %v", err)
			}
		})
	}
}

func TestScoreRejectsOverflowingResult(t *testing.T) {
	t.Parallel()

	cases := map[string]func(a *domain.Article){
		"huge insult": func(a *domain.Article) { a.InsultRating = ptr(1e200) },
		"huge very_positive": func(a *domain.Article) {
			a.Sentiment[domain.VeryPositive] = 1e200
		},
		"opposite overflows": func(a *domain.Article) {
			a.Sentiment[domain.VeryPositive] = 1e200
			a.Sentiment[domain.VeryNegative] = 1e200
		},
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			a := newArticle()
			mutate(&a)
			score, err := Score(a)
			if !errors.Is(err, domain.ErrMalformedArticle) {
				t.Fatalf("expected ErrMalformedArticle, got score=%v err=%v", score, err)
			}
			if _, err := Process(a); !errors.Is(err, domain.ErrMalformedArticle) {
				t.Fatalf("Process must reject the article too, got %v", err)
			}
		})
	}

	if _, err := InsultPenalty(domain.Article{InsultRating: ptr(1e200)}); !errors.Is(err, domain.ErrMalformedArticle) {
		t.Fatalf("expected overflowing penalty to be rejected, got %v", err)
	}
}

func TestProcessKeepsRawListsAndIsIdempotent(t *testing.T) {
	t.Parallel()

	a := newArticle()
	a.Sentiment[domain.Neutral] = 1
	a.Entities = []string{"Italy", "#tag", "42"}
	a.Concepts = []string{"health", "$USD"}
	a.Triples = []domain.Triple{
		{Subject: "Italy", Verb: "closes", Object: "schools"},
		{Subject: "@user", Verb: "says", Object: "hi"},
	}

	first, err := Process(a)
	if err != nil {
		t.Fatalf("Process error: %v", err)
	}
	if !reflect.DeepEqual(first.Entities, []string{"Italy"}) {
		t.Fatalf("unexpected entities: %v", first.Entities)
	}
	if !reflect.DeepEqual(first.RawEntities, a.Entities) {
		t.Fatalf("raw entities not preserved: %v", first.RawEntities)
	}
	if len(first.Triples) != 1 || len(first.RawTriples) != 2 {
		t.Fatalf("unexpected triples: filtered=%v raw=%v", first.Triples, first.RawTriples)
	}
	if len(a.Entities) != 3 {
		t.Fatalf("input article was mutated: %v", a.Entities)
	}

	second, err := Process(first.Article)
	if err != nil {
		t.Fatalf("second Process error: %v", err)
	}
	if second.Score != first.Score ||
		!reflect.DeepEqual(second.Entities, first.Entities) ||
		!reflect.DeepEqual(second.Concepts, first.Concepts) ||
		!reflect.DeepEqual(second.Triples, first.Triples) {
		t.Fatalf("processing is not idempotent: %+v vs %+v", first, second)
	}
}

func TestOrderByScoreIsStable(t *testing.T) {
	t.Parallel()

	scores := []float64{5, -3, 5, 0}
	articles := make([]domain.ProcessedArticle, len(scores))
	for i, s := range scores {
		articles[i] = domain.ProcessedArticle{Article: domain.Article{Position: i}, Score: s}
	}

	ordered := Order(articles, domain.SortByScore)
	got := make([]int, len(ordered))
	for i, a := range ordered {
		got[i] = a.Position
	}
	if !reflect.DeepEqual(got, []int{0, 2, 3, 1}) {
		t.Fatalf("order = %v, want [0 2 3 1]", got)
	}

	recent := Order(articles, domain.SortByRecent)
	for i, a := range recent {
		if a.Position != i {
			t.Fatalf("recent order changed positions: %v", recent)
		}
	}

	for i, a := range articles {
		if a.Position != i || a.Score != scores[i] {
			t.Fatalf("Order mutated its input")
		}
	}
}

func TestRound(t *testing.T) {
	t.Parallel()

	if got := Round(0.71249, 3); got != 0.712 {
		t.Fatalf("Round = %v", got)
	}
	if got := Round(-24.99951, 3); got != -25 {
		t.Fatalf("Round = %v", got)
	}
}
