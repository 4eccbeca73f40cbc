package curation

import (
	"fmt"
	"math"

	"MediaMap/internal/domain"
)

// insultWeight scales the squared insult rating so it dominates every sentiment term.
const insultWeight = 100

// Score computes the relevance score of an article:
//
//	vp^3 + tvp^2 - vn^2 - tvn^2 - n^2 - tn^2 + neu + tneu - insult^2*100
//
// where the t-prefixed terms come from the triple sentiment. Missing or
// non-finite inputs, and inputs large enough to overflow the result, yield
// ErrMalformedArticle instead of a default.
func Score(a domain.Article) (float64, error) {
	doc, err := readSentiment("sentiment", a.Sentiment)
	if err != nil {
		return 0, err
	}
	triple, err := readSentiment("triple_sentiment", a.TripleSentiment)
	if err != nil {
		return 0, err
	}
	penalty, err := InsultPenalty(a)
	if err != nil {
		return 0, err
	}

	score := math.Pow(doc.veryPositive, 3) + math.Pow(triple.veryPositive, 2) -
		math.Pow(doc.veryNegative, 2) - math.Pow(triple.veryNegative, 2) -
		math.Pow(doc.negative, 2) - math.Pow(triple.negative, 2) +
		doc.neutral + triple.neutral -
		penalty
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0, fmt.Errorf("%w: score is not finite", domain.ErrMalformedArticle)
	}

	return score, nil
}

// InsultPenalty returns insult_rating^2 * 100, the amount subtracted from the score.
func InsultPenalty(a domain.Article) (float64, error) {
	if a.InsultRating == nil {
		return 0, fmt.Errorf("%w: insult_rating is missing", domain.ErrMalformedArticle)
	}
	rating := *a.InsultRating
	if math.IsNaN(rating) || math.IsInf(rating, 0) {
		return 0, fmt.Errorf("%w: insult_rating is not finite", domain.ErrMalformedArticle)
	}
	penalty := rating * rating * insultWeight
	if math.IsInf(penalty, 0) {
		return 0, fmt.Errorf("%w: insult penalty overflows", domain.ErrMalformedArticle)
	}
	return penalty, nil
}

type sentimentTerms struct {
	veryPositive float64
	veryNegative float64
	negative     float64
	neutral      float64
}

func readSentiment(field string, s domain.Sentiment) (sentimentTerms, error) {
	var terms sentimentTerms
	targets := []struct {
		label domain.SentimentLabel
		dst   *float64
	}{
		{domain.VeryPositive, &terms.veryPositive},
		{domain.VeryNegative, &terms.veryNegative},
		{domain.Negative, &terms.negative},
		{domain.Neutral, &terms.neutral},
	}

	for _, target := range targets {
		v, ok := s.Get(target.label)
		if !ok {
			return sentimentTerms{}, fmt.Errorf("%w: %s.%s is missing", domain.ErrMalformedArticle, field, target.label)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return sentimentTerms{}, fmt.Errorf("%w: %s.%s is not finite", domain.ErrMalformedArticle, field, target.label)
		}
		*target.dst = v
	}
	return terms, nil
}

// Round rounds v to the given number of decimal digits for display.
func Round(v float64, digits int) float64 {
	exp := math.Pow(10, float64(digits))
	return math.Round(v*exp) / exp
}
