package curation

import (
	"errors"
	"strconv"
	"strings"

	"MediaMap/internal/domain"
)

// noisePrefixes mark markup artifacts leaking out of entity extraction.
var noisePrefixes = []string{"//", "#", "$", "@"}

// IsSignalToken reports whether a token carries information worth keeping.
// Tokens starting with a noise prefix or consisting of a bare number are noise.
// The check is purely syntactic on the raw text.
func IsSignalToken(token string) bool {
	for _, prefix := range noisePrefixes {
		if strings.HasPrefix(token, prefix) {
			return false
		}
	}
	return !isNumeric(token)
}

func isNumeric(token string) bool {
	_, err := strconv.ParseFloat(token, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return false
	}

	// ParseFloat accepts any casing of inf, infinity and nan. Only the
	// literal "Infinity" (optionally signed) counts as a number.
	word := strings.TrimLeft(token, "+-")
	switch strings.ToLower(word) {
	case "inf", "infinity", "nan":
		return word == "Infinity"
	}
	return true
}

// FilterTokens returns the signal tokens of in, preserving order.
func FilterTokens(in []string) []string {
	out := make([]string, 0, len(in))
	for _, token := range in {
		if IsSignalToken(token) {
			out = append(out, token)
		}
	}
	return out
}

// FilterTriples keeps triples whose subject, verb and object are all signal tokens.
func FilterTriples(in []domain.Triple) []domain.Triple {
	out := make([]domain.Triple, 0, len(in))
	for _, t := range in {
		if IsSignalToken(t.Subject) && IsSignalToken(t.Verb) && IsSignalToken(t.Object) {
			out = append(out, t)
		}
	}
	return out
}
