package utils

import (
	"regexp"
	"strings"
)

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	dashRegex       = regexp.MustCompile(`[-–—]`)
	punctRegex      = regexp.MustCompile(`[.,;:]`)
	dayMarkerRegex  = regexp.MustCompile(`(?i)day \d+:\s*`)
)

// NormalizeItineraryText canonicalizes itinerary text for comparison only.
// The raw text stays the stored key; the normalized form is never persisted.
func NormalizeItineraryText(text string) string {
	normalized := strings.ToLower(text)
	normalized = whitespaceRegex.ReplaceAllString(normalized, " ")
	normalized = dashRegex.ReplaceAllString(normalized, "-")
	normalized = punctRegex.ReplaceAllString(normalized, "")
	normalized = dayMarkerRegex.ReplaceAllString(normalized, "")
	return strings.TrimSpace(normalized)
}

// ItinerarySimilarity scores two itinerary texts in [0,1]. Texts whose
// normalized lengths differ by more than 20% of their average length score 0
// before any word comparison happens. Otherwise the score is the Jaccard
// index over the distinct words of both texts. Symmetric in its arguments.
func ItinerarySimilarity(a, b string) float64 {
	normalizedA := NormalizeItineraryText(a)
	normalizedB := NormalizeItineraryText(b)

	lengthDiff := float64(len(normalizedA) - len(normalizedB))
	if lengthDiff < 0 {
		lengthDiff = -lengthDiff
	}
	averageLength := float64(len(normalizedA)+len(normalizedB)) / 2

	if lengthDiff > averageLength*0.2 {
		return 0
	}

	setA := wordSet(normalizedA)
	setB := wordSet(normalizedB)

	union := make(map[string]struct{}, len(setA)+len(setB))
	intersection := 0
	for word := range setA {
		union[word] = struct{}{}
		if _, ok := setB[word]; ok {
			intersection++
		}
	}
	for word := range setB {
		union[word] = struct{}{}
	}

	if len(union) == 0 {
		return 0
	}

	return float64(intersection) / float64(len(union))
}

func wordSet(normalized string) map[string]struct{} {
	words := strings.Fields(normalized)
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		set[word] = struct{}{}
	}
	return set
}
