// Package sentiment scores headlines by keyword polarity.
package sentiment

import (
	"fmt"
	"strings"
)

var positiveKeywords = []string{
	"beats", "beat", "surge", "record", "raises", "raise", "upgrade", "upgraded",
	"win", "wins", "contract", "approval", "approves", "launch", "partnership",
	"acquire", "acquisition", "guidance raise", "buyback",
}

var negativeKeywords = []string{
	"miss", "misses", "downgrade", "downgraded", "lawsuit", "recall", "probe",
	"decline", "cuts", "cut", "warning", "fraud",
}

// Score averages (positive hits - negative hits) over the headlines. Each
// keyword counts once per headline when it appears as a substring, so
// "beats" also hits "beat".
func Score(headlines []string) float64 {
	if len(headlines) == 0 {
		return 0
	}
	total := 0
	for _, h := range headlines {
		text := strings.ToLower(h)
		total += hits(text, positiveKeywords) - hits(text, negativeKeywords)
	}
	return float64(total) / float64(len(headlines))
}

func hits(text string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(text, w) {
			n++
		}
	}
	return n
}

func Label(score float64) string {
	switch {
	case score > 0:
		return "positive"
	case score == 0:
		return "mixed"
	default:
		return "negative"
	}
}

// Summarize names the tone and lists up to three headlines.
func Summarize(headlines []string, score float64) string {
	if len(headlines) == 0 {
		return "No recent headlines available."
	}
	shown := headlines
	if len(shown) > 3 {
		shown = shown[:3]
	}
	return fmt.Sprintf("Recent headlines are %s: %s.", Label(score), strings.Join(shown, "; "))
}
