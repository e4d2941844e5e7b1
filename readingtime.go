package seoengine

import (
	"fmt"
	"strings"
)

// wordsPerMinute is the assumed adult reading speed.
const wordsPerMinute = 200

// ReadingTime estimates how long the Markdown body takes to read, as a
// human-readable string like "4 min read". Pure function of word count;
// never reports less than one minute.
func ReadingTime(body string) string {
	words := len(strings.Fields(body))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}
