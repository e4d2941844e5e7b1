package seoengine

import (
	"math"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Readability suggestion thresholds.
const (
	maxAvgSentenceWords    = 25
	maxAvgSyllablesPerWord = 1.6
	difficultScore         = 50
	maxParagraphWords      = 150
)

// NotFoundReadability is the sentinel returned when no document matches the
// requested slug.
func NotFoundReadability() ReadabilityResult {
	return ReadabilityResult{
		Score:        0,
		ReadingLevel: "Unknown",
		Suggestions:  []string{"Post not found"},
	}
}

// ScoreReadability computes a Flesch Reading Ease approximation for one
// document, with advisory suggestions. The score is rounded to one decimal.
func ScoreReadability(doc Document) ReadabilityResult {
	text := stripHTML(doc.HTMLContent)
	words := strings.Fields(text)
	sentences := countSentences(text)

	if len(words) == 0 || sentences == 0 {
		return ReadabilityResult{
			Score:        0,
			ReadingLevel: "Unknown",
			Suggestions:  []string{"Post has no readable content"},
		}
	}

	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}

	wordCount := float64(len(words))
	score := 206.835 - 1.015*(wordCount/float64(sentences)) - 84.6*(float64(syllables)/wordCount)
	score = math.Round(score*10) / 10

	return ReadabilityResult{
		Score:        score,
		ReadingLevel: readingLevel(score),
		Suggestions:  suggestions(doc, score, wordCount/float64(sentences), float64(syllables)/wordCount),
	}
}

// stripHTML flattens rendered HTML to plain text with collapsed whitespace.
func stripHTML(htmlContent string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return htmlContent
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// countSentences counts '.', '!', '?' delimited segments with visible text.
func countSentences(text string) int {
	count := 0
	for _, segment := range strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	}) {
		if strings.TrimSpace(segment) != "" {
			count++
		}
	}
	return count
}

// countSyllables estimates syllables for one word by counting vowel groups,
// with the usual silent-e adjustments. Never returns less than 1.
func countSyllables(word string) int {
	w := strings.ToLower(strings.TrimFunc(word, func(r rune) bool {
		return r < 'a' || r > 'z'
	}))
	if w == "" {
		return 1
	}

	count := 0
	prevVowel := false
	for _, r := range w {
		vowel := strings.ContainsRune("aeiouy", r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}

	if strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "le") {
		count--
	}
	if strings.HasSuffix(w, "le") && len(w) > 2 {
		count++
	}
	if strings.HasSuffix(w, "es") || strings.HasSuffix(w, "ed") {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

// readingLevel maps a Flesch score to a discrete label.
func readingLevel(score float64) string {
	switch {
	case score > 90:
		return "Elementary"
	case score > 80:
		return "6th Grade"
	case score > 70:
		return "7th Grade"
	case score > 60:
		return "8th-9th Grade"
	case score > 50:
		return "10th-12th Grade"
	case score > 30:
		return "College"
	default:
		return "Advanced Degree"
	}
}

func suggestions(doc Document, score, avgSentenceWords, avgSyllables float64) []string {
	var out []string
	if avgSentenceWords > maxAvgSentenceWords {
		out = append(out, "Your sentences are long. Shorter sentences are easier to follow.")
	}
	if avgSyllables > maxAvgSyllablesPerWord {
		out = append(out, "You use many complex words. Simpler words improve readability.")
	}
	if score < difficultScore {
		out = append(out, "This content may be difficult for most readers. Aim for a score above 60.")
	}
	if longestParagraphWords(doc.Content) > maxParagraphWords {
		out = append(out, "Break up long paragraphs to make the post easier to scan.")
	}
	if len(out) == 0 {
		out = append(out, "No readability issues found. Nice work!")
	}
	return out
}

// longestParagraphWords returns the word count of the longest blank-line
// delimited paragraph in the Markdown body.
func longestParagraphWords(content string) int {
	longest := 0
	for _, para := range strings.Split(content, "\n\n") {
		if n := len(strings.Fields(para)); n > longest {
			longest = n
		}
	}
	return longest
}
