// Package contact extracts candidate contact details (name, email, phone,
// location) from resume text and the uploaded filename.
package contact

import (
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jonathan/resume-scanner/internal/types"
)

// filenameStopWords are removed from the filename before it is treated as a
// candidate name.
var filenameStopWords = []string{
	"resume", "updated", "update", "profile", "cv", "latest", "final", "new", "pdf", "uploaded",
}

var (
	stopWordMatchers = buildStopWordMatchers()
	standaloneDigits = regexp.MustCompile(`\b\d+\b`)
	nameSymbols      = regexp.MustCompile(`[-()]`)
	whitespaceRuns   = regexp.MustCompile(`\s+`)
	titleCaser       = cases.Title(language.English)

	// wwwNoSpace finds "www." glued to preceding text; a space is inserted so
	// a concatenated preamble cannot eat the email match.
	wwwNoSpace = regexp.MustCompile(`(\S)(www\.)`)
	emailRe    = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	// phonePatterns are tried in order; the first pattern with any match wins.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`(?:\+\d{1,3}[-.\s]?)?\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`(?:\+\d{1,3}[-.\s]?)?\d{10,}`),
	}

	// phoneCandidate finds internationally formatted digit runs for the
	// library fallback.
	phoneCandidate = regexp.MustCompile(`\+\d[\d\s().-]{5,}\d`)
)

func buildStopWordMatchers() []*regexp.Regexp {
	matchers := make([]*regexp.Regexp, len(filenameStopWords))
	for i, word := range filenameStopWords {
		matchers[i] = regexp.MustCompile(`(?i)\b` + word + `\b`)
	}
	return matchers
}

// Extract derives the contact record for one document. Every sub-extraction
// degrades silently: a missing match leaves the NotFound sentinel in place.
func Extract(text, filename string) types.ContactRecord {
	record := types.NewContactRecord()

	if name := ExtractName(filename); name != "" {
		record.Name = name
	}
	if email := extractEmail(text); email != "" {
		record.Email = email
	}
	if phone := extractPhone(text); phone != "" {
		record.Phone = phone
	}

	lines := nonEmptyLines(text)
	if location := matchLocation(lines); location != "" {
		record.Location = location
	}

	return record
}

// ExtractName derives a candidate name from the filename only, never from
// the document body. Returns "" when nothing survives cleaning.
func ExtractName(filename string) string {
	base := filename
	if idx := strings.LastIndex(base, "."); idx >= 0 {
		base = base[:idx]
	}

	name := strings.ReplaceAll(base, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")

	for _, m := range stopWordMatchers {
		name = m.ReplaceAllString(name, "")
	}
	name = standaloneDigits.ReplaceAllString(name, "")
	name = nameSymbols.ReplaceAllString(name, "")
	name = strings.TrimSpace(whitespaceRuns.ReplaceAllString(name, " "))
	if name == "" {
		return ""
	}
	return titleCaser.String(name)
}

func extractEmail(text string) string {
	text = wwwNoSpace.ReplaceAllString(text, "$1 $2")
	return emailRe.FindString(text)
}

func extractPhone(text string) string {
	for _, pattern := range phonePatterns {
		if match := pattern.FindString(text); match != "" {
			return match
		}
	}
	return phoneLibraryFallback(text)
}

// phoneLibraryFallback asks the phonenumbers library to recognize a number
// the pattern bank missed. Only internationally formatted candidates are
// considered since no default region is assumed. Any library fault degrades
// to "" rather than aborting contact extraction.
func phoneLibraryFallback(text string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = ""
		}
	}()

	for _, candidate := range phoneCandidate.FindAllString(text, -1) {
		num, err := phonenumbers.Parse(candidate, "")
		if err != nil {
			continue
		}
		if !phonenumbers.IsValidNumber(num) {
			continue
		}
		return phonenumbers.Format(num, phonenumbers.INTERNATIONAL)
	}
	return ""
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
