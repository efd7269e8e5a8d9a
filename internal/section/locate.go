package section

import (
	"regexp"
	"strings"
)

// NotFound is the boundary index returned when no section header matches.
const NotFound = -1

// nextSectionHeaders is the fixed set of header phrases that terminate a
// located section. Phrases that are also being searched for are excluded at
// call time so a section never ends on a recurrence of its own header.
var nextSectionHeaders = []string{
	"Education", "Experience", "Work Experience", "Employment",
	"Skills", "Technical Skills", "Projects", "Certifications",
	"Awards", "Publications", "Languages", "Interests", "References",
}

// wordMatch compiles a case-insensitive whole-word matcher for a phrase.
// Whole-word means "Skills" does not match inside "Upskilled".
func wordMatch(phrase string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`)
}

// Locate finds the first section introduced by any of headerPhrases and
// returns the text strictly between that header line and the next competing
// section header, along with the line index where the section ends. When no
// header matches it returns an empty body and NotFound.
func Locate(text string, headerPhrases []string) (string, int) {
	lines := Lines(text)

	matchers := make([]*regexp.Regexp, len(headerPhrases))
	for i, phrase := range headerPhrases {
		matchers[i] = wordMatch(phrase)
	}

	startIdx := NotFound
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		for _, m := range matchers {
			if m.MatchString(line) {
				startIdx = i
				break
			}
		}
		if startIdx != NotFound {
			break
		}
	}
	if startIdx == NotFound {
		return "", NotFound
	}

	// Drop terminators that are themselves being searched for, so the
	// section does not end on its own header appearing again.
	requested := make(map[string]bool, len(headerPhrases))
	for _, phrase := range headerPhrases {
		requested[strings.ToLower(phrase)] = true
	}
	var endMatchers []*regexp.Regexp
	for _, header := range nextSectionHeaders {
		if requested[strings.ToLower(header)] {
			continue
		}
		endMatchers = append(endMatchers, wordMatch(header))
	}

	endIdx := len(lines)
	for i := startIdx + 1; i < len(lines); i++ {
		matched := false
		for _, m := range endMatchers {
			if m.MatchString(lines[i]) {
				matched = true
				break
			}
		}
		if matched {
			endIdx = i
			break
		}
	}

	return strings.Join(lines[startIdx+1:endIdx], "\n"), endIdx
}
