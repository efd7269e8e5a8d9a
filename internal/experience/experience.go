// Package experience extracts work-history entries from resume text and
// normalizes each into a compact "company | role | duration" record.
//
// The pipeline has two distinct terminal states: "no experience section"
// (no recognizable header anywhere) and "section found but no valid
// entries". Callers that need the distinction use HasSection / Summarize.
package experience

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-scanner/internal/section"
)

// Summary sentinels exposed by Summarize for the two terminal states.
const (
	NoSectionMessage = "No experience section found in the resume."
	NoEntriesMessage = "No work experience entries found in the resume."
)

// headerPatterns gate the whole pipeline: a document with none of these is
// treated as having no experience at all. Headers must occupy a whole line.
var headerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:^|\n)\s*WORK EXPERIENCE\s*(?:$|\n)`),
	regexp.MustCompile(`(?i)(?:^|\n)\s*EMPLOYMENT HISTORY\s*(?:$|\n)`),
	regexp.MustCompile(`(?i)(?:^|\n)\s*EXPERIENCE\s*(?:$|\n)`),
	regexp.MustCompile(`(?i)(?:^|\n)\s*PROFESSIONAL EXPERIENCE\s*(?:$|\n)`),
	regexp.MustCompile(`(?i)(?:^|\n)\s*WORK HISTORY\s*(?:$|\n)`),
	regexp.MustCompile(`(?i)(?:^|\n)\s*RELEVANT EXPERIENCE\s*(?:$|\n)`),
	regexp.MustCompile(`(?i)(?:^|\n)\s*CAREER HISTORY\s*(?:$|\n)`),
	regexp.MustCompile(`(?i)(?:^|\n)\s*EMPLOYMENT\s*(?:$|\n)`),
	regexp.MustCompile(`(?i)(?:^|\n)\s*PROFESSIONAL BACKGROUND\s*(?:$|\n)`),
}

// nextSectionPatterns terminate the experience section; deliberately
// disjoint from headerPatterns.
var nextSectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:^|\n)\s*EDUCATION\s*(?:$|\n)`),
	regexp.MustCompile(`(?i)(?:^|\n)\s*SKILLS\s*(?:$|\n)`),
	regexp.MustCompile(`(?i)(?:^|\n)\s*CERTIFICATIONS\s*(?:$|\n)`),
	regexp.MustCompile(`(?i)(?:^|\n)\s*AWARDS\s*(?:$|\n)`),
	regexp.MustCompile(`(?i)(?:^|\n)\s*PROJECTS\s*(?:$|\n)`),
	regexp.MustCompile(`(?i)(?:^|\n)\s*ACHIEVEMENTS\s*(?:$|\n)`),
	regexp.MustCompile(`(?i)(?:^|\n)\s*PUBLICATIONS\s*(?:$|\n)`),
	regexp.MustCompile(`(?i)(?:^|\n)\s*REFERENCES\s*(?:$|\n)`),
	regexp.MustCompile(`(?i)(?:^|\n)\s*LANGUAGES\s*(?:$|\n)`),
	regexp.MustCompile(`(?i)(?:^|\n)\s*INTERESTS\s*(?:$|\n)`),
	regexp.MustCompile(`(?i)(?:^|\n)\s*VOLUNTEER\s*(?:$|\n)`),
	regexp.MustCompile(`(?i)(?:^|\n)\s*ADDITIONAL INFORMATION\s*(?:$|\n)`),
	regexp.MustCompile(`(?i)(?:^|\n)\s*PERSONAL PROJECTS\s*(?:$|\n)`),
	regexp.MustCompile(`(?i)(?:^|\n)\s*EXTRACURRICULAR\s*(?:$|\n)`),
}

// contactPatterns detect a mis-captured contact block masquerading as an
// experience section.
var contactPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`),
	regexp.MustCompile(`(?:\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	regexp.MustCompile(`\d{10}`),
	regexp.MustCompile(`linkedin\.com/in/[a-zA-Z0-9_-]+`),
	regexp.MustCompile(`[a-zA-Z]+\s*\|\s*LinkedIn`),
}

// plausibilityPatterns require the section to contain at least one signal of
// real work history before entries are parsed.
var plausibilityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(20\d{2}|19\d{2})[\s,-]+(?:present|current|20\d{2}|19\d{2})\b`),
	regexp.MustCompile(`(?i)\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*[\s,-]+\d{4}`),
	regexp.MustCompile(`(?i)\b(?:managed|led|developed|implemented|created|designed|responsible for|collaborated|worked with)\b`),
	regexp.MustCompile(`(?i)\b(?:Manager|Engineer|Developer|Analyst|Consultant|Specialist|Director|Coordinator|Supervisor)\b`),
}

var (
	dateRangeRe  = regexp.MustCompile(`(?i)(?:\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}\b|(?:19|20)\d{2})\s*[-–—]\s*(?:\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}\b|(?:19|20)\d{2}|Present|Current|Now)`)
	jobTitleRe   = regexp.MustCompile(`(?i)\b(?:Senior|Junior|Lead|Chief|Principal|Associate|Assistant)?\s*(?:Software|Systems|Data|Project|Product|Marketing|Sales|HR|Human Resources|Financial|Finance|Web|UI/UX|Frontend|Backend|Full[ -]Stack|DevOps|QA|Test)?\s*(?:Engineer|Developer|Analyst|Manager|Consultant|Coordinator|Specialist|Director|Designer|Architect|Intern|Administrator|Officer|Executive|Representative|Associate)\b`)
	companyRe    = regexp.MustCompile(`\b[A-Z][A-Za-z0-9\s,.&'-]+(?:Inc|LLC|Ltd|Corporation|Corp|Company|Co|Group|GmbH)?\b`)
	jobVerbRe    = regexp.MustCompile(`(?i)\b(?:managed|led|developed|implemented|created|designed|responsible for|collaborated|worked with)\b`)
	contactAnyRe = regexp.MustCompile(`(?i)(?:[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}|(?:\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}|\d{10}|linkedin\.com)`)

	// monthRangeRe pins down the display duration inside an entry.
	monthRangeRe = regexp.MustCompile(`(?i)((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4})\s*[-–—]\s*((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4}|Present|Current|Now|(?:19|20)\d{2})`)

	sentenceEndRe    = regexp.MustCompile(`[.,:;]$`)
	lowerStartRe     = regexp.MustCompile(`^[a-z]`)
	paragraphSplitRe = regexp.MustCompile(`\n\s*\n`)
	trailingSepRe    = regexp.MustCompile(`[\s,-]+$`)
)

// HasSection reports whether the document contains a recognizable
// experience header. False short-circuits the whole pipeline.
func HasSection(text string) bool {
	for _, pattern := range headerPatterns {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}

// Extract returns the normalized experience records in document order, or an
// empty list when no section or no valid entries exist.
func Extract(text string) []string {
	sectionText := extractSection(text)
	if sectionText == "" {
		return []string{}
	}

	entries := parseEntries(sectionText)
	if len(entries) == 0 {
		return []string{}
	}

	var records []string
	for _, entry := range entries {
		if detail := parseDetails(entry); detail != "" {
			records = append(records, detail)
		}
	}
	if records == nil {
		return []string{}
	}
	return records
}

// Summarize is the top-level summary path: it distinguishes "no section"
// from "section but no entries" and otherwise returns the records.
func Summarize(text string) ([]string, string) {
	if !HasSection(text) {
		return nil, NoSectionMessage
	}
	records := Extract(text)
	if len(records) == 0 {
		return nil, NoEntriesMessage
	}
	return records, ""
}

// extractSection isolates the experience section body, guarded against
// contact-block leakage and implausible content.
func extractSection(text string) string {
	text = section.CollapseNewlines(section.Normalize(text))

	startIdx := -1
	for _, pattern := range headerPatterns {
		if loc := pattern.FindStringIndex(text); loc != nil {
			startIdx = loc[1]
			break
		}
	}
	if startIdx == -1 {
		return ""
	}

	endIdx := len(text)
	for _, pattern := range nextSectionPatterns {
		if loc := pattern.FindStringIndex(text[startIdx:]); loc != nil {
			endIdx = startIdx + loc[0]
			break
		}
	}

	body := strings.TrimSpace(text[startIdx:endIdx])

	// A short body that looks like contact details means the header match
	// swallowed the contact block, not real work history.
	if len(body) < 20 || strings.Count(body, "\n") < 2 {
		for _, pattern := range contactPatterns {
			if pattern.MatchString(body) {
				return ""
			}
		}
	}

	for _, pattern := range plausibilityPatterns {
		if pattern.MatchString(body) {
			return body
		}
	}
	return ""
}

// parseEntries segments the section into candidate entries: blank-line
// paragraphs first, then date-anchored lines, then title/company-anchored
// lines. Later strategies run only while the split still yields one entry.
func parseEntries(sectionText string) []string {
	if sectionText == "" {
		return nil
	}

	entries := paragraphSplitRe.Split(sectionText, -1)

	if len(entries) <= 1 {
		if dated := splitByDates(sectionText); len(dated) > 1 {
			entries = dated
		}
	}
	if len(entries) <= 1 {
		if titled := splitByTitles(sectionText); len(titled) > 1 {
			entries = titled
		}
	}

	var valid []string
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		hasSignal := dateRangeRe.MatchString(entry) ||
			jobTitleRe.MatchString(entry) ||
			jobVerbRe.MatchString(entry)
		if hasSignal && !contactAnyRe.MatchString(entry) {
			valid = append(valid, entry)
		}
	}
	return valid
}

// splitByDates starts a new entry at each date-range line whose previous
// line did not also match, so multi-line date headers anchor only once.
func splitByDates(sectionText string) []string {
	lines := strings.Split(sectionText, "\n")
	var entries []string
	var current []string
	for i, line := range lines {
		anchors := dateRangeRe.MatchString(line) &&
			(i == 0 || !dateRangeRe.MatchString(lines[i-1]))
		if anchors {
			if len(current) > 0 {
				entries = append(entries, strings.Join(current, "\n"))
			}
			current = []string{line}
		} else {
			current = append(current, line)
		}
	}
	if len(current) > 0 {
		entries = append(entries, strings.Join(current, "\n"))
	}
	return entries
}

// splitByTitles starts a new entry at short job-title or company-name lines,
// but never mid-sentence: the previous line must not end in punctuation and
// the current line must not start lower-case.
func splitByTitles(sectionText string) []string {
	lines := strings.Split(sectionText, "\n")
	var entries []string
	var current []string
	for i, line := range lines {
		looksLikeHeader := (jobTitleRe.MatchString(line) || companyRe.MatchString(line)) &&
			len(line) < 100 && i > 0
		if looksLikeHeader &&
			!sentenceEndRe.MatchString(lines[i-1]) &&
			!lowerStartRe.MatchString(line) {
			if len(current) > 0 {
				entries = append(entries, strings.Join(current, "\n"))
			}
			current = []string{line}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		entries = append(entries, strings.Join(current, "\n"))
	}
	return entries
}

// parseDetails normalizes one entry into "company | role | duration",
// omitting whichever parts resolved empty.
func parseDetails(entry string) string {
	duration := monthRangeRe.FindString(entry)

	lines := strings.Split(entry, "\n")
	headerLine := strings.TrimSpace(entry)
	if len(lines) > 0 {
		headerLine = strings.TrimSpace(lines[0])
	}

	var company, role string

	if strings.Contains(headerLine, "|") {
		// Positional interpretation: Role | Company | (optional) | Duration.
		tokens := strings.Split(headerLine, "|")
		for i := range tokens {
			tokens[i] = strings.TrimSpace(tokens[i])
		}
		if len(tokens) >= 2 {
			role = tokens[0]
			company = tokens[1]
		}
		if len(tokens) > 0 && monthRangeRe.MatchString(tokens[len(tokens)-1]) {
			duration = tokens[len(tokens)-1]
		}
	} else {
		if duration == "" {
			duration = monthRangeRe.FindString(headerLine)
		}
		if duration != "" {
			candidate := strings.TrimSpace(strings.Replace(headerLine, duration, "", 1))
			company = trailingSepRe.ReplaceAllString(candidate, "")
		} else {
			company = headerLine
		}
		if len(lines) > 1 {
			role = strings.TrimSpace(lines[1])
		}
	}

	var details []string
	for _, part := range []string{company, role, duration} {
		if part != "" {
			details = append(details, part)
		}
	}
	return strings.Join(details, " | ")
}
