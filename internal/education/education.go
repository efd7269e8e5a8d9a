// Package education extracts education history entries from resume text.
//
// Resumes vary wildly in layout, so extraction is a strict waterfall:
// structured high-precision patterns first, generic heuristics next,
// keyword-presence filtering last. The earliest strategy that produces any
// result wins.
package education

import (
	"regexp"
	"strings"
)

// headerPatterns locate an education section header. Tried in order; the
// first pattern that matches anywhere wins.
var headerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)EDUCATION\s*:?$`),
	regexp.MustCompile(`(?im)EDUCATION\s*:?`),
	regexp.MustCompile(`(?i)EDUCATION\b`),
	regexp.MustCompile(`(?i)ACADEMIC BACKGROUND\s*:?`),
	regexp.MustCompile(`(?i)QUALIFICATIONS?\s*:?`),
	regexp.MustCompile(`(?i)ACADEMIC\s*RECORD\b`),
	regexp.MustCompile(`(?i)Education\s*Details\b`),
	regexp.MustCompile(`(?i)Education\s*background\b`),
}

// anchorPatterns find degree or score keywords when no header exists. The
// start of the line containing the first occurrence becomes a synthetic
// section start.
var anchorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)B\.E\.?|B\.Tech\.?|M\.Tech\.?|Bachelor of Engineering|Bachelor of Technology`),
	regexp.MustCompile(`(?i)SSLC|SSC|CBSE|ICSE|Higher Secondary|Pre-University`),
	regexp.MustCompile(`(?i)CGPA|Cumulative|Grade|Percentage`),
}

// nextSectionPatterns terminate the education section. Headers that can also
// introduce education are deliberately absent from this list.
var nextSectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)^\s*(SKILLS|TECHNICAL SKILLS|PROJECTS|INTERNSHIP|INTERNSHIPS|EXPERIENCE|WORK EXPERIENCE|` +
		`ORGANIZATIONS|CERTIFICATION|CERTIFICATIONS|PUBLICATIONS|ACHIEVEMENTS|LANGUAGES|SUMMARY|` +
		`COURSES|COURSEWORK|AREA OF INTERESTS|PRESENTATIONS|TECH(NICAL)?\s*SKILLS?|DECLARATION|` +
		`PROFESSIONAL EXPERIENCE|EXTRACURRICULAR|LEADERSHIP|VOLUNTEER|AWARDS|WORKSHOPS?|` +
		`PERSONAL DETAILS|KEY SKILLS|CAREER OBJECTIVE|HARD SKILL|LANGUAGES KNOWN)\s*:?$`),
	regexp.MustCompile(`(?im)^(SKILLS|TECHNICAL SKILLS|PROJECTS|INTERNSHIP|INTERNSHIPS|EXPERIENCE|WORK EXPERIENCE|` +
		`ORGANIZATIONS|CERTIFICATION|CERTIFICATIONS|PUBLICATIONS|ACHIEVEMENTS|LANGUAGES|SUMMARY|` +
		`COURSES|COURSEWORK|AREA OF INTERESTS|PRESENTATIONS|TECH(NICAL)?\s*SKILLS?|DECLARATION|` +
		`PROFESSIONAL EXPERIENCE|EXTRACURRICULAR|LEADERSHIP|VOLUNTEER|AWARDS|WORKSHOPS?|` +
		`PERSONAL DETAILS|KEY SKILLS|CAREER OBJECTIVE|HARD SKILL|LANGUAGES KNOWN)\s*:?`),
	regexp.MustCompile(`(?im)^\s*COURSEWORK\s*/\s*SKILLS`),
	regexp.MustCompile(`(?im)^\s*(MY\s+)?CONTACT\s*:?$`),
}

// keywords validate that a chunk of text is actually about education.
var keywords = []string{
	"B.E", "B.Tech", "M.Tech", "Bachelor", "Master", "Ph.D", "Degree",
	"University", "Institute", "College", "School", "GPA", "CGPA",
	"Engineering", "Sciences", "Arts", "Commerce", "Diploma", "H.S.C", "S.S.C",
	"Secondary", "HSC", "SSLC", "Class 12", "Class 10", "High School",
	"ICSE", "CBSE", "State Board", "Percentage", "Sr. Secondary", "Grade",
	"Pre-University Course", "Cumulative", "Pass percentage",
}

var keywordMatchers = buildKeywordMatchers()

var (
	yearRangeRe     = regexp.MustCompile(`(?i)(19|20)\d{2}\s*[-–—]\s*((19|20)\d{2}|present|current|ongoing)`)
	institutionRe   = regexp.MustCompile(`(?i)(university|college|institute|school)`)
	scoreKeywordRe  = regexp.MustCompile(`(?i)percentage|cgpa`)
	blankTripleRe   = regexp.MustCompile(`\n\s*\n\s*\n`)
	dashRuleRe      = regexp.MustCompile(`\n\s*-{3,}`)
	underscoreRe    = regexp.MustCompile(`\n\s*_{3,}`)
	timelineRe      = regexp.MustCompile(`(?i)(January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{4}\s*(-|–)\s*`)
	paragraphRe     = regexp.MustCompile(`\n\s*\n`)
	structureGateRe = regexp.MustCompile(`(?is)(B\.E\.?|B\.Tech|Bachelor|Master|Diploma).*\d{4}\s*-\s*\d{4}`)
	tripleEntryRe   = regexp.MustCompile(`(?m)([A-Za-z\. &]+)\n([A-Za-z\d ]+)\n((?:(?:January|February|March|April|May|June|July|August|September|October|November|December)?\s*\d{4}\s*-\s*(?:January|February|March|April|May|June|July|August|September|October|November|December)?\s*\d{4})|(?:\d{4}\s*-\s*\d{4}))`)
	scoreDetailRe   = regexp.MustCompile(`(?i)(CGPA|Percentage|Pass percentage)[^\d]*([\d.]+)(?:/(\d+))?`)
)

func buildKeywordMatchers() []*regexp.Regexp {
	matchers := make([]*regexp.Regexp, len(keywords))
	for i, kw := range keywords {
		matchers[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`)
	}
	return matchers
}

// anchorKind tags how the education section start was found. An explicit
// variant keeps the start-boundary type honest instead of overloading a
// placeholder match object.
type anchorKind int

const (
	anchorNone anchorKind = iota
	anchorHeader
	anchorKeyword
)

type sectionAnchor struct {
	kind anchorKind
	// pos is the text offset where the section body begins. For a header
	// match this is the end of the header; for a keyword anchor it is the
	// start of the line containing the keyword (a synthetic zero-length
	// match).
	pos int
}

// Extract returns the ordered list of free-text education entries found in
// text, or an empty list when no education-like content exists. It never
// fails: any input yields a well-typed result.
func Extract(text string) []string {
	anchor := findAnchor(text)
	if anchor.kind == anchorNone {
		return []string{}
	}

	sectionText := truncateSection(text[anchor.pos:])
	if strings.TrimSpace(sectionText) == "" {
		return []string{}
	}

	// Strategy waterfall: the first segmentation that yields at least one
	// entry wins.
	strategies := []func(string) []string{
		segmentStructuredDateRanges,
		segmentByMarkers,
		segmentDegreeInstitutionScore,
		segmentByKeywordLines,
		segmentByParagraphs,
		segmentWholeSection,
	}

	var entries []string
	for _, strategy := range strategies {
		entries = strategy(sectionText)
		if len(entries) > 0 {
			break
		}
	}

	validated := validateEntries(entries)
	if len(validated) > 0 {
		return validated
	}

	if reconstructed := reconstructByKeywordAdjacency(sectionText); len(reconstructed) > 0 {
		return reconstructed
	}
	return entries
}

// findAnchor locates the education section start: header match first, degree
// keyword fallback second.
func findAnchor(text string) sectionAnchor {
	for _, pattern := range headerPatterns {
		if loc := pattern.FindStringIndex(text); loc != nil {
			return sectionAnchor{kind: anchorHeader, pos: loc[1]}
		}
	}
	for _, pattern := range anchorPatterns {
		loc := pattern.FindStringIndex(text)
		if loc == nil {
			continue
		}
		lineStart := strings.LastIndex(text[:loc[0]], "\n")
		if lineStart == -1 {
			lineStart = 0
		} else {
			lineStart++
		}
		return sectionAnchor{kind: anchorKeyword, pos: lineStart}
	}
	return sectionAnchor{kind: anchorNone}
}

// truncateSection cuts the section body at the next section header, or
// failing that, applies structural boundary heuristics in order.
func truncateSection(body string) string {
	nextStart := len(body)
	for _, pattern := range nextSectionPatterns {
		if loc := pattern.FindStringIndex(body); loc != nil && loc[0] < nextStart {
			nextStart = loc[0]
		}
	}
	if nextStart < len(body) {
		return strings.TrimSpace(body[:nextStart])
	}

	// No next header. Look for visual breaks.
	breakPos := len(body)
	for _, pattern := range []*regexp.Regexp{blankTripleRe, dashRuleRe, underscoreRe} {
		if loc := pattern.FindStringIndex(body); loc != nil && loc[0] < breakPos {
			breakPos = loc[0]
		}
	}
	if breakPos < len(body) {
		return strings.TrimSpace(body[:breakPos])
	}

	// Month-name timeline marker: keep a bounded window.
	if loc := timelineRe.FindStringIndex(body); loc != nil {
		end := strings.Index(body[loc[0]:], "\n\n")
		if end == -1 {
			end = min(loc[0]+250, len(body))
		} else {
			end += loc[0]
		}
		return strings.TrimSpace(body[:end])
	}

	// Cap at 20 lines or two consecutive blank lines, whichever first.
	lines := strings.Split(body, "\n")
	maxLines := min(20, len(lines))
	var kept []string
	blanks := 0
	for i := 0; i < maxLines; i++ {
		if strings.TrimSpace(lines[i]) == "" {
			blanks++
			if blanks >= 2 {
				break
			}
		} else {
			blanks = 0
		}
		kept = append(kept, lines[i])
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// segmentStructuredDateRanges handles the high-precision layout of
// three-line degree / institution / explicit date-range groups, appending a
// score suffix when the section also carries one.
func segmentStructuredDateRanges(sectionText string) []string {
	if !structureGateRe.MatchString(sectionText) {
		return nil
	}

	groups := tripleEntryRe.FindAllStringSubmatch(sectionText, -1)
	if len(groups) == 0 {
		return nil
	}

	scoreSuffix := ""
	if scoreKeywordRe.MatchString(sectionText) {
		if m := scoreDetailRe.FindStringSubmatch(sectionText); m != nil {
			scoreSuffix = " with " + m[1] + " of " + m[2]
			if m[3] != "" {
				scoreSuffix += "/" + m[3]
			}
		}
	}

	var entries []string
	for _, g := range groups {
		degree := strings.TrimSpace(g[1])
		institution := strings.TrimSpace(g[2])
		dateRange := strings.TrimSpace(g[3])
		entries = append(entries, degree+" from "+institution+", "+dateRange+scoreSuffix)
	}
	return entries
}

var entryMarkers = []*regexp.Regexp{
	regexp.MustCompile(`^\s*•`),
	regexp.MustCompile(`^\s*-`),
	regexp.MustCompile(`^\s*\*`),
	regexp.MustCompile(`^\s*\d+\.`),
	regexp.MustCompile(`^[A-Za-z\s]+ — `),
	regexp.MustCompile(`^[A-Za-z\s]+ - `),
}

var degreeLineStartRe = regexp.MustCompile(`(?i)^\s*(Bachelor|Master|Ph\.D|B\.E|B\.Tech|M\.Tech|HSC|SSLC|Higher Secondary)\b`)

// segmentByMarkers starts a new entry on bullet/numeric markers, leading
// degree keywords, year-range lines, or an indentation decrease combined
// with an education keyword. Lines accumulate until the next trigger.
func segmentByMarkers(sectionText string) []string {
	lines := strings.Split(sectionText, "\n")

	var entries []string
	var current []string
	previousIndent := -1

	flush := func() {
		if len(current) == 0 {
			return
		}
		var parts []string
		for _, l := range current {
			parts = append(parts, strings.TrimSpace(l))
		}
		if entry := strings.TrimSpace(strings.Join(parts, " ")); entry != "" {
			entries = append(entries, entry)
		}
		current = nil
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))

		newEntry := false
		switch {
		case matchesAny(entryMarkers, line):
			newEntry = true
		case degreeLineStartRe.MatchString(line):
			newEntry = true
		case yearRangeRe.MatchString(line):
			newEntry = true
		case previousIndent >= 0 && indent <= previousIndent && i > 0 && containsKeyword(line):
			newEntry = true
		}

		if newEntry && len(current) > 0 {
			flush()
		}
		current = append(current, line)
		previousIndent = indent
	}
	flush()

	return entries
}

// segmentDegreeInstitutionScore covers the structural variant of a degree
// line followed by an institution line and a percentage/CGPA line. The three
// lines need not be adjacent.
func segmentDegreeInstitutionScore(sectionText string) []string {
	if !regexp.MustCompile(`(?i)Bachelor|Master|Diploma|Engineering|Higher Secondary|SSLC`).MatchString(sectionText) {
		return nil
	}

	var entries []string
	var degree, institution, score string

	flush := func() {
		if degree == "" {
			return
		}
		entry := degree + " from " + institution
		if score != "" {
			entry += " with " + score
		}
		entries = append(entries, entry)
	}

	for _, line := range strings.Split(sectionText, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		switch {
		case degreeLineStartRe.MatchString(trimmed) || strings.Contains(trimmed, "Engineering"):
			flush()
			degree = trimmed
			institution = ""
			score = ""
		case strings.Contains(trimmed, "College") || strings.Contains(trimmed, "School"):
			institution = trimmed
		case scoreKeywordRe.MatchString(trimmed):
			score = trimmed
		}
	}
	flush()

	return entries
}

// segmentByKeywordLines keeps every line containing an education keyword as
// its own entry.
func segmentByKeywordLines(sectionText string) []string {
	var entries []string
	for _, line := range strings.Split(sectionText, "\n") {
		if containsKeyword(line) {
			entries = append(entries, strings.TrimSpace(line))
		}
	}
	return entries
}

// segmentByParagraphs splits on blank-line-delimited paragraphs and keeps
// those containing an education keyword, flattened to one line each.
func segmentByParagraphs(sectionText string) []string {
	var entries []string
	for _, para := range paragraphRe.Split(sectionText, -1) {
		para = strings.TrimSpace(para)
		if para == "" || !containsKeyword(para) {
			continue
		}
		entries = append(entries, flattenWhitespace(para))
	}
	return entries
}

// segmentWholeSection is the last resort: the entire section as one entry.
func segmentWholeSection(sectionText string) []string {
	flattened := flattenWhitespace(sectionText)
	if flattened == "" {
		return nil
	}
	return []string{flattened}
}

// validateEntries keeps entries that carry an education keyword, an
// institution-type word, a year range, or a score keyword.
func validateEntries(entries []string) []string {
	var validated []string
	for _, entry := range entries {
		if containsKeyword(entry) ||
			institutionRe.MatchString(entry) ||
			yearRangeRe.MatchString(entry) ||
			scoreKeywordRe.MatchString(entry) {
			validated = append(validated, entry)
		}
	}
	return validated
}

// reconstructByKeywordAdjacency regroups raw section lines around keyword
// lines when validation rejected everything.
func reconstructByKeywordAdjacency(sectionText string) []string {
	var lines []string
	for _, line := range strings.Split(sectionText, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil
	}

	var entries []string
	var current []string
	for _, line := range lines {
		if containsKeyword(line) {
			if len(current) > 0 && containsKeyword(strings.Join(current, " ")) {
				entries = append(entries, strings.Join(current, " "))
				current = nil
			}
			current = append(current, strings.TrimSpace(line))
		} else if len(current) > 0 {
			current = append(current, strings.TrimSpace(line))
		}
	}
	if len(current) > 0 {
		entries = append(entries, strings.Join(current, " "))
	}
	return entries
}

func containsKeyword(s string) bool {
	for _, m := range keywordMatchers {
		if m.MatchString(s) {
			return true
		}
	}
	return false
}

func matchesAny(patterns []*regexp.Regexp, s string) bool {
	for _, p := range patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

func flattenWhitespace(s string) string {
	return strings.TrimSpace(strings.Join(strings.Fields(s), " "))
}
