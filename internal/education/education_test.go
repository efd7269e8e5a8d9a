package education

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_EmptyInput(t *testing.T) {
	assert.Empty(t, Extract(""))
	assert.Empty(t, Extract("nothing about studies here"))
}

func TestExtract_HeaderWithBulletEntries(t *testing.T) {
	text := strings.Join([]string{
		"EDUCATION",
		"• B.Tech in Computer Science, IIT Madras, 2016-2020",
		"• Higher Secondary, Some School, 2014-2016",
		"SKILLS",
		"Python",
	}, "\n")

	entries := Extract(text)
	require.Len(t, entries, 2)
	assert.Contains(t, entries[0], "B.Tech in Computer Science")
	assert.Contains(t, entries[1], "Higher Secondary")
}

func TestExtract_SectionTruncatedAtNextHeader(t *testing.T) {
	text := strings.Join([]string{
		"EDUCATION",
		"Bachelor of Engineering, 2015-2019",
		"PROJECTS",
		"Built a compiler",
	}, "\n")

	entries := Extract(text)
	require.NotEmpty(t, entries)
	for _, entry := range entries {
		assert.NotContains(t, entry, "compiler")
	}
}

func TestExtract_KeywordAnchorWithoutHeader(t *testing.T) {
	// No EDUCATION header anywhere; the degree keyword anchors the section.
	text := strings.Join([]string{
		"Summary line about a candidate",
		"B.Tech in Mechanical Engineering 2012-2016",
		"CGPA 8.2",
	}, "\n")

	entries := Extract(text)
	require.NotEmpty(t, entries)
	assert.Contains(t, strings.Join(entries, " "), "B.Tech")
}

func TestExtract_StructuredDateRangeTriples(t *testing.T) {
	text := strings.Join([]string{
		"EDUCATION",
		"B.E. Electrical Engineering",
		"Some Institute of Technology",
		"2016 - 2020",
		"Cumulative CGPA of 8.5/10",
	}, "\n")

	entries := Extract(text)
	require.NotEmpty(t, entries)
	assert.Contains(t, entries[0], "from")
	assert.Contains(t, entries[0], "2016 - 2020")
	assert.Contains(t, entries[0], "CGPA of 8.5/10")
}

func TestExtract_DegreeInstitutionScoreLines(t *testing.T) {
	// Degree line, institution line, percentage line; no bullets, no dates.
	text := strings.Join([]string{
		"EDUCATION",
		"Bachelor of Engineering",
		"DMX College of Engineering",
		"percentage 72%",
	}, "\n")

	entries := Extract(text)
	require.NotEmpty(t, entries)
	joined := strings.Join(entries, " | ")
	assert.Contains(t, joined, "Bachelor of Engineering")
}

func TestExtract_ValidationRejectsNoise(t *testing.T) {
	// Every produced entry must carry education evidence: a keyword, an
	// institution word, a year range, or a score keyword.
	text := strings.Join([]string{
		"EDUCATION",
		"• Master of Science, Anna University, 2018-2020",
	}, "\n")

	for _, entry := range Extract(text) {
		hasEvidence := containsKeyword(entry) ||
			institutionRe.MatchString(entry) ||
			yearRangeRe.MatchString(entry) ||
			scoreKeywordRe.MatchString(entry)
		assert.True(t, hasEvidence, "entry without education evidence: %q", entry)
	}
}

func TestExtract_AccumulatesContinuationLines(t *testing.T) {
	text := strings.Join([]string{
		"ACADEMIC BACKGROUND",
		"Completed Diploma at a polytechnic",
		"with distinction",
		"",
		"Unrelated paragraph with no markers",
	}, "\n")

	entries := Extract(text)
	require.NotEmpty(t, entries)
	assert.Contains(t, strings.Join(entries, " "), "Diploma")
}

func TestExtract_TotalOnArbitraryInput(t *testing.T) {
	inputs := []string{
		"\n\n\n",
		"EDUCATION",
		"EDUCATION\n",
		strings.Repeat("x", 10000),
		"CGPA",
	}
	for _, input := range inputs {
		assert.NotPanics(t, func() { Extract(input) })
	}
}

func TestFindAnchor_TaggedVariants(t *testing.T) {
	assert.Equal(t, anchorNone, findAnchor("plain text").kind)
	assert.Equal(t, anchorHeader, findAnchor("EDUCATION\nfoo").kind)
	assert.Equal(t, anchorKeyword, findAnchor("got my B.Tech in 2019").kind)
}

func TestFindAnchor_KeywordAnchorAtLineStart(t *testing.T) {
	text := "intro\nsome B.Tech degree line\nrest"
	anchor := findAnchor(text)
	require.Equal(t, anchorKeyword, anchor.kind)
	// The anchor is the start of the line containing the keyword.
	assert.Equal(t, len("intro\n"), anchor.pos)
}

func TestTruncateSection_TwentyLineCap(t *testing.T) {
	var lines []string
	for i := 0; i < 40; i++ {
		lines = append(lines, "degree detail line")
	}
	section := truncateSection(strings.Join(lines, "\n"))
	assert.LessOrEqual(t, len(strings.Split(section, "\n")), 20)
}

func TestTruncateSection_HorizontalRule(t *testing.T) {
	body := "B.Tech 2016-2020\n----\nafter the rule"
	section := truncateSection(body)
	assert.NotContains(t, section, "after the rule")
}
