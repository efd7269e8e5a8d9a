package section

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_LineEndings(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"crlf", "a\r\nb", "a\nb"},
		{"bare cr", "a\rb", "a\nb"},
		{"mixed", "a\r\nb\rc\nd", "a\nb\nc\nd"},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Normalize(tc.input))
		})
	}
}

func TestNormalize_CollapsesExcessBlankLines(t *testing.T) {
	input := "a\n\n\n\n\n\nb"
	assert.Equal(t, "a\n\n\nb", Normalize(input))

	// Two blank lines are preserved; paragraph heuristics rely on them.
	assert.Equal(t, "a\n\n\nb", Normalize("a\n\n\nb"))
	assert.Equal(t, "a\n\nb", Normalize("a\n\nb"))
}

func TestCollapseNewlines(t *testing.T) {
	assert.Equal(t, "a\nb\nc", CollapseNewlines("a\n\n\nb\nc\n"))
	assert.Equal(t, "", CollapseNewlines("\n\n"))
}

func TestLocate_BasicSection(t *testing.T) {
	text := strings.Join([]string{
		"John Doe",
		"SKILLS",
		"Python, Go",
		"SQL",
		"EDUCATION",
		"Some University",
	}, "\n")

	body, end := Locate(text, []string{"Skills", "Technical Skills"})
	assert.Equal(t, "Python, Go\nSQL", body)
	assert.Equal(t, 4, end)
}

func TestLocate_NoHeader(t *testing.T) {
	body, end := Locate("just some text\nwith no headers", []string{"Skills"})
	assert.Empty(t, body)
	assert.Equal(t, NotFound, end)
}

func TestLocate_WholeWordOnly(t *testing.T) {
	// "Skills" inside "Upskilled" must not start a section.
	body, end := Locate("I Upskilled myself\nnothing else", []string{"Skills"})
	assert.Empty(t, body)
	assert.Equal(t, NotFound, end)
}

func TestLocate_OwnHeaderDoesNotTerminate(t *testing.T) {
	// A recurrence of the requested header must not end the section; only a
	// competing header does.
	text := strings.Join([]string{
		"SKILLS",
		"Python",
		"More Skills here",
		"Go",
		"PROJECTS",
		"something",
	}, "\n")

	body, end := Locate(text, []string{"Skills"})
	assert.Equal(t, "Python\nMore Skills here\nGo", body)
	assert.Equal(t, 4, end)
}

func TestLocate_RunsToEndWithoutTerminator(t *testing.T) {
	text := "SKILLS\nPython\nGo"
	body, end := Locate(text, []string{"Skills"})
	assert.Equal(t, "Python\nGo", body)
	assert.Equal(t, 3, end)
}

func TestLocate_EmptyInput(t *testing.T) {
	body, end := Locate("", []string{"Skills"})
	assert.Empty(t, body)
	assert.Equal(t, NotFound, end)
}

func TestLocate_BlankLinesKeptInBody(t *testing.T) {
	text := "SKILLS\nPython\n\nGo\nEDUCATION"
	body, _ := Locate(text, []string{"Skills"})
	assert.Equal(t, "Python\n\nGo", body)
}
