package skills

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_SkillsSection(t *testing.T) {
	text := strings.Join([]string{
		"John Doe",
		"SKILLS",
		"Python, React, MySQL",
		"EXPERIENCE",
		"worked on java services",
	}, "\n")

	found := Extract(text)
	assert.Equal(t, []string{"mysql", "python", "react"}, found)
	// "sql" alone must not match inside "mysql".
	assert.NotContains(t, found, "sql")
	// The experience section is outside the located skills body.
	assert.NotContains(t, found, "java")
}

func TestExtract_WholeDocumentFallback(t *testing.T) {
	// No skills header anywhere; the whole document is scanned.
	text := "built services in Go and Python, deployed with Docker on AWS"
	found := Extract(text)
	assert.Contains(t, found, "go")
	assert.Contains(t, found, "python")
	assert.Contains(t, found, "docker")
	assert.Contains(t, found, "aws")
}

func TestExtract_EmptySectionFallsBack(t *testing.T) {
	// Skills header present but the section names nothing from the
	// taxonomy; scanning falls back to the full text.
	text := strings.Join([]string{
		"SKILLS",
		"communication, leadership",
		"EXPERIENCE",
		"maintained Kubernetes clusters",
	}, "\n")

	assert.Contains(t, Extract(text), "kubernetes")
}

func TestExtract_SpecialCharacterKeywords(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected string
	}{
		{"c plus plus", "Skills\nproficient in C++ and more", "c++"},
		{"c sharp", "Skills\nC# backend services", "c#"},
		{"dot net", "Skills\n.NET framework", ".net"},
		{"ci cd", "Skills\nCI/CD pipelines", "ci/cd"},
		{"power bi phrase", "Skills\nPower BI dashboards", "power bi"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Contains(t, Extract(tc.text), tc.expected)
		})
	}
}

func TestExtract_WholeWordOnly(t *testing.T) {
	found := Extract("Skills\nDjango templates and categorical data")
	assert.Contains(t, found, "django")
	// "go" must not match inside "Django" or "categorical".
	assert.NotContains(t, found, "go")
}

func TestExtract_ResultsAreSortedAndDeduplicated(t *testing.T) {
	found := Extract("Skills\nreact react flask django react")
	require.Equal(t, []string{"django", "flask", "react"}, found)
}

func TestExtract_NoSkills(t *testing.T) {
	assert.Empty(t, Extract(""))
	assert.Empty(t, Extract("nothing technical here"))
}

func TestExtract_AllResultsComeFromTaxonomy(t *testing.T) {
	known := make(map[string]bool)
	for _, words := range taxonomy {
		for _, kw := range words {
			known[strings.ToLower(kw)] = true
		}
	}

	text := "Skills\npython java c++ mysql docker aws tensorflow spring boot"
	for _, skill := range Extract(text) {
		assert.True(t, known[skill], "unknown skill %q", skill)
	}
}
