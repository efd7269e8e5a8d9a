package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-scanner/internal/types"
)

func TestExtractName(t *testing.T) {
	testCases := []struct {
		name     string
		filename string
		expected string
	}{
		{"basic", "John_Doe_Resume_2023.pdf", "John Doe"},
		{"hyphens", "jane-smith-cv.pdf", "Jane Smith"},
		{"stop words everywhere", "Resume_Updated_Final_Anita_Rao.pdf", "Anita Rao"},
		{"digits removed", "raj_kumar_2021_v2.pdf", "Raj Kumar V2"},
		{"parenthesized digit fully stripped", "Priya(1)_resume.pdf", "Priya"},
		{"only stop words", "resume_cv_final.pdf", ""},
		{"no extension", "arun_profile", "Arun"},
		{"already clean", "Maria Lopez.pdf", "Maria Lopez"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExtractName(tc.filename))
		})
	}
}

func TestExtractName_Idempotent(t *testing.T) {
	// Re-running on the cleaned output must change nothing further.
	filenames := []string{
		"John_Doe_Resume_2023.pdf",
		"jane-smith-cv.pdf",
		"Resume_Updated_Final_Anita_Rao.pdf",
	}
	for _, filename := range filenames {
		first := ExtractName(filename)
		assert.Equal(t, first, ExtractName(first))
	}
}

func TestExtractEmail(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected string
	}{
		{"plain", "Contact: jane.smith@example.com", "jane.smith@example.com"},
		{"first wins", "a@b.com then c@d.org", "a@b.com"},
		{"glued www preamble", "reach mewww.example.com john@work.io", "john@work.io"},
		{"no email", "no contact details here", ""},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, extractEmail(tc.text))
		})
	}
}

func TestExtractPhone_PatternBank(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected string
	}{
		{"parenthesized area code", "Call (555) 123-4567 now", "(555) 123-4567"},
		{"plain triplets", "phone: 555-123-4567", "555-123-4567"},
		{"long digit run takes first ten digits", "num 919876543210", "9198765432"},
		{"country prefix", "call +91 9876543210 now", "+91 9876543210"},
		{"none", "no numbers at all", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, extractPhone(tc.text))
		})
	}
}

func TestPhoneLibraryFallback_InternationalOnly(t *testing.T) {
	// A number the pattern bank cannot see (spaced short groups) but the
	// library recognizes in international format.
	got := phoneLibraryFallback("office +44 20 7946 0958 ext")
	assert.NotEmpty(t, got)
	assert.Contains(t, got, "+44")
}

func TestPhoneLibraryFallback_NothingFound(t *testing.T) {
	assert.Empty(t, phoneLibraryFallback("no digits here"))
	assert.Empty(t, phoneLibraryFallback(""))
}

func TestMatchLocation(t *testing.T) {
	testCases := []struct {
		name     string
		lines    []string
		expected string
	}{
		{"simple city", []string{"John Doe", "Bangalore"}, "Bangalore, Karnataka"},
		{"city inside line", []string{"Currently based in Chennai, open to relocation"}, "Chennai, Tamil Nadu"},
		{"first line wins", []string{"Mumbai office", "Delhi branch"}, "Mumbai, Maharashtra"},
		{"leftmost on same line", []string{"Delhi and Mumbai"}, "Delhi, Delhi"},
		{"word boundary", []string{"Punekar Solutions"}, ""},
		{"unknown city", []string{"Springfield"}, ""},
		{"empty", nil, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, matchLocation(tc.lines))
		})
	}
}

func TestMatchLocation_LongestWinsAtSameOffset(t *testing.T) {
	// "Vasco da Gama" and "Vasco" both match at the same offset; the longer
	// name is the deterministic winner.
	assert.Equal(t, "Vasco da Gama, Goa", matchLocation([]string{"Vasco da Gama port"}))
}

func TestMatchLocation_DuplicateCityLaterRegionWins(t *testing.T) {
	// Aurangabad appears under Maharashtra and Bihar; the later table entry
	// owns the flattened key.
	assert.Equal(t, "Aurangabad, Bihar", matchLocation([]string{"Aurangabad"}))
}

func TestExtract_AllNotFoundOnEmptyInput(t *testing.T) {
	record := Extract("", "")
	assert.Equal(t, types.NotFound, record.Name)
	assert.Equal(t, types.NotFound, record.Email)
	assert.Equal(t, types.NotFound, record.Phone)
	assert.Equal(t, types.NotFound, record.Location)
}

func TestExtract_FullRecord(t *testing.T) {
	text := "Jane Smith\njane.smith@example.com\n(555) 123-4567\nBangalore, India"
	record := Extract(text, "Jane_Smith_Resume.pdf")

	assert.Equal(t, "Jane Smith", record.Name)
	assert.Equal(t, "jane.smith@example.com", record.Email)
	assert.Equal(t, "(555) 123-4567", record.Phone)
	assert.Equal(t, "Bangalore, Karnataka", record.Location)
}
