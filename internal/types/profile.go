// Package types defines the shared data structures for parsed resume profiles.
package types

// NotFound is the sentinel value used for contact fields that could not be
// resolved from the document.
const NotFound = "Not Found"

// ContactRecord holds the contact channels extracted from one resume.
// Each field is either a resolved value or the NotFound sentinel.
type ContactRecord struct {
	Name     string `json:"Name"`
	Email    string `json:"Email"`
	Phone    string `json:"Phone"`
	Location string `json:"Location"`
}

// NewContactRecord returns a ContactRecord with every field set to NotFound.
func NewContactRecord() ContactRecord {
	return ContactRecord{
		Name:     NotFound,
		Email:    NotFound,
		Phone:    NotFound,
		Location: NotFound,
	}
}

// ParsedProfile aggregates everything extracted from one resume. Education
// and experience entries are free-text summaries in document order; skills
// are lowercase taxonomy keywords.
type ParsedProfile struct {
	ContactDetails ContactRecord `json:"contact_details"`
	Education      []string      `json:"education"`
	Experience     []string      `json:"experience"`
	Skills         []string      `json:"skills"`
}

// NewParsedProfile returns a ParsedProfile with NotFound contact fields and
// empty lists.
func NewParsedProfile() ParsedProfile {
	return ParsedProfile{
		ContactDetails: NewContactRecord(),
		Education:      []string{},
		Experience:     []string{},
		Skills:         []string{},
	}
}

// ScoreReport is the completeness score computed from a ParsedProfile.
type ScoreReport struct {
	Score      int    `json:"score"`
	MaxScore   int    `json:"max_score"`
	Percentage string `json:"percentage"`
}

// FileResult is the per-file object returned by the upload endpoint and the
// analyze command.
type FileResult struct {
	Filename   string        `json:"filename"`
	ParsedData ParsedProfile `json:"parsed_data"`
	ATSScore   ScoreReport   `json:"ats_score"`
}
