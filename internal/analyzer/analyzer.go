// Package analyzer orchestrates the per-document extractors and the scorer.
package analyzer

import (
	"log"

	"github.com/jonathan/resume-scanner/internal/contact"
	"github.com/jonathan/resume-scanner/internal/education"
	"github.com/jonathan/resume-scanner/internal/experience"
	"github.com/jonathan/resume-scanner/internal/scoring"
	"github.com/jonathan/resume-scanner/internal/section"
	"github.com/jonathan/resume-scanner/internal/skills"
	"github.com/jonathan/resume-scanner/internal/types"
)

// Analyze runs every extractor over the document text and assembles the
// parsed profile. The text is normalized once and every extractor sees the
// same normalized view. Each field is extracted independently: a fault in
// one extractor degrades that field to its empty value and leaves the rest
// intact.
func Analyze(text, filename string) types.ParsedProfile {
	text = section.Normalize(text)
	profile := types.NewParsedProfile()

	runGuarded("contact", func() {
		profile.ContactDetails = contact.Extract(text, filename)
	})
	runGuarded("education", func() {
		profile.Education = education.Extract(text)
	})
	runGuarded("experience", func() {
		profile.Experience = experience.Extract(text)
	})
	runGuarded("skills", func() {
		profile.Skills = skills.Extract(text)
	})

	return profile
}

// AnalyzeFile bundles a full analysis with its completeness score into the
// per-file result shape served by the upload endpoint.
func AnalyzeFile(text, filename string) types.FileResult {
	profile := Analyze(text, filename)
	return types.FileResult{
		Filename:   filename,
		ParsedData: profile,
		ATSScore:   scoring.Score(profile),
	}
}

func runGuarded(field string, extract func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("extractor %s failed, leaving field empty: %v", field, r)
		}
	}()
	extract()
}
