// Package skills matches a fixed taxonomy of skill keywords against resume
// text. Matching is strict: whole words and contiguous phrases only, no
// fuzzy or partial matches.
package skills

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-scanner/internal/section"
)

// taxonomy is the fixed category -> keyword table. Keywords repeated across
// categories collapse naturally under set semantics.
var taxonomy = map[string][]string{
	"Programming Languages": {
		"python", "java", "c++", "c#", "javascript", "typescript",
		"ruby", "php", "swift", "kotlin", "go", "rust", "scala",
	},
	"Web Technologies": {
		"html", "css", "react", "angular", "vue", "django",
		"flask", "nodejs", "express", "spring", ".net", "asp.net",
	},
	"Databases": {
		"mysql", "postgresql", "mongodb", "sqlite", "oracle",
		"sql", "nosql", "redis", "cassandra", "power bi", "excel", "tableau",
	},
	"Cloud Platforms": {
		"aws", "azure", "google cloud", "heroku", "digital ocean",
		"amazon web services", "cloud computing",
	},
	"DevOps & Tools": {
		"docker", "kubernetes", "jenkins", "git", "github",
		"gitlab", "ansible", "terraform", "ci/cd",
	},
	"Machine Learning & AI": {
		"tensorflow", "pytorch", "scikit-learn", "keras",
		"machine learning", "deep learning", "nlp", "computer vision",
	},
	"Frameworks": {
		"spring boot", "django", "flask", "react", "angular",
		"vue", "laravel", "symfony", "express",
	},
}

// sectionHeaders are the phrases that introduce a skills section.
var sectionHeaders = []string{"Skills", "Technical Skills", "Competencies", "Expertise"}

// keywordMatchers maps each taxonomy keyword to its whole-word matcher,
// built once at init.
var keywordMatchers = buildMatchers()

func buildMatchers() map[string]*regexp.Regexp {
	matchers := make(map[string]*regexp.Regexp)
	for _, words := range taxonomy {
		for _, kw := range words {
			kw = strings.ToLower(kw)
			if _, ok := matchers[kw]; ok {
				continue
			}
			matchers[kw] = regexp.MustCompile(boundedPattern(kw))
		}
	}
	return matchers
}

// boundedPattern wraps a keyword in \b anchors. A \b next to a non-word
// character never matches ("c++", "c#", ".net"), so anchors are applied
// only on word-character edges.
func boundedPattern(kw string) string {
	pattern := regexp.QuoteMeta(kw)
	if isWordChar(kw[0]) {
		pattern = `\b` + pattern
	}
	if isWordChar(kw[len(kw)-1]) {
		pattern += `\b`
	}
	return pattern
}

func isWordChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// Extract returns the sorted set of taxonomy keywords present in the
// document. The skills section is searched first; when it yields nothing,
// the whole document is scanned with the same matcher.
func Extract(text string) []string {
	if body, _ := section.Locate(text, sectionHeaders); body != "" {
		if found := match(body); len(found) > 0 {
			return found
		}
	}
	return match(text)
}

func match(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for kw, matcher := range keywordMatchers {
		if matcher.MatchString(lower) {
			found = append(found, kw)
		}
	}
	if found == nil {
		return []string{}
	}
	// Map iteration order is random; sort for a stable result.
	sort.Strings(found)
	return found
}
