// Package extractor classifies résumé text into profile fields with a fixed,
// order-sensitive set of regex heuristics. It never fails: a field with no
// match is simply empty.
package extractor

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/hemant-mistri/portfolio/internal/model"
	"github.com/hemant-mistri/portfolio/internal/textsource"
)

type Extractor struct{}

func New() *Extractor {
	return &Extractor{}
}

// ExtractText is a convenience wrapper for callers holding plain text.
func (e *Extractor) ExtractText(text string) model.ExtractedProfile {
	return e.Extract(textsource.FromText(text))
}

// Extract runs every heuristic over doc. Emails and phones scan the full
// text so matches spanning line breaks are kept; everything else works on
// the trimmed lines.
func (e *Extractor) Extract(doc textsource.Document) model.ExtractedProfile {
	p := model.NewExtractedProfile()
	lines := doc.Lines

	p.Emails = uniqueMatches(emailPattern, doc.Text)
	p.Phones = uniqueMatches(phonePattern, doc.Text)
	p.Name = detectName(lines)
	p.TitleCandidates = limit(filterLines(lines, titlePattern), MaxTitleCandidates)
	p.Education = filterLines(lines, educationPattern)
	p.Skills = detectSkills(lines)
	p.Projects = detectProjects(lines)
	p.TextPreview = strings.Join(lines[:min(len(lines), PreviewLines)], "\n")

	return p
}

func detectName(lines []string) string {
	for _, l := range lines {
		if namePattern.MatchString(l) {
			return l
		}
	}
	if len(lines) > 0 {
		return lines[0]
	}
	return ""
}

// detectSkills prefers an explicit skills section; without one it collects
// lines mentioning known technologies.
func detectSkills(lines []string) []string {
	if idx := indexOf(lines, skillsSectionPattern); idx >= 0 {
		end := min(idx+skillsSectionLines, len(lines))
		section := make([]string, 0, end-idx)
		section = append(section, skillsLabelPattern.ReplaceAllString(lines[idx], ""))
		section = append(section, lines[idx+1:end]...)
		return limit(splitSkills(strings.Join(section, " ")), MaxSkills)
	}

	tech := filterLines(lines, techKeywordPattern)
	return limit(dedupe(splitSkills(strings.Join(tech, " "))), MaxSkills)
}

func detectProjects(lines []string) []string {
	idx := indexOf(lines, projectsPattern)
	if idx < 0 {
		return []string{}
	}
	end := min(idx+ProjectWindow, len(lines))
	projects := []string{}
	for _, l := range lines[idx:end] {
		if utf8.RuneCountInString(strings.TrimSpace(l)) > MinProjectLineLen {
			projects = append(projects, l)
		}
	}
	return projects
}

func splitSkills(s string) []string {
	out := []string{}
	for _, part := range skillSeparator.Split(s, -1) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func uniqueMatches(re *regexp.Regexp, text string) []string {
	return dedupe(re.FindAllString(text, -1))
}

func filterLines(lines []string, re *regexp.Regexp) []string {
	out := []string{}
	for _, l := range lines {
		if re.MatchString(l) {
			out = append(out, l)
		}
	}
	return out
}

func indexOf(lines []string, re *regexp.Regexp) int {
	for i, l := range lines {
		if re.MatchString(l) {
			return i
		}
	}
	return -1
}

// dedupe keeps the first occurrence of each string.
func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}

func limit(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
