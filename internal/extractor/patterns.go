package extractor

import "regexp"

// ProjectWindow counts the heading line itself, as does skillsSectionLines.
const (
	MaxTitleCandidates = 6
	MaxSkills          = 30
	ProjectWindow      = 12
	MinProjectLineLen  = 10
	PreviewLines       = 200
	skillsSectionLines = 3
)

// Whitespace classes include \p{Zs} so no-break spaces from PDF text count.
var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`\+?\d[\d\s\p{Zs}().-]{6,}\d`)

	namePattern      = regexp.MustCompile(`^[A-Z][a-z]+[\s\p{Zs}]+[A-Z][a-z]+`)
	titlePattern     = regexp.MustCompile(`(?i)developer|engineer|frontend|javascript|full ?stack|designer`)
	educationPattern = regexp.MustCompile(`(?i)b\.?tech|bachelor|master|m\.?tech|degree|university|institute`)

	skillsSectionPattern = regexp.MustCompile(`(?i)skills|technologies|technical skills|stack`)
	skillsLabelPattern   = regexp.MustCompile(`(?i)^(?:technical[\s\p{Zs}]+skills|key[\s\p{Zs}]+skills|skills|technologies|tech[\s\p{Zs}]+stack|stack)[\s\p{Zs}]*(?:[:\-–][\s\p{Zs}]*|$)`)
	techKeywordPattern   = regexp.MustCompile(`(?i)\b(?:React|JavaScript|TypeScript|HTML|CSS|Node|Express|Mongo|SQL|Tailwind|TailwindCSS|Redux|Git|Docker|AWS|Firebase)\b`)
	skillSeparator       = regexp.MustCompile(`[,;|]`)

	projectsPattern = regexp.MustCompile(`(?i)projects|experience|work experience`)
)
