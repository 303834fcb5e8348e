package extractor

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBasicResume(t *testing.T) {
	p := New().ExtractText("John Smith\nSoftware Engineer\nSkills: React, Node, SQL")

	assert.Equal(t, "John Smith", p.Name)
	assert.Equal(t, []string{"Software Engineer"}, p.TitleCandidates)
	assert.Equal(t, []string{"React", "Node", "SQL"}, p.Skills)
	assert.Empty(t, p.Emails)
	assert.Empty(t, p.Phones)
	assert.Empty(t, p.Projects)
	assert.Equal(t, "John Smith\nSoftware Engineer\nSkills: React, Node, SQL", p.TextPreview)
}

func TestExtractEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   \n\n\t  \r\n"} {
		p := New().ExtractText(text)

		assert.Equal(t, "", p.Name)
		assert.Equal(t, "", p.TextPreview)
		for _, field := range [][]string{p.TitleCandidates, p.Emails, p.Phones, p.Education, p.Skills, p.Projects} {
			assert.NotNil(t, field)
			assert.Empty(t, field)
		}
	}
}

func TestEmptyProfileSerializesArrays(t *testing.T) {
	raw, err := json.Marshal(New().ExtractText(""))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"name": "",
		"titleCandidates": [],
		"emails": [],
		"phones": [],
		"education": [],
		"skills": [],
		"projects": [],
		"textPreview": ""
	}`, string(raw))
}

func TestEmailsDedupedInOrder(t *testing.T) {
	text := "contact: a@b.com, A@b.com a@b.com\nalt x.y+z@sub.example.org\nbroken@nodot"

	p := New().ExtractText(text)

	assert.Equal(t, []string{"a@b.com", "A@b.com", "x.y+z@sub.example.org"}, p.Emails)
}

func TestPhonesDedupedInOrder(t *testing.T) {
	text := "Phone: +1 415-555-0100\nAlt: 415.555.0199\nPhone: +1 415-555-0100\nExt: 12345"

	p := New().ExtractText(text)

	assert.Equal(t, []string{"+1 415-555-0100", "415.555.0199"}, p.Phones)
}

func TestNoBreakSpaces(t *testing.T) {
	p := New().ExtractText("John\u00a0Smith\nMobile: +91\u00a098765\u00a043210\nSkills:\u00a0Go, SQL")

	assert.Equal(t, "John\u00a0Smith", p.Name)
	assert.Equal(t, []string{"+91\u00a098765\u00a043210"}, p.Phones)
	assert.Equal(t, []string{"Go", "SQL"}, p.Skills)
}

func TestNameDetection(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"JOHN SMITH\nJane Doe\nEngineer", "Jane Doe"},
		{"curriculum vitae\nsoftware engineer", "curriculum vitae"},
		{"Hemant Mistri - Frontend Developer", "Hemant Mistri - Frontend Developer"},
		{"Resume\nAda  Lovelace", "Ada  Lovelace"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, New().ExtractText(tc.text).Name, tc.text)
	}
}

func TestTitleCandidatesCapped(t *testing.T) {
	var lines []string
	for i := 0; i < 8; i++ {
		lines = append(lines, fmt.Sprintf("Developer role %d", i))
	}
	lines = append(lines, "Fullstack work")

	p := New().ExtractText(strings.Join(lines, "\n"))

	require.Len(t, p.TitleCandidates, MaxTitleCandidates)
	assert.Equal(t, "Developer role 0", p.TitleCandidates[0])
	assert.Equal(t, "Developer role 5", p.TitleCandidates[5])
}

func TestTitleCandidatesMatchVariants(t *testing.T) {
	p := New().ExtractText("Full Stack Engineer\nfullstack\nUI Designer\nJavaScript Ninja\nChef")

	assert.Equal(t, []string{"Full Stack Engineer", "fullstack", "UI Designer", "JavaScript Ninja"}, p.TitleCandidates)
}

func TestEducation(t *testing.T) {
	text := "B.Tech in Computer Science\nBTech\nMaster of Arts\nUniversity of Mumbai\nHobbies: chess\nM.Tech\nIndian Institute of Science"

	p := New().ExtractText(text)

	assert.Equal(t, []string{
		"B.Tech in Computer Science",
		"BTech",
		"Master of Arts",
		"University of Mumbai",
		"M.Tech",
		"Indian Institute of Science",
	}, p.Education)
}

func TestSkillsSectionTakesHeadingAndNextTwoLines(t *testing.T) {
	text := "Jane Doe\nTechnical Skills\nGo, Rust\nPython | SQL\nDocker, K8s"

	p := New().ExtractText(text)

	assert.Equal(t, []string{"Go", "Rust Python", "SQL"}, p.Skills)
}

func TestSkillsSectionKeepsDuplicates(t *testing.T) {
	p := New().ExtractText("Skills: React, React; Node")

	assert.Equal(t, []string{"React", "React", "Node"}, p.Skills)
}

func TestSkillsSectionNearEndOfDocument(t *testing.T) {
	p := New().ExtractText("Jane Doe\nTechnologies - Vue, Svelte")

	assert.Equal(t, []string{"Vue", "Svelte"}, p.Skills)
}

func TestSkillsSectionMatchesStackInTitleLine(t *testing.T) {
	p := New().ExtractText("Jane Doe\nFull Stack Developer\nReact, Node")

	assert.Equal(t, []string{"Full Stack Developer React", "Node"}, p.Skills)
}

func TestSkillsSectionCapped(t *testing.T) {
	var items []string
	for i := 0; i < 50; i++ {
		items = append(items, fmt.Sprintf("tool%d", i))
	}

	p := New().ExtractText("Skills: " + strings.Join(items, ", "))

	require.Len(t, p.Skills, MaxSkills)
	assert.Equal(t, "tool0", p.Skills[0])
	assert.Equal(t, "tool29", p.Skills[29])
}

func TestSkillsKeywordFallback(t *testing.T) {
	p := New().ExtractText("Jane Doe\nBuilt with React and Docker\nLikes hiking")

	require.Len(t, p.Skills, 1)
	assert.Contains(t, p.Skills[0], "React")
	assert.Contains(t, p.Skills[0], "Docker")
}

func TestSkillsKeywordFallbackDedupes(t *testing.T) {
	p := New().ExtractText("React, Node,\nReact, Docker\nreactive systems")

	assert.Equal(t, []string{"React", "Node", "Docker"}, p.Skills)
}

func TestSkillsKeywordFallbackIsWholeWord(t *testing.T) {
	p := New().ExtractText("Jane Doe\nReactive programming\nNodes and graphs")

	assert.Empty(t, p.Skills)
}

func TestSkillsKeywordFallbackCapped(t *testing.T) {
	var items []string
	for i := 0; i < 40; i++ {
		items = append(items, fmt.Sprintf("React %d", i))
	}

	p := New().ExtractText(strings.Join(items, ", "))

	assert.Len(t, p.Skills, MaxSkills)
}

func TestProjectsWindow(t *testing.T) {
	lines := []string{"Jane Doe", "Projects"}
	for i := 0; i < 15; i++ {
		lines = append(lines, fmt.Sprintf("Project item number %02d", i))
	}

	p := New().ExtractText(strings.Join(lines, "\n"))

	require.Len(t, p.Projects, ProjectWindow-1)
	assert.Equal(t, "Project item number 00", p.Projects[0])
	assert.Equal(t, "Project item number 10", p.Projects[len(p.Projects)-1])
}

func TestProjectsDropsShortLines(t *testing.T) {
	p := New().ExtractText("Work Experience\nSenior Engineer at Acme Corp\nTodo app\n2019-2023")

	assert.Equal(t, []string{"Work Experience", "Senior Engineer at Acme Corp"}, p.Projects)
}

func TestPreviewLimitedToFixedLineCount(t *testing.T) {
	var lines []string
	for i := 0; i < PreviewLines+50; i++ {
		lines = append(lines, fmt.Sprintf("line %d", i))
	}

	p := New().ExtractText(strings.Join(lines, "\n"))

	got := strings.Split(p.TextPreview, "\n")
	require.Len(t, got, PreviewLines)
	assert.Equal(t, "line 0", got[0])
	assert.Equal(t, fmt.Sprintf("line %d", PreviewLines-1), got[PreviewLines-1])
}

func TestInvariantsHoldForArbitraryText(t *testing.T) {
	vocab := []string{
		"React", "Node", "skills", "Developer", "engineer", "a@b.com", "c@d.io",
		"+1 415 555 0100", "555-0199-22", ",", ";", "|", "Projects", "University",
		"Jane Doe", "stack", "Docker", "AWS", "\n", "\n", "lorem", "ipsum",
	}
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		var b strings.Builder
		n := rng.Intn(400)
		for j := 0; j < n; j++ {
			b.WriteString(vocab[rng.Intn(len(vocab))])
			b.WriteString(" ")
		}

		p := New().ExtractText(b.String())

		assert.LessOrEqual(t, len(p.Skills), MaxSkills)
		assert.LessOrEqual(t, len(p.TitleCandidates), MaxTitleCandidates)
		assertUnique(t, p.Emails)
		assertUnique(t, p.Phones)
		for _, e := range p.Emails {
			assert.Regexp(t, emailPattern, e)
		}
		for _, ph := range p.Phones {
			assert.Regexp(t, phonePattern, ph)
		}
	}
}

func assertUnique(t *testing.T, items []string) {
	t.Helper()
	seen := map[string]bool{}
	for _, it := range items {
		assert.False(t, seen[it], "duplicate %q", it)
		seen[it] = true
	}
}
