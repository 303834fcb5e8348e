package model

// ExtractedProfile is the structured record produced from résumé text.
// Slices are always non-nil so they serialize as [] rather than null.
type ExtractedProfile struct {
	Name            string   `json:"name"`
	TitleCandidates []string `json:"titleCandidates"`
	Emails          []string `json:"emails"`
	Phones          []string `json:"phones"`
	Education       []string `json:"education"`
	Skills          []string `json:"skills"`
	Projects        []string `json:"projects"`
	TextPreview     string   `json:"textPreview"`
}

func NewExtractedProfile() ExtractedProfile {
	return ExtractedProfile{
		TitleCandidates: []string{},
		Emails:          []string{},
		Phones:          []string{},
		Education:       []string{},
		Skills:          []string{},
		Projects:        []string{},
	}
}
