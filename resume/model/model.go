package model

// Resume is the canonical resume record. Every field is optional on input;
// Normalize produces a structurally complete copy safe to hand to a renderer.
type Resume struct {
	ID              string           `json:"id,omitempty"`
	Title           string           `json:"title,omitempty"`
	Template        string           `json:"template,omitempty"`
	ColorPalette    []string         `json:"colorPalette,omitempty"`
	ProfileInfo     ProfileInfo      `json:"profileInfo"`
	ContactInfo     ContactInfo      `json:"contactInfo"`
	WorkExperiences []WorkExperience `json:"workExperiences"`
	Education       []Education      `json:"education"`
	Skills          []Rated          `json:"skills"`
	Projects        []Project        `json:"projects"`
	Certifications  []Certification  `json:"certifications"`
	Languages       []Rated          `json:"languages"`
	Interests       []Interest       `json:"interests"`
}

// ProfileInfo holds the identity block shown at the top of every template.
type ProfileInfo struct {
	ProfilePictureURL string `json:"profilePictureUrl,omitempty"`
	FullName          string `json:"fullName,omitempty"`
	Designation       string `json:"designation,omitempty"`
	Summary           string `json:"summary,omitempty"`
}

// ContactInfo holds reachability details. Unlike ProfileInfo, missing
// values stay empty so an unfilled contact block is omitted from output.
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
}

// WorkExperience is one employment entry. Description is free text split
// into bullet points at render time.
type WorkExperience struct {
	Company     string `json:"company,omitempty"`
	Role        string `json:"role,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Description string `json:"description,omitempty"`
}

// Education is one study entry.
type Education struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
}

// Rated is a named item with a 0-5 proficiency. Zero means "do not show
// an indicator", not "beginner".
type Rated struct {
	Name        string `json:"name,omitempty"`
	Proficiency int    `json:"proficiency,omitempty"`
}

// Project is one portfolio entry.
type Project struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	GitHub      string `json:"github,omitempty"`
	LiveDemo    string `json:"liveDemo,omitempty"`
}

// Certification is one credential entry.
type Certification struct {
	Title  string `json:"title,omitempty"`
	Issuer string `json:"issuer,omitempty"`
	Year   string `json:"year,omitempty"`
}

// Interest is a plain label.
type Interest struct {
	Name string `json:"name,omitempty"`
}
