package model

import "strings"

// Placeholder text substituted for missing scalar fields. Renderers rely on
// these being non-empty so a freshly created record still produces a
// complete document.
const (
	PlaceholderFullName    = "Your Name Here"
	PlaceholderDesignation = "Your Designation"
	PlaceholderSummary     = "A short professional summary about yourself."
	PlaceholderCompany     = "Company Name"
	PlaceholderRole        = "Your Role"
	PlaceholderDegree      = "Degree"
	PlaceholderInstitution = "Institution Name"
	PlaceholderSkill       = "Skill"
	PlaceholderLanguage    = "Language"
	PlaceholderProjectName = "Project Title"
	PlaceholderProjectDesc = "Project Description"
	PlaceholderCertTitle   = "Certification Title"
	PlaceholderCertIssuer  = "Issuer"
)

// Per-section item caps. Excess trailing entries are dropped, order is
// preserved.
const (
	MaxWorkExperiences = 6
	MaxEducation       = 4
	MaxSkills          = 12
	MaxProjects        = 5
	MaxCertifications  = 6
	MaxLanguages       = 6
	MaxInterests       = 8
)

const (
	// MinProficiency..MaxProficiency is the domain of Rated.Proficiency.
	MinProficiency = 0
	MaxProficiency = 5
)

// Normalize returns a structurally complete copy of raw: profile scalars
// fall back to placeholders, contact scalars to empty strings, list entries
// with nothing to display are dropped, surviving entries get per-field
// defaults, and each list is truncated to its cap. Normalize never mutates
// its input and is idempotent.
func Normalize(raw Resume) Resume {
	out := raw

	out.ProfileInfo = ProfileInfo{
		ProfilePictureURL: raw.ProfileInfo.ProfilePictureURL,
		FullName:          defaultString(raw.ProfileInfo.FullName, PlaceholderFullName),
		Designation:       defaultString(raw.ProfileInfo.Designation, PlaceholderDesignation),
		Summary:           defaultString(raw.ProfileInfo.Summary, PlaceholderSummary),
	}

	out.WorkExperiences = normalizeWork(raw.WorkExperiences)
	out.Education = normalizeEducation(raw.Education)
	out.Skills = normalizeRated(raw.Skills, PlaceholderSkill, MaxSkills)
	out.Projects = normalizeProjects(raw.Projects)
	out.Certifications = normalizeCertifications(raw.Certifications)
	out.Languages = normalizeRated(raw.Languages, PlaceholderLanguage, MaxLanguages)
	out.Interests = normalizeInterests(raw.Interests)

	return out
}

func normalizeWork(items []WorkExperience) []WorkExperience {
	out := make([]WorkExperience, 0, len(items))
	for _, item := range items {
		if !anySet(item.Company, item.Role, item.StartDate, item.EndDate, item.Description) {
			continue
		}
		item.Company = defaultString(item.Company, PlaceholderCompany)
		item.Role = defaultString(item.Role, PlaceholderRole)
		out = append(out, item)
		if len(out) == MaxWorkExperiences {
			break
		}
	}
	return out
}

func normalizeEducation(items []Education) []Education {
	out := make([]Education, 0, len(items))
	for _, item := range items {
		if !anySet(item.Degree, item.Institution, item.StartDate, item.EndDate) {
			continue
		}
		item.Degree = defaultString(item.Degree, PlaceholderDegree)
		item.Institution = defaultString(item.Institution, PlaceholderInstitution)
		out = append(out, item)
		if len(out) == MaxEducation {
			break
		}
	}
	return out
}

func normalizeRated(items []Rated, namePlaceholder string, limit int) []Rated {
	out := make([]Rated, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.Name) == "" && item.Proficiency <= 0 {
			continue
		}
		item.Name = defaultString(item.Name, namePlaceholder)
		item.Proficiency = clampProficiency(item.Proficiency)
		out = append(out, item)
		if len(out) == limit {
			break
		}
	}
	return out
}

func normalizeProjects(items []Project) []Project {
	out := make([]Project, 0, len(items))
	for _, item := range items {
		if !anySet(item.Title, item.Description, item.GitHub, item.LiveDemo) {
			continue
		}
		item.Title = defaultString(item.Title, PlaceholderProjectName)
		item.Description = defaultString(item.Description, PlaceholderProjectDesc)
		out = append(out, item)
		if len(out) == MaxProjects {
			break
		}
	}
	return out
}

func normalizeCertifications(items []Certification) []Certification {
	out := make([]Certification, 0, len(items))
	for _, item := range items {
		if !anySet(item.Title, item.Issuer, item.Year) {
			continue
		}
		item.Title = defaultString(item.Title, PlaceholderCertTitle)
		item.Issuer = defaultString(item.Issuer, PlaceholderCertIssuer)
		out = append(out, item)
		if len(out) == MaxCertifications {
			break
		}
	}
	return out
}

func normalizeInterests(items []Interest) []Interest {
	out := make([]Interest, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.Name) == "" {
			continue
		}
		out = append(out, item)
		if len(out) == MaxInterests {
			break
		}
	}
	return out
}

func clampProficiency(p int) int {
	if p < MinProficiency {
		return MinProficiency
	}
	if p > MaxProficiency {
		return MaxProficiency
	}
	return p
}

func defaultString(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func anySet(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}
