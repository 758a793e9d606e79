package render

import "resume-builder/resume/model"

// Visibility records which sections carry at least one meaningful entry.
// Both rendering paths consult the same Visibility so a section appears in
// the HTML preview iff it appears in the print document.
type Visibility struct {
	Contact        bool
	WorkExperience bool
	Education      bool
	Skills         bool
	Projects       bool
	Certifications bool
	Languages      bool
	Interests      bool
}

// SectionVisibility computes section presence for a normalized record. A
// section with zero meaningful entries is omitted from the layout entirely.
func SectionVisibility(r model.Resume) Visibility {
	return Visibility{
		Contact:        hasContact(r.ContactInfo),
		WorkExperience: len(r.WorkExperiences) > 0,
		Education:      len(r.Education) > 0,
		Skills:         len(r.Skills) > 0,
		Projects:       len(r.Projects) > 0,
		Certifications: len(r.Certifications) > 0,
		Languages:      len(r.Languages) > 0,
		Interests:      len(r.Interests) > 0,
	}
}

func hasContact(c model.ContactInfo) bool {
	return c.Email != "" || c.Phone != "" || c.Location != "" ||
		c.LinkedIn != "" || c.GitHub != "" || c.Website != ""
}
