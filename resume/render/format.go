package render

import "strings"

// PresentLabel is the display text for an open-ended end date.
const PresentLabel = "Present"

// ProficiencySlots is the fixed number of indicator positions for a 0-5
// rating.
const ProficiencySlots = 5

// FormatEndDate renders an end date, substituting "Present" for a blank
// value. Non-blank values pass through unchanged.
func FormatEndDate(end string) string {
	if strings.TrimSpace(end) == "" {
		return PresentLabel
	}
	return end
}

// FormatDuration renders a "start - end" range. A blank start collapses to
// just the end portion.
func FormatDuration(start, end string) string {
	endText := FormatEndDate(end)
	if strings.TrimSpace(start) == "" {
		return endText
	}
	return start + " - " + endText
}

// Bullets splits free-text description into bullet points on the sentence
// delimiter ". ". Fragments are trimmed and given a trailing period when
// they lack one; empty fragments are dropped. The delimiter is a literal
// product behavior: it will break on abbreviations like "U.S. ", and that
// is preserved intentionally.
func Bullets(description string) []string {
	parts := strings.Split(description, ". ")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		fragment := strings.TrimSpace(part)
		if fragment == "" {
			continue
		}
		if !strings.HasSuffix(fragment, ".") {
			fragment += "."
		}
		out = append(out, fragment)
	}
	return out
}

// DisplayURL returns the user-facing text for a link: scheme and a leading
// "www." are stripped. The hyperlink target keeps the original URL.
func DisplayURL(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "www.")
	return s
}

// Slots expands a proficiency rating into the fixed-size indicator: slot i
// is active iff i < proficiency.
func Slots(proficiency int) []bool {
	out := make([]bool, ProficiencySlots)
	for i := range out {
		out[i] = i < proficiency
	}
	return out
}
