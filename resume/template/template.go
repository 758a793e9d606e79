package template

// Template identifiers. IDOne is the fallback for unknown identifiers.
const (
	IDOne   = "one"
	IDTwo   = "two"
	IDThree = "three"
	IDFour  = "four"
	IDFive  = "five"
)

// ProficiencyStyle selects the decorative element used for the 5-slot
// proficiency indicator.
type ProficiencyStyle string

const (
	ProficiencyDots ProficiencyStyle = "dots"
	ProficiencyBar  ProficiencyStyle = "bar"
	ProficiencyText ProficiencyStyle = "text"
)

// PaletteRoles maps semantic color roles to indices in a resolved palette.
// Renderers read colors through these roles, never through bare indices.
type PaletteRoles struct {
	Background int
	Sidebar    int
	Primary    int
	Secondary  int
	Accent     int
	Divider    int
}

// Template describes one visual layout. Geometry is a pure function of the
// identifier: it never varies with record content beyond section visibility.
type Template struct {
	ID             string
	Name           string
	Columns        int
	SidebarRight   bool
	HeaderBanner   bool
	Proficiency    ProficiencyStyle
	MinColors      int
	DefaultPalette []string
	Roles          PaletteRoles
}

var registry = map[string]Template{
	IDOne: {
		ID:             IDOne,
		Name:           "Classic Sidebar",
		Columns:        2,
		Proficiency:    ProficiencyDots,
		MinColors:      6,
		DefaultPalette: []string{"#EBFDFF", "#A1F4FD", "#CEFAFE", "#00B8DB", "#4A5565", "#222222"},
		Roles:          PaletteRoles{Background: 0, Sidebar: 1, Secondary: 2, Accent: 3, Primary: 4, Divider: 5},
	},
	IDTwo: {
		ID:             IDTwo,
		Name:           "Minimal Single Column",
		Columns:        1,
		Proficiency:    ProficiencyBar,
		MinColors:      4,
		DefaultPalette: []string{"#FFFFFF", "#1F2937", "#6B7280", "#2563EB"},
		Roles:          PaletteRoles{Background: 0, Sidebar: 0, Primary: 1, Secondary: 2, Accent: 3, Divider: 2},
	},
	IDThree: {
		ID:             IDThree,
		Name:           "Modern Right Rail",
		Columns:        2,
		SidebarRight:   true,
		Proficiency:    ProficiencyDots,
		MinColors:      5,
		DefaultPalette: []string{"#FFF8F0", "#FFE0B2", "#7A4A00", "#4A5565", "#E65100"},
		Roles:          PaletteRoles{Background: 0, Sidebar: 1, Secondary: 2, Primary: 3, Accent: 4, Divider: 2},
	},
	IDFour: {
		ID:             IDFour,
		Name:           "Banner Header",
		Columns:        1,
		HeaderBanner:   true,
		Proficiency:    ProficiencyText,
		MinColors:      6,
		DefaultPalette: []string{"#F4F6FB", "#1E3A5F", "#FFFFFF", "#33415C", "#5C7AAE", "#D0D8E8"},
		Roles:          PaletteRoles{Background: 0, Sidebar: 1, Primary: 3, Secondary: 4, Accent: 1, Divider: 5},
	},
	IDFive: {
		ID:             IDFive,
		Name:           "Compact Two Column",
		Columns:        2,
		Proficiency:    ProficiencyBar,
		MinColors:      5,
		DefaultPalette: []string{"#FCFCF9", "#E8F5E9", "#1B5E20", "#37474F", "#2E7D32"},
		Roles:          PaletteRoles{Background: 0, Sidebar: 1, Accent: 2, Primary: 3, Secondary: 4, Divider: 1},
	},
}

// IDs lists all template identifiers in display order.
func IDs() []string {
	return []string{IDOne, IDTwo, IDThree, IDFour, IDFive}
}

// Lookup resolves a template identifier, falling back to template "one"
// for unknown or empty identifiers.
func Lookup(id string) Template {
	if t, ok := registry[id]; ok {
		return t
	}
	return registry[IDOne]
}

// ResolvePalette returns supplied unchanged when it carries at least the
// template's minimum number of colors, otherwise a copy of the template's
// built-in default palette. Extra trailing colors are allowed; renderers
// only read role indices.
func ResolvePalette(id string, supplied []string) []string {
	t := Lookup(id)
	if len(supplied) >= t.MinColors {
		return supplied
	}
	out := make([]string, len(t.DefaultPalette))
	copy(out, t.DefaultPalette)
	return out
}

// Color reads the color for a role index from a resolved palette.
func Color(palette []string, role int) string {
	if role < 0 || role >= len(palette) {
		return ""
	}
	return palette[role]
}
