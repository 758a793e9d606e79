package template

import (
	"reflect"
	"testing"
)

func TestResolvePaletteKeepsSufficientSupplied(t *testing.T) {
	for _, id := range IDs() {
		tpl := Lookup(id)

		supplied := make([]string, tpl.MinColors)
		for i := range supplied {
			supplied[i] = "#custom"
		}

		got := ResolvePalette(id, supplied)
		if !reflect.DeepEqual(got, supplied) {
			t.Errorf("template %s: expected supplied palette returned unchanged", id)
		}

		// Longer than required is also returned verbatim.
		longer := append(append([]string{}, supplied...), "#extra", "#extra2")
		got = ResolvePalette(id, longer)
		if !reflect.DeepEqual(got, longer) {
			t.Errorf("template %s: expected longer palette returned unchanged", id)
		}
	}
}

func TestResolvePaletteFallsBackToDefault(t *testing.T) {
	for _, id := range IDs() {
		tpl := Lookup(id)

		short := make([]string, tpl.MinColors-1)
		for i := range short {
			short[i] = "#custom"
		}

		for _, supplied := range [][]string{nil, {}, short} {
			got := ResolvePalette(id, supplied)
			if !reflect.DeepEqual(got, tpl.DefaultPalette) {
				t.Errorf("template %s: expected default palette for %d supplied colors, got %v",
					id, len(supplied), got)
			}
		}
	}
}

func TestResolvePaletteIdempotent(t *testing.T) {
	for _, id := range IDs() {
		once := ResolvePalette(id, nil)
		twice := ResolvePalette(id, once)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("template %s: resolve not idempotent", id)
		}
	}
}

func TestLookupUnknownFallsBackToOne(t *testing.T) {
	for _, id := range []string{"", "nope", "Seven"} {
		got := Lookup(id)
		if got.ID != IDOne {
			t.Errorf("Lookup(%q) = %s, expected fallback %s", id, got.ID, IDOne)
		}
	}
	if got := ResolvePalette("unknown", nil); !reflect.DeepEqual(got, Lookup(IDOne).DefaultPalette) {
		t.Errorf("unknown template should resolve to template one's default palette")
	}
}

func TestDefaultPalettesMatchMinimum(t *testing.T) {
	for _, id := range IDs() {
		tpl := Lookup(id)
		if len(tpl.DefaultPalette) != tpl.MinColors {
			t.Errorf("template %s: default palette has %d colors, minimum is %d",
				id, len(tpl.DefaultPalette), tpl.MinColors)
		}
		roles := []int{tpl.Roles.Background, tpl.Roles.Sidebar, tpl.Roles.Primary,
			tpl.Roles.Secondary, tpl.Roles.Accent, tpl.Roles.Divider}
		for _, role := range roles {
			if role < 0 || role >= tpl.MinColors {
				t.Errorf("template %s: role index %d outside palette bounds", id, role)
			}
		}
	}
}
