package util

import "testing"

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"resume.pdf", "resume.pdf", false},
		{"a/b.pdf", "a_b.pdf", false},
		{"..\\evil", "", true},
		{"   ", "", true},
	}
	for _, c := range cases {
		got, err := SanitizeFileName(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("SanitizeFileName(%q): expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("SanitizeFileName(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("SanitizeFileName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSanitizeExportFileName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"My Résumé #1.pdf", "My_R_sum___1_pdf"},
		{"plain-name_1", "plain-name_1"},
		{"", "resume"},
		{"###", "resume"},
		{"a b", "a_b"},
	}
	for _, c := range cases {
		if got := SanitizeExportFileName(c.in); got != c.want {
			t.Errorf("SanitizeExportFileName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSanitizeExportFileNameAllowList(t *testing.T) {
	got := SanitizeExportFileName("weird/\\:*?\"<>|çñ名.pdf")
	for _, r := range got {
		ok := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_'
		if !ok {
			t.Fatalf("sanitized name contains disallowed character %q in %q", r, got)
		}
	}
}
