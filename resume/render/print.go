package render

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"

	"resume-builder/resume/model"
	tpl "resume-builder/resume/template"
)

// A4 paper geometry in inches, used by the PDF serializer.
const (
	PaperWidthInches  = 8.27
	PaperHeightInches = 11.69
)

// Document is the print-path output: a standalone paginated markup document
// plus the paper geometry the serializer should apply. It is the unit the
// PDF orchestrator serializes and validates.
type Document struct {
	Title       string
	Template    string
	HTML        string
	PaperWidth  float64
	PaperHeight float64
}

var printShell = htmltemplate.Must(htmltemplate.New("printShell").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
@page { size: A4; margin: 0; }
html, body { margin: 0; padding: 0; -webkit-print-color-adjust: exact; print-color-adjust: exact; }
</style>
</head>
<body>{{.Body}}</body>
</html>
`))

// Print renders the print-path document for one template. The record must
// already be normalized and the palette resolved. Section visibility and
// field formatting are shared with the HTML path, so the two stay in
// agreement by construction.
func Print(record model.Resume, t tpl.Template, palette []string) (Document, error) {
	body, err := execute(pageData{
		Record:   record,
		Layout:   t,
		Colors:   ResolveColors(t, palette),
		Sections: SectionVisibility(record),
		Print:    true,
	})
	if err != nil {
		return Document{}, err
	}

	var buf bytes.Buffer
	err = printShell.Execute(&buf, struct {
		Title string
		Body  htmltemplate.HTML
	}{
		Title: documentTitle(record),
		Body:  htmltemplate.HTML(body),
	})
	if err != nil {
		return Document{}, fmt.Errorf("render print shell: %w", err)
	}

	return Document{
		Title:       documentTitle(record),
		Template:    t.ID,
		HTML:        buf.String(),
		PaperWidth:  PaperWidthInches,
		PaperHeight: PaperHeightInches,
	}, nil
}

func documentTitle(record model.Resume) string {
	if record.Title != "" {
		return record.Title
	}
	return record.ProfileInfo.FullName
}
