package render

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"

	"resume-builder/resume/model"
	tpl "resume-builder/resume/template"
)

// Colors is a palette resolved through a template's role mapping. Renderers
// read colors by role, never by raw palette index.
type Colors struct {
	Background string
	Sidebar    string
	Primary    string
	Secondary  string
	Accent     string
	Divider    string
}

// ResolveColors projects a resolved palette onto named roles for the given
// template.
func ResolveColors(t tpl.Template, palette []string) Colors {
	return Colors{
		Background: tpl.Color(palette, t.Roles.Background),
		Sidebar:    tpl.Color(palette, t.Roles.Sidebar),
		Primary:    tpl.Color(palette, t.Roles.Primary),
		Secondary:  tpl.Color(palette, t.Roles.Secondary),
		Accent:     tpl.Color(palette, t.Roles.Accent),
		Divider:    tpl.Color(palette, t.Roles.Divider),
	}
}

type pageData struct {
	Record   model.Resume
	Layout   tpl.Template
	Colors   Colors
	Sections Visibility
	Print    bool
}

type slotData struct {
	Proficiency int
}

type ratedSection struct {
	Title string
	Items []model.Rated
}

var funcs = htmltemplate.FuncMap{
	"duration":   FormatDuration,
	"endDate":    FormatEndDate,
	"bullets":    Bullets,
	"displayURL": DisplayURL,
	"slots":      Slots,
	"slotData":   func(p int) slotData { return slotData{Proficiency: p} },
	"ratedSection": func(title string, items []model.Rated) ratedSection {
		return ratedSection{Title: title, Items: items}
	},
}

var bodyTemplate = htmltemplate.Must(htmltemplate.New("resume").Funcs(funcs).Parse(resumeBody))

// HTML renders the preview-path markup for one template: a fixed page box
// with inline styles, suitable for embedding in a zoomable live preview.
// The record must already be normalized and the palette resolved.
func HTML(record model.Resume, t tpl.Template, palette []string) (string, error) {
	return execute(pageData{
		Record:   record,
		Layout:   t,
		Colors:   ResolveColors(t, palette),
		Sections: SectionVisibility(record),
	})
}

func execute(data pageData) (string, error) {
	var buf bytes.Buffer
	if err := bodyTemplate.ExecuteTemplate(&buf, "resume", data); err != nil {
		return "", fmt.Errorf("render template %s: %w", data.Layout.ID, err)
	}
	return buf.String(), nil
}

// The shared body markup. Both rendering paths execute this template; the
// Print flag only switches page-box sizing, so section structure cannot
// drift between paths.
const resumeBody = `
{{- define "resume" -}}
<div class="page pf-{{.Layout.Proficiency}} tpl-{{.Layout.ID}}">
<style>
.page{background:{{.Colors.Background}};color:{{.Colors.Primary}};font-family:Helvetica,Arial,sans-serif;font-size:12px;line-height:1.45;box-sizing:border-box;{{if .Print}}width:210mm;min-height:297mm;padding:12mm;{{else}}width:794px;min-height:1123px;padding:44px;{{end}}}
.page h1{font-size:24px;margin:0;color:{{.Colors.Primary}}}
.page h2{font-size:13px;letter-spacing:.08em;text-transform:uppercase;color:{{.Colors.Accent}};border-bottom:1px solid {{.Colors.Divider}};padding-bottom:3px;margin:16px 0 8px}
.page .designation{color:{{.Colors.Secondary}};font-size:14px;margin-top:2px}
.page .banner{background:{{.Colors.Sidebar}};margin:{{if .Print}}-12mm -12mm 8mm{{else}}-44px -44px 24px{{end}};padding:{{if .Print}}10mm 12mm{{else}}36px 44px{{end}}}
.page .cols{display:flex;gap:24px}
.page .side{width:32%;background:{{.Colors.Sidebar}};padding:14px;border-radius:6px}
.page .main{flex:1}
.page .entry{margin-bottom:10px}
.page .entry .head{display:flex;justify-content:space-between}
.page .entry .org{font-weight:bold}
.page .entry .when{color:{{.Colors.Secondary}};font-size:11px;white-space:nowrap}
.page ul{margin:4px 0 0;padding-left:16px}
.page a{color:{{.Colors.Accent}};text-decoration:none}
.page .contact span{display:inline-block;margin-right:12px;color:{{.Colors.Secondary}}}
.page .photo{width:72px;height:72px;border-radius:50%;object-fit:cover;border:2px solid {{.Colors.Accent}}}
.page .rated{display:flex;justify-content:space-between;align-items:center;margin-bottom:5px}
.page .slot{display:inline-block;background:{{.Colors.Secondary}};opacity:.35}
.page .slot.on{background:{{.Colors.Accent}};opacity:1}
.pf-dots .slot{width:9px;height:9px;border-radius:50%;margin-left:3px}
.pf-bar .slot{width:16px;height:6px;margin-left:2px}
.pf-text .slot{background:none;opacity:1;margin-left:2px}
.pf-text .slot::before{content:"\25CB";color:{{.Colors.Secondary}}}
.pf-text .slot.on::before{content:"\25CF";color:{{.Colors.Accent}}}
.page .tags span{display:inline-block;background:{{.Colors.Sidebar}};border-radius:10px;padding:2px 10px;margin:0 6px 6px 0;font-size:11px}
</style>
{{- if .Layout.HeaderBanner}}<div class="banner">{{template "identity" .}}</div>{{else}}{{template "identity" .}}{{end}}
{{- if .Sections.Contact}}{{template "contact" .}}{{end}}
{{- if eq .Layout.Columns 2}}
<div class="cols">
{{- if .Layout.SidebarRight}}<div class="main">{{template "mainSections" .}}</div><div class="side">{{template "sideSections" .}}</div>
{{- else}}<div class="side">{{template "sideSections" .}}</div><div class="main">{{template "mainSections" .}}</div>{{end}}
</div>
{{- else}}{{template "mainSections" .}}{{template "sideSections" .}}{{end}}
</div>
{{- end}}

{{- define "identity" -}}
<div class="identity" style="display:flex;align-items:center;gap:16px">
{{- if .Record.ProfileInfo.ProfilePictureURL}}<img class="photo" src="{{.Record.ProfileInfo.ProfilePictureURL}}" alt="">{{end -}}
<div><h1>{{.Record.ProfileInfo.FullName}}</h1>
<div class="designation">{{.Record.ProfileInfo.Designation}}</div></div>
</div>
{{- end}}

{{- define "contact" -}}
<div class="contact" style="margin-top:10px">
{{- with .Record.ContactInfo -}}
{{- if .Email}}<span>{{.Email}}</span>{{end -}}
{{- if .Phone}}<span>{{.Phone}}</span>{{end -}}
{{- if .Location}}<span>{{.Location}}</span>{{end -}}
{{- if .LinkedIn}}<span><a href="{{.LinkedIn}}">{{displayURL .LinkedIn}}</a></span>{{end -}}
{{- if .GitHub}}<span><a href="{{.GitHub}}">{{displayURL .GitHub}}</a></span>{{end -}}
{{- if .Website}}<span><a href="{{.Website}}">{{displayURL .Website}}</a></span>{{end -}}
{{- end -}}
</div>
{{- end}}

{{- define "mainSections" -}}
<h2>Summary</h2><p>{{.Record.ProfileInfo.Summary}}</p>
{{- if .Sections.WorkExperience}}
<h2>Work Experience</h2>
{{- range .Record.WorkExperiences}}
<div class="entry"><div class="head"><span class="org">{{.Company}} &middot; {{.Role}}</span><span class="when">{{duration .StartDate .EndDate}}</span></div>
{{- with bullets .Description}}<ul>{{range .}}<li>{{.}}</li>{{end}}</ul>{{end -}}
</div>
{{- end}}{{end}}
{{- if .Sections.Projects}}
<h2>Projects</h2>
{{- range .Record.Projects}}
<div class="entry"><div class="head"><span class="org">{{.Title}}</span></div>
<p style="margin:2px 0">{{.Description}}</p>
{{- if .GitHub}}<a href="{{.GitHub}}">{{displayURL .GitHub}}</a> {{end -}}
{{- if .LiveDemo}}<a href="{{.LiveDemo}}">{{displayURL .LiveDemo}}</a>{{end -}}
</div>
{{- end}}{{end}}
{{- if .Sections.Education}}
<h2>Education</h2>
{{- range .Record.Education}}
<div class="entry"><div class="head"><span class="org">{{.Degree}}</span><span class="when">{{duration .StartDate .EndDate}}</span></div>
<div>{{.Institution}}</div></div>
{{- end}}{{end}}
{{- if .Sections.Certifications}}
<h2>Certifications</h2>
{{- range .Record.Certifications}}
<div class="entry"><span class="org">{{.Title}}</span> &mdash; {{.Issuer}}{{if .Year}} ({{.Year}}){{end}}</div>
{{- end}}{{end}}
{{- end}}

{{- define "sideSections" -}}
{{- if .Sections.Skills}}{{template "ratedList" (ratedSection "Skills" .Record.Skills)}}{{end}}
{{- if .Sections.Languages}}{{template "ratedList" (ratedSection "Languages" .Record.Languages)}}{{end}}
{{- if .Sections.Interests}}
<h2>Interests</h2>
<div class="tags">{{range .Record.Interests}}<span>{{.Name}}</span>{{end}}</div>
{{- end}}
{{- end}}

{{- define "ratedList" -}}
<h2>{{.Title}}</h2>
{{- range .Items}}
<div class="rated"><span>{{.Name}}</span>{{if gt .Proficiency 0}}<span class="slots">{{template "slotRow" (slotData .Proficiency)}}</span>{{end}}</div>
{{- end}}
{{- end}}

{{- define "slotRow" -}}
{{- range $i, $active := slots .Proficiency}}<span class="slot{{if $active}} on{{end}}"></span>{{end -}}
{{- end}}
`
