// Package render projects a resume document through a named visual template
// into a self-contained HTML page. Rendering is pure: no I/O, no mutation,
// identical input always yields identical output.
package render

import (
	"html/template"
	"sort"
	"strings"
	"time"

	"resume-builder/internal/model"
)

// DefaultTemplate is used whenever an unknown template name is requested.
const DefaultTemplate = "modern"

const (
	longMonth  = "January"
	shortMonth = "Jan"
)

// Renderer turns a resume document into a standalone HTML document.
type Renderer interface {
	Name() string
	Render(d model.ResumeData) (string, error)
}

type variant struct {
	name        string
	monthLayout string
	css         string
}

func (v variant) Name() string { return v.name }

func (v variant) Render(d model.ResumeData) (string, error) {
	title := d.PersonalDetails.FullName
	if title == "" {
		title = "Resume"
	}
	var sb strings.Builder
	err := page.Execute(&sb, pageData{
		Data:     d,
		Template: v.name,
		Month:    v.monthLayout,
		CSS:      template.CSS(baseCSS + v.css),
		Title:    title,
	})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}

var registry = map[string]Renderer{}

func init() {
	for _, v := range variants {
		registry[v.name] = v
	}
}

// Lookup resolves a template by name, falling back to the default for
// unknown names. It never fails.
func Lookup(name string) Renderer {
	if r, ok := registry[name]; ok {
		return r
	}
	return registry[DefaultTemplate]
}

// Names lists the known template names in stable order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Document renders d through the named template (or the default one).
func Document(d model.ResumeData, templateName string) (string, error) {
	return Lookup(templateName).Render(d)
}

// formatYearMonth turns a stored "YYYY-MM" value into "<Month> <Year>" using
// the given month layout. Empty or malformed input renders as an empty
// string, never as an error.
func formatYearMonth(layout, s string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return ""
	}
	return t.Format(layout + " 2006")
}

func stripScheme(s string) string {
	s = strings.TrimPrefix(s, "https://")
	return strings.TrimPrefix(s, "http://")
}

type pageData struct {
	Data     model.ResumeData
	Template string
	Month    string
	CSS      template.CSS
	Title    string
}

var page = template.Must(template.New("resume").Funcs(template.FuncMap{
	"date":        func(layout, s string) string { return formatYearMonth(layout, s) },
	"stripScheme": stripScheme,
	"join":        strings.Join,
}).Parse(pageTemplate))

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}} - Resume</title>
<style>{{.CSS}}</style>
</head>
<body>
<div class="resume-container {{.Template}}">
<div class="header">
<h1>{{with .Data.PersonalDetails.FullName}}{{.}}{{else}}Your Name{{end}}</h1>
<p class="headline">{{with .Data.PersonalDetails.JobTitle}}{{.}}{{else}}Your Job Title{{end}}</p>
<div class="contact-info">
{{with .Data.PersonalDetails.Email}}<span>{{.}}</span>{{end}}
{{with .Data.PersonalDetails.Phone}}<span>{{.}}</span>{{end}}
{{with .Data.PersonalDetails.Linkedin}}<span>{{stripScheme .}}</span>{{end}}
{{with .Data.PersonalDetails.Website}}<span>{{stripScheme .}}</span>{{end}}
{{with .Data.PersonalDetails.Github}}<span>{{stripScheme .}}</span>{{end}}
{{with .Data.PersonalDetails.Location}}<span>{{.}}</span>{{end}}
</div>
</div>
{{with .Data.PersonalDetails.Summary}}<div class="section">
<h2>Professional Summary</h2>
<p>{{.}}</p>
</div>
{{end}}{{if .Data.WorkExperience}}<div class="section">
<h2>Work Experience</h2>
{{range .Data.WorkExperience}}<div class="experience-item">
<div class="experience-header">
<div>
<h3>{{.JobTitle}}</h3>
<p class="org">{{.Company}}</p>
</div>
<div class="date-location">
<p>{{date $.Month .StartDate}} - {{if .Current}}Present{{else}}{{date $.Month .EndDate}}{{end}}</p>
{{with .Location}}<p>{{.}}</p>{{end}}
</div>
</div>
{{if .Achievements}}<ul>
{{range .Achievements}}{{if .}}<li>{{.}}</li>
{{end}}{{end}}</ul>
{{end}}{{with .Description}}<p class="item-note">{{.}}</p>
{{end}}</div>
{{end}}</div>
{{end}}{{if .Data.Education}}<div class="section">
<h2>Education</h2>
{{range .Data.Education}}<div class="education-item">
<div class="education-header">
<div>
<h3>{{.Degree}}{{with .FieldOfStudy}} in {{.}}{{end}}</h3>
<p class="org">{{.Institution}}</p>
{{with .GPA}}<p class="detail">GPA: {{.}}</p>
{{end}}{{with .Honors}}<p class="detail">{{.}}</p>
{{end}}</div>
<div class="date-location">
{{if .GraduationYear}}<p>{{.GraduationYear}}</p>
{{end}}{{with .Location}}<p>{{.}}</p>
{{end}}</div>
</div>
</div>
{{end}}</div>
{{end}}{{if or .Data.Skills.Technical .Data.Skills.Soft .Data.Skills.Languages}}<div class="section">
<h2>Skills</h2>
<div class="skills-grid">
{{if .Data.Skills.Technical}}<div class="skill-category">
<h4>Technical Skills</h4>
<div class="skill-tags">{{range .Data.Skills.Technical}}<span class="skill-tag">{{.}}</span>{{end}}</div>
</div>
{{end}}{{if .Data.Skills.Soft}}<div class="skill-category">
<h4>Soft Skills</h4>
<div class="skill-tags">{{range .Data.Skills.Soft}}<span class="skill-tag">{{.}}</span>{{end}}</div>
</div>
{{end}}{{if .Data.Skills.Languages}}<div class="skill-category">
<h4>Languages</h4>
<div class="skill-tags">{{range .Data.Skills.Languages}}<span class="skill-tag">{{.Language}} ({{.Proficiency}})</span>{{end}}</div>
</div>
{{end}}</div>
</div>
{{end}}{{if .Data.Projects}}<div class="section">
<h2>Projects</h2>
{{range .Data.Projects}}<div class="project-item">
<div class="project-header">
<div>
<h3>{{.Name}}</h3>
{{if .Technologies}}<p class="detail">{{join .Technologies ", "}}</p>
{{end}}</div>
{{if or .StartDate .EndDate .Current}}<div class="date-location">
<p>{{if .StartDate}}{{date $.Month .StartDate}} - {{end}}{{if .Current}}Present{{else}}{{date $.Month .EndDate}}{{end}}</p>
</div>
{{end}}</div>
{{with .Description}}<p>{{.}}</p>
{{end}}{{with .URL}}<p class="detail">{{stripScheme .}}</p>
{{end}}</div>
{{end}}</div>
{{end}}{{if .Data.Certifications}}<div class="section">
<h2>Certifications</h2>
<div class="certifications-list">
{{range .Data.Certifications}}<div class="cert-item">
<div>
<strong>{{.Name}}</strong>
<p class="detail">{{.Issuer}}</p>
{{with .CredentialID}}<p class="detail">ID: {{.}}</p>
{{end}}</div>
{{with .IssueDate}}<span class="cert-date">{{date $.Month .}}</span>{{end}}
</div>
{{end}}</div>
</div>
{{end}}</div>
</body>
</html>
`
