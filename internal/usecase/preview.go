package usecase

import (
	"bytes"
	"html/template"

	"cv-builder/internal/model"
)

// The preview is a deterministic projection of the normalized
// snapshot. All user text flows through html/template, so the markup
// is escaped by construction.

// ContactPart is one segment of the contact line. URL is set only
// when the segment renders as a hyperlink.
type ContactPart struct {
	Text string
	URL  string
}

type previewSizes struct {
	Name                 float64
	Contact              float64
	SectionTitle         float64
	SkillsContent        float64
	ExperienceCompany    float64
	ExperiencePosition   float64
	ExperienceDuration   float64
	ExperienceBullet     float64
	EducationInstitution float64
	EducationDegree      float64
	EducationDate        float64
	EducationDescription float64
}

type previewData struct {
	FontStack       template.CSS
	Name            string
	ContactParts    []ContactPart
	Sizes           previewSizes
	SkillsTitle     string
	Skills          []model.Skill
	ExperienceTitle string
	Experience      []model.ExperienceEntry
	EducationTitle  string
	Education       []model.EducationEntry
}

const previewTemplateText = `<div id="cvPreview" style="font-family: {{.FontStack}};">
<h1 class="cv-name" style="font-size: {{.Sizes.Name}}rem;">{{.Name}}</h1>
<div class="cv-contact" style="font-size: {{.Sizes.Contact}}rem;">
{{- if .ContactParts}}
{{- range $i, $p := .ContactParts}}
{{- if $i}}<span class="cv-sep">|</span>{{end}}
{{- if $p.URL}}<span><a href="{{$p.URL}}" target="_blank" rel="noopener noreferrer">{{$p.Text}}</a></span>
{{- else}}<span>{{$p.Text}}</span>{{end}}
{{- end}}
{{- else}}<span class="cv-contact-placeholder">Agrega tu información de contacto</span>{{end}}
</div>
{{- if .Skills}}
<section id="previewSkillsSection">
<h2 class="cv-section-title" style="font-size: {{.Sizes.SectionTitle}}rem;">{{.SkillsTitle}}</h2>
<div id="previewSkills">
{{- range .Skills}}
<div class="cv-skill" style="font-size: {{$.Sizes.SkillsContent}}rem;"><span class="cv-bullet">•</span> {{if .Title}}<strong>{{.Title}}:</strong> {{end}}{{if .Description}}<span>{{.Description}}</span>{{end}}</div>
{{- end}}
</div>
</section>
{{- end}}
{{- if .Experience}}
<section id="previewExperienceSection">
<h2 class="cv-section-title" style="font-size: {{.Sizes.SectionTitle}}rem;">{{.ExperienceTitle}}</h2>
<div id="previewExperience">
{{- range .Experience}}
<div class="cv-exp">
<div class="cv-exp-head">
<span class="cv-exp-company" style="font-size: {{$.Sizes.ExperienceCompany}}rem;">{{.Company}}</span>
{{- if .Position}}<span class="cv-sep">|</span><span class="cv-exp-position" style="font-size: {{$.Sizes.ExperiencePosition}}rem;">{{.Position}}</span>{{end}}
{{- if .Duration}}<span class="cv-exp-duration" style="font-size: {{$.Sizes.ExperienceDuration}}rem;">{{.Duration}}</span>{{end}}
</div>
{{- if .Responsibilities}}
<ul class="cv-exp-points">
{{- range .Responsibilities}}
<li style="font-size: {{$.Sizes.ExperienceBullet}}rem;">{{.}}</li>
{{- end}}
</ul>
{{- end}}
</div>
{{- end}}
</div>
</section>
{{- end}}
{{- if .Education}}
<section id="previewEducationSection">
<h2 class="cv-section-title" style="font-size: {{.Sizes.SectionTitle}}rem;">{{.EducationTitle}}</h2>
<div id="previewEducation">
{{- range .Education}}
<div class="cv-edu">
<div class="cv-edu-head">
{{- if .Institution}}<strong class="cv-edu-institution" style="font-size: {{$.Sizes.EducationInstitution}}rem;">{{.Institution}}</strong>{{end}}
{{- if .Degree}}{{if .Institution}}<span class="cv-sep">|</span>{{end}}<span class="cv-edu-degree" style="font-size: {{$.Sizes.EducationDegree}}rem;">{{.Degree}}</span>{{end}}
{{- if .Date}}{{if or .Institution .Degree}}<span class="cv-sep">|</span>{{end}}<span class="cv-edu-date" style="font-size: {{$.Sizes.EducationDate}}rem;">{{.Date}}</span>{{end}}
</div>
{{- if .Description}}
<div class="cv-edu-description" style="font-size: {{$.Sizes.EducationDescription}}rem;"><span class="cv-bullet">•</span> <span>{{.Description}}</span></div>
{{- end}}
</div>
{{- end}}
</div>
</section>
{{- end}}
</div>
`

var previewTemplate = template.Must(template.New("preview").Parse(previewTemplateText))

// contactParts collects the present-only contact segments in display
// order: email, phone, location, link.
func contactParts(s model.Snapshot) []ContactPart {
	var parts []ContactPart
	if email := s.FullEmail(); email != "" {
		parts = append(parts, ContactPart{Text: email})
	}
	if s.Phone != "" {
		parts = append(parts, ContactPart{Text: s.Phone})
	}
	if s.Location != "" {
		parts = append(parts, ContactPart{Text: s.Location})
	}
	if s.LinkText != "" && s.LinkURL != "" {
		parts = append(parts, ContactPart{Text: s.LinkText, URL: s.LinkURL})
	} else if s.LinkText != "" {
		parts = append(parts, ContactPart{Text: s.LinkText})
	}
	return parts
}

func buildPreviewData(s model.Snapshot) previewData {
	s = s.Normalized()
	name := s.FullName
	if name == "" {
		name = "Tu Nombre"
	}
	fs := s.FontSizes
	return previewData{
		// The font stack comes from a fixed internal table, never
		// from user input.
		FontStack:       template.CSS(model.FontStack(s.FontFamily)),
		Name:            name,
		ContactParts:    contactParts(s),
		SkillsTitle:     s.SkillsSectionTitle,
		Skills:          s.Skills,
		ExperienceTitle: s.ExperienceSectionTitle,
		Experience:      s.Experience,
		EducationTitle:  s.EducationSectionTitle,
		Education:       s.Education,
		Sizes: previewSizes{
			Name:                 fs.Get("name"),
			Contact:              fs.Get("contact"),
			SectionTitle:         fs.Get("sectionTitle"),
			SkillsContent:        fs.Get("skillsContent"),
			ExperienceCompany:    fs.Get("experienceCompany"),
			ExperiencePosition:   fs.Get("experiencePosition"),
			ExperienceDuration:   fs.Get("experienceDuration"),
			ExperienceBullet:     fs.Get("experienceBullet"),
			EducationInstitution: fs.Get("educationInstitution"),
			EducationDegree:      fs.Get("educationDegree"),
			EducationDate:        fs.Get("educationDate"),
			EducationDescription: fs.Get("educationDescription"),
		},
	}
}

// RenderPreview renders the snapshot to the live-preview HTML
// fragment.
func RenderPreview(s model.Snapshot) (string, error) {
	var buf bytes.Buffer
	if err := previewTemplate.Execute(&buf, buildPreviewData(s)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const documentCSS = `@page { size: A4; margin: 18mm 16mm; }
body { margin: 0; color: #333; }
#cvPreview { max-width: 180mm; margin: 0 auto; }
.cv-name { text-align: center; color: #2c3e50; margin: 0 0 0.6rem; }
.cv-contact { text-align: center; color: #555; margin-bottom: 1rem; }
.cv-contact a { color: #2563eb; text-decoration: underline; }
.cv-sep { margin: 0 0.5rem; color: #ccc; }
.cv-section-title { color: #2c3e50; border-bottom: 1px solid #2c3e50; padding-bottom: 0.2rem; margin: 1rem 0 0.6rem; }
.cv-skill { margin-bottom: 0.4rem; line-height: 1.4; }
.cv-skill strong { color: #2c3e50; }
.cv-bullet { margin-right: 0.5rem; }
.cv-exp { margin-bottom: 1.2rem; }
.cv-exp-company { color: #2c3e50; font-weight: bold; }
.cv-exp-position { font-weight: 600; }
.cv-exp-duration { color: #666; font-style: italic; margin-left: 1rem; }
.cv-exp-points { margin: 0.2rem 0 0; padding-left: 1.2rem; }
.cv-exp-points li { color: #444; margin-bottom: 0.4rem; }
.cv-edu { margin-bottom: 0.6rem; line-height: 1.4; }
.cv-edu-institution { color: #2c3e50; }
.cv-edu-date { color: #666; font-style: italic; }
.cv-edu-description { color: #444; margin-top: 0.1rem; }
.cv-contact-placeholder { color: #999; }
`

const documentTemplateText = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>{{.CSS}}</style>
</head>
<body>
{{.Body}}
</body>
</html>
`

var documentTemplate = template.Must(template.New("document").Parse(documentTemplateText))

// RenderDocument wraps the preview fragment in a standalone HTML page
// suitable for the PDF renderer.
func RenderDocument(s model.Snapshot) (string, error) {
	fragment, err := RenderPreview(s)
	if err != nil {
		return "", err
	}
	title := s.FullName
	if title == "" {
		title = "CV"
	}
	var buf bytes.Buffer
	err = documentTemplate.Execute(&buf, struct {
		Title string
		CSS   template.CSS
		Body  template.HTML
	}{
		Title: title,
		CSS:   template.CSS(documentCSS),
		// The fragment is output of the preview template, already
		// escaped.
		Body: template.HTML(fragment),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
