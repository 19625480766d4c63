package model

// Types matching the CV snapshot exchanged with the web editor and
// persisted as JSON.

import (
	"encoding/json"
	"strings"
)

const (
	MaxSkills              = 5
	MaxEducation           = 5
	MaxResponsibilities    = 5
	DefaultSkillsTitle     = "TECHNICAL SKILLS"
	DefaultExperienceTitle = "WORK EXPERIENCE"
	DefaultEducationTitle  = "EDUCATION"
	DefaultFontFamily      = "Helvetica"
)

type Skill struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UnmarshalJSON accepts both the current object shape and the legacy
// format where a skill was stored as a bare description string.
func (s *Skill) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var desc string
		if err := json.Unmarshal(data, &desc); err != nil {
			return err
		}
		s.Title = ""
		s.Description = desc
		return nil
	}
	type plain Skill
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = Skill(p)
	return nil
}

func (s Skill) Empty() bool {
	return strings.TrimSpace(s.Title) == "" && strings.TrimSpace(s.Description) == ""
}

type ExperienceEntry struct {
	Company          string   `json:"company"`
	Position         string   `json:"position"`
	Duration         string   `json:"duration"`
	Responsibilities []string `json:"responsibilities"`
}

// Empty reports whether all three header fields are blank. Bullets
// alone do not keep an entry alive.
func (e ExperienceEntry) Empty() bool {
	return strings.TrimSpace(e.Company) == "" &&
		strings.TrimSpace(e.Position) == "" &&
		strings.TrimSpace(e.Duration) == ""
}

type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

func (e EducationEntry) Empty() bool {
	return strings.TrimSpace(e.Institution) == "" &&
		strings.TrimSpace(e.Degree) == "" &&
		strings.TrimSpace(e.Date) == "" &&
		strings.TrimSpace(e.Description) == ""
}

// FontSizes maps the 12 named text roles of the preview to rem values.
type FontSizes map[string]float64

// FontSizeKeys lists every configurable text role, in the order the
// editor presents them.
var FontSizeKeys = []string{
	"name",
	"contact",
	"sectionTitle",
	"skillsContent",
	"experienceCompany",
	"experiencePosition",
	"experienceDuration",
	"experienceBullet",
	"educationInstitution",
	"educationDegree",
	"educationDate",
	"educationDescription",
}

// EducationFontSizeKeys is the subset covered by the education-only
// reset action.
var EducationFontSizeKeys = []string{
	"educationInstitution",
	"educationDegree",
	"educationDate",
	"educationDescription",
}

var defaultFontSizes = FontSizes{
	"name":                 2.5,
	"contact":              0.9,
	"sectionTitle":         1.2,
	"skillsContent":        0.95,
	"experienceCompany":    1,
	"experiencePosition":   0.95,
	"experienceDuration":   0.9,
	"experienceBullet":     0.9,
	"educationInstitution": 0.95,
	"educationDegree":      0.95,
	"educationDate":        0.85,
	"educationDescription": 0.9,
}

// DefaultFontSizes returns a fresh copy of the default size vector.
func DefaultFontSizes() FontSizes {
	out := make(FontSizes, len(defaultFontSizes))
	for k, v := range defaultFontSizes {
		out[k] = v
	}
	return out
}

// Get returns the configured size for a role, falling back to the
// default when the role is absent or non-positive.
func (f FontSizes) Get(key string) float64 {
	if f != nil {
		if v, ok := f[key]; ok && v > 0 {
			return v
		}
	}
	return defaultFontSizes[key]
}

var fontStacks = map[string]string{
	"Helvetica":   `"Helvetica Neue", Helvetica, Arial, sans-serif`,
	"Times-Roman": `"Times New Roman", Times, serif`,
	"Courier":     `"Courier New", Courier, monospace`,
	"Georgia":     `Georgia, serif`,
}

// FontStack maps a font family key to a concrete CSS font stack.
// Unknown keys resolve to the default sans stack.
func FontStack(key string) string {
	if stack, ok := fontStacks[key]; ok {
		return stack
	}
	return fontStacks[DefaultFontFamily]
}

// ValidFontFamily reports whether key names one of the supported
// families.
func ValidFontFamily(key string) bool {
	_, ok := fontStacks[key]
	return ok
}

// Snapshot is the full serialized CV state exchanged with clients and
// the stores.
type Snapshot struct {
	FullName               string            `json:"fullName"`
	EmailUser              string            `json:"emailUser"`
	EmailDomain            string            `json:"emailDomain"`
	Phone                  string            `json:"phone"`
	Location               string            `json:"location"`
	LinkText               string            `json:"linkText"`
	LinkURL                string            `json:"linkUrl"`
	SkillsSectionTitle     string            `json:"skillsSectionTitle"`
	Skills                 []Skill           `json:"skills"`
	ExperienceSectionTitle string            `json:"experienceSectionTitle"`
	Experience             []ExperienceEntry `json:"experience"`
	EducationSectionTitle  string            `json:"educationSectionTitle"`
	Education              []EducationEntry  `json:"education"`
	FontSizes              FontSizes         `json:"fontSizes"`
	FontFamily             string            `json:"fontFamily"`
}

// FullEmail concatenates user and domain, or returns "" when the user
// part is blank.
func (s Snapshot) FullEmail() string {
	user := strings.TrimSpace(s.EmailUser)
	if user == "" {
		return ""
	}
	return user + "@" + strings.TrimSpace(s.EmailDomain)
}

// NormalizeSkills trims both fields and drops rows where both are
// blank. Order is preserved.
func NormalizeSkills(in []Skill) []Skill {
	out := make([]Skill, 0, len(in))
	for _, s := range in {
		s.Title = strings.TrimSpace(s.Title)
		s.Description = strings.TrimSpace(s.Description)
		if s.Title == "" && s.Description == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// NormalizeExperience drops entries whose company, position and
// duration are all blank, and filters blank bullets from the rest,
// keeping the existing bullet order.
func NormalizeExperience(in []ExperienceEntry) []ExperienceEntry {
	out := make([]ExperienceEntry, 0, len(in))
	for _, e := range in {
		e.Company = strings.TrimSpace(e.Company)
		e.Position = strings.TrimSpace(e.Position)
		e.Duration = strings.TrimSpace(e.Duration)
		if e.Company == "" && e.Position == "" && e.Duration == "" {
			continue
		}
		points := make([]string, 0, len(e.Responsibilities))
		for _, p := range e.Responsibilities {
			if p = strings.TrimSpace(p); p != "" {
				points = append(points, p)
			}
		}
		e.Responsibilities = points
		out = append(out, e)
	}
	return out
}

// NormalizeEducation trims all four fields and drops fully-empty
// entries.
func NormalizeEducation(in []EducationEntry) []EducationEntry {
	out := make([]EducationEntry, 0, len(in))
	for _, e := range in {
		e.Institution = strings.TrimSpace(e.Institution)
		e.Degree = strings.TrimSpace(e.Degree)
		e.Date = strings.TrimSpace(e.Date)
		e.Description = strings.TrimSpace(e.Description)
		if e.Institution == "" && e.Degree == "" && e.Date == "" && e.Description == "" {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Normalized returns the canonical form of the snapshot: entry lists
// filtered, blank section titles replaced with the fixed defaults and
// the font family resolved to a known key. Entry counts are never
// truncated; caps are enforced at the add operations.
func (s Snapshot) Normalized() Snapshot {
	s.Skills = NormalizeSkills(s.Skills)
	s.Experience = NormalizeExperience(s.Experience)
	s.Education = NormalizeEducation(s.Education)
	if strings.TrimSpace(s.SkillsSectionTitle) == "" {
		s.SkillsSectionTitle = DefaultSkillsTitle
	}
	if strings.TrimSpace(s.ExperienceSectionTitle) == "" {
		s.ExperienceSectionTitle = DefaultExperienceTitle
	}
	if strings.TrimSpace(s.EducationSectionTitle) == "" {
		s.EducationSectionTitle = DefaultEducationTitle
	}
	if !ValidFontFamily(s.FontFamily) {
		s.FontFamily = DefaultFontFamily
	}
	if s.FontSizes == nil {
		s.FontSizes = DefaultFontSizes()
	} else {
		sizes := make(FontSizes, len(FontSizeKeys))
		for _, k := range FontSizeKeys {
			sizes[k] = s.FontSizes.Get(k)
		}
		s.FontSizes = sizes
	}
	return s
}
