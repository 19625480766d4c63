package usecase

import (
	"strings"

	"cv-builder/internal/model"
)

// Editor is the form state controller: it owns the mutable CV
// document. Every mutation marks the document dirty; only a
// successful save clears the flag. Add operations refuse silently at
// the cardinality caps, mirroring the disabled add controls in the
// editor UI.
type Editor struct {
	snap  model.Snapshot
	dirty bool
}

func NewEditor() *Editor {
	e := &Editor{}
	e.Load(model.Snapshot{})
	return e
}

// Load replaces the document with a stored snapshot, applying the
// documented defaults for absent values, and clears the dirty flag.
func (e *Editor) Load(s model.Snapshot) {
	if s.FontSizes == nil {
		s.FontSizes = model.DefaultFontSizes()
	}
	if !model.ValidFontFamily(s.FontFamily) {
		s.FontFamily = model.DefaultFontFamily
	}
	e.snap = s
	e.dirty = false
}

func (e *Editor) Dirty() bool { return e.dirty }

// MarkSaved clears the unsaved-changes flag after a confirmed save.
func (e *Editor) MarkSaved() { e.dirty = false }

func (e *Editor) touch() { e.dirty = true }

func (e *Editor) SetFullName(name string) {
	e.snap.FullName = name
	e.touch()
}

func (e *Editor) SetEmail(user, domain string) {
	e.snap.EmailUser = user
	e.snap.EmailDomain = domain
	e.touch()
}

func (e *Editor) SetPhone(phone string) {
	e.snap.Phone = phone
	e.touch()
}

func (e *Editor) SetLocation(location string) {
	e.snap.Location = location
	e.touch()
}

func (e *Editor) SetLink(text, url string) {
	e.snap.LinkText = text
	e.snap.LinkURL = url
	e.touch()
}

func (e *Editor) SetSkillsSectionTitle(title string) {
	e.snap.SkillsSectionTitle = title
	e.touch()
}

func (e *Editor) SetExperienceSectionTitle(title string) {
	e.snap.ExperienceSectionTitle = title
	e.touch()
}

func (e *Editor) SetEducationSectionTitle(title string) {
	e.snap.EducationSectionTitle = title
	e.touch()
}

// CanAddSkill reports whether the skills cap has room. The add
// control is enabled iff this returns true.
func (e *Editor) CanAddSkill() bool { return len(e.snap.Skills) < model.MaxSkills }

// AddSkill appends an empty skill row. At the cap it is a no-op, not
// an error.
func (e *Editor) AddSkill() bool {
	if !e.CanAddSkill() {
		return false
	}
	e.snap.Skills = append(e.snap.Skills, model.Skill{})
	e.touch()
	return true
}

func (e *Editor) UpdateSkill(i int, title, description string) {
	if i < 0 || i >= len(e.snap.Skills) {
		return
	}
	e.snap.Skills[i] = model.Skill{Title: title, Description: description}
	e.touch()
}

func (e *Editor) RemoveSkill(i int) {
	if i < 0 || i >= len(e.snap.Skills) {
		return
	}
	e.snap.Skills = append(e.snap.Skills[:i], e.snap.Skills[i+1:]...)
	e.touch()
}

func (e *Editor) CanAddEducation() bool { return len(e.snap.Education) < model.MaxEducation }

func (e *Editor) AddEducation() bool {
	if !e.CanAddEducation() {
		return false
	}
	e.snap.Education = append(e.snap.Education, model.EducationEntry{})
	e.touch()
	return true
}

func (e *Editor) UpdateEducation(i int, entry model.EducationEntry) {
	if i < 0 || i >= len(e.snap.Education) {
		return
	}
	e.snap.Education[i] = entry
	e.touch()
}

func (e *Editor) RemoveEducation(i int) {
	if i < 0 || i >= len(e.snap.Education) {
		return
	}
	e.snap.Education = append(e.snap.Education[:i], e.snap.Education[i+1:]...)
	e.touch()
}

// AddExperience appends an empty experience entry and returns its
// index. Experience entries are unbounded.
func (e *Editor) AddExperience() int {
	e.snap.Experience = append(e.snap.Experience, model.ExperienceEntry{})
	e.touch()
	return len(e.snap.Experience) - 1
}

func (e *Editor) UpdateExperience(i int, company, position, duration string) {
	if i < 0 || i >= len(e.snap.Experience) {
		return
	}
	e.snap.Experience[i].Company = company
	e.snap.Experience[i].Position = position
	e.snap.Experience[i].Duration = duration
	e.touch()
}

func (e *Editor) RemoveExperience(i int) {
	if i < 0 || i >= len(e.snap.Experience) {
		return
	}
	e.snap.Experience = append(e.snap.Experience[:i], e.snap.Experience[i+1:]...)
	e.touch()
}

func (e *Editor) CanAddResponsibility(i int) bool {
	if i < 0 || i >= len(e.snap.Experience) {
		return false
	}
	return len(e.snap.Experience[i].Responsibilities) < model.MaxResponsibilities
}

// AddResponsibility appends a bullet to an experience entry, refusing
// silently once the entry holds five.
func (e *Editor) AddResponsibility(i int, text string) bool {
	if !e.CanAddResponsibility(i) {
		return false
	}
	e.snap.Experience[i].Responsibilities = append(e.snap.Experience[i].Responsibilities, text)
	e.touch()
	return true
}

func (e *Editor) UpdateResponsibility(i, j int, text string) {
	if i < 0 || i >= len(e.snap.Experience) {
		return
	}
	points := e.snap.Experience[i].Responsibilities
	if j < 0 || j >= len(points) {
		return
	}
	points[j] = text
	e.touch()
}

func (e *Editor) RemoveResponsibility(i, j int) {
	if i < 0 || i >= len(e.snap.Experience) {
		return
	}
	points := e.snap.Experience[i].Responsibilities
	if j < 0 || j >= len(points) {
		return
	}
	e.snap.Experience[i].Responsibilities = append(points[:j], points[j+1:]...)
	e.touch()
}

// SetFontSize ignores non-positive values; size slots hold positive
// rem decimals only.
func (e *Editor) SetFontSize(key string, value float64) {
	if value <= 0 {
		return
	}
	if _, ok := e.snap.FontSizes[key]; !ok {
		known := false
		for _, k := range model.FontSizeKeys {
			if k == key {
				known = true
				break
			}
		}
		if !known {
			return
		}
	}
	e.snap.FontSizes[key] = value
	e.touch()
}

// ResetFontSizes restores the whole default size vector.
func (e *Editor) ResetFontSizes() {
	e.snap.FontSizes = model.DefaultFontSizes()
	e.touch()
}

// ResetEducationFontSizes restores only the education slots, leaving
// the rest of the vector untouched.
func (e *Editor) ResetEducationFontSizes() {
	defaults := model.DefaultFontSizes()
	for _, k := range model.EducationFontSizeKeys {
		e.snap.FontSizes[k] = defaults[k]
	}
	e.touch()
}

func (e *Editor) SetFontFamily(key string) {
	if !model.ValidFontFamily(key) {
		return
	}
	e.snap.FontFamily = key
	e.touch()
}

// ExtractSkills returns the normalized skill list: rows where both
// fields are blank disappear from the payload, not from the document.
func (e *Editor) ExtractSkills() []model.Skill {
	return model.NormalizeSkills(e.snap.Skills)
}

func (e *Editor) ExtractExperience() []model.ExperienceEntry {
	return model.NormalizeExperience(e.snap.Experience)
}

func (e *Editor) ExtractEducation() []model.EducationEntry {
	return model.NormalizeEducation(e.snap.Education)
}

// Snapshot produces the full normalized payload shipped to the server
// on save and PDF export. Blank section titles fall back to the fixed
// defaults, matching what the editor sends.
func (e *Editor) Snapshot() model.Snapshot {
	snap := e.snap
	snap.Skills = e.ExtractSkills()
	snap.Experience = e.ExtractExperience()
	snap.Education = e.ExtractEducation()
	if strings.TrimSpace(snap.SkillsSectionTitle) == "" {
		snap.SkillsSectionTitle = model.DefaultSkillsTitle
	}
	if strings.TrimSpace(snap.ExperienceSectionTitle) == "" {
		snap.ExperienceSectionTitle = model.DefaultExperienceTitle
	}
	if strings.TrimSpace(snap.EducationSectionTitle) == "" {
		snap.EducationSectionTitle = model.DefaultEducationTitle
	}
	sizes := make(model.FontSizes, len(model.FontSizeKeys))
	for _, k := range model.FontSizeKeys {
		sizes[k] = snap.FontSizes.Get(k)
	}
	snap.FontSizes = sizes
	return snap
}
