package usecase

import (
	"encoding/json"
	"testing"

	"cv-builder/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditor_SkillCap(t *testing.T) {
	e := NewEditor()

	for i := 0; i < model.MaxSkills; i++ {
		assert.True(t, e.CanAddSkill(), "add control should be enabled below the cap")
		assert.True(t, e.AddSkill())
	}

	// the sixth add is a silent no-op
	assert.False(t, e.CanAddSkill())
	assert.False(t, e.AddSkill())

	e.RemoveSkill(0)
	assert.True(t, e.CanAddSkill(), "removing re-enables the add control")
}

func TestEditor_EducationCap(t *testing.T) {
	e := NewEditor()
	for i := 0; i < model.MaxEducation; i++ {
		require.True(t, e.AddEducation())
	}
	assert.False(t, e.AddEducation())
	e.RemoveEducation(4)
	assert.True(t, e.CanAddEducation())
}

func TestEditor_ResponsibilityCap(t *testing.T) {
	e := NewEditor()
	i := e.AddExperience()
	e.UpdateExperience(i, "Acme", "Dev", "2022")

	for j := 0; j < model.MaxResponsibilities; j++ {
		require.True(t, e.AddResponsibility(i, "point"))
	}
	assert.False(t, e.AddResponsibility(i, "one too many"))
	assert.False(t, e.CanAddResponsibility(i))

	e.RemoveResponsibility(i, 0)
	assert.True(t, e.CanAddResponsibility(i))
}

func TestEditor_ExtractSkillsFiltersEmptyRows(t *testing.T) {
	e := NewEditor()
	e.AddSkill()
	e.AddSkill()
	e.AddSkill()
	e.UpdateSkill(0, "Languages", "Go")
	e.UpdateSkill(2, "", "Docker")

	// row 1 stays in the document but disappears from the payload
	got := e.ExtractSkills()
	require.Len(t, got, 2)
	assert.Equal(t, "Languages", got[0].Title)
	assert.Equal(t, "Docker", got[1].Description)
}

func TestEditor_ExtractExperienceDropsHeaderlessEntries(t *testing.T) {
	e := NewEditor()
	i := e.AddExperience()
	e.AddResponsibility(i, "bullet without a home")

	assert.Empty(t, e.ExtractExperience())

	e.UpdateExperience(i, "Acme", "", "")
	got := e.ExtractExperience()
	require.Len(t, got, 1)
	assert.Equal(t, []string{"bullet without a home"}, got[0].Responsibilities)
}

func TestEditor_DirtyTracking(t *testing.T) {
	e := NewEditor()
	assert.False(t, e.Dirty())

	e.SetFullName("Ana")
	assert.True(t, e.Dirty())

	e.MarkSaved()
	assert.False(t, e.Dirty())

	e.SetFontSize("name", 3)
	assert.True(t, e.Dirty())

	e.Load(model.Snapshot{})
	assert.False(t, e.Dirty(), "loading a stored snapshot starts clean")
}

func TestEditor_FontSizeGuards(t *testing.T) {
	e := NewEditor()
	e.SetFontSize("name", 0)
	e.SetFontSize("name", -2)
	e.SetFontSize("nonsense", 1.5)
	assert.False(t, e.Dirty())

	e.SetFontSize("name", 3.2)
	assert.Equal(t, 3.2, e.Snapshot().FontSizes["name"])
}

func TestEditor_ResetFontSizes(t *testing.T) {
	e := NewEditor()
	e.SetFontSize("name", 4)
	e.SetFontSize("educationDate", 2)

	e.ResetEducationFontSizes()
	snap := e.Snapshot()
	assert.Equal(t, 0.85, snap.FontSizes["educationDate"], "education slot restored")
	assert.Equal(t, 4.0, snap.FontSizes["name"], "other slots untouched by the subset reset")

	e.ResetFontSizes()
	assert.Equal(t, model.DefaultFontSizes(), e.Snapshot().FontSizes)
}

func TestEditor_SetFontFamily(t *testing.T) {
	e := NewEditor()
	e.SetFontFamily("Georgia")
	assert.Equal(t, "Georgia", e.Snapshot().FontFamily)

	e.SetFontFamily("Wingdings")
	assert.Equal(t, "Georgia", e.Snapshot().FontFamily, "unknown families are ignored")
}

func TestEditor_SnapshotDefaultsSectionTitles(t *testing.T) {
	e := NewEditor()
	snap := e.Snapshot()
	assert.Equal(t, model.DefaultSkillsTitle, snap.SkillsSectionTitle)
	assert.Equal(t, model.DefaultExperienceTitle, snap.ExperienceSectionTitle)
	assert.Equal(t, model.DefaultEducationTitle, snap.EducationSectionTitle)

	e.SetSkillsSectionTitle("HABILIDADES")
	assert.Equal(t, "HABILIDADES", e.Snapshot().SkillsSectionTitle)
}

func TestEditor_RoundTripIdempotence(t *testing.T) {
	e := NewEditor()
	e.SetFullName("Ana García")
	e.SetEmail("ana", "gmail.com")
	e.SetPhone("555 123")
	e.AddSkill()
	e.UpdateSkill(0, "Languages", "Go, Python")
	e.AddSkill() // stays empty, dropped at extraction
	i := e.AddExperience()
	e.UpdateExperience(i, "Acme", "Dev", "2022 - Presente")
	e.AddResponsibility(i, "Built the CV builder")
	e.AddEducation()
	e.UpdateEducation(0, model.EducationEntry{Institution: "UNAM", Degree: "Lic.", Date: "2019"})
	e.SetFontSize("name", 3)
	e.SetFontFamily("Times-Roman")

	first := e.Snapshot()

	// save → reload → extract again
	data, err := json.Marshal(first)
	require.NoError(t, err)
	var stored model.Snapshot
	require.NoError(t, json.Unmarshal(data, &stored))

	e2 := NewEditor()
	e2.Load(stored)
	second := e2.Snapshot()

	assert.Equal(t, first, second)
}
