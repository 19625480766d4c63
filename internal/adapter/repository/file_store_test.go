package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cv-builder/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCVStore_LoadRawMissingFile(t *testing.T) {
	store := NewCVStore(filepath.Join(t.TempDir(), "cv_data.json"))

	raw, err := store.LoadRaw(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(raw), "a fresh store yields an empty object, not an error")
}

func TestCVStore_SaveLoadRoundTrip(t *testing.T) {
	store := NewCVStore(filepath.Join(t.TempDir(), "cv_data.json"))
	snap := model.Snapshot{
		FullName:    "Ana García",
		EmailUser:   "ana",
		EmailDomain: "gmail.com",
		Skills:      []model.Skill{{Title: "Languages", Description: "Go"}},
		FontSizes:   model.DefaultFontSizes(),
		FontFamily:  "Georgia",
	}

	require.NoError(t, store.Save(context.Background(), snap))
	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, snap, got)
}

func TestCVStore_LoadLegacySkillShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv_data.json")
	legacy := `{"fullName": "Ana", "skills": ["Selenium", {"title": "Languages", "description": "Go"}]}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	store := NewCVStore(path)
	snap, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Skills, 2)
	assert.Equal(t, model.Skill{Description: "Selenium"}, snap.Skills[0])
	assert.Equal(t, "Languages", snap.Skills[1].Title)
}

func TestCVStore_SaveRawReplacesContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv_data.json")
	store := NewCVStore(path)

	require.NoError(t, store.SaveRaw(context.Background(), []byte(`{"fullName": "Ana"}`)))
	require.NoError(t, store.SaveRaw(context.Background(), []byte(`{"fullName": "Berta"}`)))

	raw, err := store.LoadRaw(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"fullName": "Berta"}`, string(raw))

	// no temp files survive a completed save
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestEmpleoFileStore_LoadMissingFile(t *testing.T) {
	store := NewEmpleoFileStore(filepath.Join(t.TempDir(), "empleos_data.json"))

	empleos, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, empleos)
	assert.Empty(t, empleos)
}

func TestEmpleoFileStore_SaveLoadRoundTrip(t *testing.T) {
	store := NewEmpleoFileStore(filepath.Join(t.TempDir(), "empleos_data.json"))
	empleos := []model.Empleo{
		{ID: 1756641600000, NombreEmpresa: "Acme", Fecha: time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)},
		{ID: 1756641600001, NombreEmpresa: "Beta", LinkEmpleo: "https://beta.example", Fecha: time.Date(2026, time.August, 31, 12, 0, 1, 0, time.UTC)},
	}

	require.NoError(t, store.Save(context.Background(), empleos))
	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, empleos, got)
}

func TestEmpleoFileStore_SaveNilWritesEmptyCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empleos_data.json")
	store := NewEmpleoFileStore(path)

	require.NoError(t, store.Save(context.Background(), nil))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"empleos": []}`, string(data))
}
