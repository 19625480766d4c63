package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"cv-builder/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportFilename(t *testing.T) {
	tests := []struct {
		fullName string
		want     string
	}{
		{"Ana García", "AnaGarcaCV.pdf"},
		{"José Pérez!!", "JosPrezCV.pdf"},
		{"John Smith", "JohnSmithCV.pdf"},
		{"", "mi_cv.pdf"},
		{"¡¡¡···!!!", "mi_cv.pdf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExportFilename(tt.fullName), "full name %q", tt.fullName)
	}
}

type fakeRenderer struct {
	html string
	fail bool
}

func (f *fakeRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	if f.fail {
		return nil, errors.New("chrome unavailable")
	}
	f.html = html
	return []byte("%PDF-1.4 fake"), nil
}

func TestExporter_Export(t *testing.T) {
	renderer := &fakeRenderer{}
	e := NewExporter(renderer)

	pdf, filename, err := e.Export(context.Background(), model.Snapshot{FullName: "Ana García"})
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 fake"), pdf)
	assert.Equal(t, "AnaGarcaCV.pdf", filename)

	// the renderer receives the standalone document, not the fragment
	assert.True(t, strings.HasPrefix(renderer.html, "<!DOCTYPE html>"))
	assert.Contains(t, renderer.html, "Ana García")
}

func TestExporter_ExportRendererFailure(t *testing.T) {
	e := NewExporter(&fakeRenderer{fail: true})
	_, _, err := e.Export(context.Background(), model.Snapshot{})
	assert.Error(t, err)
}
