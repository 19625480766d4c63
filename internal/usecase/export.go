package usecase

import (
	"context"
	"regexp"

	"cv-builder/internal/model"
)

// Renderer turns a standalone HTML document into a PDF.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// FallbackPDFName is used when the full name sanitizes to nothing.
const FallbackPDFName = "mi_cv.pdf"

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// ExportFilename derives the download name from the full name: every
// non-alphanumeric character stripped, "CV.pdf" appended, generic
// fallback when nothing remains.
func ExportFilename(fullName string) string {
	cleaned := nonAlphanumeric.ReplaceAllString(fullName, "")
	if cleaned == "" {
		return FallbackPDFName
	}
	return cleaned + "CV.pdf"
}

// Exporter renders the CV snapshot to a downloadable PDF document.
type Exporter struct {
	renderer Renderer
}

func NewExporter(r Renderer) *Exporter {
	return &Exporter{renderer: r}
}

// Export returns the PDF bytes and the download filename.
func (e *Exporter) Export(ctx context.Context, snap model.Snapshot) ([]byte, string, error) {
	html, err := RenderDocument(snap)
	if err != nil {
		return nil, "", err
	}
	pdf, err := e.renderer.RenderHTMLToPDF(ctx, html)
	if err != nil {
		return nil, "", err
	}
	return pdf, ExportFilename(snap.FullName), nil
}
