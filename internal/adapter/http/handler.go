package http

import (
	"context"
	"log"

	"cv-builder/internal/adapter/repository"
	"cv-builder/internal/model"
	"cv-builder/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

// SnapshotStore is the persistence boundary for the CV snapshot.
type SnapshotStore interface {
	LoadRaw(ctx context.Context) ([]byte, error)
	SaveRaw(ctx context.Context, data []byte) error
}

type Handler struct {
	store     SnapshotStore
	revisions *repository.RevisionStore
	exporter  *usecase.Exporter
}

func NewHandler(store SnapshotStore, revisions *repository.RevisionStore, exporter *usecase.Exporter) *Handler {
	return &Handler{store: store, revisions: revisions, exporter: exporter}
}

// GetCVData returns the stored snapshot verbatim; any subset of
// fields may be absent and clients apply their own defaults.
func (h *Handler) GetCVData(c *fiber.Ctx) error {
	data, err := h.store.LoadRaw(c.Context())
	if err != nil {
		log.Printf("get_cv_data: load failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(data)
}

// SaveCVData replaces the stored snapshot with the posted payload
// after schema validation.
func (h *Handler) SaveCVData(c *fiber.Ctx) error {
	body := c.Body()
	if err := model.ValidateSnapshotJSON(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	if err := h.store.SaveRaw(c.Context(), body); err != nil {
		log.Printf("save_cv_data: save failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false})
	}
	// revision history is best-effort
	if h.revisions != nil {
		if err := h.revisions.SaveRevision(c.Context(), repository.RevisionCV, body); err != nil {
			log.Printf("warning: failed to save cv revision: %v", err)
		}
	}
	return c.JSON(fiber.Map{"success": true})
}

// GeneratePDF renders the posted snapshot and returns the document as
// an attachment named after the sanitized full name.
func (h *Handler) GeneratePDF(c *fiber.Ctx) error {
	var snap model.Snapshot
	if err := c.BodyParser(&snap); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid payload"})
	}
	pdf, filename, err := h.exporter.Export(c.Context(), snap)
	if err != nil {
		log.Printf("generate_pdf: export failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

// PreviewCV renders the posted snapshot to the live-preview HTML
// fragment.
func (h *Handler) PreviewCV(c *fiber.Ctx) error {
	var snap model.Snapshot
	if err := c.BodyParser(&snap); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid payload"})
	}
	html, err := usecase.RenderPreview(snap)
	if err != nil {
		log.Printf("preview_cv: render failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}
