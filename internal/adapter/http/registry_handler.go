package http

import (
	"errors"
	"log"
	"strconv"

	"cv-builder/internal/adapter/repository"
	"cv-builder/internal/model"
	"cv-builder/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

// RegistryHandler serves the job-registry JSON store plus the
// server-rendered list and modal views.
type RegistryHandler struct {
	store     usecase.EmpleoStore
	revisions *repository.RevisionStore
}

func NewRegistryHandler(store usecase.EmpleoStore, revisions *repository.RevisionStore) *RegistryHandler {
	return &RegistryHandler{store: store, revisions: revisions}
}

// GetEmpleos returns the whole collection in append order.
func (h *RegistryHandler) GetEmpleos(c *fiber.Ctx) error {
	empleos, err := h.store.Load(c.Context())
	if err != nil {
		log.Printf("get_empleos: load failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false})
	}
	return c.JSON(model.EmpleoList{Empleos: empleos})
}

// SaveEmpleos replaces the whole collection. Entries with an empty
// employer name are rejected before anything is written.
func (h *RegistryHandler) SaveEmpleos(c *fiber.Ctx) error {
	var list model.EmpleoList
	if err := c.BodyParser(&list); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid payload"})
	}
	for _, e := range list.Empleos {
		if err := e.Validate(); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
		}
	}
	if err := h.store.Save(c.Context(), list.Empleos); err != nil {
		log.Printf("save_empleos: save failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false})
	}
	if h.revisions != nil {
		if err := h.revisions.SaveRevision(c.Context(), repository.RevisionEmpleos, c.Body()); err != nil {
			log.Printf("warning: failed to save empleos revision: %v", err)
		}
	}
	return c.JSON(fiber.Map{"success": true})
}

// EmpleosView renders the list HTML, newest-first.
func (h *RegistryHandler) EmpleosView(c *fiber.Ctx) error {
	reg := usecase.NewRegistry(h.store)
	if err := reg.Load(c.Context()); err != nil {
		log.Printf("empleos_view: load failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false})
	}
	html, err := reg.RenderList()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// EmpleoModalView renders the detail modal for one entry id.
func (h *RegistryHandler) EmpleoModalView(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid id"})
	}
	reg := usecase.NewRegistry(h.store)
	if err := reg.Load(c.Context()); err != nil {
		log.Printf("empleo_modal: load failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false})
	}
	html, err := reg.RenderModal(id)
	if err != nil {
		var notFound *usecase.ErrEmpleoNotFound
		if errors.As(err, &notFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}
