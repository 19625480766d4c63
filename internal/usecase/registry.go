package usecase

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"cv-builder/internal/model"
)

// EmpleoStore persists the whole job-registry collection. Every
// mutation is a full replace, never an incremental update.
type EmpleoStore interface {
	Load(ctx context.Context) ([]model.Empleo, error)
	Save(ctx context.Context, empleos []model.Empleo) error
}

// RegistryState is the presenter state machine over the list.
type RegistryState int

const (
	StateIdle RegistryState = iota
	StateSubmitting
	StateConfirmingDelete
	StateDeleting
)

func (s RegistryState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateConfirmingDelete:
		return "confirming_delete"
	case StateDeleting:
		return "deleting"
	}
	return "unknown"
}

// ErrEmpresaRequired blocks an add with an empty employer name before
// any store call.
type ErrEmpresaRequired struct{}

func (e *ErrEmpresaRequired) Error() string {
	return "por favor ingresa el nombre de la empresa"
}

// ErrEmpleoNotFound indicates the given id matches no entry.
type ErrEmpleoNotFound struct {
	ID int64
}

func (e *ErrEmpleoNotFound) Error() string {
	return fmt.Sprintf("empleo no encontrado: %d", e.ID)
}

// Registry owns the authoritative in-memory job list. The list is
// synchronized with the store on every mutation: after a successful
// save it is exactly what was sent, and a failed save rolls the
// mutation back so in-memory state never diverges from the server.
type Registry struct {
	store   EmpleoStore
	empleos []model.Empleo
	state   RegistryState
	pending int64
	now     func() time.Time
}

func NewRegistry(store EmpleoStore) *Registry {
	return &Registry{store: store, now: time.Now}
}

func (r *Registry) State() RegistryState { return r.state }

// Empleos returns the stored collection in append order
// (oldest first).
func (r *Registry) Empleos() []model.Empleo {
	out := make([]model.Empleo, len(r.empleos))
	copy(out, r.empleos)
	return out
}

// Load populates the list from the store. On failure the list resets
// to empty so the presenter still renders.
func (r *Registry) Load(ctx context.Context) error {
	empleos, err := r.store.Load(ctx)
	if err != nil {
		r.empleos = nil
		return err
	}
	r.empleos = empleos
	return nil
}

// nextID derives the entry id from the creation instant in Unix
// milliseconds, bumping past the current tail if the clock collides.
func (r *Registry) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if n := len(r.empleos); n > 0 && id <= r.empleos[n-1].ID {
		id = r.empleos[n-1].ID + 1
	}
	return id
}

// Add validates, appends and re-saves the full collection. An empty
// employer name is rejected locally without touching the store; an
// empty link is stored as "".
func (r *Registry) Add(ctx context.Context, nombreEmpresa, linkEmpleo string) (model.Empleo, error) {
	nombreEmpresa = strings.TrimSpace(nombreEmpresa)
	linkEmpleo = strings.TrimSpace(linkEmpleo)
	if nombreEmpresa == "" {
		return model.Empleo{}, &ErrEmpresaRequired{}
	}

	now := r.now()
	entry := model.Empleo{
		ID:            r.nextID(now),
		NombreEmpresa: nombreEmpresa,
		LinkEmpleo:    linkEmpleo,
		Fecha:         now,
	}
	if err := entry.Validate(); err != nil {
		return model.Empleo{}, err
	}

	r.state = StateSubmitting
	r.empleos = append(r.empleos, entry)
	if err := r.store.Save(ctx, r.empleos); err != nil {
		r.empleos = r.empleos[:len(r.empleos)-1]
		r.state = StateIdle
		return model.Empleo{}, err
	}
	r.state = StateIdle
	return entry, nil
}

// RequestDelete moves the presenter into the confirmation step. No
// store call happens until ConfirmDelete.
func (r *Registry) RequestDelete(id int64) error {
	if r.find(id) < 0 {
		return &ErrEmpleoNotFound{ID: id}
	}
	r.pending = id
	r.state = StateConfirmingDelete
	return nil
}

// CancelDelete leaves the collection unchanged.
func (r *Registry) CancelDelete() {
	r.pending = 0
	r.state = StateIdle
}

// ConfirmDelete removes exactly the pending entry and re-saves the
// remaining collection. A failed save restores the entry.
func (r *Registry) ConfirmDelete(ctx context.Context) error {
	if r.state != StateConfirmingDelete {
		return fmt.Errorf("no hay eliminación pendiente")
	}
	r.state = StateDeleting
	id := r.pending
	r.pending = 0

	before := r.empleos
	filtered := make([]model.Empleo, 0, len(before))
	for _, e := range before {
		if e.ID != id {
			filtered = append(filtered, e)
		}
	}
	r.empleos = filtered
	if err := r.store.Save(ctx, r.empleos); err != nil {
		r.empleos = before
		r.state = StateIdle
		return err
	}
	r.state = StateIdle
	return nil
}

func (r *Registry) find(id int64) int {
	for i, e := range r.empleos {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// CountLabel pluralizes the entry count: "0 empleos", "1 empleo",
// "2 empleos".
func (r *Registry) CountLabel() string {
	n := len(r.empleos)
	if n == 1 {
		return "1 empleo"
	}
	return fmt.Sprintf("%d empleos", n)
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// formatFecha reproduces the es-ES long date of the original UI,
// e.g. "31 de agosto de 2026, 14:05" (seconds only in the modal).
func formatFecha(t time.Time, withSeconds bool) string {
	s := fmt.Sprintf("%d de %s de %d, %02d:%02d",
		t.Day(), spanishMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute())
	if withSeconds {
		s += fmt.Sprintf(":%02d", t.Second())
	}
	return s
}

type empleoView struct {
	ID     int64
	Nombre string
	Link   string
	Fecha  string
}

type listView struct {
	CountLabel string
	Empleos    []empleoView
}

const listTemplateText = `<div id="empleosHeader"><span id="empleosCount">{{.CountLabel}}</span></div>
<div id="empleosList">
{{- if .Empleos}}
{{- range .Empleos}}
<div class="empleo-item" data-id="{{.ID}}">
<h3>{{.Nombre}}</h3>
<div class="empleo-fecha">Agregado: {{.Fecha}}</div>
{{- if .Link}}
<a href="{{.Link}}" target="_blank" rel="noopener noreferrer">{{.Link}}</a>
{{- else}}
<div class="empleo-sin-link">Sin link</div>
{{- end}}
<div class="empleo-actions">
<button class="btn-view" data-id="{{.ID}}">Ver</button>
<button class="btn-delete" data-id="{{.ID}}">Eliminar</button>
</div>
</div>
{{- end}}
{{- else}}
<div id="emptyState">No hay empleos registrados todavía</div>
{{- end}}
</div>
`

const modalTemplateText = `<div class="empleo-modal" data-id="{{.ID}}">
<h2 id="modalEmpresa">{{.Nombre}}</h2>
<div id="modalFecha">{{.Fecha}}</div>
<div id="modalLink">
{{- if .Link}}<a href="{{.Link}}" target="_blank" rel="noopener noreferrer">{{.Link}}</a>
{{- else}}<span class="empleo-sin-link">No se proporcionó un link</span>{{end}}
</div>
</div>
`

var (
	listTemplate  = template.Must(template.New("empleos_list").Parse(listTemplateText))
	modalTemplate = template.Must(template.New("empleo_modal").Parse(modalTemplateText))
)

// RenderList renders the collection newest-first. Storage order stays
// append-only oldest-first; only the display is reversed.
func (r *Registry) RenderList() (string, error) {
	views := make([]empleoView, 0, len(r.empleos))
	for i := len(r.empleos) - 1; i >= 0; i-- {
		e := r.empleos[i]
		views = append(views, empleoView{
			ID:     e.ID,
			Nombre: e.NombreEmpresa,
			Link:   e.LinkEmpleo,
			Fecha:  formatFecha(e.Fecha, false),
		})
	}
	var buf bytes.Buffer
	if err := listTemplate.Execute(&buf, listView{CountLabel: r.CountLabel(), Empleos: views}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderModal renders the detail view for one entry id.
func (r *Registry) RenderModal(id int64) (string, error) {
	i := r.find(id)
	if i < 0 {
		return "", &ErrEmpleoNotFound{ID: id}
	}
	e := r.empleos[i]
	var buf bytes.Buffer
	err := modalTemplate.Execute(&buf, empleoView{
		ID:     e.ID,
		Nombre: e.NombreEmpresa,
		Link:   e.LinkEmpleo,
		Fecha:  formatFecha(e.Fecha, true),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
