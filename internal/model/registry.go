package model

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Empleo is one job-registry entry. The id is the creation instant in
// Unix milliseconds and is the only identity key; linkEmpleo may be
// empty but is always present in the stored shape.
type Empleo struct {
	ID            int64     `json:"id" validate:"required"`
	NombreEmpresa string    `json:"nombreEmpresa" validate:"required"`
	LinkEmpleo    string    `json:"linkEmpleo"`
	Fecha         time.Time `json:"fecha" validate:"required"`
}

func (e Empleo) Validate() error {
	return validate.Struct(e)
}

// EmpleoList is the wrapper shape exchanged with /get_empleos and
// /save_empleos.
type EmpleoList struct {
	Empleos []Empleo `json:"empleos"`
}
