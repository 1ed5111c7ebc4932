package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/pedidos-api/internal/domain"
)

// Límites de paginación para listados.
const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// PageRequest paginación para listados (skip/limit). Limit nil significa "no enviado".
type PageRequest struct {
	Skip  int  `query:"skip"`
	Limit *int `query:"limit"`
}

// Bounds devuelve skip y limit efectivos. Sin limit (o negativo) se usa DefaultLimit, limit=0
// devuelve una página vacía y nunca se supera MaxLimit. Un skip negativo vale 0.
func (p PageRequest) Bounds() (skip, limit int) {
	skip, limit = p.Skip, DefaultLimit
	if p.Limit != nil && *p.Limit >= 0 {
		limit = *p.Limit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if skip < 0 {
		skip = 0
	}
	return skip, limit
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple con mensaje (resúmenes).
type MessageResponse struct {
	Message string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Reportar los campos con su nombre JSON.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationError detalla los campos que no pasaron la validación. Es un domain.ErrInvalidInput.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("campos inválidos o faltantes: %s", strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInput }

// Validate aplica las etiquetas validate del struct.
func Validate(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fieldPath(fe.Namespace()))
	}
	return &ValidationError{Fields: fields}
}

// fieldPath quita el nombre del struct raíz: "CreatePedidoRequest.costo" -> "costo".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
