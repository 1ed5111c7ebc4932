package repository

import (
	"context"

	"github.com/jhoicas/pedidos-api/internal/domain/entity"
)

// ResumenRepository define el puerto de persistencia para Resumen y sus detalles.
type ResumenRepository interface {
	// Create persiste la cabecera y asigna r.ID (no persiste detalles).
	Create(ctx context.Context, r *entity.Resumen) error
	// CreateDetail persiste una línea y asigna d.ID.
	CreateDetail(ctx context.Context, d *entity.DetalleResumen) error
	// GetByID devuelve el resumen con sus detalles; (nil, nil) si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Resumen, error)
	// List devuelve todos los resúmenes con sus detalles.
	List(ctx context.Context) ([]*entity.Resumen, error)
	Update(ctx context.Context, r *entity.Resumen) error
	// DeleteDetails elimina todas las líneas del resumen.
	DeleteDetails(ctx context.Context, resumenID int64) error
	Delete(ctx context.Context, id int64) error
}
