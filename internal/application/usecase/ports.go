package usecase

import (
	"context"

	"github.com/jhoicas/pedidos-api/internal/domain/entity"
)

// ResumenPDFGenerator genera la representación imprimible de un resumen.
type ResumenPDFGenerator interface {
	GenerateResumenPDF(ctx context.Context, r *entity.Resumen) ([]byte, error)
}
