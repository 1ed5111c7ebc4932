// import_pedidos carga pedidos desde un CSV usando las mismas reglas que la API.
//
// Uso: go run ./cmd/import_pedidos [--latin1] pedidos.csv
// Columnas: pedido,cliente,tienda,descripcion,estado,costo,envio,costo_compra (la primera fila es cabecera).
// Los códigos duplicados y las filas inválidas se reportan y se saltan.
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/application/usecase"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/infrastructure/store"
	"github.com/jhoicas/pedidos-api/pkg/config"
	"github.com/jhoicas/pedidos-api/pkg/logger"
)

const minColumns = 6 // envio y costo_compra son opcionales

// pedidoCreator es lo que el importador necesita de PedidoUseCase.
type pedidoCreator interface {
	Create(ctx context.Context, in dto.PedidoRequest) (*dto.PedidoResponse, error)
}

type importResult struct {
	Created    int
	Duplicated int
	Invalid    int
}

func main() {
	latin1 := flag.Bool("latin1", false, "el archivo está en ISO-8859-1")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "uso: import_pedidos [--latin1] archivo.csv")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var r io.Reader = f
	if *latin1 {
		r = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}

	ctx := context.Background()
	txRunner, closeStore, err := store.Open(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer closeStore()

	res, err := importCSV(ctx, r, usecase.NewPedidoUseCase(txRunner), os.Stderr)
	if err != nil {
		log.Error().Err(err).Msg("importación interrumpida")
	}
	log.Info().
		Int("creados", res.Created).
		Int("duplicados", res.Duplicated).
		Int("invalidos", res.Invalid).
		Msg("importación terminada")
	if err != nil {
		closeStore()
		os.Exit(1)
	}
}

// importCSV crea un pedido por fila. Duplicados y filas inválidas se reportan en report;
// cualquier otro error corta la importación.
func importCSV(ctx context.Context, r io.Reader, uc pedidoCreator, report io.Writer) (importResult, error) {
	var res importResult
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	line := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		line++
		if err != nil {
			return res, fmt.Errorf("línea %d: %w", line, err)
		}
		if line == 1 {
			continue // cabecera
		}

		in, err := parseRecord(rec)
		if err != nil {
			res.Invalid++
			fmt.Fprintf(report, "línea %d: %v\n", line, err)
			continue
		}
		_, err = uc.Create(ctx, in)
		switch {
		case err == nil:
			res.Created++
		case errors.Is(err, domain.ErrDuplicate):
			res.Duplicated++
			fmt.Fprintf(report, "línea %d: pedido %q ya existe\n", line, *in.Pedido)
		case errors.Is(err, domain.ErrInvalidInput):
			res.Invalid++
			fmt.Fprintf(report, "línea %d: %v\n", line, err)
		default:
			return res, fmt.Errorf("línea %d: %w", line, err)
		}
	}
}

func parseRecord(rec []string) (dto.PedidoRequest, error) {
	if len(rec) < minColumns {
		return dto.PedidoRequest{}, fmt.Errorf("se esperaban al menos %d columnas, hay %d", minColumns, len(rec))
	}
	col := func(i int) string {
		if i < len(rec) {
			return strings.TrimSpace(rec[i])
		}
		return ""
	}
	costo, err := strconv.ParseFloat(col(5), 64)
	if err != nil {
		return dto.PedidoRequest{}, fmt.Errorf("costo inválido %q", col(5))
	}
	envio, err := optionalFloat(col(6))
	if err != nil {
		return dto.PedidoRequest{}, fmt.Errorf("envio inválido %q", col(6))
	}
	costoCompra, err := optionalFloat(col(7))
	if err != nil {
		return dto.PedidoRequest{}, fmt.Errorf("costo_compra inválido %q", col(7))
	}

	pedido, cliente, tienda, descripcion, estado := col(0), col(1), col(2), col(3), col(4)
	if estado == "" {
		estado = entity.EstadoPendiente
	}
	return dto.PedidoRequest{
		Pedido:      &pedido,
		Cliente:     &cliente,
		Tienda:      &tienda,
		Descripcion: &descripcion,
		Estado:      &estado,
		Costo:       &costo,
		Envio:       envio,
		CostoCompra: costoCompra,
	}, nil
}

func optionalFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
