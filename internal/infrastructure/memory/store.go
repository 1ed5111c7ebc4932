// Package memory implementa los repositorios en memoria. Se usa con DB_DRIVER=memory y en los tests.
//
// Cada Run trabaja sobre una copia del estado y solo la publica si fn retorna nil,
// lo que reproduce el commit/rollback de la implementación PostgreSQL.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

var _ repository.TxRunner = (*Store)(nil)

// Store guarda todas las tablas en memoria y serializa las transacciones.
type Store struct {
	mu   sync.Mutex
	data *dataset
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{data: &dataset{}}
}

type dataset struct {
	seqUser, seqPedido, seqResumen, seqDetalle, seqProduct int64

	users     []entity.User
	pedidos   []entity.Pedido
	resumenes []entity.Resumen // sin Detalles; viven en detalles
	detalles  []entity.DetalleResumen
	products  []entity.Product
}

func (d *dataset) clone() *dataset {
	c := *d
	c.users = append([]entity.User(nil), d.users...)
	c.pedidos = append([]entity.Pedido(nil), d.pedidos...)
	c.resumenes = append([]entity.Resumen(nil), d.resumenes...)
	c.detalles = append([]entity.DetalleResumen(nil), d.detalles...)
	c.products = append([]entity.Product(nil), d.products...)
	return &c
}

// Run ejecuta fn sobre una copia del estado; la publica solo si fn no falla.
func (s *Store) Run(ctx context.Context, fn func(repository.Stores) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.data.clone()
	if err := fn(repository.Stores{
		Users:     &userRepo{d: work},
		Pedidos:   &pedidoRepo{d: work},
		Resumenes: &resumenRepo{d: work},
		Products:  &productRepo{d: work},
	}); err != nil {
		return err
	}
	s.data = work
	return nil
}

// ── users ─────────────────────────────────────────────────────────────────────

type userRepo struct{ d *dataset }

func (r *userRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range r.d.users {
		if existing.Username == u.Username {
			return domain.ErrUsernameTaken
		}
	}
	r.d.seqUser++
	u.ID = r.d.seqUser
	r.d.users = append(r.d.users, *u)
	return nil
}

func (r *userRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.d.users {
		if u.Username == username {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

// ── pedidos ───────────────────────────────────────────────────────────────────

type pedidoRepo struct{ d *dataset }

func (r *pedidoRepo) Create(_ context.Context, p *entity.Pedido) error {
	if r.codeTaken(p.Pedido, 0) {
		return domain.ErrDuplicate
	}
	r.d.seqPedido++
	p.ID = r.d.seqPedido
	r.d.pedidos = append(r.d.pedidos, *p)
	return nil
}

func (r *pedidoRepo) GetByID(_ context.Context, id int64) (*entity.Pedido, error) {
	if i := r.index(id); i >= 0 {
		out := r.d.pedidos[i]
		return &out, nil
	}
	return nil, nil
}

func (r *pedidoRepo) GetByCode(_ context.Context, code string) (*entity.Pedido, error) {
	for _, p := range r.d.pedidos {
		if p.Pedido == code {
			out := p
			return &out, nil
		}
	}
	return nil, nil
}

func (r *pedidoRepo) Update(_ context.Context, p *entity.Pedido) error {
	i := r.index(p.ID)
	if i < 0 {
		return domain.ErrNotFound
	}
	if r.codeTaken(p.Pedido, p.ID) {
		return domain.ErrDuplicate
	}
	r.d.pedidos[i] = *p
	return nil
}

func (r *pedidoRepo) List(_ context.Context, limit, offset int) ([]*entity.Pedido, error) {
	var out []*entity.Pedido
	for i := offset; i < len(r.d.pedidos) && len(out) < limit; i++ {
		p := r.d.pedidos[i]
		out = append(out, &p)
	}
	return out, nil
}

func (r *pedidoRepo) Delete(_ context.Context, id int64) error {
	i := r.index(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.d.pedidos = append(r.d.pedidos[:i:i], r.d.pedidos[i+1:]...)
	return nil
}

func (r *pedidoRepo) TotalsByEstado(_ context.Context) ([]entity.TotalesPedidos, error) {
	byEstado := make(map[string]*entity.TotalesPedidos)
	for _, p := range r.d.pedidos {
		t, ok := byEstado[p.Estado]
		if !ok {
			t = &entity.TotalesPedidos{Estado: p.Estado, Costo: decimal.Zero, Envio: decimal.Zero, CostoCompra: decimal.Zero}
			byEstado[p.Estado] = t
		}
		t.Pedidos++
		t.Costo = t.Costo.Add(decimal.NewFromFloat(p.Costo))
		t.Envio = t.Envio.Add(decimal.NewFromFloat(p.Envio))
		t.CostoCompra = t.CostoCompra.Add(decimal.NewFromFloat(p.CostoCompra))
	}
	out := make([]entity.TotalesPedidos, 0, len(byEstado))
	for _, t := range byEstado {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return strings.Compare(out[i].Estado, out[j].Estado) < 0 })
	return out, nil
}

func (r *pedidoRepo) index(id int64) int {
	for i, p := range r.d.pedidos {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (r *pedidoRepo) codeTaken(code string, exceptID int64) bool {
	for _, p := range r.d.pedidos {
		if p.Pedido == code && p.ID != exceptID {
			return true
		}
	}
	return false
}

// ── resúmenes ─────────────────────────────────────────────────────────────────

type resumenRepo struct{ d *dataset }

func (r *resumenRepo) Create(_ context.Context, res *entity.Resumen) error {
	r.d.seqResumen++
	res.ID = r.d.seqResumen
	row := *res
	row.Detalles = nil
	r.d.resumenes = append(r.d.resumenes, row)
	return nil
}

func (r *resumenRepo) CreateDetail(_ context.Context, det *entity.DetalleResumen) error {
	if r.index(det.ResumenID) < 0 {
		return domain.ErrNotFound
	}
	r.d.seqDetalle++
	det.ID = r.d.seqDetalle
	r.d.detalles = append(r.d.detalles, *det)
	return nil
}

func (r *resumenRepo) GetByID(_ context.Context, id int64) (*entity.Resumen, error) {
	i := r.index(id)
	if i < 0 {
		return nil, nil
	}
	out := r.withDetalles(r.d.resumenes[i])
	return &out, nil
}

func (r *resumenRepo) List(_ context.Context) ([]*entity.Resumen, error) {
	out := make([]*entity.Resumen, 0, len(r.d.resumenes))
	for _, res := range r.d.resumenes {
		full := r.withDetalles(res)
		out = append(out, &full)
	}
	return out, nil
}

func (r *resumenRepo) Update(_ context.Context, res *entity.Resumen) error {
	i := r.index(res.ID)
	if i < 0 {
		return domain.ErrNotFound
	}
	row := *res
	row.Detalles = nil
	r.d.resumenes[i] = row
	return nil
}

func (r *resumenRepo) DeleteDetails(_ context.Context, resumenID int64) error {
	kept := r.d.detalles[:0:0]
	for _, det := range r.d.detalles {
		if det.ResumenID != resumenID {
			kept = append(kept, det)
		}
	}
	r.d.detalles = kept
	return nil
}

func (r *resumenRepo) Delete(ctx context.Context, id int64) error {
	i := r.index(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.d.resumenes = append(r.d.resumenes[:i:i], r.d.resumenes[i+1:]...)
	// ON DELETE CASCADE
	return r.DeleteDetails(ctx, id)
}

func (r *resumenRepo) index(id int64) int {
	for i, res := range r.d.resumenes {
		if res.ID == id {
			return i
		}
	}
	return -1
}

func (r *resumenRepo) withDetalles(res entity.Resumen) entity.Resumen {
	res.Detalles = nil
	for _, det := range r.d.detalles {
		if det.ResumenID == res.ID {
			res.Detalles = append(res.Detalles, det)
		}
	}
	return res
}

// ── products ──────────────────────────────────────────────────────────────────

type productRepo struct{ d *dataset }

func (r *productRepo) Create(_ context.Context, p *entity.Product) error {
	r.d.seqProduct++
	p.ID = r.d.seqProduct
	r.d.products = append(r.d.products, *p)
	return nil
}

func (r *productRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	if i := r.index(id); i >= 0 {
		out := r.d.products[i]
		return &out, nil
	}
	return nil, nil
}

func (r *productRepo) Update(_ context.Context, p *entity.Product) error {
	i := r.index(p.ID)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.d.products[i] = *p
	return nil
}

func (r *productRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for i := offset; i < len(r.d.products) && len(out) < limit; i++ {
		p := r.d.products[i]
		out = append(out, &p)
	}
	return out, nil
}

func (r *productRepo) Delete(_ context.Context, id int64) error {
	i := r.index(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.d.products = append(r.d.products[:i:i], r.d.products[i+1:]...)
	return nil
}

func (r *productRepo) index(id int64) int {
	for i, p := range r.d.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}
