package inventory_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/mgagro/agro-api/internal/domain/entity"
	"github.com/mgagro/agro-api/internal/domain/repository"
)

// fakeStore estado compartido en memoria para los fakes de persistencia.
type fakeStore struct {
	mu          sync.Mutex
	users       map[int64]*entity.User
	articulos   map[int64]*entity.Articulo
	movimientos []*entity.Movimiento
	nextMovID   int64

	// fallarCrearMov fuerza el fallo del insert del libro para probar atomicidad.
	fallarCrearMov bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:     map[int64]*entity.User{},
		articulos: map[int64]*entity.Articulo{},
		nextMovID: 1,
	}
}

func (s *fakeStore) addUser(id int64, rol entity.Rol, activo bool) {
	s.users[id] = &entity.User{ID: id, Email: "u@test", Nombre: "U", Rol: rol, Activo: activo}
}

func (s *fakeStore) addArticulo(id int64, stock, minimo int64) {
	s.articulos[id] = &entity.Articulo{
		ID:          id,
		Codigo:      "ART-TEST",
		Nombre:      "Artículo de prueba",
		StockActual: decimal.NewFromInt(stock),
		StockMinimo: decimal.NewFromInt(minimo),
		Activo:      true,
	}
}

func (s *fakeStore) stockDe(id int64) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.articulos[id].StockActual
}

// snapshot copia profunda para simular rollback.
func (s *fakeStore) snapshot() (map[int64]*entity.Articulo, []*entity.Movimiento, int64) {
	arts := make(map[int64]*entity.Articulo, len(s.articulos))
	for k, v := range s.articulos {
		copia := *v
		arts[k] = &copia
	}
	movs := make([]*entity.Movimiento, len(s.movimientos))
	copy(movs, s.movimientos)
	return arts, movs, s.nextMovID
}

// ──────────────────────────────────────────────────────────────────────────────
// fakeTxRunner: serializa las transacciones (equivalente al FOR UPDATE de la
// implementación real) y restaura el snapshot si el callback falla.
// ──────────────────────────────────────────────────────────────────────────────

type fakeTxRunner struct {
	store *fakeStore
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimientoRepository,
	artRepo repository.ArticuloRepository,
	userRepo repository.UserRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	arts, movs, nextID := r.store.snapshot()
	err := fn(&fakeMovRepo{store: r.store}, &fakeArtRepo{store: r.store}, &fakeUserRepo{store: r.store})
	if err != nil {
		r.store.articulos = arts
		r.store.movimientos = movs
		r.store.nextMovID = nextID
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de repositorios. No toman el mutex: corren dentro de Run, que ya lo tiene.
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct{ store *fakeStore }

func (r *fakeUserRepo) Crear(ctx context.Context, u *entity.User) (*entity.User, error) {
	r.store.users[u.ID] = u
	return u, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.store.users[id], nil
}

func (r *fakeUserRepo) GetActivoByID(ctx context.Context, id int64) (*entity.User, error) {
	u := r.store.users[id]
	if u == nil || !u.Activo {
		return nil, nil
	}
	return u, nil
}

func (r *fakeUserRepo) GetActivoByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.store.users {
		if u.Email == email && u.Activo {
			return u, nil
		}
	}
	return nil, nil
}

type fakeArtRepo struct{ store *fakeStore }

func (r *fakeArtRepo) Crear(ctx context.Context, a *entity.Articulo) (*entity.Articulo, error) {
	r.store.articulos[a.ID] = a
	return a, nil
}

func (r *fakeArtRepo) GetByID(ctx context.Context, id int64) (*entity.Articulo, error) {
	return r.store.articulos[id], nil
}

func (r *fakeArtRepo) GetActivoForUpdate(ctx context.Context, id int64) (*entity.Articulo, error) {
	a := r.store.articulos[id]
	if a == nil || !a.Activo {
		return nil, nil
	}
	copia := *a
	return &copia, nil
}

func (r *fakeArtRepo) Listar(ctx context.Context, f repository.FiltroArticulos) ([]*entity.Articulo, error) {
	var out []*entity.Articulo
	for _, a := range r.store.articulos {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeArtRepo) Buscar(ctx context.Context, termino string) ([]*entity.Articulo, error) {
	return nil, nil
}

func (r *fakeArtRepo) Actualizar(ctx context.Context, a *entity.Articulo) (*entity.Articulo, error) {
	return nil, errors.New("no implementado en el fake")
}

func (r *fakeArtRepo) ActualizarStock(ctx context.Context, id int64, stock decimal.Decimal) error {
	a := r.store.articulos[id]
	if a == nil {
		return errors.New("articulo inexistente")
	}
	a.StockActual = stock
	return nil
}

func (r *fakeArtRepo) Desactivar(ctx context.Context, id int64) error {
	a := r.store.articulos[id]
	if a != nil {
		a.Activo = false
	}
	return nil
}

func (r *fakeArtRepo) ListarStockBajo(ctx context.Context) ([]repository.ArticuloConNivel, error) {
	var out []repository.ArticuloConNivel
	for _, a := range r.store.articulos {
		if a.Activo && a.StockActual.LessThanOrEqual(a.StockMinimo) {
			out = append(out, repository.ArticuloConNivel{
				Articulo: *a,
				Nivel:    entity.ClasificarNivel(a.StockActual, a.StockMinimo),
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StockActual.LessThan(out[j].StockActual)
	})
	return out, nil
}

type fakeMovRepo struct{ store *fakeStore }

func (r *fakeMovRepo) Crear(ctx context.Context, m *entity.Movimiento) (*entity.Movimiento, error) {
	if r.store.fallarCrearMov {
		return nil, errors.New("fallo inyectado en el insert del libro")
	}
	copia := *m
	copia.ID = r.store.nextMovID
	r.store.nextMovID++
	copia.Fecha = time.Now()
	r.store.movimientos = append(r.store.movimientos, &copia)
	return &copia, nil
}

func (r *fakeMovRepo) GetByID(ctx context.Context, id int64) (*entity.Movimiento, error) {
	for _, m := range r.store.movimientos {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMovRepo) UltimoDeArticulo(ctx context.Context, articuloID int64) (*entity.Movimiento, error) {
	var ultimo *entity.Movimiento
	for _, m := range r.store.movimientos {
		if m.ArticuloID != articuloID {
			continue
		}
		if ultimo == nil || m.Fecha.After(ultimo.Fecha) ||
			(m.Fecha.Equal(ultimo.Fecha) && m.ID > ultimo.ID) {
			ultimo = m
		}
	}
	return ultimo, nil
}

func (r *fakeMovRepo) Eliminar(ctx context.Context, id int64) error {
	for i, m := range r.store.movimientos {
		if m.ID == id {
			r.store.movimientos = append(r.store.movimientos[:i], r.store.movimientos[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeMovRepo) Listar(ctx context.Context, f repository.FiltroMovimientos) ([]repository.MovimientoDetalle, error) {
	var out []repository.MovimientoDetalle
	for _, m := range r.store.movimientos {
		if f.ArticuloID != nil && m.ArticuloID != *f.ArticuloID {
			continue
		}
		if f.Tipo != "" && m.Tipo != f.Tipo {
			continue
		}
		if f.Desde != nil && m.Fecha.Before(*f.Desde) {
			continue
		}
		if f.Hasta != nil && m.Fecha.After(*f.Hasta) {
			continue
		}
		d := repository.MovimientoDetalle{Movimiento: *m}
		if a := r.store.articulos[m.ArticuloID]; a != nil {
			d.Codigo = a.Codigo
			d.ArticuloNombre = a.Nombre
		}
		if m.UserID != nil {
			if u := r.store.users[*m.UserID]; u != nil {
				d.UsuarioNombre = u.Nombre
			}
		}
		out = append(out, d)
	}
	// Más recientes primero, como el adaptador real.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Fecha.Equal(out[j].Fecha) {
			return out[i].Fecha.After(out[j].Fecha)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *fakeMovRepo) ListarPorArticulo(ctx context.Context, articuloID int64, limit int) ([]repository.MovimientoDetalle, error) {
	articulo := articuloID
	out, err := r.Listar(ctx, repository.FiltroMovimientos{ArticuloID: &articulo})
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeMovRepo) Resumen(ctx context.Context, desde, hasta *time.Time) ([]repository.ResumenTipo, error) {
	porTipo := map[entity.TipoMovimiento]*repository.ResumenTipo{}
	for _, m := range r.store.movimientos {
		if desde != nil && m.Fecha.Before(*desde) {
			continue
		}
		if hasta != nil && m.Fecha.After(*hasta) {
			continue
		}
		g, ok := porTipo[m.Tipo]
		if !ok {
			g = &repository.ResumenTipo{Tipo: m.Tipo}
			porTipo[m.Tipo] = g
		}
		g.TotalMovimientos++
		g.CantidadTotal = g.CantidadTotal.Add(m.Cantidad)
	}
	var out []repository.ResumenTipo
	for _, g := range porTipo {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tipo < out[j].Tipo })
	return out, nil
}
