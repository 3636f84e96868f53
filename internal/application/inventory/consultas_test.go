package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgagro/agro-api/internal/application/inventory"
	"github.com/mgagro/agro-api/internal/domain"
	"github.com/mgagro/agro-api/internal/domain/entity"
	"github.com/mgagro/agro-api/internal/domain/repository"
)

// newEngineConLibro registra una secuencia mixta y fija fechas conocidas
// (un movimiento por día desde base) para poder probar filtros de rango.
func newEngineConLibro(t *testing.T) (*inventory.MovimientoUseCase, *fakeStore, time.Time) {
	t.Helper()
	uc, store := newEngine(0, 5)
	for _, p := range []struct {
		tipo     string
		cantidad int64
	}{
		{"entrada", 20}, // id 1, base
		{"salida", 5},   // id 2, base+1d
		{"entrada", 10}, // id 3, base+2d
		{"ajuste", 12},  // id 4, base+3d
		{"salida", 2},   // id 5, base+4d
	} {
		_, err := uc.RegistrarMovimiento(context.Background(), identAdmin(), movimiento(p.tipo, p.cantidad))
		require.NoError(t, err)
	}
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, m := range store.movimientos {
		m.Fecha = base.AddDate(0, 0, i)
	}
	return uc, store, base
}

func fechaPtr(t time.Time) *time.Time { return &t }

func TestListar_TipoInvalido(t *testing.T) {
	uc, _, _ := newEngineConLibro(t)

	_, err := uc.ListarMovimientos(context.Background(), repository.FiltroMovimientos{Tipo: "transferencia"})
	assert.ErrorIs(t, err, domain.ErrTipoMovimiento)
}

func TestListar_SinFiltrosDevuelveTodoOrdenado(t *testing.T) {
	uc, _, _ := newEngineConLibro(t)

	list, err := uc.ListarMovimientos(context.Background(), repository.FiltroMovimientos{})
	require.NoError(t, err)

	require.Len(t, list, 5)
	assert.Equal(t, int64(5), list[0].ID, "el más reciente va primero")
	assert.Equal(t, int64(1), list[4].ID)
	assert.Equal(t, "ART-TEST", list[0].Codigo)
	assert.Equal(t, "Artículo de prueba", list[0].ArticuloNombre)
	assert.Equal(t, "U", list[0].UsuarioNombre)
}

// Los filtros se componen con AND: tipo + rango de fechas acotan juntos.
func TestListar_ComposicionDeFiltros(t *testing.T) {
	uc, _, base := newEngineConLibro(t)

	f := repository.FiltroMovimientos{
		Tipo:  entity.MovimientoEntrada,
		Desde: fechaPtr(base.AddDate(0, 0, 1)),
		Hasta: fechaPtr(base.AddDate(0, 0, 3)),
	}
	list, err := uc.ListarMovimientos(context.Background(), f)
	require.NoError(t, err)

	// De las dos entradas (días 0 y 2) solo la del día 2 cae en el rango.
	require.Len(t, list, 1)
	assert.Equal(t, int64(3), list[0].ID)
	assert.Equal(t, "entrada", list[0].Tipo)
}

func TestListar_RangoDeFechasAcota(t *testing.T) {
	uc, _, base := newEngineConLibro(t)

	list, err := uc.ListarMovimientos(context.Background(), repository.FiltroMovimientos{
		Desde: fechaPtr(base.AddDate(0, 0, 3)),
	})
	require.NoError(t, err)
	assert.Len(t, list, 2, "solo los movimientos de los días 3 y 4")

	list, err = uc.ListarMovimientos(context.Background(), repository.FiltroMovimientos{
		Hasta: fechaPtr(base.AddDate(0, 0, 1)),
	})
	require.NoError(t, err)
	assert.Len(t, list, 2, "solo los movimientos de los días 0 y 1")
}

// Una entrada cuyo autor fue eliminado (user_id en NULL) sigue en el listado,
// sin nombre de usuario.
func TestListar_AutorEliminadoSigueEnElLibro(t *testing.T) {
	uc, store, _ := newEngineConLibro(t)
	store.movimientos[0].UserID = nil

	list, err := uc.ListarMovimientos(context.Background(), repository.FiltroMovimientos{})
	require.NoError(t, err)

	require.Len(t, list, 5, "el libro no pierde entradas al desaparecer la cuenta")
	huerfano := list[len(list)-1] // id 1, el más antiguo
	assert.Equal(t, int64(1), huerfano.ID)
	assert.Nil(t, huerfano.UserID)
	assert.Empty(t, huerfano.UsuarioNombre)
}

func TestPorArticulo_LimiteTrunca(t *testing.T) {
	uc, _, _ := newEngineConLibro(t)

	list, err := uc.MovimientosPorArticulo(context.Background(), articuloID, 2)
	require.NoError(t, err)

	require.Len(t, list, 2)
	assert.Equal(t, int64(5), list[0].ID, "el tope conserva los más recientes")
	assert.Equal(t, int64(4), list[1].ID)
}

func TestPorArticulo_SinLimiteDevuelveTodo(t *testing.T) {
	uc, _, _ := newEngineConLibro(t)

	list, err := uc.MovimientosPorArticulo(context.Background(), articuloID, 0)
	require.NoError(t, err)
	assert.Len(t, list, 5)
}

func TestResumen_SoloAdmin(t *testing.T) {
	uc, _, _ := newEngineConLibro(t)

	_, err := uc.ResumenMovimientos(context.Background(), identEmpleado(), repository.FiltroMovimientos{})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	gerente := entity.Identidad{UserID: 5, Rol: entity.RolGerente}
	_, err = uc.ResumenMovimientos(context.Background(), gerente, repository.FiltroMovimientos{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestResumen_TotalesPorTipo(t *testing.T) {
	uc, _, _ := newEngineConLibro(t)

	resumen, err := uc.ResumenMovimientos(context.Background(), identAdmin(), repository.FiltroMovimientos{})
	require.NoError(t, err)

	require.Len(t, resumen, 3)
	porTipo := map[string]int{}
	for i, g := range resumen {
		porTipo[g.Tipo] = i
	}

	entradas := resumen[porTipo["entrada"]]
	assert.Equal(t, int64(2), entradas.TotalMovimientos)
	assert.True(t, entradas.CantidadTotal.Equal(decimal.NewFromInt(30)))

	salidas := resumen[porTipo["salida"]]
	assert.Equal(t, int64(2), salidas.TotalMovimientos)
	assert.True(t, salidas.CantidadTotal.Equal(decimal.NewFromInt(7)))

	ajustes := resumen[porTipo["ajuste"]]
	assert.Equal(t, int64(1), ajustes.TotalMovimientos)
	assert.True(t, ajustes.CantidadTotal.Equal(decimal.NewFromInt(12)))
}

func TestResumen_RangoDeFechas(t *testing.T) {
	uc, _, base := newEngineConLibro(t)

	// Solo los días 0 a 1: una entrada (20) y una salida (5).
	resumen, err := uc.ResumenMovimientos(context.Background(), identAdmin(), repository.FiltroMovimientos{
		Desde: fechaPtr(base),
		Hasta: fechaPtr(base.AddDate(0, 0, 1)),
	})
	require.NoError(t, err)

	require.Len(t, resumen, 2)
	assert.Equal(t, "entrada", resumen[0].Tipo)
	assert.True(t, resumen[0].CantidadTotal.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, "salida", resumen[1].Tipo)
	assert.True(t, resumen[1].CantidadTotal.Equal(decimal.NewFromInt(5)))
}
