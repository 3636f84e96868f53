package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgagro/agro-api/internal/application/inventory"
	"github.com/mgagro/agro-api/internal/domain"
)

// newEngineConHistorial registra una secuencia de movimientos y devuelve el
// motor listo para probar eliminaciones.
func newEngineConHistorial(t *testing.T) (*inventory.MovimientoUseCase, *fakeStore) {
	t.Helper()
	uc, store := newEngine(0, 5)
	for _, p := range []struct {
		tipo     string
		cantidad int64
	}{
		{"entrada", 10}, // id 1
		{"salida", 2},   // id 2
		{"entrada", 5},  // id 3, el más reciente
	} {
		_, err := uc.RegistrarMovimiento(context.Background(), identAdmin(), movimiento(p.tipo, p.cantidad))
		require.NoError(t, err)
	}
	return uc, store
}

func TestEliminar_SoloAdmin(t *testing.T) {
	uc, store := newEngineConHistorial(t)

	_, err := uc.EliminarMovimiento(context.Background(), identEmpleado(), 2)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Len(t, store.movimientos, 3, "nada se elimina sin rol admin")
}

func TestEliminar_MovimientoInexistente(t *testing.T) {
	uc, _ := newEngineConHistorial(t)

	_, err := uc.EliminarMovimiento(context.Background(), identAdmin(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El movimiento más reciente respalda el saldo vivo: está protegido.
func TestEliminar_UltimoMovimientoProtegido(t *testing.T) {
	uc, store := newEngineConHistorial(t)

	_, err := uc.EliminarMovimiento(context.Background(), identAdmin(), 3)
	assert.ErrorIs(t, err, domain.ErrUltimoMovimiento)
	assert.Len(t, store.movimientos, 3)
}

// Las entradas anteriores sí pueden depurarse, y el saldo no se rederiva.
func TestEliminar_MovimientoAnteriorDejaSaldoIntacto(t *testing.T) {
	uc, store := newEngineConHistorial(t)
	saldoAntes := store.stockDe(articuloID)

	resp, err := uc.EliminarMovimiento(context.Background(), identAdmin(), 2)
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "Movimiento eliminado correctamente", resp.Message)
	assert.Equal(t, int64(2), resp.MovimientoEliminado.ID)
	assert.Len(t, store.movimientos, 2)
	assert.True(t, store.stockDe(articuloID).Equal(saldoAntes),
		"eliminar una entrada superada no toca stock_actual")
	assert.True(t, saldoAntes.Equal(decimal.NewFromInt(13)))
}

// Tras depurar el anterior último-menos-uno, el último sigue protegido.
func TestEliminar_ProteccionSeMantieneTrasDepurar(t *testing.T) {
	uc, _ := newEngineConHistorial(t)

	_, err := uc.EliminarMovimiento(context.Background(), identAdmin(), 1)
	require.NoError(t, err)
	_, err = uc.EliminarMovimiento(context.Background(), identAdmin(), 2)
	require.NoError(t, err)

	_, err = uc.EliminarMovimiento(context.Background(), identAdmin(), 3)
	assert.ErrorIs(t, err, domain.ErrUltimoMovimiento,
		"el movimiento vigente sigue protegido aunque sea el único")
}
