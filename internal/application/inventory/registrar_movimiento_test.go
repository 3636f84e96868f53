package inventory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgagro/agro-api/internal/application/dto"
	"github.com/mgagro/agro-api/internal/application/inventory"
	"github.com/mgagro/agro-api/internal/domain"
	"github.com/mgagro/agro-api/internal/domain/entity"
)

const (
	adminID    = int64(1)
	empleadoID = int64(2)
	articuloID = int64(10)
)

func identAdmin() entity.Identidad {
	return entity.Identidad{UserID: adminID, Rol: entity.RolAdmin}
}

func identEmpleado() entity.Identidad {
	return entity.Identidad{UserID: empleadoID, Rol: entity.RolEmpleado}
}

// newEngine arma el motor sobre fakes con un artículo (stock, mínimo) y los dos
// usuarios de prueba.
func newEngine(stock, minimo int64) (*inventory.MovimientoUseCase, *fakeStore) {
	store := newFakeStore()
	store.addUser(adminID, entity.RolAdmin, true)
	store.addUser(empleadoID, entity.RolEmpleado, true)
	store.addArticulo(articuloID, stock, minimo)
	uc := inventory.NewMovimientoUseCase(&fakeTxRunner{store: store}, &fakeMovRepo{store: store})
	return uc, store
}

func movimiento(tipo string, cantidad int64) dto.CrearMovimientoRequest {
	return dto.CrearMovimientoRequest{
		ArticuloID: articuloID,
		Tipo:       tipo,
		Cantidad:   decimal.NewFromInt(cantidad),
	}
}

func TestRegistrar_EntradaSumaAlSaldo(t *testing.T) {
	uc, store := newEngine(10, 5)

	resp, err := uc.RegistrarMovimiento(context.Background(), identAdmin(), movimiento("entrada", 4))
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "entrada", resp.Data.Tipo)
	assert.True(t, resp.Data.StockAnterior.Equal(decimal.NewFromInt(10)))
	assert.True(t, resp.Data.StockNuevo.Equal(decimal.NewFromInt(14)))
	assert.True(t, store.stockDe(articuloID).Equal(decimal.NewFromInt(14)))
}

func TestRegistrar_SalidaRestaDelSaldo(t *testing.T) {
	uc, store := newEngine(10, 5)

	resp, err := uc.RegistrarMovimiento(context.Background(), identEmpleado(), movimiento("salida", 3))
	require.NoError(t, err)

	assert.True(t, resp.Data.StockNuevo.Equal(decimal.NewFromInt(7)))
	assert.True(t, store.stockDe(articuloID).Equal(decimal.NewFromInt(7)))
}

func TestRegistrar_SalidaHastaCeroEsValida(t *testing.T) {
	uc, store := newEngine(10, 5)

	resp, err := uc.RegistrarMovimiento(context.Background(), identEmpleado(), movimiento("salida", 10))
	require.NoError(t, err)

	assert.True(t, resp.Data.StockNuevo.IsZero())
	assert.True(t, store.stockDe(articuloID).IsZero())
}

func TestRegistrar_SalidaInsuficienteRechazadaSinCambios(t *testing.T) {
	uc, store := newEngine(10, 5)

	_, err := uc.RegistrarMovimiento(context.Background(), identEmpleado(), movimiento("salida", 11))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// El estado no cambia: ni saldo ni libro.
	assert.True(t, store.stockDe(articuloID).Equal(decimal.NewFromInt(10)))
	assert.Empty(t, store.movimientos)
}

func TestRegistrar_CantidadNoPositivaInvalida(t *testing.T) {
	uc, _ := newEngine(10, 5)

	_, err := uc.RegistrarMovimiento(context.Background(), identAdmin(), movimiento("entrada", 0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RegistrarMovimiento(context.Background(), identAdmin(), movimiento("salida", -1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegistrar_TipoInvalido(t *testing.T) {
	uc, _ := newEngine(10, 5)

	_, err := uc.RegistrarMovimiento(context.Background(), identAdmin(), movimiento("transferencia", 1))
	assert.ErrorIs(t, err, domain.ErrTipoMovimiento)
}

func TestRegistrar_AjusteFijaSaldoAbsoluto(t *testing.T) {
	uc, store := newEngine(10, 5)

	// El ajuste interpreta cantidad como saldo destino, no como delta.
	resp, err := uc.RegistrarMovimiento(context.Background(), identAdmin(), movimiento("ajuste", 25))
	require.NoError(t, err)

	assert.True(t, resp.Data.StockAnterior.Equal(decimal.NewFromInt(10)))
	assert.True(t, resp.Data.StockNuevo.Equal(decimal.NewFromInt(25)))
	assert.True(t, store.stockDe(articuloID).Equal(decimal.NewFromInt(25)))
}

func TestRegistrar_AjusteACeroEsValido(t *testing.T) {
	uc, store := newEngine(10, 5)

	_, err := uc.RegistrarMovimiento(context.Background(), identAdmin(), movimiento("ajuste", 0))
	require.NoError(t, err)
	assert.True(t, store.stockDe(articuloID).IsZero())
}

func TestRegistrar_AjusteNegativoRechazado(t *testing.T) {
	uc, _ := newEngine(10, 5)

	_, err := uc.RegistrarMovimiento(context.Background(), identAdmin(), movimiento("ajuste", -5))
	assert.ErrorIs(t, err, domain.ErrAjusteInvalido)
}

func TestRegistrar_AjusteSoloAdmin(t *testing.T) {
	uc, store := newEngine(10, 5)

	_, err := uc.RegistrarMovimiento(context.Background(), identEmpleado(), movimiento("ajuste", 20))
	assert.ErrorIs(t, err, domain.ErrForbidden)

	gerente := entity.Identidad{UserID: empleadoID, Rol: entity.RolGerente}
	_, err = uc.RegistrarMovimiento(context.Background(), gerente, movimiento("ajuste", 20))
	assert.ErrorIs(t, err, domain.ErrForbidden, "gerente es personal pero no administrador")

	assert.True(t, store.stockDe(articuloID).Equal(decimal.NewFromInt(10)))
}

func TestRegistrar_UsuarioInactivoRechazado(t *testing.T) {
	uc, store := newEngine(10, 5)
	store.users[empleadoID].Activo = false

	_, err := uc.RegistrarMovimiento(context.Background(), identEmpleado(), movimiento("salida", 1))
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRegistrar_ArticuloInactivoRechazado(t *testing.T) {
	uc, store := newEngine(10, 5)
	store.articulos[articuloID].Activo = false

	_, err := uc.RegistrarMovimiento(context.Background(), identAdmin(), movimiento("entrada", 1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Atomicidad: si el insert del libro falla después de actualizar el saldo, la
// transacción revierte y el saldo queda como estaba.
func TestRegistrar_FalloEnLibroRevierteSaldo(t *testing.T) {
	uc, store := newEngine(10, 5)
	store.fallarCrearMov = true

	_, err := uc.RegistrarMovimiento(context.Background(), identAdmin(), movimiento("salida", 3))
	require.Error(t, err)

	assert.True(t, store.stockDe(articuloID).Equal(decimal.NewFromInt(10)),
		"el saldo debe quedar en su valor previo a la transacción")
	assert.Empty(t, store.movimientos)
}

// Concurrencia: dos salidas que caben por separado pero no juntas deben
// resultar en exactamente un éxito y un rechazo por stock insuficiente.
func TestRegistrar_SalidasConcurrentesSerializadas(t *testing.T) {
	uc, store := newEngine(10, 5)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	cantidades := []int64{7, 6}
	for i, qty := range cantidades {
		wg.Add(1)
		go func(i int, qty int64) {
			defer wg.Done()
			_, errs[i] = uc.RegistrarMovimiento(context.Background(), identEmpleado(), movimiento("salida", qty))
		}(i, qty)
	}
	wg.Wait()

	exitos, rechazos := 0, 0
	var restante int64
	for i, err := range errs {
		switch {
		case err == nil:
			exitos++
			restante = 10 - cantidades[i]
		case assert.ErrorIs(t, err, domain.ErrInsufficientStock):
			rechazos++
		}
	}
	assert.Equal(t, 1, exitos, "exactamente una salida debe confirmar")
	assert.Equal(t, 1, rechazos, "la otra debe rechazarse por stock insuficiente")
	assert.True(t, store.stockDe(articuloID).Equal(decimal.NewFromInt(restante)))
	assert.False(t, store.stockDe(articuloID).IsNegative(), "el saldo nunca queda negativo")
}

// Derivación del saldo: tras una secuencia de movimientos, el saldo es el fold
// de los deltas (entrada suma, salida resta, ajuste fija).
func TestRegistrar_SaldoEsFoldDelLibro(t *testing.T) {
	uc, store := newEngine(0, 5)

	pasos := []struct {
		tipo     string
		cantidad int64
	}{
		{"entrada", 20},
		{"salida", 5},
		{"entrada", 3},
		{"ajuste", 12},
		{"salida", 2},
	}
	for _, p := range pasos {
		_, err := uc.RegistrarMovimiento(context.Background(), identAdmin(), movimiento(p.tipo, p.cantidad))
		require.NoError(t, err)
	}

	saldo := decimal.Zero
	for _, m := range store.movimientos {
		switch m.Tipo {
		case entity.MovimientoEntrada:
			saldo = saldo.Add(m.Cantidad)
		case entity.MovimientoSalida:
			saldo = saldo.Sub(m.Cantidad)
		case entity.MovimientoAjuste:
			saldo = m.Cantidad
		}
	}
	assert.True(t, store.stockDe(articuloID).Equal(saldo),
		"stock_actual debe coincidir con el fold del libro")
	assert.True(t, saldo.Equal(decimal.NewFromInt(10)))
}

// Visibilidad de alertas: solo el admin recibe el payload de alerta.
func TestRegistrar_AlertaSoloParaAdmin(t *testing.T) {
	uc, _ := newEngine(10, 5)

	// Admin baja el stock a 3 (<= mínimo): recibe alerta tipo bajo.
	resp, err := uc.RegistrarMovimiento(context.Background(), identAdmin(), movimiento("salida", 7))
	require.NoError(t, err)
	require.NotNil(t, resp.Alerta)
	assert.Equal(t, entity.NivelBajo, resp.Alerta.Tipo)
	assert.Contains(t, resp.Alerta.Mensaje, "STOCK BAJO")

	// Empleado agota el stock: misma condición de alerta, pero sin payload.
	resp, err = uc.RegistrarMovimiento(context.Background(), identEmpleado(), movimiento("salida", 3))
	require.NoError(t, err)
	assert.Nil(t, resp.Alerta, "un no-admin nunca recibe datos de alerta")
}

func TestRegistrar_AlertaCriticaConStockAgotado(t *testing.T) {
	uc, _ := newEngine(5, 5)

	resp, err := uc.RegistrarMovimiento(context.Background(), identAdmin(), movimiento("salida", 5))
	require.NoError(t, err)
	require.NotNil(t, resp.Alerta)
	assert.Equal(t, entity.NivelCritico, resp.Alerta.Tipo)
	assert.Contains(t, resp.Alerta.Mensaje, "STOCK AGOTADO")
	assert.Equal(t, articuloID, resp.Alerta.Articulo.ID)
}

// Escenario completo de extremo a extremo sobre el motor.
func TestRegistrar_EscenarioStockBajo(t *testing.T) {
	uc, store := newEngine(10, 5)

	// Admin: salida 7 -> saldo 3, alerta bajo.
	resp, err := uc.RegistrarMovimiento(context.Background(), identAdmin(), movimiento("salida", 7))
	require.NoError(t, err)
	assert.True(t, resp.Data.StockNuevo.Equal(decimal.NewFromInt(3)))
	require.NotNil(t, resp.Alerta)
	assert.Equal(t, entity.NivelBajo, resp.Alerta.Tipo)

	// Empleado: salida 3 -> saldo 0, sin alerta por no ser admin.
	resp, err = uc.RegistrarMovimiento(context.Background(), identEmpleado(), movimiento("salida", 3))
	require.NoError(t, err)
	assert.True(t, resp.Data.StockNuevo.IsZero())
	assert.Nil(t, resp.Alerta)

	// Admin: salida 1 sobre saldo 0 -> rechazada, saldo intacto.
	_, err = uc.RegistrarMovimiento(context.Background(), identAdmin(), movimiento("salida", 1))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, store.stockDe(articuloID).IsZero())
}
