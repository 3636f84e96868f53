package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgagro/agro-api/internal/application/inventory"
	"github.com/mgagro/agro-api/internal/domain"
	"github.com/mgagro/agro-api/internal/domain/entity"
)

func TestStockBajo_SoloAdmin(t *testing.T) {
	store := newFakeStore()
	uc := inventory.NewAlertasUseCase(&fakeArtRepo{store: store})

	_, err := uc.StockBajo(context.Background(), identEmpleado())
	assert.ErrorIs(t, err, domain.ErrForbidden)

	gerente := entity.Identidad{UserID: 5, Rol: entity.RolGerente}
	_, err = uc.StockBajo(context.Background(), gerente)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestStockBajo_ClasificaYCuentaPorNivel(t *testing.T) {
	store := newFakeStore()
	store.addArticulo(1, 0, 10)  // critico: agotado
	store.addArticulo(2, 4, 10)  // bajo: <= mitad del mínimo
	store.addArticulo(3, 9, 10)  // alerta: <= mínimo
	store.addArticulo(4, 50, 10) // normal: fuera del reporte
	uc := inventory.NewAlertasUseCase(&fakeArtRepo{store: store})

	resp, err := uc.StockBajo(context.Background(), identAdmin())
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 1, resp.Criticos)
	assert.Equal(t, 1, resp.Bajos)
	assert.Equal(t, 1, resp.Alertas)
	require.Len(t, resp.Articulos, 3)
	assert.Equal(t, entity.NivelCritico, resp.Articulos[0].NivelAlerta,
		"el reporte ordena por severidad: el agotado primero")
}

func TestStockBajo_ArticuloInactivoExcluido(t *testing.T) {
	store := newFakeStore()
	store.addArticulo(1, 0, 10)
	store.articulos[1].Activo = false
	uc := inventory.NewAlertasUseCase(&fakeArtRepo{store: store})

	resp, err := uc.StockBajo(context.Background(), identAdmin())
	require.NoError(t, err)
	assert.Zero(t, resp.Total)
	assert.Empty(t, resp.Articulos)
}
