package inventory

import (
	"context"

	"github.com/mgagro/agro-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de
// movimientos: o se persisten el saldo nuevo y la entrada del libro, o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimientoRepository,
		artRepo repository.ArticuloRepository,
		userRepo repository.UserRepository,
	) error) error
}
