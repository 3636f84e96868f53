package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Sentencias idempotentes: la app puede arrancar contra una base vacía o una ya
// inicializada. El orden importa por las FKs.
var schemaStatements = []string{
	`DO $$ BEGIN
		CREATE TYPE user_role AS ENUM ('admin', 'gerente', 'empleado', 'usuario');
	EXCEPTION WHEN duplicate_object THEN NULL;
	END $$`,

	`DO $$ BEGIN
		CREATE TYPE tipo_movimiento AS ENUM ('entrada', 'salida', 'ajuste');
	EXCEPTION WHEN duplicate_object THEN NULL;
	END $$`,

	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		nombre VARCHAR(255) NOT NULL,
		rol user_role NOT NULL DEFAULT 'empleado',
		activo BOOLEAN NOT NULL DEFAULT true,
		createdat TIMESTAMPTZ NOT NULL DEFAULT now(),
		updatedat TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS empleados (
		id SERIAL PRIMARY KEY,
		user_id INTEGER REFERENCES users(id) ON DELETE SET NULL,
		nombre VARCHAR(100) NOT NULL,
		apellido VARCHAR(100) NOT NULL,
		documento VARCHAR(50) UNIQUE,
		telefono VARCHAR(50),
		email VARCHAR(255),
		direccion TEXT,
		fecha_ingreso DATE NOT NULL,
		puesto VARCHAR(100),
		salario NUMERIC(12,2),
		activo BOOLEAN NOT NULL DEFAULT true,
		createdat TIMESTAMPTZ NOT NULL DEFAULT now(),
		updatedat TIMESTAMPTZ NOT NULL DEFAULT now(),
		created_by INTEGER REFERENCES users(id) ON DELETE SET NULL,
		updated_by INTEGER REFERENCES users(id) ON DELETE SET NULL
	)`,

	`CREATE TABLE IF NOT EXISTS actividades (
		id SERIAL PRIMARY KEY,
		empleado_id INTEGER NOT NULL REFERENCES empleados(id) ON DELETE CASCADE,
		fecha DATE NOT NULL,
		descripcion TEXT NOT NULL,
		horas NUMERIC(4,2) NOT NULL CHECK (horas > 0 AND horas <= 24),
		observaciones TEXT,
		createdat TIMESTAMPTZ NOT NULL DEFAULT now(),
		updatedat TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (empleado_id, fecha, descripcion)
	)`,

	`CREATE TABLE IF NOT EXISTS articulos (
		id SERIAL PRIMARY KEY,
		codigo VARCHAR(50) UNIQUE NOT NULL,
		nombre VARCHAR(255) NOT NULL,
		descripcion TEXT,
		categoria VARCHAR(100),
		unidad_medida VARCHAR(50) NOT NULL DEFAULT 'unidad',
		stock_actual NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (stock_actual >= 0),
		stock_minimo NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (stock_minimo >= 0),
		precio_unitario NUMERIC(12,2),
		activo BOOLEAN NOT NULL DEFAULT true,
		createdat TIMESTAMPTZ NOT NULL DEFAULT now(),
		updatedat TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	// cantidad >= 0: un ajuste a saldo cero se registra con cantidad 0.
	// user_id es nullable: el libro sobrevive a la eliminación de la cuenta.
	`CREATE TABLE IF NOT EXISTS movimientosinventario (
		id SERIAL PRIMARY KEY,
		articulo_id INTEGER NOT NULL REFERENCES articulos(id),
		user_id INTEGER REFERENCES users(id) ON DELETE SET NULL,
		tipo tipo_movimiento NOT NULL,
		cantidad NUMERIC(12,2) NOT NULL CHECK (cantidad >= 0),
		stock_anterior NUMERIC(12,2) NOT NULL,
		stock_nuevo NUMERIC(12,2) NOT NULL,
		motivo TEXT,
		fecha TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_movimientos_articulo ON movimientosinventario (articulo_id, fecha DESC, id DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_movimientos_fecha ON movimientosinventario (fecha)`,
	`CREATE INDEX IF NOT EXISTS idx_articulos_categoria ON articulos (categoria)`,
	`CREATE INDEX IF NOT EXISTS idx_actividades_empleado ON actividades (empleado_id, fecha)`,
}

// InitSchema crea tipos, tablas e índices si no existen.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}
