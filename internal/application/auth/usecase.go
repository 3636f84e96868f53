package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"
	"github.com/mgagro/agro-api/internal/application/dto"
	"github.com/mgagro/agro-api/internal/domain"
	"github.com/mgagro/agro-api/internal/domain/entity"
	"github.com/mgagro/agro-api/internal/domain/repository"
	"github.com/mgagro/agro-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login, registro y perfil.
type AuthUseCase struct {
	userRepo     repository.UserRepository
	empleadoRepo repository.EmpleadoRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, empleadoRepo repository.EmpleadoRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, empleadoRepo: empleadoRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password contra el hash bcrypt, resuelve el empleado
// asociado (si existe) y genera el JWT con id, email, nombre, rol y empleado_id.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetActivoByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	empleado, err := uc.empleadoRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	claims := jwt.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Nombre: user.Nombre,
		Rol:    user.Rol.String(),
	}
	if empleado != nil {
		claims.EmpleadoID = &empleado.ID
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, claims, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Success: true,
		Message: "Inicio de sesión exitoso",
		User:    toUsuarioResponse(user, empleado),
		Token:   token,
	}, nil
}

// Register crea una cuenta: hashea el password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UsuarioResponse, error) {
	if in.Email == "" || in.Password == "" || in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	rol := entity.RolEmpleado
	if in.Rol != "" {
		if rol = entity.ParseRol(in.Rol); rol == "" {
			return nil, domain.ErrInvalidInput
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user, err := uc.userRepo.Crear(ctx, &entity.User{
		Email:    in.Email,
		Password: string(hash),
		Nombre:   in.Nombre,
		Rol:      rol,
		Activo:   true,
	})
	if err != nil {
		return nil, err
	}
	resp := toUsuarioResponse(user, nil)
	return &resp, nil
}

// Perfil devuelve los datos del usuario autenticado.
func (uc *AuthUseCase) Perfil(ctx context.Context, userID int64) (*dto.UsuarioResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	empleado, err := uc.empleadoRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	resp := toUsuarioResponse(user, empleado)
	return &resp, nil
}

func toUsuarioResponse(u *entity.User, e *entity.Empleado) dto.UsuarioResponse {
	resp := dto.UsuarioResponse{
		ID:        u.ID,
		Email:     u.Email,
		Nombre:    u.Nombre,
		Rol:       u.Rol.String(),
		Activo:    u.Activo,
		CreatedAt: u.CreatedAt,
	}
	if e != nil {
		resp.EmpleadoID = &e.ID
		nombre := e.NombreCompleto()
		resp.EmpleadoNombre = &nombre
	}
	return resp
}
