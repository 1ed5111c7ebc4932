package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
	"github.com/jhoicas/pedidos-api/pkg/jwt"
)

// MsgRegistered respuesta del registro exitoso.
const MsgRegistered = "Usuario registrado correctamente"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	tx     repository.TxRunner
	jwtCfg JWTConfig
	cost   int
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(tx repository.TxRunner, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{tx: tx, jwtCfg: jwtCfg, cost: bcrypt.DefaultCost}
}

// WithBcryptCost ajusta el costo de bcrypt (los tests usan bcrypt.MinCost).
func (uc *AuthUseCase) WithBcryptCost(cost int) *AuthUseCase {
	uc.cost = cost
	return uc
}

// Register crea un usuario con la contraseña hasheada. Devuelve ErrUsernameTaken si el username ya existe.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	err := uc.tx.Run(ctx, func(s repository.Stores) error {
		existing, err := s.Users.GetByUsername(ctx, in.Username)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrUsernameTaken
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cost)
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			// max=72 cuenta runas; bcrypt cuenta bytes.
			return &dto.ValidationError{Fields: []string{"password"}}
		}
		if err != nil {
			return err
		}
		return s.Users.Create(ctx, &entity.User{
			Username:     in.Username,
			PasswordHash: string(hash),
		})
	})
	if err != nil {
		return nil, err
	}
	return &dto.RegisterResponse{Msg: MsgRegistered}, nil
}

// Login verifica username/password y emite el JWT.
// Usuario inexistente y contraseña incorrecta devuelven el mismo ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	var user *entity.User
	err := uc.tx.Run(ctx, func(s repository.Stores) error {
		var err error
		user, err = s.Users.GetByUsername(ctx, in.Username)
		return err
	})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Username, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}
