package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y usuario actual.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario: valida, hashea password con bcrypt, persiste y
// emite token. Devuelve ErrUsernameAlreadyExists / ErrEmailAlreadyExists en
// colisión de unicidad.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.AuthResponse, error) {
	in.Username = strings.TrimSpace(in.Username)
	if len(in.Validate()) > 0 {
		return nil, domain.ErrInvalidInput
	}
	if existing, err := uc.userRepo.GetByUsername(in.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrUsernameAlreadyExists
	}
	if existing, err := uc.userRepo.GetByEmail(in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    dto.FromUser(user),
	}, nil
}

// Login verifica credenciales y emite un token. El identificador puede ser
// username o email: se decide por la presencia de "@". Devuelve ErrUnauthorized
// tanto para usuario inexistente como para password incorrecto, sin distinguir.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	if in.Identifier == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	var (
		user *entity.User
		err  error
	)
	if strings.Contains(in.Identifier, "@") {
		user, err = uc.userRepo.GetByEmail(in.Identifier)
	} else {
		user, err = uc.userRepo.GetByUsername(in.Identifier)
	}
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    dto.FromUser(user),
	}, nil
}

// CurrentUser devuelve el usuario dueño del token. ErrUserNotFound si la
// cuenta fue eliminada después de emitir el token.
func (uc *AuthUseCase) CurrentUser(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	out := dto.FromUser(user)
	return &out, nil
}
