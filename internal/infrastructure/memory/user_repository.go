package memory

import (
	"strings"
	"sync"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación en memoria del puerto UserRepository.
type UserRepo struct {
	mu sync.RWMutex
	m  map[string]entity.User
}

// NewUserRepository construye el repositorio vacío.
func NewUserRepository() *UserRepo {
	return &UserRepo{m: make(map[string]entity.User)}
}

// Create inserta un usuario. Devuelve ErrDuplicate si el username o el email ya existen.
func (r *UserRepo) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.m {
		if u.Username == user.Username || strings.EqualFold(u.Email, user.Email) {
			return domain.ErrDuplicate
		}
	}
	r.m[user.ID] = *user
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.m[id]; ok {
		return &u, nil
	}
	return nil, nil
}

// GetByUsername busca por nombre de usuario exacto.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.Username == username })
}

// GetByEmail busca por email.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return strings.EqualFold(u.Email, email) })
}

func (r *UserRepo) find(match func(entity.User) bool) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.m {
		if match(u) {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}
