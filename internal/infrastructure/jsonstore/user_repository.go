package jsonstore

import (
	"github.com/rs/zerolog"

	"github.com/jhoicas/inventario-lite/internal/domain"
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre users.json.
type UserRepo struct {
	col *Collection[entity.User]
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(dataDir string, log zerolog.Logger) (*UserRepo, error) {
	col, err := NewCollection[entity.User](dataDir, "users", log)
	if err != nil {
		return nil, err
	}
	return &UserRepo{col: col}, nil
}

// List devuelve todos los usuarios en orden de registro.
func (r *UserRepo) List() ([]entity.User, error) {
	return r.col.Load()
}

// FindByEmail busca por email normalizado; (nil, nil) si no existe.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	users, err := r.col.Load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			u := users[i]
			return &u, nil
		}
	}
	return nil, nil
}

// Create agrega el usuario; el chequeo de unicidad de email corre bajo el
// lock de la colección para que dos signups concurrentes no dupliquen.
func (r *UserRepo) Create(user *entity.User) error {
	return r.col.Update(func(users []entity.User) ([]entity.User, error) {
		for i := range users {
			if users[i].Email == user.Email {
				return nil, domain.ErrEmailAlreadyExists
			}
		}
		return append(users, *user), nil
	})
}

// Update reemplaza el usuario con el mismo ID.
func (r *UserRepo) Update(user *entity.User) error {
	return r.col.Update(func(users []entity.User) ([]entity.User, error) {
		for i := range users {
			if users[i].ID == user.ID {
				users[i] = *user
				return users, nil
			}
		}
		return nil, domain.ErrUserNotFound
	})
}
