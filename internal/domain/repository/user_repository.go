package repository

import "github.com/jhoicas/inventario-lite/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Las implementaciones serializan el ciclo read-modify-write por colección.
type UserRepository interface {
	List() ([]entity.User, error)
	// FindByEmail busca por email normalizado; (nil, nil) si no existe.
	FindByEmail(email string) (*entity.User, error)
	// Create falla con domain.ErrEmailAlreadyExists si el email ya está tomado.
	Create(user *entity.User) error
	// Update reemplaza el usuario con el mismo ID; domain.ErrUserNotFound si no existe.
	Update(user *entity.User) error
}
