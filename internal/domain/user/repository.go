package user

import (
	"context"
)

// Repository define a interface para operações de repositório de usuários
type Repository interface {
	// Create cria um novo usuário
	Create(ctx context.Context, u *User) error

	// FindByID busca um usuário pelo ID
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail busca um usuário pelo email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// List lista os usuários cadastrados
	List(ctx context.Context, limit, offset int) ([]*User, error)

	// Update atualiza os dados de um usuário existente
	Update(ctx context.Context, u *User) error

	// UpdateLastLogin registra a data do último login
	UpdateLastLogin(ctx context.Context, id string) error

	// Exists verifica se um usuário existe
	Exists(ctx context.Context, id string) (bool, error)
}
