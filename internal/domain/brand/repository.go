package brand

import (
	"context"
)

// Repository define a interface para operações de repositório de marcas
type Repository interface {
	// Create cria uma nova marca
	Create(ctx context.Context, b *Brand) error

	// FindByID busca uma marca pelo ID
	FindByID(ctx context.Context, id string) (*Brand, error)

	// FindByName busca uma marca pelo nome
	FindByName(ctx context.Context, name string) (*Brand, error)

	// List lista todas as marcas
	List(ctx context.Context) ([]*Brand, error)

	// Update atualiza os dados de uma marca existente
	Update(ctx context.Context, b *Brand) error

	// Delete remove uma marca
	Delete(ctx context.Context, id string) error
}
