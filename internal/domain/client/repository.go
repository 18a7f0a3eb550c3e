package client

import (
	"context"
)

// Repository define a interface para operações de repositório de clientes
type Repository interface {
	// Create cria um novo cliente
	Create(ctx context.Context, c *Client) error

	// FindByID busca um cliente pelo ID
	FindByID(ctx context.Context, id string) (*Client, error)

	// FindByCNPJ busca um cliente pelo CNPJ
	FindByCNPJ(ctx context.Context, cnpj string) (*Client, error)

	// List lista os clientes com paginação, opcionalmente filtrando por região
	List(ctx context.Context, region string, limit, offset int) ([]*Client, error)

	// Search busca clientes por razão social, contato ou CNPJ
	Search(ctx context.Context, term string, limit, offset int) ([]*Client, error)

	// Update atualiza os dados de um cliente existente
	Update(ctx context.Context, c *Client) error

	// Delete remove um cliente; clientes com pedidos associados não podem ser removidos
	Delete(ctx context.Context, id string) error

	// Count conta os clientes cadastrados, opcionalmente filtrando por região
	Count(ctx context.Context, region string) (int, error)

	// Exists verifica se um cliente existe
	Exists(ctx context.Context, id string) (bool, error)
}
