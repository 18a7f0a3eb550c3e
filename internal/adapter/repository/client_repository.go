package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gestaovendas/erp-representacao/internal/domain/client"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrClientNotFound     = errors.New("cliente não encontrado")
	ErrClientDuplicateKey = errors.New("cliente com mesmo CNPJ, razão social ou email já existe")
	ErrClientHasOrders    = errors.New("cliente possui pedidos associados e não pode ser removido")
)

// ClientRepository implementa a interface client.Repository
type ClientRepository struct {
	db *pgxpool.Pool
}

// NewClientRepository cria uma nova instância de ClientRepository
func NewClientRepository(db *pgxpool.Pool) client.Repository {
	return &ClientRepository{db: db}
}

const clientColumns = `id, company_name, contact_person, phone, region, cnpj, COALESCE(email, ''), created_at, updated_at`

// Create implementa client.Repository.Create
func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO clients (id, company_name, contact_person, phone, region, cnpj, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9)`,
		c.ID, c.CompanyName, c.ContactPerson, c.Phone, c.Region, c.CNPJ, c.Email,
		c.CreatedAt, c.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrClientDuplicateKey
		}
		return fmt.Errorf("erro ao criar cliente: %w", err)
	}

	return nil
}

// FindByID implementa client.Repository.FindByID
func (r *ClientRepository) FindByID(ctx context.Context, id string) (*client.Client, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = $1`, id)
	return scanClient(row)
}

// FindByCNPJ implementa client.Repository.FindByCNPJ
func (r *ClientRepository) FindByCNPJ(ctx context.Context, cnpj string) (*client.Client, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE cnpj = $1`, cnpj)
	return scanClient(row)
}

// List implementa client.Repository.List
func (r *ClientRepository) List(ctx context.Context, region string, limit, offset int) ([]*client.Client, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+clientColumns+`
		FROM clients
		WHERE ($1 = '' OR region = $1)
		ORDER BY company_name ASC
		LIMIT $2 OFFSET $3`,
		region, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	defer rows.Close()

	return scanClientRows(rows)
}

// Search implementa client.Repository.Search
func (r *ClientRepository) Search(ctx context.Context, term string, limit, offset int) ([]*client.Client, error) {
	pattern := "%" + term + "%"
	rows, err := r.db.Query(ctx,
		`SELECT `+clientColumns+`
		FROM clients
		WHERE company_name ILIKE $1 OR contact_person ILIKE $1 OR cnpj ILIKE $1
		ORDER BY company_name ASC
		LIMIT $2 OFFSET $3`,
		pattern, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar clientes: %w", err)
	}
	defer rows.Close()

	return scanClientRows(rows)
}

// Update implementa client.Repository.Update
func (r *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	result, err := r.db.Exec(ctx,
		`UPDATE clients SET
			company_name = $1, contact_person = $2, phone = $3, region = $4,
			cnpj = $5, email = NULLIF($6, ''), updated_at = $7
		WHERE id = $8`,
		c.CompanyName, c.ContactPerson, c.Phone, c.Region, c.CNPJ, c.Email,
		c.UpdatedAt, c.ID)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrClientDuplicateKey
		}
		return fmt.Errorf("erro ao atualizar cliente: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrClientNotFound
	}

	return nil
}

// Delete implementa client.Repository.Delete. A chave estrangeira de pedidos
// usa ON DELETE RESTRICT; a violação é convertida em ErrClientHasOrders.
func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM clients WHERE id = $1", id)
	if err != nil {
		if strings.Contains(err.Error(), "foreign key") {
			return ErrClientHasOrders
		}
		return fmt.Errorf("erro ao excluir cliente: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrClientNotFound
	}

	return nil
}

// Count implementa client.Repository.Count
func (r *ClientRepository) Count(ctx context.Context, region string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM clients WHERE ($1 = '' OR region = $1)", region).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar clientes: %w", err)
	}
	return count, nil
}

// Exists implementa client.Repository.Exists
func (r *ClientRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM clients WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar existência do cliente: %w", err)
	}
	return exists, nil
}

func scanClient(row pgx.Row) (*client.Client, error) {
	var c client.Client
	err := row.Scan(&c.ID, &c.CompanyName, &c.ContactPerson, &c.Phone, &c.Region,
		&c.CNPJ, &c.Email, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("erro ao buscar cliente: %w", err)
	}
	return &c, nil
}

func scanClientRows(rows pgx.Rows) ([]*client.Client, error) {
	clients := make([]*client.Client, 0)

	for rows.Next() {
		var c client.Client
		err := rows.Scan(&c.ID, &c.CompanyName, &c.ContactPerson, &c.Phone, &c.Region,
			&c.CNPJ, &c.Email, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler cliente: %w", err)
		}
		clients = append(clients, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return clients, nil
}
