package client

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCompanyName = errors.New("razão social não pode ser vazia")
	ErrEmptyCNPJ        = errors.New("CNPJ não pode ser vazio")
	ErrInvalidEmail     = errors.New("email inválido")
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Client representa um cliente atendido pela representação
type Client struct {
	ID            string    `json:"id"`
	CompanyName   string    `json:"company_name"`   // Razão Social
	ContactPerson string    `json:"contact_person"` // Pessoa de Contato
	Phone         string    `json:"phone"`          // Telefone
	Region        string    `json:"region"`         // Região de atendimento
	CNPJ          string    `json:"cnpj"`           // CNPJ
	Email         string    `json:"email"`          // Email
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewClient cria um novo cliente
func NewClient(companyName, contactPerson, phone, region, cnpj, email string) (*Client, error) {
	if companyName == "" {
		return nil, ErrEmptyCompanyName
	}
	if cnpj == "" {
		return nil, ErrEmptyCNPJ
	}
	if email != "" && !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	now := time.Now()
	return &Client{
		ID:            uuid.New().String(),
		CompanyName:   companyName,
		ContactPerson: contactPerson,
		Phone:         phone,
		Region:        region,
		CNPJ:          cnpj,
		Email:         email,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Update atualiza os dados do cliente
func (c *Client) Update(companyName, contactPerson, phone, region, cnpj, email string) error {
	if companyName == "" {
		return ErrEmptyCompanyName
	}
	if cnpj == "" {
		return ErrEmptyCNPJ
	}
	if email != "" && !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}

	c.CompanyName = companyName
	c.ContactPerson = contactPerson
	c.Phone = phone
	c.Region = region
	c.CNPJ = cnpj
	c.Email = email
	c.UpdatedAt = time.Now()

	return nil
}
