package dto

import (
	"time"

	"github.com/gestaovendas/erp-representacao/internal/domain/client"
	"github.com/gestaovendas/erp-representacao/internal/domain/order"
	"github.com/shopspring/decimal"
)

// ClientRequest representa os dados de um cliente para criação ou atualização
type ClientRequest struct {
	CompanyName   string `json:"company_name" binding:"required"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Region        string `json:"region"`
	CNPJ          string `json:"cnpj" binding:"required"`
	Email         string `json:"email"`
}

// ClientResponse representa a resposta com dados de um cliente
type ClientResponse struct {
	ID            string    `json:"id"`
	CompanyName   string    `json:"company_name"`
	ContactPerson string    `json:"contact_person"`
	Phone         string    `json:"phone"`
	Region        string    `json:"region"`
	CNPJ          string    `json:"cnpj"`
	Email         string    `json:"email"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ClientListResponse representa a resposta com a lista de clientes paginada
type ClientListResponse struct {
	Data       []ClientResponse `json:"data"`
	TotalCount int              `json:"total_count"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

// ClientStatsResponse resume os pedidos de um cliente
type ClientStatsResponse struct {
	ClientID       string          `json:"client_id"`
	OrderCount     int             `json:"order_count"`
	DeliveredCount int             `json:"delivered_count"`
	TotalValue     decimal.Decimal `json:"total_value"`
}

// CNPJLookupResponse representa os dados cadastrais retornados pela consulta
// de CNPJ, prontos para pré-preencher o formulário de cliente
type CNPJLookupResponse struct {
	CNPJ        string `json:"cnpj"`
	CompanyName string `json:"company_name"`
	TradeName   string `json:"trade_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	City        string `json:"city"`
	State       string `json:"state"`
}

// ToClientResponse converte um cliente do domínio para DTO de resposta
func ToClientResponse(c *client.Client) ClientResponse {
	return ClientResponse{
		ID:            c.ID,
		CompanyName:   c.CompanyName,
		ContactPerson: c.ContactPerson,
		Phone:         c.Phone,
		Region:        c.Region,
		CNPJ:          c.CNPJ,
		Email:         c.Email,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// ToClientListResponse converte uma lista de clientes do domínio para DTO de resposta paginada
func ToClientListResponse(clients []*client.Client, totalCount, page, pageSize int) ClientListResponse {
	data := make([]ClientResponse, len(clients))
	for i, c := range clients {
		data[i] = ToClientResponse(c)
	}

	return ClientListResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}
}

// ToClientStatsResponse converte as estatísticas de pedidos de um cliente
func ToClientStatsResponse(stats *order.ClientStats) ClientStatsResponse {
	return ClientStatsResponse{
		ClientID:       stats.ClientID,
		OrderCount:     stats.OrderCount,
		DeliveredCount: stats.DeliveredCount,
		TotalValue:     stats.TotalValue,
	}
}
