package cnpjlookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Erros específicos
var (
	ErrInvalidCNPJ  = errors.New("CNPJ deve ter 14 dígitos")
	ErrCNPJNotFound = errors.New("CNPJ não encontrado")
)

const defaultBaseURL = "https://brasilapi.com.br/api/cnpj/v1"

// CompanyInfo reúne os dados cadastrais retornados pela consulta de CNPJ,
// usados para pré-preencher o cadastro de clientes
type CompanyInfo struct {
	CNPJ        string `json:"cnpj"`
	CompanyName string `json:"razao_social"`
	TradeName   string `json:"nome_fantasia"`
	Phone       string `json:"ddd_telefone_1"`
	Email       string `json:"email"`
	City        string `json:"municipio"`
	State       string `json:"uf"`
}

// Client consulta dados cadastrais de CNPJ na BrasilAPI
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient cria uma nova instância de Client
func NewClient() *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL cria um Client apontando para outra URL base (testes)
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = strings.TrimSuffix(baseURL, "/")
	return c
}

// Lookup consulta um CNPJ e retorna os dados cadastrais da empresa. Aceita o
// CNPJ com ou sem máscara.
func (c *Client) Lookup(ctx context.Context, cnpj string) (*CompanyInfo, error) {
	digits := OnlyDigits(cnpj)
	if len(digits) != 14 {
		return nil, ErrInvalidCNPJ
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+digits, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar requisição: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar CNPJ: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrCNPJNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("consulta de CNPJ retornou status %d", resp.StatusCode)
	}

	var info CompanyInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("erro ao interpretar resposta: %w", err)
	}

	return &info, nil
}

// OnlyDigits remove a máscara do CNPJ, mantendo apenas os dígitos
func OnlyDigits(cnpj string) string {
	var b strings.Builder
	for _, r := range cnpj {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
