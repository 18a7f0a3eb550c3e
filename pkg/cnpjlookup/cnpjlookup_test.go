package cnpjlookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnlyDigits(t *testing.T) {
	assert.Equal(t, "12345678000199", OnlyDigits("12.345.678/0001-99"))
	assert.Equal(t, "12345678000199", OnlyDigits("12345678000199"))
	assert.Equal(t, "", OnlyDigits("abc"))
}

func TestLookupCNPJInvalido(t *testing.T) {
	c := NewClient()

	_, err := c.Lookup(context.Background(), "123")
	assert.ErrorIs(t, err, ErrInvalidCNPJ)
}

func TestLookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/12345678000199", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"cnpj": "12345678000199",
			"razao_social": "Distribuidora Alfa LTDA",
			"nome_fantasia": "Alfa",
			"ddd_telefone_1": "1133334444",
			"email": "contato@alfa.com.br",
			"municipio": "São Paulo",
			"uf": "SP"
		}`))
	}))
	defer server.Close()

	c := NewClientWithBaseURL(server.URL)

	info, err := c.Lookup(context.Background(), "12.345.678/0001-99")
	require.NoError(t, err)

	assert.Equal(t, "Distribuidora Alfa LTDA", info.CompanyName)
	assert.Equal(t, "Alfa", info.TradeName)
	assert.Equal(t, "São Paulo", info.City)
	assert.Equal(t, "SP", info.State)
}

func TestLookupNaoEncontrado(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := NewClientWithBaseURL(server.URL)

	_, err := c.Lookup(context.Background(), "12345678000199")
	assert.ErrorIs(t, err, ErrCNPJNotFound)
}

func TestLookupErroDoServidor(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClientWithBaseURL(server.URL)

	_, err := c.Lookup(context.Background(), "12345678000199")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrCNPJNotFound)
}
