package importer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSVCabecalhoPortugues(t *testing.T) {
	data := []byte("codigo;nome;preco;estoque;subcodigo;categoria\n" +
		"A100;Parafuso sextavado;12,50;30;S-01;Fixação\n" +
		"A200;Porca M8;0,80;100;S-02;Fixação\n")

	items, err := ParseCSV(data)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "A100", items[0].Code)
	assert.Equal(t, "Parafuso sextavado", items[0].Name)
	assert.True(t, items[0].Price.Equal(decimal.RequireFromString("12.50")))
	assert.Equal(t, 30, items[0].Quantity)
	assert.Equal(t, "S-01", items[0].Subcode)
	assert.Equal(t, "Fixação", items[0].Category)
}

func TestParseCSVCabecalhoIngles(t *testing.T) {
	data := []byte("code,name,price,stock,subcode\n" +
		"B1,Widget,9.99,5,W-1\n")

	items, err := ParseCSV(data)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, "B1", items[0].Code)
	assert.Equal(t, "Widget", items[0].Name)
	assert.True(t, items[0].Price.Equal(decimal.RequireFromString("9.99")))
	assert.Equal(t, 5, items[0].Quantity)
}

func TestParseCSVDescartaLinhasSemCodigoOuNome(t *testing.T) {
	data := []byte("codigo,nome,preco\n" +
		",Sem código,10,00\n" +
		"C1,,5.00\n" +
		"C2,Válido,5.00\n")

	items, err := ParseCSV(data)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "C2", items[0].Code)
}

func TestParseCSVSemColunaObrigatoria(t *testing.T) {
	_, err := ParseCSV([]byte("nome,preco\nProduto,10\n"))
	assert.Error(t, err)

	_, err = ParseCSV([]byte("codigo,preco\nX1,10\n"))
	assert.Error(t, err)
}

func TestParseCSVArquivoVazio(t *testing.T) {
	_, err := ParseCSV([]byte(""))
	assert.Error(t, err)
}

func TestParseCSVPrecoInvalidoNaoDerrubaLinha(t *testing.T) {
	data := []byte("codigo,nome,preco,estoque\n" +
		"D1,Produto,abc,xyz\n")

	items, err := ParseCSV(data)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.True(t, items[0].Price.IsZero())
	assert.Zero(t, items[0].Quantity)
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"12,50", "12.50", false},
		{"1.234,56", "1234.56", false},
		{"1,234.56", "1234.56", false},
		{"R$ 99,90", "99.90", false},
		{"10", "10", false},
		{"", "", true},
		{"abc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParsePrice(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"esperado %s, obtido %s", tt.want, got)
		})
	}
}
