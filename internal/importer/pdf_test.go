package importer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePipeTable(t *testing.T) {
	text := `NOTA DE COMPRA 2024/118
Fornecedor: Distribuidora Alfa LTDA

A100 | Parafuso sextavado M6 | 30 | 12,50
A200 | Porca M8 | 100 | R$ 0,80
TOTAL | | | 455,00
`

	items := ParsePipeTable(text)
	require.Len(t, items, 2)

	assert.Equal(t, "A100", items[0].Code)
	assert.Equal(t, "Parafuso sextavado M6", items[0].Name)
	assert.Equal(t, 30, items[0].Quantity)
	assert.True(t, items[0].Price.Equal(decimal.RequireFromString("12.50")))

	assert.Equal(t, "A200", items[1].Code)
	assert.True(t, items[1].Price.Equal(decimal.RequireFromString("0.80")))
}

func TestParsePipeTableSemLinhasValidas(t *testing.T) {
	items := ParsePipeTable("texto corrido sem tabela nenhuma")
	assert.Empty(t, items)
}

func TestParsePipeTableIgnoraLinhasIncompletas(t *testing.T) {
	text := `A1 | Produto completo | 2 | 10,00
B2 | Sem quantidade | | 5,00
C3 | Quantidade não numérica | abc | 5,00
`

	items := ParsePipeTable(text)
	require.Len(t, items, 1)
	assert.Equal(t, "A1", items[0].Code)
}
