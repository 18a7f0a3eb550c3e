package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/gestaovendas/erp-representacao/internal/domain/purchase"
	"github.com/shopspring/decimal"
)

// Colunas reconhecidas no cabeçalho, com sinônimos em português e inglês
var csvHeaderSynonyms = map[string]string{
	"codigo":     "code",
	"código":     "code",
	"cod":        "code",
	"code":       "code",
	"nome":       "name",
	"descricao":  "name",
	"descrição":  "name",
	"produto":    "name",
	"name":       "name",
	"preco":      "price",
	"preço":      "price",
	"valor":      "price",
	"price":      "price",
	"estoque":    "stock",
	"qtd":        "stock",
	"qtde":       "stock",
	"quantidade": "stock",
	"stock":      "stock",
	"quantity":   "stock",
	"subcodigo":  "subcode",
	"subcódigo":  "subcode",
	"subcode":    "subcode",
	"categoria":  "category",
	"category":   "category",
}

// ParseCSV extrai itens de importação de um CSV de produtos. O cabeçalho é
// mapeado por sinônimos; linhas sem código ou sem nome são descartadas em
// silêncio. Aceita vírgula ou ponto e vírgula como separador.
func ParseCSV(data []byte) ([]purchase.ImportItem, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = detectDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("arquivo CSV vazio")
	}

	columns := mapHeader(records[0])
	if _, ok := columns["code"]; !ok {
		return nil, fmt.Errorf("coluna de código não encontrada no cabeçalho")
	}
	if _, ok := columns["name"]; !ok {
		return nil, fmt.Errorf("coluna de nome não encontrada no cabeçalho")
	}

	items := make([]purchase.ImportItem, 0, len(records)-1)
	for _, record := range records[1:] {
		item := purchase.ImportItem{
			Code:     field(record, columns, "code"),
			Name:     field(record, columns, "name"),
			Subcode:  field(record, columns, "subcode"),
			Category: field(record, columns, "category"),
		}
		if item.Code == "" || item.Name == "" {
			continue
		}

		if raw := field(record, columns, "price"); raw != "" {
			if price, err := ParsePrice(raw); err == nil {
				item.Price = price
			}
		}
		if raw := field(record, columns, "stock"); raw != "" {
			if qty, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
				item.Quantity = qty
			}
		}

		items = append(items, item)
	}

	return items, nil
}

// mapHeader resolve o índice de cada coluna reconhecida
func mapHeader(header []string) map[string]int {
	columns := make(map[string]int)
	for i, raw := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(raw, "\ufeff")))
		if canonical, ok := csvHeaderSynonyms[key]; ok {
			if _, taken := columns[canonical]; !taken {
				columns[canonical] = i
			}
		}
	}
	return columns
}

func field(record []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// detectDelimiter escolhe entre vírgula e ponto e vírgula olhando a primeira
// linha do arquivo
func detectDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	if bytes.Count(line, []byte{';'}) > bytes.Count(line, []byte{','}) {
		return ';'
	}
	return ','
}

// ParsePrice converte um preço em texto para decimal, aceitando os formatos
// brasileiro (1.234,56) e americano (1,234.56), com ou sem prefixo R$.
func ParsePrice(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("preço vazio")
	}

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")
	if lastComma > lastDot {
		// Formato brasileiro: ponto é separador de milhar
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}

	price, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("preço inválido %q: %w", raw, err)
	}
	return price, nil
}
