package importer

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gestaovendas/erp-representacao/internal/domain/purchase"
	"github.com/gestaovendas/erp-representacao/pkg/logger"
	"github.com/ledongthuc/pdf"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
)

const extractionPrompt = `Você é um assistente que extrai itens de notas de compra de distribuidoras.
O documento anexo é uma nota de compra em PDF. Extraia todos os produtos listados.
Responda SOMENTE com um array JSON, sem texto adicional, onde cada elemento tem os campos:
  "code": código do produto no fornecedor (string),
  "name": descrição do produto (string),
  "quantity": quantidade comprada (número inteiro),
  "price": preço unitário de compra (string decimal com ponto, ex: "12.50").
Ignore cabeçalhos, totais, impostos e frete. Se não houver itens, responda [].`

// Linha de tabela com colunas separadas por barra vertical:
// código | descrição | quantidade | preço unitário
var pipeRowPattern = regexp.MustCompile(`(?m)^\s*([A-Za-z0-9][\w.\-/]*)\s*\|\s*([^|]+?)\s*\|\s*(\d+)\s*\|\s*(R?\$?\s*[\d.,]+)\s*\|?\s*$`)

// extractedItem espelha o JSON pedido ao modelo
type extractedItem struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

// PDFExtractor extrai itens de compra de um PDF. Tenta um modelo generativo
// por vez, na ordem configurada; se todos falharem, cai para a extração de
// texto com varredura de tabela.
type PDFExtractor struct {
	client *openai.Client
	models []string
	logger logger.Logger
}

// NewPDFExtractor cria uma nova instância de PDFExtractor. Com apiKey vazia,
// somente a extração de texto é usada.
func NewPDFExtractor(apiKey string, models []string, logger logger.Logger) *PDFExtractor {
	e := &PDFExtractor{models: models, logger: logger}
	if apiKey != "" {
		client := openai.NewClient(option.WithAPIKey(apiKey))
		e.client = &client
	}
	return e
}

// Extract retorna os itens encontrados no PDF, para revisão do usuário antes
// da gravação
func (e *PDFExtractor) Extract(ctx context.Context, data []byte) ([]purchase.ImportItem, error) {
	if e.client != nil {
		for _, model := range e.models {
			items, err := e.extractWithModel(ctx, model, data)
			if err != nil {
				e.logger.Warn("extração por modelo falhou", "model", model, "error", err)
				continue
			}
			return items, nil
		}
	}

	return e.extractFromText(data)
}

// extractWithModel envia o PDF ao modelo e interpreta o array JSON retornado
func (e *PDFExtractor) extractWithModel(ctx context.Context, model string, data []byte) ([]purchase.ImportItem, error) {
	encoded := base64.StdEncoding.EncodeToString(data)

	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(model),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: responses.ResponseInputParam{
				responses.ResponseInputItemUnionParam{
					OfMessage: &responses.EasyInputMessageParam{
						Role: responses.EasyInputMessageRoleUser,
						Content: responses.EasyInputMessageContentUnionParam{
							OfInputItemContentList: responses.ResponseInputMessageContentListParam{
								responses.ResponseInputContentUnionParam{
									OfInputText: &responses.ResponseInputTextParam{
										Text: extractionPrompt,
									},
								},
								responses.ResponseInputContentUnionParam{
									OfInputFile: &responses.ResponseInputFileParam{
										Filename: param.NewOpt("nota-compra.pdf"),
										FileData: param.NewOpt("data:application/pdf;base64," + encoded),
									},
								},
							},
						},
					},
				},
			},
		},
	}

	resp, err := e.client.Responses.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("erro na chamada ao modelo: %w", err)
	}

	content := strings.TrimSpace(resp.OutputText())
	if content == "" {
		return nil, fmt.Errorf("resposta vazia do modelo")
	}

	// Alguns modelos envolvem o JSON em cerca de código
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var extracted []extractedItem
	if err := json.Unmarshal([]byte(content), &extracted); err != nil {
		return nil, fmt.Errorf("erro ao interpretar resposta do modelo: %w", err)
	}

	items := make([]purchase.ImportItem, 0, len(extracted))
	for _, ex := range extracted {
		if ex.Code == "" || ex.Name == "" {
			continue
		}
		item := purchase.ImportItem{
			Code:     strings.TrimSpace(ex.Code),
			Name:     strings.TrimSpace(ex.Name),
			Quantity: ex.Quantity,
		}
		if price, err := ParsePrice(ex.Price); err == nil {
			item.Price = price
		}
		items = append(items, item)
	}

	return items, nil
}

// extractFromText extrai o texto do PDF e procura linhas de tabela separadas
// por barra vertical
func (e *PDFExtractor) extractFromText(data []byte) ([]purchase.ImportItem, error) {
	text, err := pdfText(data)
	if err != nil {
		return nil, fmt.Errorf("erro ao extrair texto do PDF: %w", err)
	}

	return ParsePipeTable(text), nil
}

// ParsePipeTable varre o texto à procura de linhas no formato
// "código | descrição | quantidade | preço" e as converte em itens
func ParsePipeTable(text string) []purchase.ImportItem {
	matches := pipeRowPattern.FindAllStringSubmatch(text, -1)

	items := make([]purchase.ImportItem, 0, len(matches))
	for _, m := range matches {
		qty, err := strconv.Atoi(m[3])
		if err != nil {
			continue
		}
		price, err := ParsePrice(m[4])
		if err != nil {
			continue
		}
		items = append(items, purchase.ImportItem{
			Code:     strings.TrimSpace(m[1]),
			Name:     strings.TrimSpace(m[2]),
			Quantity: qty,
			Price:    price,
		})
	}

	return items
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", err
	}

	return buf.String(), nil
}
