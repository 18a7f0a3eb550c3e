package controller

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gestaovendas/erp-representacao/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPurchaseUploadRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	ctrl := NewPurchaseController(nil, nil, 1<<20, logger.NewNopLogger())

	router := gin.New()
	router.POST("/purchases/upload-csv", ctrl.UploadCSV)
	return router
}

func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestUploadCSVCampoProductsCsv(t *testing.T) {
	router := newPurchaseUploadRouter()

	body, contentType := multipartBody(t, "productsCsv", "produtos.csv",
		"codigo,nome,preco,estoque\nA1,Parafuso,12.50,30\n")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/purchases/upload-csv", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Parafuso")
}

func TestUploadCSVCampoErrado(t *testing.T) {
	router := newPurchaseUploadRouter()

	body, contentType := multipartBody(t, "file", "produtos.csv",
		"codigo,nome\nA1,Parafuso\n")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/purchases/upload-csv", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadCSVExtensaoInvalida(t *testing.T) {
	router := newPurchaseUploadRouter()

	body, contentType := multipartBody(t, "productsCsv", "produtos.txt", "qualquer coisa")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/purchases/upload-csv", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
