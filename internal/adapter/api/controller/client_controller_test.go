package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gestaovendas/erp-representacao/internal/adapter/repository"
	clientdomain "github.com/gestaovendas/erp-representacao/internal/domain/client"
	"github.com/gestaovendas/erp-representacao/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeClientRepo struct {
	deleteErr error
}

func (r *fakeClientRepo) Create(_ context.Context, _ *clientdomain.Client) error { return nil }

func (r *fakeClientRepo) FindByID(_ context.Context, _ string) (*clientdomain.Client, error) {
	return nil, repository.ErrClientNotFound
}

func (r *fakeClientRepo) FindByCNPJ(_ context.Context, _ string) (*clientdomain.Client, error) {
	return nil, repository.ErrClientNotFound
}

func (r *fakeClientRepo) List(_ context.Context, _ string, _, _ int) ([]*clientdomain.Client, error) {
	return nil, nil
}

func (r *fakeClientRepo) Search(_ context.Context, _ string, _, _ int) ([]*clientdomain.Client, error) {
	return nil, nil
}

func (r *fakeClientRepo) Update(_ context.Context, _ *clientdomain.Client) error { return nil }

func (r *fakeClientRepo) Delete(_ context.Context, _ string) error { return r.deleteErr }

func (r *fakeClientRepo) Count(_ context.Context, _ string) (int, error) { return 0, nil }

func (r *fakeClientRepo) Exists(_ context.Context, _ string) (bool, error) { return false, nil }

func newClientDeleteRouter(deleteErr error) *gin.Engine {
	gin.SetMode(gin.TestMode)

	ctrl := NewClientController(&fakeClientRepo{deleteErr: deleteErr}, nil, nil, logger.NewNopLogger())

	router := gin.New()
	router.DELETE("/clients/:id", ctrl.Delete)
	return router
}

func TestClientDeleteComPedidosRetornaConflito(t *testing.T) {
	router := newClientDeleteRouter(repository.ErrClientHasOrders)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/clients/c1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "cliente possui pedidos")
}

func TestClientDeleteNaoEncontrado(t *testing.T) {
	router := newClientDeleteRouter(repository.ErrClientNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/clients/sumiu", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClientDelete(t *testing.T) {
	router := newClientDeleteRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/clients/c1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
