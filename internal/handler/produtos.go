package handler

import (
	"net/http"

	"vitrine/internal/dto"
	"vitrine/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// ProdutosHandler serves the supplier-dashboard write operations.
// Public catalog reads live in CatalogoHandler; updates invalidate its cache
// entry so the storefront never serves a stale price or ativo flag for the
// cache TTL. rdb may be nil (cache disabled).
type ProdutosHandler struct {
	svc service.ProdutoService
	rdb *redis.Client
}

func NewProdutosHandler(svc service.ProdutoService, rdb *redis.Client) *ProdutosHandler {
	return &ProdutosHandler{svc: svc, rdb: rdb}
}

func (h *ProdutosHandler) Criar(c *gin.Context) {
	var req dto.CriarProdutoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	produto, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, produto)
}

func (h *ProdutosHandler) Atualizar(c *gin.Context) {
	var req dto.AtualizarProdutoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	produto, err := h.svc.Atualizar(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if h.rdb != nil {
		// Best effort — a failed Del only extends the staleness window to
		// the cache TTL.
		_ = h.rdb.Del(c.Request.Context(), produtoCacheKey(req.ID)).Err()
	}
	c.JSON(http.StatusOK, produto)
}
