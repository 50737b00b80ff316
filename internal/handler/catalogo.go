package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"vitrine/internal/model"
	"vitrine/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const produtoCacheTTL = 60 * time.Second

// produtoCacheKey is shared with ProdutosHandler, which invalidates the
// entry when the supplier edits the product.
func produtoCacheKey(id int64) string { return fmt.Sprintf("produto:%d", id) }

// CatalogoHandler serves the public catalog reads (no authentication, no
// side effects). The single-product lookup is the storefront hot path, so it
// goes through a short-TTL Redis cache; rdb may be nil (cache disabled).
type CatalogoHandler struct {
	svc service.ProdutoService
	rdb *redis.Client
}

func NewCatalogoHandler(svc service.ProdutoService, rdb *redis.Client) *CatalogoHandler {
	return &CatalogoHandler{svc: svc, rdb: rdb}
}

func (h *CatalogoHandler) Obter(c *gin.Context) {
	id, ok := idFromQuery(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	cacheKey := produtoCacheKey(id)

	if h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var produto model.Produto
			if jsonErr := json.Unmarshal(cached, &produto); jsonErr == nil {
				c.JSON(http.StatusOK, produto)
				return
			}
		}
	}

	produto, err := h.svc.Obter(ctx, id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if produto == nil {
		// Absence is a normal outcome, not an error.
		c.JSON(http.StatusOK, nil)
		return
	}

	// Populate cache — best effort, ignore errors
	if h.rdb != nil {
		if b, jsonErr := json.Marshal(produto); jsonErr == nil {
			_ = h.rdb.Set(context.Background(), cacheKey, b, produtoCacheTTL).Err()
		}
	}

	c.JSON(http.StatusOK, produto)
}

func (h *CatalogoHandler) ListarPorFornecedor(c *gin.Context) {
	fornecedorID, ok := idFromQuery(c, "fornecedorId")
	if !ok {
		return
	}
	produtos, err := h.svc.ListarPorFornecedor(c.Request.Context(), fornecedorID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, produtos)
}
