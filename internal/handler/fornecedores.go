package handler

import (
	"net/http"

	"vitrine/internal/dto"
	"vitrine/internal/middleware"
	"vitrine/internal/service"

	"github.com/gin-gonic/gin"
)

type FornecedoresHandler struct{ svc service.FornecedorService }

func NewFornecedoresHandler(svc service.FornecedorService) *FornecedoresHandler {
	return &FornecedoresHandler{svc: svc}
}

func (h *FornecedoresHandler) Criar(c *gin.Context) {
	var req dto.CriarFornecedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	user := middleware.CurrentUser(c)
	fornecedor, err := h.svc.Criar(c.Request.Context(), user.ID, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, fornecedor)
}

func (h *FornecedoresHandler) Obter(c *gin.Context) {
	user := middleware.CurrentUser(c)
	fornecedor, err := h.svc.Obter(c.Request.Context(), user.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, fornecedor)
}

// ObterAtivo is public — the storefront landing page calls it before any
// login happens. Null when no supplier is active.
func (h *FornecedoresHandler) ObterAtivo(c *gin.Context) {
	fornecedor, err := h.svc.ObterAtivo(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, fornecedor)
}
