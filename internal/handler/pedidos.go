package handler

import (
	"net/http"

	"vitrine/internal/dto"
	"vitrine/internal/middleware"
	"vitrine/internal/service"

	"github.com/gin-gonic/gin"
)

type PedidosHandler struct{ svc service.PedidoService }

func NewPedidosHandler(svc service.PedidoService) *PedidosHandler {
	return &PedidosHandler{svc: svc}
}

// Criar is public — guest checkout. The order snapshots the delivery details
// submitted with it, so it does not require an authenticated Cliente.
func (h *PedidosHandler) Criar(c *gin.Context) {
	var req dto.CriarPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	pedido, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, pedido)
}

func (h *PedidosHandler) ListarCliente(c *gin.Context) {
	user := middleware.CurrentUser(c)
	pedidos, err := h.svc.ListarCliente(c.Request.Context(), user.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, pedidos)
}

func (h *PedidosHandler) ListarFornecedor(c *gin.Context) {
	user := middleware.CurrentUser(c)
	pedidos, err := h.svc.ListarFornecedor(c.Request.Context(), user.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, pedidos)
}

func (h *PedidosHandler) AtualizarStatus(c *gin.Context) {
	var req dto.AtualizarStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	pedido, err := h.svc.AtualizarStatus(c.Request.Context(), req.ID, req.Status)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, pedido)
}
