package handler

import (
	"net/http"

	"vitrine/internal/dto"
	"vitrine/internal/middleware"
	"vitrine/internal/service"

	"github.com/gin-gonic/gin"
)

type ClientesHandler struct{ svc service.ClienteService }

func NewClientesHandler(svc service.ClienteService) *ClientesHandler {
	return &ClientesHandler{svc: svc}
}

// Criar binds the profile to the caller's user id, never to a submitted one.
func (h *ClientesHandler) Criar(c *gin.Context) {
	var req dto.CriarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	user := middleware.CurrentUser(c)
	cliente, err := h.svc.Criar(c.Request.Context(), user.ID, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, cliente)
}

func (h *ClientesHandler) Obter(c *gin.Context) {
	user := middleware.CurrentUser(c)
	cliente, err := h.svc.Obter(c.Request.Context(), user.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, cliente)
}
