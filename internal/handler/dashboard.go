package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GuiCPessoa/Frota-Simples/internal/apierror"
	"github.com/GuiCPessoa/Frota-Simples/internal/middleware"
	"github.com/GuiCPessoa/Frota-Simples/internal/service"
)

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apierror.New("Autenticação requerida"))
		return
	}
	resp, err := h.svc.Stats(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err, "Conta não encontrada")
		return
	}
	c.JSON(http.StatusOK, resp)
}
