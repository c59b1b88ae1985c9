package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/GuiCPessoa/Frota-Simples/internal/apierror"
	"github.com/GuiCPessoa/Frota-Simples/internal/dto"
	"github.com/GuiCPessoa/Frota-Simples/internal/middleware"
	"github.com/GuiCPessoa/Frota-Simples/internal/service"
)

const vehicleNotFound = "Veículo não encontrado"

type VehiclesHandler struct{ svc service.VehicleService }

func NewVehiclesHandler(svc service.VehicleService) *VehiclesHandler {
	return &VehiclesHandler{svc: svc}
}

func (h *VehiclesHandler) List(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apierror.New("Autenticação requerida"))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err, vehicleNotFound)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VehiclesHandler) GetByID(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apierror.New("Autenticação requerida"))
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), principal, id)
	if err != nil {
		respondError(c, err, vehicleNotFound)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VehiclesHandler) Create(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apierror.New("Autenticação requerida"))
		return
	}
	var req dto.SaveVehicleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), principal, req)
	if err != nil {
		respondError(c, err, vehicleNotFound)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *VehiclesHandler) Update(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apierror.New("Autenticação requerida"))
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.SaveVehicleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), principal, id, req)
	if err != nil {
		respondError(c, err, vehicleNotFound)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VehiclesHandler) Delete(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apierror.New("Autenticação requerida"))
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.Remove(c.Request.Context(), principal, id); err != nil {
		respondError(c, err, vehicleNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
