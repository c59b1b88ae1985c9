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

const supplierNotFound = "Fornecedor não encontrado"

type SuppliersHandler struct{ svc service.SupplierService }

func NewSuppliersHandler(svc service.SupplierService) *SuppliersHandler {
	return &SuppliersHandler{svc: svc}
}

func (h *SuppliersHandler) List(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apierror.New("Autenticação requerida"))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err, supplierNotFound)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SuppliersHandler) GetByID(c *gin.Context) {
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
		respondError(c, err, supplierNotFound)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SuppliersHandler) Create(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apierror.New("Autenticação requerida"))
		return
	}
	var req dto.SaveSupplierRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), principal, req)
	if err != nil {
		respondError(c, err, supplierNotFound)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *SuppliersHandler) Update(c *gin.Context) {
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
	var req dto.SaveSupplierRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), principal, id, req)
	if err != nil {
		respondError(c, err, supplierNotFound)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SuppliersHandler) Delete(c *gin.Context) {
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
		respondError(c, err, supplierNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
