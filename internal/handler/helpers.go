package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/GuiCPessoa/Frota-Simples/internal/apierror"
	"github.com/GuiCPessoa/Frota-Simples/internal/service"
	"github.com/GuiCPessoa/Frota-Simples/internal/store"
)

var validate = validator.New()

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails; the
// caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondError maps domain failures to HTTP responses. notFoundMsg lets each
// handler keep its entity-specific message; everything else is uniform.
// Absent and foreign-account rows share the same 404 body on purpose.
func respondError(c *gin.Context, err error, notFoundMsg string) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusUnprocessableEntity,
			apierror.NewValidation(map[string]string{ve.Field: ve.Reason}))
	case errors.Is(err, store.ErrUnprovisioned):
		c.JSON(http.StatusForbidden, apierror.New("Usuário não vinculado a nenhuma conta"))
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.New(notFoundMsg))
	default:
		// Store faults and anything unexpected: log the cause, return a
		// generic 500.
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Erro interno do servidor"))
	}
}
