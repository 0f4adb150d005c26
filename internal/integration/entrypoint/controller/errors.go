// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/finance-ledger/backend/internal/domain/error"
	"github.com/finance-ledger/backend/internal/integration/entrypoint/dto"
)

// respondError maps domain errors onto the uniform error envelope.
// Missing entities map to 404, blocked deletions to 409, validation
// failures to 400, everything else to 500.
func respondError(ctx *gin.Context, err error) {
	var refErr *domainerror.ReferentialIntegrityError
	if errors.As(err, &refErr) {
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(
			"REFERENCE_CONFLICT",
			fmt.Sprintf("%s is referenced by %d transaction(s) and cannot be deleted", refErr.Entity, refErr.Count),
		))
		return
	}

	switch {
	case errors.Is(err, domainerror.ErrCategoryNotFound),
		errors.Is(err, domainerror.ErrProjectNotFound),
		errors.Is(err, domainerror.ErrContactNotFound),
		errors.Is(err, domainerror.ErrTransactionNotFound),
		errors.Is(err, domainerror.ErrRecurringNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(notFoundCode(err), err.Error()))
		return
	}

	var categoryErr *domainerror.CategoryError
	if errors.As(err, &categoryErr) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(string(categoryErr.Code), categoryErr.Message))
		return
	}
	var projectErr *domainerror.ProjectError
	if errors.As(err, &projectErr) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(string(projectErr.Code), projectErr.Message))
		return
	}
	var contactErr *domainerror.ContactError
	if errors.As(err, &contactErr) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(string(contactErr.Code), contactErr.Message))
		return
	}
	var transactionErr *domainerror.TransactionError
	if errors.As(err, &transactionErr) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(string(transactionErr.Code), transactionErr.Message))
		return
	}
	var recurringErr *domainerror.RecurringError
	if errors.As(err, &recurringErr) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(string(recurringErr.Code), recurringErr.Message))
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("INTERNAL_ERROR", "An unexpected error occurred"))
}

func notFoundCode(err error) string {
	switch {
	case errors.Is(err, domainerror.ErrCategoryNotFound):
		return string(domainerror.ErrCodeCategoryNotFound)
	case errors.Is(err, domainerror.ErrProjectNotFound):
		return string(domainerror.ErrCodeProjectNotFound)
	case errors.Is(err, domainerror.ErrContactNotFound):
		return string(domainerror.ErrCodeContactNotFound)
	case errors.Is(err, domainerror.ErrTransactionNotFound):
		return string(domainerror.ErrCodeTransactionNotFound)
	case errors.Is(err, domainerror.ErrRecurringNotFound):
		return string(domainerror.ErrCodeRecurringNotFound)
	}
	return "NOT_FOUND"
}

// respondBadRequest renders a 400 envelope for malformed input.
func respondBadRequest(ctx *gin.Context, code, message string) {
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(code, message))
}
