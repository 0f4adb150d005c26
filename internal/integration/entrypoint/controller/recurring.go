// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/application/usecase/recurring"
	"github.com/finance-ledger/backend/internal/domain/entity"
	"github.com/finance-ledger/backend/internal/integration/entrypoint/dto"
)

// RecurringController handles recurring transaction endpoints.
type RecurringController struct {
	listUseCase        *recurring.ListRecurringUseCase
	createUseCase      *recurring.CreateRecurringUseCase
	updateUseCase      *recurring.UpdateRecurringUseCase
	deleteUseCase      *recurring.DeleteRecurringUseCase
	materializeUseCase *recurring.MaterializeRecurringUseCase
	getDueUseCase      *recurring.GetDueRecurringUseCase
	getUpcomingUseCase *recurring.GetUpcomingRecurringUseCase
}

// NewRecurringController creates a new recurring controller instance.
func NewRecurringController(
	listUseCase *recurring.ListRecurringUseCase,
	createUseCase *recurring.CreateRecurringUseCase,
	updateUseCase *recurring.UpdateRecurringUseCase,
	deleteUseCase *recurring.DeleteRecurringUseCase,
	materializeUseCase *recurring.MaterializeRecurringUseCase,
	getDueUseCase *recurring.GetDueRecurringUseCase,
	getUpcomingUseCase *recurring.GetUpcomingRecurringUseCase,
) *RecurringController {
	return &RecurringController{
		listUseCase:        listUseCase,
		createUseCase:      createUseCase,
		updateUseCase:      updateUseCase,
		deleteUseCase:      deleteUseCase,
		materializeUseCase: materializeUseCase,
		getDueUseCase:      getDueUseCase,
		getUpcomingUseCase: getUpcomingUseCase,
	}
}

// List handles GET /recurring requests.
func (c *RecurringController) List(ctx *gin.Context) {
	input := recurring.ListRecurringInput{}
	if activeStr := ctx.Query("isActive"); activeStr != "" {
		active, err := strconv.ParseBool(activeStr)
		if err != nil {
			respondBadRequest(ctx, "INVALID_FILTER", "Invalid isActive, expected true or false")
			return
		}
		input.IsActive = &active
	}
	if transactionType := ctx.Query("type"); transactionType != "" {
		tType := entity.TransactionType(transactionType)
		input.Type = &tType
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringListResponse(output.Recurring))
}

// Create handles POST /recurring requests.
func (c *RecurringController) Create(ctx *gin.Context) {
	var req dto.CreateRecurringRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "INVALID_BODY", "Invalid request body")
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		respondBadRequest(ctx, "INVALID_AMOUNT", "Invalid amount")
		return
	}

	input := recurring.CreateRecurringInput{
		Name:        req.Name,
		Amount:      amount,
		Currency:    entity.Currency(req.Currency),
		Type:        entity.TransactionType(req.Type),
		Frequency:   entity.RecurrenceFrequency(req.Frequency),
		Description: req.Description,
		Notes:       req.Notes,
	}
	if ok := bindOptionalID(ctx, req.ContactID, &input.ContactID, "contact"); !ok {
		return
	}
	if ok := bindOptionalID(ctx, req.CategoryID, &input.CategoryID, "category"); !ok {
		return
	}
	if ok := bindOptionalID(ctx, req.ProjectID, &input.ProjectID, "project"); !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRecurringResponse(output.Recurring))
}

// Update handles PATCH /recurring/:id requests.
func (c *RecurringController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "INVALID_ID", "Invalid recurring transaction ID")
		return
	}

	var req dto.UpdateRecurringRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "INVALID_BODY", "Invalid request body")
		return
	}

	input := recurring.UpdateRecurringInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Notes:       req.Notes,
		IsActive:    req.IsActive,
	}
	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			respondBadRequest(ctx, "INVALID_AMOUNT", "Invalid amount")
			return
		}
		input.Amount = &amount
	}
	if req.Currency != nil {
		currency := entity.Currency(*req.Currency)
		input.Currency = &currency
	}
	if req.Type != nil {
		transactionType := entity.TransactionType(*req.Type)
		input.Type = &transactionType
	}
	if req.Frequency != nil {
		frequency := entity.RecurrenceFrequency(*req.Frequency)
		input.Frequency = &frequency
	}
	if ok := bindOptionalID(ctx, req.ContactID, &input.ContactID, "contact"); !ok {
		return
	}
	if ok := bindOptionalID(ctx, req.CategoryID, &input.CategoryID, "category"); !ok {
		return
	}
	if ok := bindOptionalID(ctx, req.ProjectID, &input.ProjectID, "project"); !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringResponse(output.Recurring))
}

// Delete handles DELETE /recurring/:id requests.
func (c *RecurringController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "INVALID_ID", "Invalid recurring transaction ID")
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), recurring.DeleteRecurringInput{ID: id})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteResponse{Success: true, Deleted: output.Deleted})
}

// Materialize handles POST /recurring/:id/materialize requests.
func (c *RecurringController) Materialize(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "INVALID_ID", "Invalid recurring transaction ID")
		return
	}

	var req dto.MaterializeRecurringRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && ctx.Request.ContentLength > 0 {
		respondBadRequest(ctx, "INVALID_BODY", "Invalid request body")
		return
	}

	input := recurring.MaterializeRecurringInput{ID: id}
	if req.EffectiveDate != nil {
		date, err := parseDate(*req.EffectiveDate)
		if err != nil {
			respondBadRequest(ctx, "INVALID_DATE", "Invalid effectiveDate, expected YYYY-MM-DD")
			return
		}
		input.EffectiveDate = &date
	}
	if req.OverrideAmount != nil {
		amount, err := decimal.NewFromString(*req.OverrideAmount)
		if err != nil {
			respondBadRequest(ctx, "INVALID_AMOUNT", "Invalid overrideAmount")
			return
		}
		input.OverrideAmount = &amount
	}

	output, err := c.materializeUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MaterializeRecurringResponse{
		Transaction: dto.ToTransactionResponse(output.Transaction),
		Recurring:   dto.ToRecurringResponse(output.Recurring),
	})
}

// Due handles GET /recurring/due requests.
func (c *RecurringController) Due(ctx *gin.Context) {
	output, err := c.getDueUseCase.Execute(ctx.Request.Context(), recurring.GetDueRecurringInput{})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringListResponse(output.Recurring))
}

// Upcoming handles GET /recurring/upcoming requests.
func (c *RecurringController) Upcoming(ctx *gin.Context) {
	input := recurring.GetUpcomingRecurringInput{}
	if daysStr := ctx.Query("horizonDays"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil || days <= 0 {
			respondBadRequest(ctx, "INVALID_FILTER", "Invalid horizonDays, expected a positive integer")
			return
		}
		input.HorizonDays = days
	}

	output, err := c.getUpcomingUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringListResponse(output.Recurring))
}

// bindOptionalID parses an optional UUID string into target, rendering
// a 400 and returning false on malformed input.
func bindOptionalID(ctx *gin.Context, raw *string, target **uuid.UUID, label string) bool {
	if raw == nil {
		return true
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		respondBadRequest(ctx, "INVALID_ID", "Invalid "+label+" ID")
		return false
	}
	*target = &id
	return true
}
