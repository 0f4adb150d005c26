// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/application/usecase/dashboard"
	"github.com/finance-ledger/backend/internal/application/usecase/transaction"
	"github.com/finance-ledger/backend/internal/domain/entity"
	"github.com/finance-ledger/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	createUseCase     *transaction.CreateTransactionUseCase
	getUseCase        *transaction.GetTransactionUseCase
	listUseCase       *transaction.ListTransactionsUseCase
	updateUseCase     *transaction.UpdateTransactionUseCase
	deleteUseCase     *transaction.DeleteTransactionUseCase
	bulkCreateUseCase *transaction.BulkCreateTransactionsUseCase
	markReviewed      *transaction.MarkReviewedUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createUseCase *transaction.CreateTransactionUseCase,
	getUseCase *transaction.GetTransactionUseCase,
	listUseCase *transaction.ListTransactionsUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	bulkCreateUseCase *transaction.BulkCreateTransactionsUseCase,
	markReviewed *transaction.MarkReviewedUseCase,
) *TransactionController {
	return &TransactionController{
		createUseCase:     createUseCase,
		getUseCase:        getUseCase,
		listUseCase:       listUseCase,
		updateUseCase:     updateUseCase,
		deleteUseCase:     deleteUseCase,
		bulkCreateUseCase: bulkCreateUseCase,
		markReviewed:      markReviewed,
	}
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "INVALID_BODY", "Invalid request body")
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		respondBadRequest(ctx, "INVALID_AMOUNT", "Invalid amount")
		return
	}

	input := transaction.CreateTransactionInput{
		Amount:      amount,
		Currency:    entity.Currency(req.Currency),
		Type:        entity.TransactionType(req.Type),
		ContactName: req.ContactName,
		Description: req.Description,
		Notes:       req.Notes,
	}
	if req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			respondBadRequest(ctx, "INVALID_DATE", "Invalid date, expected YYYY-MM-DD")
			return
		}
		input.Date = date
	}
	if req.ContactID != nil {
		contactID, err := uuid.Parse(*req.ContactID)
		if err != nil {
			respondBadRequest(ctx, "INVALID_ID", "Invalid contact ID")
			return
		}
		input.ContactID = &contactID
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			respondBadRequest(ctx, "INVALID_ID", "Invalid category ID")
			return
		}
		input.CategoryID = &categoryID
	}
	if req.ProjectID != nil {
		projectID, err := uuid.Parse(*req.ProjectID)
		if err != nil {
			respondBadRequest(ctx, "INVALID_ID", "Invalid project ID")
			return
		}
		input.ProjectID = &projectID
	}
	if req.RawInputID != nil {
		rawInputID, err := uuid.Parse(*req.RawInputID)
		if err != nil {
			respondBadRequest(ctx, "INVALID_ID", "Invalid raw input ID")
			return
		}
		input.RawInputID = &rawInputID
	}
	allocations, ok := parseAllocations(ctx, req.Allocations)
	if !ok {
		return
	}
	input.Allocations = allocations

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Get handles GET /transactions/:id requests.
func (c *TransactionController) Get(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "INVALID_ID", "Invalid transaction ID")
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), transaction.GetTransactionInput{ID: id})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionWithRefsResponse(output.Transaction))
}

// List handles GET /transactions requests. The period query parameter
// accepts the semantic selectors and resolves them into date bounds;
// explicit startDate/endDate take precedence. groupBy=day returns the
// page partitioned into day-buckets.
func (c *TransactionController) List(ctx *gin.Context) {
	filter, ok := c.buildFilter(ctx)
	if !ok {
		return
	}

	skip, _ := strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "0"))

	output, err := c.listUseCase.Execute(ctx.Request.Context(), transaction.ListTransactionsInput{
		Filter: filter,
		Skip:   skip,
		Limit:  limit,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	if ctx.Query("groupBy") == "day" {
		grouped := dashboard.GroupByDay(output.Transactions)
		groups := make([]dto.GroupedTransactionsResponse, len(grouped))
		for i, bucket := range grouped {
			group := dto.GroupedTransactionsResponse{
				Date:       bucket.Date.Format("2006-01-02"),
				DailyTotal: bucket.DailyTotal.String(),
			}
			for _, txn := range bucket.Transactions {
				group.Transactions = append(group.Transactions, dto.ToTransactionWithRefsResponse(txn))
			}
			groups[i] = group
		}
		ctx.JSON(http.StatusOK, gin.H{
			"groups":        groups,
			"total":         output.Total,
			"totalIncome":   output.TotalIncome.String(),
			"totalExpenses": output.TotalExpenses.String(),
			"hasMore":       output.HasMore,
		})
		return
	}

	response := dto.TransactionListResponse{
		Transactions:  make([]dto.TransactionResponse, len(output.Transactions)),
		Total:         output.Total,
		TotalIncome:   output.TotalIncome.String(),
		TotalExpenses: output.TotalExpenses.String(),
		HasMore:       output.HasMore,
	}
	for i, txn := range output.Transactions {
		response.Transactions[i] = dto.ToTransactionWithRefsResponse(txn)
	}
	ctx.JSON(http.StatusOK, response)
}

// Update handles PATCH /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "INVALID_ID", "Invalid transaction ID")
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "INVALID_BODY", "Invalid request body")
		return
	}

	input := transaction.UpdateTransactionInput{
		ID:            id,
		ClearContact:  req.ClearContact,
		ClearCategory: req.ClearCategory,
		ClearProject:  req.ClearProject,
		Description:   req.Description,
		Notes:         req.Notes,
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
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			respondBadRequest(ctx, "INVALID_DATE", "Invalid date, expected YYYY-MM-DD")
			return
		}
		input.Date = &date
	}
	if req.ContactID != nil {
		contactID, err := uuid.Parse(*req.ContactID)
		if err != nil {
			respondBadRequest(ctx, "INVALID_ID", "Invalid contact ID")
			return
		}
		input.ContactID = &contactID
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			respondBadRequest(ctx, "INVALID_ID", "Invalid category ID")
			return
		}
		input.CategoryID = &categoryID
	}
	if req.ProjectID != nil {
		projectID, err := uuid.Parse(*req.ProjectID)
		if err != nil {
			respondBadRequest(ctx, "INVALID_ID", "Invalid project ID")
			return
		}
		input.ProjectID = &projectID
	}
	if req.Allocations != nil {
		allocations, ok := parseAllocations(ctx, *req.Allocations)
		if !ok {
			return
		}
		input.Allocations = &allocations
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "INVALID_ID", "Invalid transaction ID")
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{ID: id})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteResponse{Success: true, Deleted: output.Deleted})
}

// BulkCreate handles POST /transactions/bulk requests.
func (c *TransactionController) BulkCreate(ctx *gin.Context) {
	var req dto.BulkCreateTransactionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "INVALID_BODY", "Invalid request body")
		return
	}

	items := make([]transaction.BulkTransactionItem, len(req.Transactions))
	for i, itemReq := range req.Transactions {
		amount, err := decimal.NewFromString(itemReq.Amount)
		if err != nil {
			respondBadRequest(ctx, "INVALID_AMOUNT", "Invalid amount")
			return
		}

		item := transaction.BulkTransactionItem{
			Amount:      amount,
			Currency:    entity.Currency(itemReq.Currency),
			Type:        entity.TransactionType(itemReq.Type),
			ContactName: itemReq.ContactName,
			Description: itemReq.Description,
			Notes:       itemReq.Notes,
			NeedsReview: itemReq.NeedsReview,
			Confidence:  itemReq.Confidence,
		}
		if itemReq.Date != "" {
			date, err := parseDate(itemReq.Date)
			if err != nil {
				respondBadRequest(ctx, "INVALID_DATE", "Invalid date, expected YYYY-MM-DD")
				return
			}
			item.Date = date
		}
		if itemReq.CategoryID != nil {
			categoryID, err := uuid.Parse(*itemReq.CategoryID)
			if err != nil {
				respondBadRequest(ctx, "INVALID_ID", "Invalid category ID")
				return
			}
			item.CategoryID = &categoryID
		}
		if itemReq.ProjectID != nil {
			projectID, err := uuid.Parse(*itemReq.ProjectID)
			if err != nil {
				respondBadRequest(ctx, "INVALID_ID", "Invalid project ID")
				return
			}
			item.ProjectID = &projectID
		}
		if itemReq.ReviewReason != nil {
			reason := entity.ReviewReason(*itemReq.ReviewReason)
			item.ReviewReason = &reason
		}
		for _, duplicateStr := range itemReq.PotentialDuplicateIDs {
			duplicateID, err := uuid.Parse(duplicateStr)
			if err != nil {
				respondBadRequest(ctx, "INVALID_ID", "Invalid potential duplicate ID")
				return
			}
			item.PotentialDuplicateIDs = append(item.PotentialDuplicateIDs, duplicateID)
		}
		items[i] = item
	}

	bulkInput := transaction.BulkCreateTransactionsInput{Items: items}
	if req.RawInputID != nil {
		rawInputID, err := uuid.Parse(*req.RawInputID)
		if err != nil {
			respondBadRequest(ctx, "INVALID_ID", "Invalid raw input ID")
			return
		}
		bulkInput.RawInputID = &rawInputID
	}

	output, err := c.bulkCreateUseCase.Execute(ctx.Request.Context(), bulkInput)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := dto.BulkCreateTransactionsResponse{
		CreatedCount:    output.CreatedCount,
		ContactsCreated: output.ContactsCreated,
		Transactions:    make([]dto.TransactionResponse, len(output.Transactions)),
	}
	for i, txn := range output.Transactions {
		response.Transactions[i] = dto.ToTransactionResponse(txn)
	}
	ctx.JSON(http.StatusCreated, response)
}

// MarkReviewed handles POST /transactions/:id/reviewed requests.
func (c *TransactionController) MarkReviewed(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "INVALID_ID", "Invalid transaction ID")
		return
	}

	output, err := c.markReviewed.Execute(ctx.Request.Context(), transaction.MarkReviewedInput{ID: id})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// buildFilter assembles the transaction filter from query parameters.
func (c *TransactionController) buildFilter(ctx *gin.Context) (adapter.TransactionFilter, bool) {
	filter := adapter.TransactionFilter{
		Search: ctx.Query("search"),
	}

	if transactionType := ctx.Query("type"); transactionType != "" {
		tType := entity.TransactionType(transactionType)
		filter.Type = &tType
	}
	for param, target := range map[string]**uuid.UUID{
		"contactId":  &filter.ContactID,
		"categoryId": &filter.CategoryID,
		"projectId":  &filter.ProjectID,
	} {
		if idStr := ctx.Query(param); idStr != "" {
			id, err := uuid.Parse(idStr)
			if err != nil {
				respondBadRequest(ctx, "INVALID_ID", "Invalid "+param)
				return filter, false
			}
			*target = &id
		}
	}
	if minStr := ctx.Query("minAmount"); minStr != "" {
		minAmount, err := decimal.NewFromString(minStr)
		if err != nil {
			respondBadRequest(ctx, "INVALID_AMOUNT", "Invalid minAmount")
			return filter, false
		}
		filter.MinAmount = &minAmount
	}
	if maxStr := ctx.Query("maxAmount"); maxStr != "" {
		maxAmount, err := decimal.NewFromString(maxStr)
		if err != nil {
			respondBadRequest(ctx, "INVALID_AMOUNT", "Invalid maxAmount")
			return filter, false
		}
		filter.MaxAmount = &maxAmount
	}

	var customStart, customEnd *time.Time
	if startStr := ctx.Query("startDate"); startStr != "" {
		start, err := parseDate(startStr)
		if err != nil {
			respondBadRequest(ctx, "INVALID_DATE", "Invalid startDate, expected YYYY-MM-DD")
			return filter, false
		}
		customStart = &start
	}
	if endStr := ctx.Query("endDate"); endStr != "" {
		end, err := parseDate(endStr)
		if err != nil {
			respondBadRequest(ctx, "INVALID_DATE", "Invalid endDate, expected YYYY-MM-DD")
			return filter, false
		}
		customEnd = &end
	}

	if period := ctx.Query("period"); period != "" {
		dateRange, err := dashboard.ResolveTimePeriod(dashboard.TimePeriod(period), time.Now().UTC(), customStart, customEnd)
		if err != nil {
			respondBadRequest(ctx, "INVALID_PERIOD", err.Error())
			return filter, false
		}
		filter.StartDate = dateRange.Start
		filter.EndDate = dateRange.End
	} else {
		filter.StartDate = customStart
		if customEnd != nil {
			end := customEnd.AddDate(0, 0, 1).Add(-time.Nanosecond)
			filter.EndDate = &end
		}
	}

	return filter, true
}

// parseDate parses a YYYY-MM-DD date string as UTC.
func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

// parseAllocations converts allocation DTOs, rendering a 400 and
// returning false on malformed input.
func parseAllocations(ctx *gin.Context, allocations []dto.AllocationDTO) ([]entity.Allocation, bool) {
	if len(allocations) == 0 {
		return nil, true
	}
	out := make([]entity.Allocation, len(allocations))
	for i, allocation := range allocations {
		targetID, err := uuid.Parse(allocation.TargetID)
		if err != nil {
			respondBadRequest(ctx, "INVALID_ID", "Invalid allocation target ID")
			return nil, false
		}
		share, err := decimal.NewFromString(allocation.Share)
		if err != nil {
			respondBadRequest(ctx, "INVALID_AMOUNT", "Invalid allocation share")
			return nil, false
		}
		out[i] = entity.Allocation{TargetID: targetID, Share: share}
	}
	return out, true
}
