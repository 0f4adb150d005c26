// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-ledger/backend/internal/application/usecase/dashboard"
	"github.com/finance-ledger/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles reporting endpoints.
type DashboardController struct {
	summaryUseCase *dashboard.GetSummaryUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(summaryUseCase *dashboard.GetSummaryUseCase) *DashboardController {
	return &DashboardController{
		summaryUseCase: summaryUseCase,
	}
}

// Summary handles GET /dashboard/summary requests.
func (c *DashboardController) Summary(ctx *gin.Context) {
	input := dashboard.GetSummaryInput{
		Period: dashboard.TimePeriod(ctx.DefaultQuery("period", string(dashboard.PeriodThisMonth))),
	}

	if startStr := ctx.Query("startDate"); startStr != "" {
		start, err := parseDate(startStr)
		if err != nil {
			respondBadRequest(ctx, "INVALID_DATE", "Invalid startDate, expected YYYY-MM-DD")
			return
		}
		input.CustomStart = &start
	}
	if endStr := ctx.Query("endDate"); endStr != "" {
		end, err := parseDate(endStr)
		if err != nil {
			respondBadRequest(ctx, "INVALID_DATE", "Invalid endDate, expected YYYY-MM-DD")
			return
		}
		input.CustomEnd = &end
	}
	if projectIDStr := ctx.Query("projectId"); projectIDStr != "" {
		projectID, err := uuid.Parse(projectIDStr)
		if err != nil {
			respondBadRequest(ctx, "INVALID_ID", "Invalid project ID")
			return
		}
		input.ProjectID = &projectID
	}
	if contactIDStr := ctx.Query("contactId"); contactIDStr != "" {
		contactID, err := uuid.Parse(contactIDStr)
		if err != nil {
			respondBadRequest(ctx, "INVALID_ID", "Invalid contact ID")
			return
		}
		input.ContactID = &contactID
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondBadRequest(ctx, "INVALID_PERIOD", err.Error())
		return
	}

	ctx.JSON(http.StatusOK, dto.SummaryResponse{
		Period:           string(output.Period),
		Start:            output.Start,
		End:              output.End,
		TotalIncome:      output.Totals.IncomeTotal.String(),
		TotalExpenses:    output.Totals.ExpenseTotal.String(),
		NetTotal:         output.Totals.NetTotal.String(),
		TransactionCount: output.TransactionCount,
	})
}
