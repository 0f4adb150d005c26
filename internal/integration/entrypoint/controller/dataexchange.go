// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-ledger/backend/internal/application/usecase/dataexchange"
)

// DataExchangeController handles export and import endpoints.
type DataExchangeController struct {
	exportUseCase *dataexchange.ExportDataUseCase
	importUseCase *dataexchange.ImportDataUseCase
}

// NewDataExchangeController creates a new data exchange controller instance.
func NewDataExchangeController(
	exportUseCase *dataexchange.ExportDataUseCase,
	importUseCase *dataexchange.ImportDataUseCase,
) *DataExchangeController {
	return &DataExchangeController{
		exportUseCase: exportUseCase,
		importUseCase: importUseCase,
	}
}

// Export handles GET /export requests. The response body is the full
// ledger document.
func (c *DataExchangeController) Export(ctx *gin.Context) {
	output, err := c.exportUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output.Document)
}

// Import handles POST /import requests. Existing rows are skipped,
// never overwritten.
func (c *DataExchangeController) Import(ctx *gin.Context) {
	var document dataexchange.Document
	if err := ctx.ShouldBindJSON(&document); err != nil {
		respondBadRequest(ctx, "INVALID_BODY", "Invalid document body")
		return
	}

	output, err := c.importUseCase.Execute(ctx.Request.Context(), dataexchange.ImportDataInput{
		Document: &document,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"results": gin.H{
			"categories":            importCountsJSON(output.Categories),
			"projects":              importCountsJSON(output.Projects),
			"contacts":              importCountsJSON(output.Contacts),
			"transactions":          importCountsJSON(output.Transactions),
			"recurringTransactions": importCountsJSON(output.RecurringTransactions),
		},
	})
}

func importCountsJSON(counts dataexchange.ImportCounts) gin.H {
	return gin.H{
		"imported": counts.Imported,
		"skipped":  counts.Skipped,
	}
}
