// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/application/usecase/project"
	"github.com/finance-ledger/backend/internal/domain/entity"
	"github.com/finance-ledger/backend/internal/integration/entrypoint/dto"
)

// ProjectController handles project endpoints.
type ProjectController struct {
	listUseCase   *project.ListProjectsUseCase
	createUseCase *project.CreateProjectUseCase
	updateUseCase *project.UpdateProjectUseCase
	deleteUseCase *project.DeleteProjectUseCase
}

// NewProjectController creates a new project controller instance.
func NewProjectController(
	listUseCase *project.ListProjectsUseCase,
	createUseCase *project.CreateProjectUseCase,
	updateUseCase *project.UpdateProjectUseCase,
	deleteUseCase *project.DeleteProjectUseCase,
) *ProjectController {
	return &ProjectController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /projects requests.
func (c *ProjectController) List(ctx *gin.Context) {
	input := project.ListProjectsInput{
		Search: ctx.Query("search"),
	}
	if projectType := ctx.Query("type"); projectType != "" {
		pType := entity.ProjectType(projectType)
		input.Type = &pType
	}
	if status := ctx.Query("status"); status != "" {
		pStatus := entity.ProjectStatus(status)
		input.Status = &pStatus
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProjectListResponse(output.Projects))
}

// Create handles POST /projects requests.
func (c *ProjectController) Create(ctx *gin.Context) {
	var req dto.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "INVALID_BODY", "Invalid request body")
		return
	}

	input := project.CreateProjectInput{
		Name:        req.Name,
		Type:        entity.ProjectType(req.Type),
		Status:      entity.ProjectStatus(req.Status),
		Description: req.Description,
		Color:       req.Color,
		Currency:    entity.Currency(req.Currency),
	}
	if req.MonthlyBudget != nil {
		budget, err := decimal.NewFromString(*req.MonthlyBudget)
		if err != nil {
			respondBadRequest(ctx, "INVALID_BUDGET", "Invalid monthly budget")
			return
		}
		input.MonthlyBudget = &budget
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProjectResponse(output.Project))
}

// Update handles PATCH /projects/:id requests.
func (c *ProjectController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "INVALID_ID", "Invalid project ID")
		return
	}

	var req dto.UpdateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "INVALID_BODY", "Invalid request body")
		return
	}

	input := project.UpdateProjectInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		ClearBudget: req.ClearBudget,
	}
	if req.Type != nil {
		pType := entity.ProjectType(*req.Type)
		input.Type = &pType
	}
	if req.Status != nil {
		pStatus := entity.ProjectStatus(*req.Status)
		input.Status = &pStatus
	}
	if req.MonthlyBudget != nil {
		budget, err := decimal.NewFromString(*req.MonthlyBudget)
		if err != nil {
			respondBadRequest(ctx, "INVALID_BUDGET", "Invalid monthly budget")
			return
		}
		input.MonthlyBudget = &budget
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProjectResponse(output.Project))
}

// Delete handles DELETE /projects/:id requests.
func (c *ProjectController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "INVALID_ID", "Invalid project ID")
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), project.DeleteProjectInput{ID: id})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteResponse{Success: true, Deleted: output.Deleted})
}
