// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-ledger/backend/internal/application/usecase/contact"
	"github.com/finance-ledger/backend/internal/integration/entrypoint/dto"
)

// ContactController handles contact endpoints.
type ContactController struct {
	listUseCase   *contact.ListContactsUseCase
	getUseCase    *contact.GetContactUseCase
	createUseCase *contact.CreateContactUseCase
	updateUseCase *contact.UpdateContactUseCase
	deleteUseCase *contact.DeleteContactUseCase
}

// NewContactController creates a new contact controller instance.
func NewContactController(
	listUseCase *contact.ListContactsUseCase,
	getUseCase *contact.GetContactUseCase,
	createUseCase *contact.CreateContactUseCase,
	updateUseCase *contact.UpdateContactUseCase,
	deleteUseCase *contact.DeleteContactUseCase,
) *ContactController {
	return &ContactController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /contacts requests.
func (c *ContactController) List(ctx *gin.Context) {
	input := contact.ListContactsInput{
		Search: ctx.Query("search"),
	}
	if projectIDStr := ctx.Query("projectId"); projectIDStr != "" {
		projectID, err := uuid.Parse(projectIDStr)
		if err != nil {
			respondBadRequest(ctx, "INVALID_ID", "Invalid project ID")
			return
		}
		input.ProjectID = &projectID
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToContactListResponse(output.Contacts))
}

// Get handles GET /contacts/:id requests.
func (c *ContactController) Get(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "INVALID_ID", "Invalid contact ID")
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), contact.GetContactInput{ID: id})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToContactResponse(output.Contact))
}

// Create handles POST /contacts requests.
func (c *ContactController) Create(ctx *gin.Context) {
	var req dto.CreateContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "INVALID_BODY", "Invalid request body")
		return
	}

	input := contact.CreateContactInput{
		Name:    req.Name,
		Aliases: req.Aliases,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Website: req.Website,
		Notes:   req.Notes,
	}
	if req.DefaultCategoryID != nil {
		categoryID, err := uuid.Parse(*req.DefaultCategoryID)
		if err != nil {
			respondBadRequest(ctx, "INVALID_ID", "Invalid default category ID")
			return
		}
		input.DefaultCategoryID = &categoryID
	}
	if req.ProjectID != nil {
		projectID, err := uuid.Parse(*req.ProjectID)
		if err != nil {
			respondBadRequest(ctx, "INVALID_ID", "Invalid project ID")
			return
		}
		input.ProjectID = &projectID
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToContactResponse(output.Contact))
}

// Update handles PATCH /contacts/:id requests.
func (c *ContactController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "INVALID_ID", "Invalid contact ID")
		return
	}

	var req dto.UpdateContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "INVALID_BODY", "Invalid request body")
		return
	}

	input := contact.UpdateContactInput{
		ID:      id,
		Name:    req.Name,
		Aliases: req.Aliases,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Website: req.Website,
		Notes:   req.Notes,
	}
	if req.DefaultCategoryID != nil {
		categoryID, err := uuid.Parse(*req.DefaultCategoryID)
		if err != nil {
			respondBadRequest(ctx, "INVALID_ID", "Invalid default category ID")
			return
		}
		input.DefaultCategoryID = &categoryID
	}
	if req.ProjectID != nil {
		projectID, err := uuid.Parse(*req.ProjectID)
		if err != nil {
			respondBadRequest(ctx, "INVALID_ID", "Invalid project ID")
			return
		}
		input.ProjectID = &projectID
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToContactResponse(output.Contact))
}

// Delete handles DELETE /contacts/:id requests.
func (c *ContactController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "INVALID_ID", "Invalid contact ID")
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), contact.DeleteContactInput{ID: id})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteResponse{Success: true, Deleted: output.Deleted})
}
