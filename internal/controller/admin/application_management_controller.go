package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/sahajranjan/jobportal/internal/controller"
	"github.com/sahajranjan/jobportal/internal/dto"
	"github.com/sahajranjan/jobportal/internal/service"
)

type ApplicationManagementController struct {
	applicationService service.ApplicationService
}

func NewApplicationManagementController(applicationService service.ApplicationService) *ApplicationManagementController {
	return &ApplicationManagementController{applicationService: applicationService}
}

// List godoc
// @Summary (Admin) List applications
// @Description Lists all applications, or only one candidate's when candidateId is given. userId is accepted as a legacy alias.
// @Tags Admin - Applications
// @Produce json
// @Param candidateId query int false "Filter by candidate"
// @Param userId query int false "Legacy alias for candidateId"
// @Success 200 {array} dto.ApplicationResponseDTO
// @Security BearerAuth
// @Router /manageapplication [get]
func (c *ApplicationManagementController) List(ctx *gin.Context) {
	candidateID, ok := controller.UintQuery(ctx, "candidateId")
	if !ok {
		return
	}
	if candidateID == nil {
		// Older admin clients send userId instead.
		if candidateID, ok = controller.UintQuery(ctx, "userId"); !ok {
			return
		}
	}
	resp, err := c.applicationService.List(candidateID)
	if err != nil {
		controller.WriteServiceError(ctx, err, "Failed to fetch applications")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary (Admin) Record an application
// @Description Creates an application on a candidate's behalf. The eligibility gate applies only to candidate self-service applies.
// @Tags Admin - Applications
// @Accept json
// @Produce json
// @Param application body dto.ApplicationCreateDTO true "Application data"
// @Success 201 {object} dto.ApplicationResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Job or candidate not found"
// @Security BearerAuth
// @Router /manageapplication [post]
func (c *ApplicationManagementController) Create(ctx *gin.Context) {
	var req dto.ApplicationCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateApplication: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.applicationService.Create(req)
	if err != nil {
		controller.WriteServiceError(ctx, err, "Failed to create application")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// Get godoc
// @Summary (Admin) Get an application
// @Tags Admin - Applications
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} dto.ApplicationResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Security BearerAuth
// @Router /manageapplication/{id} [get]
func (c *ApplicationManagementController) Get(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	resp, err := c.applicationService.Get(id)
	if err != nil {
		controller.WriteServiceError(ctx, err, "Failed to fetch application")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateStatus godoc
// @Summary (Admin) Move an application through its pipeline
// @Description Applies a status transition. Illegal moves, such as reopening a hired application, are rejected.
// @Tags Admin - Applications
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param update body dto.ApplicationUpdateDTO true "Target status"
// @Success 200 {object} dto.ApplicationResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Illegal transition"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Security BearerAuth
// @Router /manageapplication/{id} [put]
func (c *ApplicationManagementController) UpdateStatus(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.ApplicationUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin UpdateApplication: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.applicationService.UpdateStatus(id, req)
	if err != nil {
		controller.WriteServiceError(ctx, err, "Failed to update application")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary (Admin) Delete an application
// @Tags Admin - Applications
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Security BearerAuth
// @Router /manageapplication/{id} [delete]
func (c *ApplicationManagementController) Delete(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.applicationService.Delete(id); err != nil {
		controller.WriteServiceError(ctx, err, "Failed to delete application")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Application deleted successfully"})
}
