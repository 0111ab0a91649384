package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/sahajranjan/jobportal/internal/controller"
	"github.com/sahajranjan/jobportal/internal/dto"
	"github.com/sahajranjan/jobportal/internal/middleware"
	"github.com/sahajranjan/jobportal/internal/service"
)

type JobAdminController struct {
	jobService service.JobService
}

func NewJobAdminController(jobService service.JobService) *JobAdminController {
	return &JobAdminController{jobService: jobService}
}

// CreateJob godoc
// @Summary (Admin) Post a job
// @Tags Admin - Jobs
// @Accept json
// @Produce json
// @Param job body dto.JobCreateDTO true "Job posting"
// @Success 201 {object} dto.JobResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /userjobs [post]
func (c *JobAdminController) CreateJob(ctx *gin.Context) {
	var req dto.JobCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateJob: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.jobService.CreateJob(req, middleware.UserIDFrom(ctx))
	if err != nil {
		controller.WriteServiceError(ctx, err, "Failed to create job")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// UpdateJob godoc
// @Summary (Admin) Update a job posting
// @Tags Admin - Jobs
// @Accept json
// @Produce json
// @Param id path int true "Job ID"
// @Param job body dto.JobUpdateDTO true "Fields to update"
// @Success 200 {object} dto.JobResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Security BearerAuth
// @Router /userjobs/{id} [patch]
func (c *JobAdminController) UpdateJob(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.JobUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin UpdateJob: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.jobService.UpdateJob(id, req)
	if err != nil {
		controller.WriteServiceError(ctx, err, "Failed to update job")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteJob godoc
// @Summary (Admin) Remove a job posting
// @Tags Admin - Jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Security BearerAuth
// @Router /userjobs/{id} [delete]
func (c *JobAdminController) DeleteJob(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.jobService.DeleteJob(id); err != nil {
		controller.WriteServiceError(ctx, err, "Failed to delete job")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Job deleted successfully"})
}
