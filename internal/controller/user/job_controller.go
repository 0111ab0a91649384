package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/sahajranjan/jobportal/internal/controller"
	"github.com/sahajranjan/jobportal/internal/dto"
	"github.com/sahajranjan/jobportal/internal/service"
)

type JobController struct {
	jobService service.JobService
}

func NewJobController(jobService service.JobService) *JobController {
	return &JobController{jobService: jobService}
}

// ListJobs godoc
// @Summary Browse job postings
// @Tags Jobs
// @Produce json
// @Success 200 {array} dto.JobResponseDTO
// @Router /userjobs [get]
func (c *JobController) ListJobs(ctx *gin.Context) {
	resp, err := c.jobService.ListJobs()
	if err != nil {
		controller.WriteServiceError(ctx, err, "Failed to fetch jobs")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetJob godoc
// @Summary Get a job posting
// @Tags Jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} dto.JobResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /userjobs/{id} [get]
func (c *JobController) GetJob(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	resp, err := c.jobService.GetJob(id)
	if err != nil {
		controller.WriteServiceError(ctx, err, "Failed to fetch job")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Apply godoc
// @Summary Apply to a job
// @Description Files an application for the caller. Requires a completed mock test scoring at least 75 percent, and rejects duplicate applications to the same job.
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path int true "Job ID"
// @Param application body dto.ApplyRequest true "Applicant details"
// @Success 201 {object} dto.ApplicationResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Not eligible yet"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Failure 409 {object} dto.ErrorResponse "Already applied"
// @Security BearerAuth
// @Router /userjobs/{id}/apply [post]
func (c *JobController) Apply(ctx *gin.Context) {
	jobID, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	candidateID, ok := candidateFrom(ctx)
	if !ok {
		return
	}
	var req dto.ApplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Apply: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.jobService.Apply(jobID, candidateID, req)
	if err != nil {
		controller.WriteServiceError(ctx, err, "Failed to apply")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// MyApplications godoc
// @Summary List the caller's applications
// @Tags Jobs
// @Produce json
// @Param candidateId query int false "Candidate id, when no bearer token is sent"
// @Success 200 {array} dto.ApplicationResponseDTO
// @Failure 401 {object} dto.ErrorResponse "No candidate identity"
// @Security BearerAuth
// @Router /userjobs/applied [get]
func (c *JobController) MyApplications(ctx *gin.Context) {
	candidateID, ok := candidateFrom(ctx)
	if !ok {
		return
	}
	resp, err := c.jobService.ListCandidateApplications(candidateID)
	if err != nil {
		controller.WriteServiceError(ctx, err, "Failed to fetch applications")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
