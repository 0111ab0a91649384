package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/sahajranjan/jobportal/internal/controller"
	"github.com/sahajranjan/jobportal/internal/dto"
	"github.com/sahajranjan/jobportal/internal/service"
)

type InterviewController struct {
	interviewService service.InterviewService
}

func NewInterviewController(interviewService service.InterviewService) *InterviewController {
	return &InterviewController{interviewService: interviewService}
}

// List godoc
// @Summary List interviews
// @Description Lists all interviews, or only one candidate's when candidateId is given.
// @Tags Interviews
// @Produce json
// @Param candidateId query int false "Filter by candidate"
// @Success 200 {array} dto.InterviewResponseDTO
// @Security BearerAuth
// @Router /interviews [get]
func (c *InterviewController) List(ctx *gin.Context) {
	candidateID, ok := controller.UintQuery(ctx, "candidateId")
	if !ok {
		return
	}
	resp, err := c.interviewService.List(candidateID)
	if err != nil {
		controller.WriteServiceError(ctx, err, "Failed to fetch interviews")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Get an interview
// @Tags Interviews
// @Produce json
// @Param id path int true "Interview ID"
// @Success 200 {object} dto.InterviewResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Security BearerAuth
// @Router /interviews/{id} [get]
func (c *InterviewController) Get(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	resp, err := c.interviewService.Get(id)
	if err != nil {
		controller.WriteServiceError(ctx, err, "Failed to fetch interview")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary Schedule an interview
// @Description Schedules an interview for an application and moves the application into the Interview stage.
// @Tags Interviews
// @Accept json
// @Produce json
// @Param interview body dto.InterviewCreateDTO true "Interview details"
// @Success 201 {object} dto.InterviewResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Application, candidate or interviewer not found"
// @Security BearerAuth
// @Router /interviews [post]
func (c *InterviewController) Create(ctx *gin.Context) {
	var req dto.InterviewCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateInterview: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.interviewService.Create(req)
	if err != nil {
		controller.WriteServiceError(ctx, err, "Failed to schedule interview")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// Update godoc
// @Summary Update an interview
// @Description Reschedules or moves the interview through its lifecycle. Outcome and feedback are accepted only once the interview is completed.
// @Tags Interviews
// @Accept json
// @Produce json
// @Param id path int true "Interview ID"
// @Param update body dto.InterviewUpdateDTO true "Fields to update"
// @Success 200 {object} dto.InterviewResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Illegal transition"
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Security BearerAuth
// @Router /interviews/{id} [put]
func (c *InterviewController) Update(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.InterviewUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("UpdateInterview: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.interviewService.Update(id, req)
	if err != nil {
		controller.WriteServiceError(ctx, err, "Failed to update interview")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary Cancel and remove an interview
// @Tags Interviews
// @Produce json
// @Param id path int true "Interview ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Security BearerAuth
// @Router /interviews/{id} [delete]
func (c *InterviewController) Delete(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.interviewService.Delete(id); err != nil {
		controller.WriteServiceError(ctx, err, "Failed to delete interview")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Interview deleted successfully"})
}
