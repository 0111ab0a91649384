package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/sahajranjan/jobportal/internal/dto"
	"github.com/sahajranjan/jobportal/internal/service"
)

type CoverLetterController struct {
	coverLetterService service.CoverLetterService
}

func NewCoverLetterController(coverLetterService service.CoverLetterService) *CoverLetterController {
	return &CoverLetterController{coverLetterService: coverLetterService}
}

// Generate godoc
// @Summary Generate a cover letter draft
// @Description Produces a cover letter for the given applicant and job. Falls back to a template when no AI backend is configured.
// @Tags Cover Letters
// @Accept json
// @Produce json
// @Param request body dto.CoverLetterRequest true "Applicant and job details"
// @Success 200 {object} dto.CoverLetterResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /coverletter/generate [post]
func (c *CoverLetterController) Generate(ctx *gin.Context) {
	var req dto.CoverLetterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("GenerateCoverLetter: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.coverLetterService.Generate(ctx.Request.Context(), req)
	if err != nil {
		WriteServiceError(ctx, err, "Failed to generate cover letter")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
