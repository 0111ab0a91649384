package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/sahajranjan/jobportal/internal/controller"
	"github.com/sahajranjan/jobportal/internal/dto"
	"github.com/sahajranjan/jobportal/internal/middleware"
	"github.com/sahajranjan/jobportal/internal/service"
)

type TestController struct {
	testAdminService  service.TestAdminService
	testTakingService service.TestTakingService
	eligibility       service.EligibilityService
}

func NewTestController(
	testAdminService service.TestAdminService,
	testTakingService service.TestTakingService,
	eligibility service.EligibilityService,
) *TestController {
	return &TestController{
		testAdminService:  testAdminService,
		testTakingService: testTakingService,
		eligibility:       eligibility,
	}
}

// candidateFrom resolves the acting candidate from the bearer token,
// falling back to the candidateId query parameter.
func candidateFrom(ctx *gin.Context) (uint, bool) {
	if id := middleware.UserIDFrom(ctx); id != nil {
		return *id, true
	}
	id, ok := controller.UintQuery(ctx, "candidateId")
	if !ok {
		return 0, false
	}
	if id == nil {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing bearer token"})
		return 0, false
	}
	return *id, true
}

// ListTests godoc
// @Summary List all mock tests
// @Tags Tests
// @Produce json
// @Success 200 {array} dto.TestSummaryDTO
// @Router /tests/all [get]
func (c *TestController) ListTests(ctx *gin.Context) {
	resp, err := c.testAdminService.ListTests()
	if err != nil {
		controller.WriteServiceError(ctx, err, "Failed to fetch tests")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetTest godoc
// @Summary Get a mock test with its questions
// @Tags Tests
// @Produce json
// @Param id path int true "Test ID"
// @Success 200 {object} dto.TestResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{id} [get]
func (c *TestController) GetTest(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	resp, err := c.testAdminService.GetTest(id)
	if err != nil {
		controller.WriteServiceError(ctx, err, "Failed to fetch test")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// MyTests godoc
// @Summary List the caller's assigned tests
// @Description Shows every assignment, including completed attempts with scores. Assignments whose test was deleted come back without test details.
// @Tags Tests
// @Produce json
// @Param candidateId query int false "Candidate id, when no bearer token is sent"
// @Success 200 {array} dto.AssignedTestDTO
// @Failure 401 {object} dto.ErrorResponse "No candidate identity"
// @Security BearerAuth
// @Router /tests/my [get]
func (c *TestController) MyTests(ctx *gin.Context) {
	candidateID, ok := candidateFrom(ctx)
	if !ok {
		return
	}
	resp, err := c.testTakingService.ListMyTests(candidateID)
	if err != nil {
		controller.WriteServiceError(ctx, err, "Failed to fetch assigned tests")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SubmitTest godoc
// @Summary Submit answers for an assigned test
// @Description Grades the submission against the question set, stores answer snapshots, and marks the assignment completed. A second submission for the same assignment is rejected.
// @Tags Tests
// @Accept json
// @Produce json
// @Param submission body dto.SubmitTestRequest true "Assignment id and selected option indexes"
// @Success 200 {object} dto.SubmitTestResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Assignment or test not found"
// @Failure 409 {object} dto.ErrorResponse "Already submitted"
// @Security BearerAuth
// @Router /tests/submit [post]
func (c *TestController) SubmitTest(ctx *gin.Context) {
	var req dto.SubmitTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitTest: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.testTakingService.SubmitTest(req)
	if err != nil {
		controller.WriteServiceError(ctx, err, "Failed to submit test")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Eligibility godoc
// @Summary Check the caller's job eligibility
// @Description A candidate becomes eligible once any completed mock test scores 75 percent or higher.
// @Tags Tests
// @Produce json
// @Param candidateId query int false "Candidate id, when no bearer token is sent"
// @Success 200 {object} dto.EligibilityResponse
// @Failure 401 {object} dto.ErrorResponse "No candidate identity"
// @Security BearerAuth
// @Router /tests/eligibility [get]
func (c *TestController) Eligibility(ctx *gin.Context) {
	candidateID, ok := candidateFrom(ctx)
	if !ok {
		return
	}
	eligible, highest, err := c.eligibility.CheckCandidate(candidateID)
	if err != nil {
		controller.WriteServiceError(ctx, err, "Failed to check eligibility")
		return
	}
	ctx.JSON(http.StatusOK, dto.EligibilityResponse{Eligible: eligible, HighestPercentage: highest})
}
