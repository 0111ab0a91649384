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

type TestAdminController struct {
	testAdminService service.TestAdminService
}

func NewTestAdminController(testAdminService service.TestAdminService) *TestAdminController {
	return &TestAdminController{testAdminService: testAdminService}
}

// CreateTest godoc
// @Summary (Admin) Create a mock test
// @Description Creates a test together with its full question set. Each question's answer is the index of the correct option.
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Param test_data body dto.TestCreateDTO true "Test data including questions"
// @Success 201 {object} dto.TestResponseDTO "Test created"
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /tests/create [post]
func (c *TestAdminController) CreateTest(ctx *gin.Context) {
	var req dto.TestCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateTest: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.testAdminService.CreateTest(req, middleware.UserIDFrom(ctx))
	if err != nil {
		controller.WriteServiceError(ctx, err, "Failed to create test")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// UpdateTest godoc
// @Summary (Admin) Update a mock test
// @Description Patches test metadata; when a questions array is supplied the whole question set is replaced.
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Param id path int true "Test ID"
// @Param test_data body dto.TestUpdateDTO true "Fields to update"
// @Success 200 {object} dto.TestResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Security BearerAuth
// @Router /tests/{id} [put]
func (c *TestAdminController) UpdateTest(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.TestUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin UpdateTest: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.testAdminService.UpdateTest(id, req)
	if err != nil {
		controller.WriteServiceError(ctx, err, "Failed to update test")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteTest godoc
// @Summary (Admin) Delete a mock test
// @Description Removes the test and its questions. Existing assignment rows keep their scores and answer snapshots.
// @Tags Admin - Tests
// @Produce json
// @Param id path int true "Test ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Security BearerAuth
// @Router /tests/{id} [delete]
func (c *TestAdminController) DeleteTest(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.testAdminService.DeleteTest(id); err != nil {
		controller.WriteServiceError(ctx, err, "Failed to delete test")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Test deleted successfully"})
}

// AssignTest godoc
// @Summary (Admin) Assign a test to a candidate
// @Description Creates an assignment row. Assigning the same test twice creates independent attempts.
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Param assignment body dto.AssignTestRequest true "Test and candidate ids"
// @Success 201 {object} dto.AssignedTestDTO
// @Failure 400 {object} dto.ErrorResponse "Target user is not a candidate"
// @Failure 404 {object} dto.ErrorResponse "Test or candidate not found"
// @Security BearerAuth
// @Router /tests/assign [post]
func (c *TestAdminController) AssignTest(ctx *gin.Context) {
	var req dto.AssignTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin AssignTest: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.testAdminService.AssignTest(req, middleware.UserIDFrom(ctx))
	if err != nil {
		controller.WriteServiceError(ctx, err, "Failed to assign test")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListAssignedTests godoc
// @Summary (Admin) List all test assignments
// @Tags Admin - Tests
// @Produce json
// @Success 200 {array} dto.AssignedTestDTO
// @Security BearerAuth
// @Router /tests/assigned [get]
func (c *TestAdminController) ListAssignedTests(ctx *gin.Context) {
	resp, err := c.testAdminService.ListAssignedTests()
	if err != nil {
		controller.WriteServiceError(ctx, err, "Failed to fetch assigned tests")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
