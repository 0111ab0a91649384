package admin

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/sahajranjan/jobportal/internal/controller"
	"github.com/sahajranjan/jobportal/internal/service"
)

type UserManagementController struct {
	userAdminService service.UserAdminService
}

func NewUserManagementController(userAdminService service.UserAdminService) *UserManagementController {
	return &UserManagementController{userAdminService: userAdminService}
}

// Activity godoc
// @Summary (Admin) User activity report
// @Description Lists users ordered by most recent login, with per-user application counts.
// @Tags Admin - Users
// @Produce json
// @Success 200 {array} dto.UserActivityDTO
// @Security BearerAuth
// @Router /manageusers/activity [get]
func (c *UserManagementController) Activity(ctx *gin.Context) {
	resp, err := c.userAdminService.Activity()
	if err != nil {
		controller.WriteServiceError(ctx, err, "Failed to fetch user activity")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// RoleCounts godoc
// @Summary (Admin) User counts per role
// @Description Returns a role name to count map. Roles with no users appear with a zero count.
// @Tags Admin - Users
// @Produce json
// @Success 200 {object} map[string]int
// @Security BearerAuth
// @Router /manageusers/roles [get]
func (c *UserManagementController) RoleCounts(ctx *gin.Context) {
	resp, err := c.userAdminService.RoleCounts()
	if err != nil {
		controller.WriteServiceError(ctx, err, "Failed to fetch role counts")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Export godoc
// @Summary (Admin) Export users
// @Description Returns the user roster as JSON, or as an Excel workbook when format=xlsx.
// @Tags Admin - Users
// @Produce json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "Set to xlsx for a spreadsheet download"
// @Success 200 {array} dto.UserExportDTO
// @Security BearerAuth
// @Router /manageusers/export [get]
func (c *UserManagementController) Export(ctx *gin.Context) {
	if ctx.Query("format") == "xlsx" {
		workbook, err := c.userAdminService.ExportWorkbook()
		if err != nil {
			controller.WriteServiceError(ctx, err, "Failed to build export workbook")
			return
		}
		filename := fmt.Sprintf("users-%s.xlsx", time.Now().Format("2006-01-02"))
		ctx.Header("Content-Disposition", "attachment; filename="+filename)
		ctx.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := workbook.Write(ctx.Writer); err != nil {
			log.Error().Err(err).Msg("Export: failed to stream workbook")
		}
		return
	}

	resp, err := c.userAdminService.Export()
	if err != nil {
		controller.WriteServiceError(ctx, err, "Failed to export users")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
