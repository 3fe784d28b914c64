package handlers

import (
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/core/domain"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/core/services"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// AdminDashboard returns the admin dashboard
// @Summary Admin dashboard
// @Description Account counts, claim statistics and approved amounts
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /admin/dashboard [get]
func (h *DashboardHandler) AdminDashboard(c *fiber.Ctx) error {
	data, err := h.dashboardService.GetAdminDashboard(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load dashboard")
	}
	return response.Success(c, "Dashboard retrieved successfully", data)
}

// MemberDashboard returns the logged-in member's dashboard
// @Summary Member dashboard
// @Description The member's own claim history and card status
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /members/me/dashboard [get]
func (h *DashboardHandler) MemberDashboard(c *fiber.Ctx) error {
	accountID, kind, ok := accountFromLocals(c)
	if !ok || kind != domain.KindMember {
		return response.Unauthorized(c, "Unauthorized")
	}

	data, err := h.dashboardService.GetMemberDashboard(c.Context(), accountID)
	if err != nil {
		return response.InternalServerError(c, "Failed to load dashboard")
	}
	return response.Success(c, "Dashboard retrieved successfully", data)
}

// StudentDashboard returns the logged-in student's dashboard
// @Summary Student dashboard
// @Description The student's fee position, claim history and admit card status
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /students/me/dashboard [get]
func (h *DashboardHandler) StudentDashboard(c *fiber.Ctx) error {
	accountID, kind, ok := accountFromLocals(c)
	if !ok || kind != domain.KindStudent {
		return response.Unauthorized(c, "Unauthorized")
	}

	data, err := h.dashboardService.GetStudentDashboard(c.Context(), accountID)
	if err != nil {
		return response.InternalServerError(c, "Failed to load dashboard")
	}
	return response.Success(c, "Dashboard retrieved successfully", data)
}
