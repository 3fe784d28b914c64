package handlers

import (
	"errors"

	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/core/services"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/pkg/pagination"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AccountHandler handles the admin back office over member, student and
// volunteer records
type AccountHandler struct {
	accountService *services.AccountService
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService *services.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// SetActiveRequest represents activate/deactivate request body
type SetActiveRequest struct {
	IsActive bool `json:"is_active"`
}

// listInput reads pagination from the query string
func listInput(c *fiber.Ctx) *services.ListAccountsInput {
	params := pagination.GetParams(c)
	return &services.ListAccountsInput{
		Page:  params.Page,
		Limit: params.Limit,
	}
}

// ListMembers lists members
// @Summary List members
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /admin/members [get]
func (h *AccountHandler) ListMembers(c *fiber.Ctx) error {
	result, err := h.accountService.ListMembers(c.Context(), listInput(c))
	if err != nil {
		return response.InternalServerError(c, "Failed to list members")
	}
	return response.Success(c, "Members retrieved successfully", result)
}

// GetMember gets a member by ID
// @Summary Get member
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/members/{id} [get]
func (h *AccountHandler) GetMember(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid member ID")
	}

	member, err := h.accountService.GetMember(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Failed to get member")
	}

	return response.Success(c, "Member retrieved successfully", fiber.Map{
		"member": member.ToResponse(),
	})
}

// VerifyMember verifies a member directly
// @Summary Verify member
// @Description Mark a member verified without a payment claim
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/members/{id}/verify [post]
func (h *AccountHandler) VerifyMember(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid member ID")
	}

	if err := h.accountService.VerifyMember(c.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Failed to verify member")
	}

	return response.Success(c, "Member verified successfully", nil)
}

// SetMemberActive activates or deactivates a member
// @Summary Set member active flag
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Param body body SetActiveRequest true "Active flag"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/members/{id}/active [patch]
func (h *AccountHandler) SetMemberActive(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid member ID")
	}

	var req SetActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.accountService.SetMemberActive(c.Context(), uint(id), req.IsActive); err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Failed to update member")
	}

	return response.Success(c, "Member updated successfully", nil)
}

// DeleteMember soft deletes a member
// @Summary Delete member
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/members/{id} [delete]
func (h *AccountHandler) DeleteMember(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid member ID")
	}

	if err := h.accountService.DeleteMember(c.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Failed to delete member")
	}

	return response.Success(c, "Member deleted successfully", nil)
}

// ListStudents lists students
// @Summary List students
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /admin/students [get]
func (h *AccountHandler) ListStudents(c *fiber.Ctx) error {
	result, err := h.accountService.ListStudents(c.Context(), listInput(c))
	if err != nil {
		return response.InternalServerError(c, "Failed to list students")
	}
	return response.Success(c, "Students retrieved successfully", result)
}

// GetStudent gets a student by ID
// @Summary Get student
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/students/{id} [get]
func (h *AccountHandler) GetStudent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid student ID")
	}

	student, err := h.accountService.GetStudent(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			return response.NotFound(c, "Student not found")
		}
		return response.InternalServerError(c, "Failed to get student")
	}

	return response.Success(c, "Student retrieved successfully", fiber.Map{
		"student": student.ToResponse(),
	})
}

// VerifyStudent verifies a student directly
// @Summary Verify student
// @Description Mark a student verified without a payment claim
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/students/{id}/verify [post]
func (h *AccountHandler) VerifyStudent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid student ID")
	}

	if err := h.accountService.VerifyStudent(c.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			return response.NotFound(c, "Student not found")
		}
		return response.InternalServerError(c, "Failed to verify student")
	}

	return response.Success(c, "Student verified successfully", nil)
}

// SetStudentActive activates or deactivates a student
// @Summary Set student active flag
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param body body SetActiveRequest true "Active flag"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/students/{id}/active [patch]
func (h *AccountHandler) SetStudentActive(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid student ID")
	}

	var req SetActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.accountService.SetStudentActive(c.Context(), uint(id), req.IsActive); err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			return response.NotFound(c, "Student not found")
		}
		return response.InternalServerError(c, "Failed to update student")
	}

	return response.Success(c, "Student updated successfully", nil)
}

// DeleteStudent soft deletes a student
// @Summary Delete student
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/students/{id} [delete]
func (h *AccountHandler) DeleteStudent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid student ID")
	}

	if err := h.accountService.DeleteStudent(c.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			return response.NotFound(c, "Student not found")
		}
		return response.InternalServerError(c, "Failed to delete student")
	}

	return response.Success(c, "Student deleted successfully", nil)
}

// ListVolunteers lists volunteer applications
// @Summary List volunteer applications
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /admin/volunteers [get]
func (h *AccountHandler) ListVolunteers(c *fiber.Ctx) error {
	result, err := h.accountService.ListVolunteers(c.Context(), listInput(c))
	if err != nil {
		return response.InternalServerError(c, "Failed to list volunteers")
	}
	return response.Success(c, "Volunteers retrieved successfully", result)
}

// ApproveVolunteer approves a volunteer application
// @Summary Approve volunteer application
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Volunteer ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/volunteers/{id}/approve [post]
func (h *AccountHandler) ApproveVolunteer(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid volunteer ID")
	}

	if err := h.accountService.ApproveVolunteer(c.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			return response.NotFound(c, "Volunteer application not found")
		}
		return response.InternalServerError(c, "Failed to approve volunteer")
	}

	return response.Success(c, "Volunteer approved successfully", nil)
}

// DeleteVolunteer soft deletes a volunteer application
// @Summary Delete volunteer application
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Volunteer ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/volunteers/{id} [delete]
func (h *AccountHandler) DeleteVolunteer(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid volunteer ID")
	}

	if err := h.accountService.DeleteVolunteer(c.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			return response.NotFound(c, "Volunteer application not found")
		}
		return response.InternalServerError(c, "Failed to delete volunteer")
	}

	return response.Success(c, "Volunteer deleted successfully", nil)
}
