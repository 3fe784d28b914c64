package handlers

import (
	"errors"
	"strings"

	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/config"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/core/domain"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/core/services"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RegistrationHandler handles public signup endpoints
type RegistrationHandler struct {
	registrationService *services.RegistrationService
	cfg                 *config.Config
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(registrationService *services.RegistrationService, cfg *config.Config) *RegistrationHandler {
	return &RegistrationHandler{
		registrationService: registrationService,
		cfg:                 cfg,
	}
}

// RegisterMemberRequest represents member registration request body
type RegisterMemberRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

// RegisterStudentRequest represents student registration request body
type RegisterStudentRequest struct {
	Name       string `json:"name"`
	FatherName string `json:"father_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	FeeLevel   string `json:"fee_level"`
	Password   string `json:"password"`
}

// ApplyVolunteerRequest represents volunteer application request body
type ApplyVolunteerRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	City       string `json:"city"`
	Occupation string `json:"occupation"`
	Message    string `json:"message"`
}

// RegisterMember handles member registration
// @Summary Register member
// @Description Create a new member account. The membership number is assigned by the server; the account starts unverified.
// @Tags Registration
// @Accept json
// @Produce json
// @Param body body RegisterMemberRequest true "Member registration data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /members/register [post]
func (h *RegistrationHandler) RegisterMember(c *fiber.Ctx) error {
	var req RegisterMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Name == "" {
		return response.BadRequest(c, "Name is required")
	}

	input := &services.RegisterMemberInput{
		Name:     req.Name,
		Email:    strings.TrimSpace(req.Email),
		Phone:    req.Phone,
		City:     req.City,
		Address:  req.Address,
		Password: req.Password,
	}

	result, err := h.registrationService.RegisterMember(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidEmail):
			return response.BadRequest(c, "Invalid email address")
		case errors.Is(err, services.ErrPasswordTooShort):
			return response.BadRequest(c, "Password must be at least 6 characters")
		case errors.Is(err, services.ErrDuplicateEmail):
			return response.Conflict(c, "Email already registered")
		default:
			return response.InternalServerError(c, "Failed to register member")
		}
	}

	return response.Created(c, "Member registered successfully", fiber.Map{
		"access_token":  result.AccessToken,
		"refresh_token": result.RefreshToken,
		"account":       result.Account,
	})
}

// RegisterStudent handles student registration
// @Summary Register student
// @Description Create a new student account. The fee amount for the chosen level is resolved and frozen at signup.
// @Tags Registration
// @Accept json
// @Produce json
// @Param body body RegisterStudentRequest true "Student registration data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /students/register [post]
func (h *RegistrationHandler) RegisterStudent(c *fiber.Ctx) error {
	var req RegisterStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Name == "" {
		return response.BadRequest(c, "Name is required")
	}
	if req.FeeLevel == "" {
		return response.BadRequest(c, "Fee level is required")
	}

	input := &services.RegisterStudentInput{
		Name:       req.Name,
		FatherName: req.FatherName,
		Email:      strings.TrimSpace(req.Email),
		Phone:      req.Phone,
		Address:    req.Address,
		FeeLevel:   strings.ToLower(strings.TrimSpace(req.FeeLevel)),
		Password:   req.Password,
	}

	result, err := h.registrationService.RegisterStudent(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidEmail):
			return response.BadRequest(c, "Invalid email address")
		case errors.Is(err, services.ErrPasswordTooShort):
			return response.BadRequest(c, "Password must be at least 6 characters")
		case errors.Is(err, services.ErrFeeLevelNotFound):
			return response.BadRequest(c, "Unknown fee level")
		case errors.Is(err, services.ErrDuplicateEmail):
			return response.Conflict(c, "Email already registered")
		default:
			return response.InternalServerError(c, "Failed to register student")
		}
	}

	return response.Created(c, "Student registered successfully", fiber.Map{
		"access_token":  result.AccessToken,
		"refresh_token": result.RefreshToken,
		"account":       result.Account,
	})
}

// ApplyVolunteer handles volunteer applications
// @Summary Apply as volunteer
// @Description Record a volunteer application. No login is created.
// @Tags Registration
// @Accept json
// @Produce json
// @Param body body ApplyVolunteerRequest true "Volunteer application data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /volunteers/apply [post]
func (h *RegistrationHandler) ApplyVolunteer(c *fiber.Ctx) error {
	var req ApplyVolunteerRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.ApplyVolunteerInput{
		Name:       req.Name,
		Email:      strings.TrimSpace(req.Email),
		Phone:      req.Phone,
		City:       req.City,
		Occupation: req.Occupation,
		Message:    req.Message,
	}

	volunteer, err := h.registrationService.ApplyVolunteer(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidEmail):
			return response.BadRequest(c, "Invalid email address")
		case errors.Is(err, services.ErrDuplicateEmail):
			return response.Conflict(c, "An application with this email already exists")
		case errors.Is(err, domain.ErrValidation):
			return response.BadRequest(c, "Name is required")
		default:
			return response.InternalServerError(c, "Failed to submit application")
		}
	}

	return response.Created(c, "Application submitted successfully", fiber.Map{
		"volunteer": volunteer,
	})
}
