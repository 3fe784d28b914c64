package handlers

import (
	"errors"

	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/core/domain"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/core/services"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CardHandler handles member card and admit card endpoints
type CardHandler struct {
	cardService *services.CardService
}

// NewCardHandler creates a new card handler
func NewCardHandler(cardService *services.CardService) *CardHandler {
	return &CardHandler{cardService: cardService}
}

// GenerateMemberCard handles member card generation
// @Summary Generate member card
// @Description Issue a card for a verified member (admin). Fails if the member is unverified or already has a card.
// @Tags Cards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /admin/members/{id}/card [post]
func (h *CardHandler) GenerateMemberCard(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid member ID")
	}

	adminID, _, ok := accountFromLocals(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	card, err := h.cardService.GenerateMemberCard(c.Context(), uint(id), adminID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAccountNotFound):
			return response.NotFound(c, "Member not found")
		case errors.Is(err, services.ErrAccountNotVerified):
			return response.UnprocessableEntity(c, "Member is not verified yet")
		case errors.Is(err, services.ErrCardAlreadyGenerated):
			return response.Conflict(c, "Member already has a card")
		default:
			return response.InternalServerError(c, "Failed to generate card")
		}
	}

	return response.Created(c, "Member card generated", fiber.Map{
		"card": card,
	})
}

// GetMyMemberCard returns the logged-in member's card
// @Summary Get own member card
// @Description Get the card issued to the logged-in member
// @Tags Cards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /members/me/card [get]
func (h *CardHandler) GetMyMemberCard(c *fiber.Ctx) error {
	accountID, kind, ok := accountFromLocals(c)
	if !ok || kind != domain.KindMember {
		return response.Unauthorized(c, "Unauthorized")
	}

	card, err := h.cardService.GetMemberCard(c.Context(), accountID)
	if err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			return response.NotFound(c, "No card has been issued yet")
		}
		return response.InternalServerError(c, "Failed to get card")
	}

	return response.Success(c, "Card retrieved successfully", fiber.Map{
		"card": card,
	})
}

// GenerateAdmitCard handles admit card generation
// @Summary Generate admit card
// @Description Issue an admit card for a verified student (admin)
// @Tags Cards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /admin/students/{id}/admit-card [post]
func (h *CardHandler) GenerateAdmitCard(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid student ID")
	}

	adminID, _, ok := accountFromLocals(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	card, err := h.cardService.GenerateAdmitCard(c.Context(), uint(id), adminID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAccountNotFound):
			return response.NotFound(c, "Student not found")
		case errors.Is(err, services.ErrAccountNotVerified):
			return response.UnprocessableEntity(c, "Student is not verified yet")
		case errors.Is(err, services.ErrCardAlreadyGenerated):
			return response.Conflict(c, "Student already has an admit card")
		default:
			return response.InternalServerError(c, "Failed to generate admit card")
		}
	}

	return response.Created(c, "Admit card generated", fiber.Map{
		"card": card,
	})
}

// GetMyAdmitCard returns the logged-in student's admit card
// @Summary Get own admit card
// @Description Get the admit card issued to the logged-in student
// @Tags Cards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /students/me/admit-card [get]
func (h *CardHandler) GetMyAdmitCard(c *fiber.Ctx) error {
	accountID, kind, ok := accountFromLocals(c)
	if !ok || kind != domain.KindStudent {
		return response.Unauthorized(c, "Unauthorized")
	}

	card, err := h.cardService.GetAdmitCard(c.Context(), accountID)
	if err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			return response.NotFound(c, "No admit card has been issued yet")
		}
		return response.InternalServerError(c, "Failed to get admit card")
	}

	return response.Success(c, "Admit card retrieved successfully", fiber.Map{
		"card": card,
	})
}
