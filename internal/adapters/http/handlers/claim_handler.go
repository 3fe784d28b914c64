package handlers

import (
	"errors"
	"strings"

	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/core/domain"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/core/services"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/pkg/pagination"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ClaimHandler handles payment claim endpoints
type ClaimHandler struct {
	claimService *services.ClaimService
}

// NewClaimHandler creates a new claim handler
func NewClaimHandler(claimService *services.ClaimService) *ClaimHandler {
	return &ClaimHandler{claimService: claimService}
}

// CreateClaimRequest represents claim submission request body
type CreateClaimRequest struct {
	Type          string `json:"type"`
	PayerName     string `json:"payer_name"`
	PayerEmail    string `json:"payer_email"`
	PayerPhone    string `json:"payer_phone"`
	Amount        int64  `json:"amount"`
	Method        string `json:"method"`
	TransactionID string `json:"transaction_id"`
	Purpose       string `json:"purpose"`
	MemberID      *uint  `json:"member_id"`
	StudentID     *uint  `json:"student_id"`
}

// ReviewClaimRequest represents approve/reject request body
type ReviewClaimRequest struct {
	Notes string `json:"notes"`
}

// Create handles claim submission
// @Summary Submit payment claim
// @Description Record a manual payment claim (UTR / transaction id pasted by the payer). The claim starts pending.
// @Tags Claims
// @Accept json
// @Produce json
// @Param body body CreateClaimRequest true "Claim data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /claims [post]
func (h *ClaimHandler) Create(c *fiber.Ctx) error {
	var req CreateClaimRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.CreateClaimInput{
		Type:          strings.ToLower(strings.TrimSpace(req.Type)),
		PayerName:     strings.TrimSpace(req.PayerName),
		PayerEmail:    strings.TrimSpace(req.PayerEmail),
		PayerPhone:    req.PayerPhone,
		Amount:        req.Amount,
		Method:        req.Method,
		TransactionID: strings.TrimSpace(req.TransactionID),
		Purpose:       req.Purpose,
		MemberID:      req.MemberID,
		StudentID:     req.StudentID,
	}

	// A logged-in member or student submits claims against their own
	// account; the back-reference comes from the token, not the body
	if accountID, kind, ok := accountFromLocals(c); ok {
		switch kind {
		case domain.KindMember:
			input.MemberID = &accountID
			input.StudentID = nil
		case domain.KindStudent:
			input.StudentID = &accountID
			input.MemberID = nil
		}
	}

	claim, err := h.claimService.Create(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidClaimType):
			return response.BadRequest(c, "Claim type must be donation, membership, fee or other")
		case errors.Is(err, services.ErrInvalidAmount):
			return response.BadRequest(c, "Amount must be positive")
		case errors.Is(err, services.ErrMissingTxnID):
			return response.BadRequest(c, "Transaction id is required")
		case errors.Is(err, domain.ErrValidation):
			return response.BadRequest(c, "Payer name is required")
		case errors.Is(err, domain.ErrNotFound):
			return response.BadRequest(c, "Referenced account does not exist")
		default:
			return response.InternalServerError(c, "Failed to record claim")
		}
	}

	return response.Created(c, "Payment claim recorded, pending review", fiber.Map{
		"claim": claim,
	})
}

// List handles the admin triage list
// @Summary List payment claims
// @Description List claims with optional type and status filters (admin)
// @Tags Claims
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param type query string false "Claim type filter"
// @Param status query string false "Status filter" Enums(pending, approved, rejected)
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /admin/claims [get]
func (h *ClaimHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	input := &services.ListInput{
		Type:   c.Query("type"),
		Status: c.Query("status"),
		Page:   params.Page,
		Limit:  params.Limit,
	}

	result, err := h.claimService.List(c.Context(), input)
	if err != nil {
		return response.InternalServerError(c, "Failed to list claims")
	}

	return response.Success(c, "Claims retrieved successfully", result)
}

// GetByID handles single claim lookup
// @Summary Get payment claim
// @Description Get a claim by ID with its linked accounts (admin)
// @Tags Claims
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Claim ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/claims/{id} [get]
func (h *ClaimHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid claim ID")
	}

	claim, err := h.claimService.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrClaimNotFound) {
			return response.NotFound(c, "Claim not found")
		}
		return response.InternalServerError(c, "Failed to get claim")
	}

	return response.Success(c, "Claim retrieved successfully", fiber.Map{
		"claim": claim,
	})
}

// Approve handles claim approval
// @Summary Approve payment claim
// @Description Finalize a pending claim as approved. Verifies the linked member or student account.
// @Tags Claims
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Claim ID"
// @Param body body ReviewClaimRequest false "Admin notes"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/claims/{id}/approve [post]
func (h *ClaimHandler) Approve(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid claim ID")
	}

	adminID, _, ok := accountFromLocals(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req ReviewClaimRequest
	_ = c.BodyParser(&req)

	claim, err := h.claimService.Approve(c.Context(), uint(id), adminID, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrClaimNotFound):
			return response.NotFound(c, "Claim not found")
		case errors.Is(err, services.ErrClaimAlreadyFinal):
			return response.Conflict(c, "Claim was already approved or rejected")
		case errors.Is(err, domain.ErrDownstream):
			// The approval itself stuck; only the account verification
			// failed. Surface it so the operator retries the verification.
			return response.Error(c, fiber.StatusBadGateway, "Claim approved but account verification failed: "+err.Error())
		default:
			return response.InternalServerError(c, "Failed to approve claim")
		}
	}

	return response.Success(c, "Claim approved successfully", fiber.Map{
		"claim": claim,
	})
}

// Reject handles claim rejection
// @Summary Reject payment claim
// @Description Finalize a pending claim as rejected
// @Tags Claims
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Claim ID"
// @Param body body ReviewClaimRequest false "Rejection reason"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/claims/{id}/reject [post]
func (h *ClaimHandler) Reject(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid claim ID")
	}

	adminID, _, ok := accountFromLocals(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req ReviewClaimRequest
	_ = c.BodyParser(&req)

	claim, err := h.claimService.Reject(c.Context(), uint(id), adminID, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrClaimNotFound):
			return response.NotFound(c, "Claim not found")
		case errors.Is(err, services.ErrClaimAlreadyFinal):
			return response.Conflict(c, "Claim was already approved or rejected")
		default:
			return response.InternalServerError(c, "Failed to reject claim")
		}
	}

	return response.Success(c, "Claim rejected", fiber.Map{
		"claim": claim,
	})
}
