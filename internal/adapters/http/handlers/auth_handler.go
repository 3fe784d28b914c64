package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/config"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/core/domain"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/core/services"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints for all account kinds
type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// LoginRequest represents login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest represents forgot password request body
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest represents reset password request body
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// ChangePasswordRequest represents change password request body
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// Login handles login for the account kind in the route
// @Summary Login
// @Description Authenticate an admin, member or student account
// @Tags Auth
// @Accept json
// @Produce json
// @Param kind path string true "Account kind" Enums(admin, member, student)
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/{kind}/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	kind := domain.AccountKind(c.Params("kind"))
	if !kind.Valid() || kind == domain.KindVolunteer {
		return response.BadRequest(c, "Invalid account kind")
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Email == "" {
		return response.BadRequest(c, "Email is required")
	}
	if req.Password == "" {
		return response.BadRequest(c, "Password is required")
	}

	input := &services.LoginInput{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	}

	result, err := h.authService.Login(c.Context(), kind, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			return response.Unauthorized(c, "Invalid email or password")
		case errors.Is(err, services.ErrAccountInactive):
			return response.Forbidden(c, "Account is inactive")
		default:
			return response.InternalServerError(c, "Failed to login")
		}
	}

	h.setAuthCookies(c, result.AccessToken, result.RefreshToken)

	return response.Success(c, "Login successful", fiber.Map{
		"access_token": result.AccessToken,
		"account":      result.Account,
	})
}

// RefreshToken handles token refresh
// @Summary Refresh access token
// @Description Rotate the refresh token and issue a new token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	refreshToken := c.Cookies("refresh_token")
	if refreshToken == "" {
		return response.Unauthorized(c, "Refresh token not found")
	}

	result, err := h.authService.RefreshToken(c.Context(), refreshToken)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTokenExpired):
			h.clearAuthCookies(c)
			return response.Unauthorized(c, "Refresh token expired, please login again")
		case errors.Is(err, services.ErrTokenRevoked):
			h.clearAuthCookies(c)
			return response.Unauthorized(c, "Refresh token revoked, please login again")
		case errors.Is(err, services.ErrInvalidToken):
			h.clearAuthCookies(c)
			return response.Unauthorized(c, "Invalid refresh token")
		case errors.Is(err, services.ErrAccountInactive):
			h.clearAuthCookies(c)
			return response.Forbidden(c, "Account is inactive")
		default:
			return response.InternalServerError(c, "Failed to refresh token")
		}
	}

	h.setAuthCookies(c, result.AccessToken, result.RefreshToken)

	return response.Success(c, "Token refreshed successfully", fiber.Map{
		"access_token": result.AccessToken,
		"account":      result.Account,
	})
}

// Logout handles logout
// @Summary Logout
// @Description Logout and revoke the refresh token
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	refreshToken := c.Cookies("refresh_token")
	if refreshToken != "" {
		_ = h.authService.Logout(c.Context(), refreshToken)
	}

	h.clearAuthCookies(c)

	return response.Success(c, "Logged out successfully", nil)
}

// LogoutAll handles logout from all devices
// @Summary Logout from all devices
// @Description Revoke every refresh token the account holds
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/logout-all [post]
func (h *AuthHandler) LogoutAll(c *fiber.Ctx) error {
	accountID, kind, ok := accountFromLocals(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	if err := h.authService.LogoutAll(c.Context(), kind, accountID); err != nil {
		return response.InternalServerError(c, "Failed to logout from all devices")
	}

	h.clearAuthCookies(c)

	return response.Success(c, "Logged out from all devices", nil)
}

// Me returns the current account info
// @Summary Get current account
// @Description Get the currently authenticated account
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	accountID, kind, ok := accountFromLocals(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	account, err := h.authService.GetAccount(c.Context(), kind, accountID)
	if err != nil {
		return response.NotFound(c, "Account not found")
	}

	return response.Success(c, "Account retrieved successfully", fiber.Map{
		"account": account,
	})
}

// ForgotPassword handles forgot password requests
// @Summary Request password reset
// @Description Issue a single-use reset token for the account kind in the route
// @Tags Auth
// @Accept json
// @Produce json
// @Param kind path string true "Account kind" Enums(admin, member, student)
// @Param body body ForgotPasswordRequest true "Account email"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/{kind}/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	kind := domain.AccountKind(c.Params("kind"))
	if !kind.Valid() || kind == domain.KindVolunteer {
		return response.BadRequest(c, "Invalid account kind")
	}

	var req ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Email == "" {
		return response.BadRequest(c, "Email is required")
	}

	if err := h.authService.ForgotPassword(c.Context(), kind, strings.TrimSpace(req.Email)); err != nil {
		return response.InternalServerError(c, "Failed to process request")
	}

	// Same response whether the email exists or not
	return response.Success(c, "If the email is registered, a reset link has been sent", nil)
}

// ResetPassword handles password reset with a token
// @Summary Reset password
// @Description Consume a reset token and set a new password
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body ResetPasswordRequest true "Reset token and new password"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Token == "" {
		return response.BadRequest(c, "Reset token is required")
	}

	err := h.authService.ResetPassword(c.Context(), req.Token, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return response.BadRequest(c, "Password must be at least 6 characters")
		case errors.Is(err, services.ErrTokenExpired):
			return response.Unauthorized(c, "Reset token expired, please request a new one")
		case errors.Is(err, services.ErrInvalidToken):
			return response.Unauthorized(c, "Invalid or already used reset token")
		default:
			return response.InternalServerError(c, "Failed to reset password")
		}
	}

	return response.Success(c, "Password reset successfully, please login again", nil)
}

// ChangePassword handles password change for the logged-in account
// @Summary Change password
// @Description Verify the current password and store a new one
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ChangePasswordRequest true "Current and new password"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	accountID, kind, ok := accountFromLocals(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	err := h.authService.ChangePassword(c.Context(), kind, accountID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return response.BadRequest(c, "Password must be at least 6 characters")
		case errors.Is(err, services.ErrInvalidCredentials):
			return response.Unauthorized(c, "Current password is incorrect")
		default:
			return response.InternalServerError(c, "Failed to change password")
		}
	}

	return response.Success(c, "Password changed successfully", nil)
}

// accountFromLocals reads the authenticated account identity set by the
// auth middleware
func accountFromLocals(c *fiber.Ctx) (uint, domain.AccountKind, bool) {
	accountID, ok := c.Locals("accountID").(uint)
	if !ok {
		return 0, "", false
	}
	kind, ok := c.Locals("accountKind").(string)
	if !ok {
		return 0, "", false
	}
	return accountID, domain.AccountKind(kind), true
}

// setAuthCookies sets access and refresh token cookies
func (h *AuthHandler) setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Path:     "/",
		MaxAge:   h.cfg.JWT.AccessTokenMins * 60,
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Path:     "/",
		MaxAge:   h.cfg.JWT.RefreshTokenDays * 24 * 60 * 60,
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})
}

// clearAuthCookies clears auth cookies
func (h *AuthHandler) clearAuthCookies(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-1 * time.Hour),
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-1 * time.Hour),
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})
}
