package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/adapters/persistence/models"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/adapters/persistence/repositories"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/config"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/core/domain"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/pkg/jwt"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/pkg/password"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrUnknownKind        = errors.New("unknown account kind")
)

// ResetTokenTTL is how long a password reset token stays valid
const ResetTokenTTL = time.Hour

// AuthService is the credential store and token issuer for all four
// account kinds (admin, member, student, volunteer)
type AuthService struct {
	userRepo         repositories.UserRepository
	memberRepo       repositories.MemberRepository
	studentRepo      repositories.StudentRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	resetTokenRepo   repositories.ResetTokenRepository
	notifyService    *NotificationService
	cfg              *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repositories.UserRepository,
	memberRepo repositories.MemberRepository,
	studentRepo repositories.StudentRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	resetTokenRepo repositories.ResetTokenRepository,
	notifyService *NotificationService,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		userRepo:         userRepo,
		memberRepo:       memberRepo,
		studentRepo:      studentRepo,
		refreshTokenRepo: refreshTokenRepo,
		resetTokenRepo:   resetTokenRepo,
		notifyService:    notifyService,
		cfg:              cfg,
	}
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	Account      *domain.Account `json:"account"`
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
}

// Login authenticates an account of the given kind. The same
// ErrInvalidCredentials comes back for an unknown email and for a wrong
// password, so a caller cannot tell which factor failed.
func (s *AuthService) Login(ctx context.Context, kind domain.AccountKind, input *LoginInput) (*AuthResponse, error) {
	account, hash, err := s.lookupAccount(ctx, kind, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !account.IsActive {
		return nil, ErrAccountInactive
	}

	if !password.Verify(input.Password, hash) {
		return nil, ErrInvalidCredentials
	}

	tokens, err := s.IssueTokens(ctx, account)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ %s logged in: %s", kind, account.Email)

	return &AuthResponse{
		Account:      account,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// RefreshToken rotates the refresh token and issues a new pair
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	claims, err := jwt.ValidateRefreshToken(refreshToken, s.cfg.JWT.RefreshSecret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	tokenHash := password.HashToken(refreshToken)

	storedToken, err := s.refreshTokenRepo.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	if storedToken.IsRevoked() {
		return nil, ErrTokenRevoked
	}
	if storedToken.IsExpired() {
		return nil, ErrTokenExpired
	}

	account, err := s.GetAccount(ctx, domain.AccountKind(claims.Kind), claims.AccountID)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if !account.IsActive {
		return nil, ErrAccountInactive
	}

	// Token rotation: the old refresh token dies with this call
	if err := s.refreshTokenRepo.Revoke(ctx, storedToken.ID); err != nil {
		return nil, err
	}

	tokens, err := s.IssueTokens(ctx, account)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Token refreshed for %s: %s", account.Kind, account.Email)

	return &AuthResponse{
		Account:      account,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// Logout revokes the refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	tokenHash := password.HashToken(refreshToken)

	if err := s.refreshTokenRepo.RevokeByTokenHash(ctx, tokenHash); err != nil {
		return err
	}

	log.Printf("✅ Session logged out")
	return nil
}

// LogoutAll revokes all refresh tokens for an account
func (s *AuthService) LogoutAll(ctx context.Context, kind domain.AccountKind, accountID uint) error {
	if err := s.refreshTokenRepo.RevokeAllByAccount(ctx, string(kind), accountID); err != nil {
		return err
	}

	log.Printf("✅ All sessions revoked for %s ID: %d", kind, accountID)
	return nil
}

// ForgotPassword issues a single-use reset token. It reports success even
// when the email is unknown so the endpoint cannot be used to probe which
// addresses are registered.
func (s *AuthService) ForgotPassword(ctx context.Context, kind domain.AccountKind, email string) error {
	account, _, err := s.lookupAccount(ctx, kind, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("⚠️ Password reset requested for unknown %s email", kind)
			return nil
		}
		return err
	}

	token, err := password.GenerateResetToken()
	if err != nil {
		return err
	}

	record := &models.PasswordResetToken{
		AccountKind: string(kind),
		AccountID:   account.ID,
		TokenHash:   password.HashToken(token),
		ExpiresAt:   time.Now().Add(ResetTokenTTL),
	}
	if err := s.resetTokenRepo.Create(ctx, record); err != nil {
		return err
	}

	if s.notifyService != nil {
		s.notifyService.NotifyPasswordReset(account.Email, token)
	}

	log.Printf("✅ Password reset token issued for %s: %s", kind, account.Email)
	return nil
}

// ResetPassword consumes a reset token and stores the new password hash.
// A token works exactly once; reuse fails with ErrInvalidToken.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if !password.ValidatePassword(newPassword) {
		return domain.ErrValidation
	}

	record, err := s.resetTokenRepo.GetByTokenHash(ctx, password.HashToken(token))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidToken
		}
		return err
	}

	if record.IsExpired() {
		return ErrTokenExpired
	}

	consumed, err := s.resetTokenRepo.MarkUsed(ctx, record.ID)
	if err != nil {
		return err
	}
	if !consumed {
		return ErrInvalidToken
	}

	hash, err := password.Hash(newPassword)
	if err != nil {
		return err
	}

	kind := domain.AccountKind(record.AccountKind)
	if err := s.updatePassword(ctx, kind, record.AccountID, hash); err != nil {
		return err
	}

	// A password change invalidates every open session
	if err := s.refreshTokenRepo.RevokeAllByAccount(ctx, record.AccountKind, record.AccountID); err != nil {
		log.Printf("⚠️ Failed to revoke sessions after password reset: %v", err)
	}

	log.Printf("✅ Password reset completed for %s ID: %d", kind, record.AccountID)
	return nil
}

// ChangePassword verifies the current password and stores a new one
func (s *AuthService) ChangePassword(ctx context.Context, kind domain.AccountKind, accountID uint, current, newPassword string) error {
	if !password.ValidatePassword(newPassword) {
		return domain.ErrValidation
	}

	account, hash, err := s.lookupAccountByID(ctx, kind, accountID)
	if err != nil {
		return err
	}

	if !password.Verify(current, hash) {
		return ErrInvalidCredentials
	}

	newHash, err := password.Hash(newPassword)
	if err != nil {
		return err
	}

	return s.updatePassword(ctx, kind, account.ID, newHash)
}

// ValidateAccessToken validates an access token
func (s *AuthService) ValidateAccessToken(accessToken string) (*jwt.Claims, error) {
	return jwt.ValidateAccessToken(accessToken, s.cfg.JWT.Secret)
}

// GetAccount loads the kind-agnostic account view for an id
func (s *AuthService) GetAccount(ctx context.Context, kind domain.AccountKind, accountID uint) (*domain.Account, error) {
	account, _, err := s.lookupAccountByID(ctx, kind, accountID)
	return account, err
}

// IssueTokens generates and stores a token pair for an account
func (s *AuthService) IssueTokens(ctx context.Context, account *domain.Account) (*domain.TokenPair, error) {
	accessToken, err := jwt.GenerateAccessToken(
		account.ID,
		string(account.Kind),
		account.Email,
		string(account.Role),
		s.cfg.JWT.Secret,
		s.cfg.JWT.AccessTokenMins,
	)
	if err != nil {
		return nil, err
	}

	tokenID := uuid.New().String()

	refreshToken, err := jwt.GenerateRefreshToken(
		account.ID,
		string(account.Kind),
		tokenID,
		s.cfg.JWT.RefreshSecret,
		s.cfg.JWT.RefreshTokenDays,
	)
	if err != nil {
		return nil, err
	}

	record := &models.RefreshToken{
		AccountKind: string(account.Kind),
		AccountID:   account.ID,
		TokenHash:   password.HashToken(refreshToken),
		ExpiresAt:   jwt.GetExpiryTime(s.cfg.JWT.RefreshTokenDays),
	}
	if err := s.refreshTokenRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// lookupAccount resolves an account and its password hash by kind + email
func (s *AuthService) lookupAccount(ctx context.Context, kind domain.AccountKind, email string) (*domain.Account, string, error) {
	switch kind {
	case domain.KindAdmin:
		user, err := s.userRepo.GetByEmail(ctx, email)
		if err != nil {
			return nil, "", err
		}
		return adminAccount(user), user.Password, nil
	case domain.KindMember:
		member, err := s.memberRepo.GetByEmail(ctx, email)
		if err != nil {
			return nil, "", err
		}
		return memberAccount(member), member.Password, nil
	case domain.KindStudent:
		student, err := s.studentRepo.GetByEmail(ctx, email)
		if err != nil {
			return nil, "", err
		}
		return studentAccount(student), student.Password, nil
	default:
		return nil, "", ErrUnknownKind
	}
}

// lookupAccountByID resolves an account and its password hash by kind + id
func (s *AuthService) lookupAccountByID(ctx context.Context, kind domain.AccountKind, id uint) (*domain.Account, string, error) {
	switch kind {
	case domain.KindAdmin:
		user, err := s.userRepo.GetByID(ctx, id)
		if err != nil {
			return nil, "", err
		}
		return adminAccount(user), user.Password, nil
	case domain.KindMember:
		member, err := s.memberRepo.GetByID(ctx, id)
		if err != nil {
			return nil, "", err
		}
		return memberAccount(member), member.Password, nil
	case domain.KindStudent:
		student, err := s.studentRepo.GetByID(ctx, id)
		if err != nil {
			return nil, "", err
		}
		return studentAccount(student), student.Password, nil
	default:
		return nil, "", ErrUnknownKind
	}
}

// updatePassword stores a new hash for the right table
func (s *AuthService) updatePassword(ctx context.Context, kind domain.AccountKind, id uint, hash string) error {
	switch kind {
	case domain.KindAdmin:
		return s.userRepo.UpdatePassword(ctx, id, hash)
	case domain.KindMember:
		return s.memberRepo.UpdatePassword(ctx, id, hash)
	case domain.KindStudent:
		return s.studentRepo.UpdatePassword(ctx, id, hash)
	default:
		return ErrUnknownKind
	}
}

func adminAccount(u *models.User) *domain.Account {
	return &domain.Account{
		ID:         u.ID,
		Kind:       domain.KindAdmin,
		Name:       u.Name,
		Email:      u.Email,
		Role:       domain.Role(u.Role),
		IsVerified: true,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt,
	}
}

func memberAccount(m *models.Member) *domain.Account {
	return &domain.Account{
		ID:         m.ID,
		Kind:       domain.KindMember,
		Number:     m.MembershipNo,
		Name:       m.Name,
		Email:      m.Email,
		Role:       domain.RoleUser,
		IsVerified: m.IsVerified,
		IsActive:   m.IsActive,
		CreatedAt:  m.CreatedAt,
	}
}

func studentAccount(st *models.Student) *domain.Account {
	return &domain.Account{
		ID:         st.ID,
		Kind:       domain.KindStudent,
		Number:     st.RegistrationNo,
		Name:       st.Name,
		Email:      st.Email,
		Role:       domain.RoleUser,
		IsVerified: st.IsVerified,
		IsActive:   st.IsActive,
		CreatedAt:  st.CreatedAt,
	}
}
