package services

import (
	"context"
	"errors"
	"log"
	"net/mail"
	"strings"

	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/adapters/persistence/models"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/adapters/persistence/repositories"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/core/domain"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/pkg/password"

	"gorm.io/gorm"
)

// Registration errors
var (
	ErrDuplicateEmail   = errors.New("email already registered")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrPasswordTooShort = errors.New("password too short")
	ErrFeeLevelNotFound = errors.New("fee level not found")
)

// Number formats per namespace
const (
	MembershipNoFormat   = "MWSS-%04d"
	RegistrationNoFormat = "MWSS-STU-%04d"
)

// RegistrationService coordinates signup for members and students and
// intake of volunteer applications. Accounts always start unverified;
// only an admin action can flip them to verified.
//
// Signup and the follow-up payment claim are two separate requests with
// no cross-resource transaction: a signup can succeed while the claim
// POST never arrives. That gap is reconciled by operators, not by code.
type RegistrationService struct {
	memberRepo    repositories.MemberRepository
	studentRepo   repositories.StudentRepository
	volunteerRepo repositories.VolunteerRepository
	feeRepo       *repositories.FeeStructureRepository
	sequenceRepo  *repositories.SequenceRepository
	authService   *AuthService
	notifyService *NotificationService
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(
	memberRepo repositories.MemberRepository,
	studentRepo repositories.StudentRepository,
	volunteerRepo repositories.VolunteerRepository,
	feeRepo *repositories.FeeStructureRepository,
	sequenceRepo *repositories.SequenceRepository,
	authService *AuthService,
	notifyService *NotificationService,
) *RegistrationService {
	return &RegistrationService{
		memberRepo:    memberRepo,
		studentRepo:   studentRepo,
		volunteerRepo: volunteerRepo,
		feeRepo:       feeRepo,
		sequenceRepo:  sequenceRepo,
		authService:   authService,
		notifyService: notifyService,
	}
}

// RegisterMemberInput represents member registration input
type RegisterMemberInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

// RegisterMember registers a new member
func (s *RegistrationService) RegisterMember(ctx context.Context, input *RegisterMemberInput) (*AuthResponse, error) {
	if err := validateSignup(input.Email, input.Password); err != nil {
		return nil, err
	}

	exists, err := s.memberRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	membershipNo, err := s.sequenceRepo.NextFormatted(ctx, models.SeqMembership, MembershipNoFormat)
	if err != nil {
		return nil, err
	}

	member := &models.Member{
		MembershipNo: membershipNo,
		Name:         strings.TrimSpace(input.Name),
		Email:        input.Email,
		Phone:        input.Phone,
		City:         input.City,
		Address:      input.Address,
		Password:     hashedPassword,
		IsVerified:   false,
		IsActive:     true,
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	account := memberAccount(member)
	tokens, err := s.authService.IssueTokens(ctx, account)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Member registered: %s (%s)", member.Email, member.MembershipNo)

	return &AuthResponse{
		Account:      account,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// RegisterStudentInput represents student registration input
type RegisterStudentInput struct {
	Name       string `json:"name"`
	FatherName string `json:"father_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	FeeLevel   string `json:"fee_level"`
	Password   string `json:"password"`
}

// RegisterStudent registers a new student. The fee amount is resolved
// from the fee structure master at signup time and frozen on the record.
func (s *RegistrationService) RegisterStudent(ctx context.Context, input *RegisterStudentInput) (*AuthResponse, error) {
	if err := validateSignup(input.Email, input.Password); err != nil {
		return nil, err
	}

	fee, err := s.feeRepo.GetByLevel(ctx, input.FeeLevel)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeeLevelNotFound
		}
		return nil, err
	}

	exists, err := s.studentRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	registrationNo, err := s.sequenceRepo.NextFormatted(ctx, models.SeqRegistration, RegistrationNoFormat)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		RegistrationNo: registrationNo,
		Name:           strings.TrimSpace(input.Name),
		FatherName:     input.FatherName,
		Email:          input.Email,
		Phone:          input.Phone,
		Address:        input.Address,
		FeeLevel:       fee.Level,
		FeeAmount:      fee.Amount,
		Password:       hashedPassword,
		IsVerified:     false,
		IsActive:       true,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	account := studentAccount(student)
	tokens, err := s.authService.IssueTokens(ctx, account)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Student registered: %s (%s)", student.Email, student.RegistrationNo)

	return &AuthResponse{
		Account:      account,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// ApplyVolunteerInput represents volunteer application input
type ApplyVolunteerInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	City       string `json:"city"`
	Occupation string `json:"occupation"`
	Message    string `json:"message"`
}

// ApplyVolunteer records a volunteer application. No credentials are
// created; an admin reviews and approves the application later.
func (s *RegistrationService) ApplyVolunteer(ctx context.Context, input *ApplyVolunteerInput) (*models.Volunteer, error) {
	if input.Name == "" {
		return nil, domain.ErrValidation
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return nil, ErrInvalidEmail
	}

	exists, err := s.volunteerRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	volunteer := &models.Volunteer{
		Name:       strings.TrimSpace(input.Name),
		Email:      input.Email,
		Phone:      input.Phone,
		City:       input.City,
		Occupation: input.Occupation,
		Message:    input.Message,
		IsApproved: false,
	}

	if err := s.volunteerRepo.Create(ctx, volunteer); err != nil {
		return nil, err
	}

	if s.notifyService != nil {
		s.notifyService.NotifyNewVolunteer(volunteer)
	}

	log.Printf("✅ Volunteer application received: %s", volunteer.Email)
	return volunteer, nil
}

// validateSignup checks the fields every credentialed signup requires
func validateSignup(email, plaintext string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}
	if !password.ValidatePassword(plaintext) {
		return ErrPasswordTooShort
	}
	return nil
}
