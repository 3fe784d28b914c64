package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/adapters/persistence/models"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Card service errors
var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountNotVerified   = errors.New("account is not verified")
	ErrCardAlreadyGenerated = errors.New("card already generated")
	ErrCardNotFound         = errors.New("card not found")
)

// Card number formats
const (
	MemberCardFormat = "MWSS-CARD-%04d"
	AdmitCardFormat  = "MWSS-ADM-%04d"

	// Member cards expire after one membership year
	MemberCardValidity = 365 * 24 * time.Hour
)

// CardService issues member cards and student admit cards. A card is a
// one-time artifact: generation is idempotent-hostile on purpose, a second
// request gets ErrCardAlreadyGenerated rather than a reprint.
type CardService struct {
	cardRepo     *repositories.CardRepository
	memberRepo   repositories.MemberRepository
	studentRepo  repositories.StudentRepository
	sequenceRepo *repositories.SequenceRepository
}

// NewCardService creates a new card service
func NewCardService(
	cardRepo *repositories.CardRepository,
	memberRepo repositories.MemberRepository,
	studentRepo repositories.StudentRepository,
	sequenceRepo *repositories.SequenceRepository,
) *CardService {
	return &CardService{
		cardRepo:     cardRepo,
		memberRepo:   memberRepo,
		studentRepo:  studentRepo,
		sequenceRepo: sequenceRepo,
	}
}

// GenerateMemberCard issues a card for a verified member
func (s *CardService) GenerateMemberCard(ctx context.Context, memberID, adminID uint) (*models.MemberCard, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	if !member.IsVerified {
		return nil, ErrAccountNotVerified
	}

	exists, err := s.cardRepo.MemberCardExists(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCardAlreadyGenerated
	}

	cardNumber, err := s.sequenceRepo.NextFormatted(ctx, models.SeqMemberCard, MemberCardFormat)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	card := &models.MemberCard{
		MemberID:   memberID,
		CardNumber: cardNumber,
		IssuedBy:   adminID,
		IssuedAt:   now,
		ValidUntil: now.Add(MemberCardValidity),
	}

	if err := s.cardRepo.CreateMemberCard(ctx, card); err != nil {
		return nil, err
	}

	log.Printf("✅ Member card %s issued for member #%d", card.CardNumber, memberID)
	return card, nil
}

// GetMemberCard returns a member's card
func (s *CardService) GetMemberCard(ctx context.Context, memberID uint) (*models.MemberCard, error) {
	card, err := s.cardRepo.GetMemberCardByMemberID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return card, nil
}

// GenerateAdmitCard issues an admit card for a verified student
func (s *CardService) GenerateAdmitCard(ctx context.Context, studentID, adminID uint) (*models.AdmitCard, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	if !student.IsVerified {
		return nil, ErrAccountNotVerified
	}

	exists, err := s.cardRepo.AdmitCardExists(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCardAlreadyGenerated
	}

	cardNumber, err := s.sequenceRepo.NextFormatted(ctx, models.SeqAdmitCard, AdmitCardFormat)
	if err != nil {
		return nil, err
	}

	card := &models.AdmitCard{
		StudentID:  studentID,
		CardNumber: cardNumber,
		IssuedBy:   adminID,
		IssuedAt:   time.Now(),
	}

	if err := s.cardRepo.CreateAdmitCard(ctx, card); err != nil {
		return nil, err
	}

	log.Printf("✅ Admit card %s issued for student #%d", card.CardNumber, studentID)
	return card, nil
}

// GetAdmitCard returns a student's admit card
func (s *CardService) GetAdmitCard(ctx context.Context, studentID uint) (*models.AdmitCard, error) {
	card, err := s.cardRepo.GetAdmitCardByStudentID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return card, nil
}
