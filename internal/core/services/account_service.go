package services

import (
	"context"
	"errors"
	"log"

	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/adapters/persistence/models"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// AccountService is the admin back office over member, student and
// volunteer records: listing, direct verification, activation and
// volunteer approval
type AccountService struct {
	memberRepo    repositories.MemberRepository
	studentRepo   repositories.StudentRepository
	volunteerRepo repositories.VolunteerRepository
}

// NewAccountService creates a new account service
func NewAccountService(
	memberRepo repositories.MemberRepository,
	studentRepo repositories.StudentRepository,
	volunteerRepo repositories.VolunteerRepository,
) *AccountService {
	return &AccountService{
		memberRepo:    memberRepo,
		studentRepo:   studentRepo,
		volunteerRepo: volunteerRepo,
	}
}

// ListAccountsInput represents list input
type ListAccountsInput struct {
	Page  int
	Limit int
}

func (in *ListAccountsInput) normalize() {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.Limit < 1 {
		in.Limit = 10
	}
	if in.Limit > 100 {
		in.Limit = 100
	}
}

// ListMembersOutput represents paginated members
type ListMembersOutput struct {
	Members    []*models.MemberResponse `json:"members"`
	Total      int64                    `json:"total"`
	Page       int                      `json:"page"`
	Limit      int                      `json:"limit"`
	TotalPages int                      `json:"total_pages"`
}

// ListMembers lists members with pagination
func (s *AccountService) ListMembers(ctx context.Context, input *ListAccountsInput) (*ListMembersOutput, error) {
	input.normalize()
	offset := (input.Page - 1) * input.Limit

	members, total, err := s.memberRepo.List(ctx, offset, input.Limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.MemberResponse, len(members))
	for i, m := range members {
		responses[i] = m.ToResponse()
	}

	return &ListMembersOutput{
		Members:    responses,
		Total:      total,
		Page:       input.Page,
		Limit:      input.Limit,
		TotalPages: totalPages(total, input.Limit),
	}, nil
}

// GetMember gets a member by ID
func (s *AccountService) GetMember(ctx context.Context, id uint) (*models.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return member, nil
}

// VerifyMember marks a member verified without a payment claim. Used when
// the payment arrived through a channel the claim ledger never saw.
func (s *AccountService) VerifyMember(ctx context.Context, id uint) error {
	if _, err := s.GetMember(ctx, id); err != nil {
		return err
	}
	if err := s.memberRepo.SetVerified(ctx, id, true); err != nil {
		return err
	}
	log.Printf("✅ Member #%d verified directly by admin", id)
	return nil
}

// SetMemberActive activates or deactivates a member login
func (s *AccountService) SetMemberActive(ctx context.Context, id uint, active bool) error {
	if _, err := s.GetMember(ctx, id); err != nil {
		return err
	}
	return s.memberRepo.SetActive(ctx, id, active)
}

// DeleteMember soft deletes a member
func (s *AccountService) DeleteMember(ctx context.Context, id uint) error {
	if _, err := s.GetMember(ctx, id); err != nil {
		return err
	}
	return s.memberRepo.Delete(ctx, id)
}

// ListStudentsOutput represents paginated students
type ListStudentsOutput struct {
	Students   []*models.StudentResponse `json:"students"`
	Total      int64                     `json:"total"`
	Page       int                       `json:"page"`
	Limit      int                       `json:"limit"`
	TotalPages int                       `json:"total_pages"`
}

// ListStudents lists students with pagination
func (s *AccountService) ListStudents(ctx context.Context, input *ListAccountsInput) (*ListStudentsOutput, error) {
	input.normalize()
	offset := (input.Page - 1) * input.Limit

	students, total, err := s.studentRepo.List(ctx, offset, input.Limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.StudentResponse, len(students))
	for i, st := range students {
		responses[i] = st.ToResponse()
	}

	return &ListStudentsOutput{
		Students:   responses,
		Total:      total,
		Page:       input.Page,
		Limit:      input.Limit,
		TotalPages: totalPages(total, input.Limit),
	}, nil
}

// GetStudent gets a student by ID
func (s *AccountService) GetStudent(ctx context.Context, id uint) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return student, nil
}

// VerifyStudent marks a student verified without a payment claim
func (s *AccountService) VerifyStudent(ctx context.Context, id uint) error {
	if _, err := s.GetStudent(ctx, id); err != nil {
		return err
	}
	if err := s.studentRepo.SetVerified(ctx, id, true); err != nil {
		return err
	}
	log.Printf("✅ Student #%d verified directly by admin", id)
	return nil
}

// SetStudentActive activates or deactivates a student login
func (s *AccountService) SetStudentActive(ctx context.Context, id uint, active bool) error {
	if _, err := s.GetStudent(ctx, id); err != nil {
		return err
	}
	return s.studentRepo.SetActive(ctx, id, active)
}

// DeleteStudent soft deletes a student
func (s *AccountService) DeleteStudent(ctx context.Context, id uint) error {
	if _, err := s.GetStudent(ctx, id); err != nil {
		return err
	}
	return s.studentRepo.Delete(ctx, id)
}

// ListVolunteersOutput represents paginated volunteer applications
type ListVolunteersOutput struct {
	Volunteers []*models.Volunteer `json:"volunteers"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	TotalPages int                 `json:"total_pages"`
}

// ListVolunteers lists volunteer applications with pagination
func (s *AccountService) ListVolunteers(ctx context.Context, input *ListAccountsInput) (*ListVolunteersOutput, error) {
	input.normalize()
	offset := (input.Page - 1) * input.Limit

	volunteers, total, err := s.volunteerRepo.List(ctx, offset, input.Limit)
	if err != nil {
		return nil, err
	}

	return &ListVolunteersOutput{
		Volunteers: volunteers,
		Total:      total,
		Page:       input.Page,
		Limit:      input.Limit,
		TotalPages: totalPages(total, input.Limit),
	}, nil
}

// ApproveVolunteer approves a volunteer application
func (s *AccountService) ApproveVolunteer(ctx context.Context, id uint) error {
	if _, err := s.volunteerRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAccountNotFound
		}
		return err
	}
	if err := s.volunteerRepo.SetApproved(ctx, id, true); err != nil {
		return err
	}
	log.Printf("✅ Volunteer application #%d approved", id)
	return nil
}

// DeleteVolunteer soft deletes a volunteer application
func (s *AccountService) DeleteVolunteer(ctx context.Context, id uint) error {
	if _, err := s.volunteerRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAccountNotFound
		}
		return err
	}
	return s.volunteerRepo.Delete(ctx, id)
}

func totalPages(total int64, limit int) int {
	pages := int(total) / limit
	if int(total)%limit > 0 {
		pages++
	}
	return pages
}
