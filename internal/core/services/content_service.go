package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/adapters/persistence/models"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Content service errors
var (
	ErrContentNotFound = errors.New("content not found")
	ErrDuplicateSlug   = errors.New("slug already exists")
)

// ContentService handles the admin-managed site content: events, news,
// page sections, the navigation menu, key/value settings and the student
// fee table
type ContentService struct {
	eventRepo   *repositories.EventRepository
	newsRepo    *repositories.NewsRepository
	sectionRepo *repositories.ContentSectionRepository
	menuRepo    *repositories.MenuItemRepository
	settingRepo *repositories.SettingRepository
	feeRepo     *repositories.FeeStructureRepository
}

// NewContentService creates a new content service
func NewContentService(
	eventRepo *repositories.EventRepository,
	newsRepo *repositories.NewsRepository,
	sectionRepo *repositories.ContentSectionRepository,
	menuRepo *repositories.MenuItemRepository,
	settingRepo *repositories.SettingRepository,
	feeRepo *repositories.FeeStructureRepository,
) *ContentService {
	return &ContentService{
		eventRepo:   eventRepo,
		newsRepo:    newsRepo,
		sectionRepo: sectionRepo,
		menuRepo:    menuRepo,
		settingRepo: settingRepo,
		feeRepo:     feeRepo,
	}
}

// ============================================================
// Events
// ============================================================

// EventInput represents event create/update input
type EventInput struct {
	Title       string    `json:"title"`
	TitleHi     string    `json:"title_hi"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	ImageURL    string    `json:"image_url"`
	EventDate   time.Time `json:"event_date"`
	IsPublished *bool     `json:"is_published"`
}

// ListEvents lists published events for the public site
func (s *ContentService) ListEvents(ctx context.Context) ([]*models.Event, error) {
	return s.eventRepo.List(ctx)
}

// ListUpcomingEvents lists published events from today onward
func (s *ContentService) ListUpcomingEvents(ctx context.Context) ([]*models.Event, error) {
	today := time.Now().Truncate(24 * time.Hour)
	return s.eventRepo.ListUpcoming(ctx, today)
}

// ListAllEvents lists every event for the admin panel
func (s *ContentService) ListAllEvents(ctx context.Context) ([]*models.Event, error) {
	return s.eventRepo.ListAll(ctx)
}

// GetEvent gets an event by ID
func (s *ContentService) GetEvent(ctx context.Context, id uint) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	return event, nil
}

// CreateEvent creates an event
func (s *ContentService) CreateEvent(ctx context.Context, input *EventInput) (*models.Event, error) {
	if input.Title == "" || input.EventDate.IsZero() {
		return nil, errors.New("title and event date are required")
	}

	event := &models.Event{
		Title:       input.Title,
		TitleHi:     input.TitleHi,
		Description: input.Description,
		Location:    input.Location,
		ImageURL:    input.ImageURL,
		EventDate:   input.EventDate,
		IsPublished: true,
	}
	if input.IsPublished != nil {
		event.IsPublished = *input.IsPublished
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// UpdateEvent updates an event
func (s *ContentService) UpdateEvent(ctx context.Context, id uint, input *EventInput) (*models.Event, error) {
	event, err := s.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		event.Title = input.Title
	}
	if input.TitleHi != "" {
		event.TitleHi = input.TitleHi
	}
	if input.Description != "" {
		event.Description = input.Description
	}
	if input.Location != "" {
		event.Location = input.Location
	}
	if input.ImageURL != "" {
		event.ImageURL = input.ImageURL
	}
	if !input.EventDate.IsZero() {
		event.EventDate = input.EventDate
	}
	if input.IsPublished != nil {
		event.IsPublished = *input.IsPublished
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// DeleteEvent soft deletes an event
func (s *ContentService) DeleteEvent(ctx context.Context, id uint) error {
	if _, err := s.GetEvent(ctx, id); err != nil {
		return err
	}
	return s.eventRepo.Delete(ctx, id)
}

// ============================================================
// News
// ============================================================

// NewsInput represents news create/update input
type NewsInput struct {
	Title       string     `json:"title"`
	TitleHi     string     `json:"title_hi"`
	Body        string     `json:"body"`
	ImageURL    string     `json:"image_url"`
	IsPublished *bool      `json:"is_published"`
	PublishedAt *time.Time `json:"published_at"`
}

// ListNews lists published news for the public site
func (s *ContentService) ListNews(ctx context.Context) ([]*models.News, error) {
	return s.newsRepo.List(ctx)
}

// ListAllNews lists every news item for the admin panel
func (s *ContentService) ListAllNews(ctx context.Context) ([]*models.News, error) {
	return s.newsRepo.ListAll(ctx)
}

// GetNews gets a news item by ID
func (s *ContentService) GetNews(ctx context.Context, id uint) (*models.News, error) {
	news, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	return news, nil
}

// CreateNews creates a news item
func (s *ContentService) CreateNews(ctx context.Context, input *NewsInput) (*models.News, error) {
	if input.Title == "" {
		return nil, errors.New("title is required")
	}

	news := &models.News{
		Title:       input.Title,
		TitleHi:     input.TitleHi,
		Body:        input.Body,
		ImageURL:    input.ImageURL,
		IsPublished: true,
		PublishedAt: time.Now(),
	}
	if input.IsPublished != nil {
		news.IsPublished = *input.IsPublished
	}
	if input.PublishedAt != nil {
		news.PublishedAt = *input.PublishedAt
	}

	if err := s.newsRepo.Create(ctx, news); err != nil {
		return nil, err
	}
	return news, nil
}

// UpdateNews updates a news item
func (s *ContentService) UpdateNews(ctx context.Context, id uint, input *NewsInput) (*models.News, error) {
	news, err := s.GetNews(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		news.Title = input.Title
	}
	if input.TitleHi != "" {
		news.TitleHi = input.TitleHi
	}
	if input.Body != "" {
		news.Body = input.Body
	}
	if input.ImageURL != "" {
		news.ImageURL = input.ImageURL
	}
	if input.IsPublished != nil {
		news.IsPublished = *input.IsPublished
	}
	if input.PublishedAt != nil {
		news.PublishedAt = *input.PublishedAt
	}

	if err := s.newsRepo.Update(ctx, news); err != nil {
		return nil, err
	}
	return news, nil
}

// DeleteNews soft deletes a news item
func (s *ContentService) DeleteNews(ctx context.Context, id uint) error {
	if _, err := s.GetNews(ctx, id); err != nil {
		return err
	}
	return s.newsRepo.Delete(ctx, id)
}

// ============================================================
// Content Sections
// ============================================================

// SectionInput represents content section create/update input
type SectionInput struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	TitleHi  string `json:"title_hi"`
	Body     string `json:"body"`
	BodyHi   string `json:"body_hi"`
	ImageURL string `json:"image_url"`
}

// GetSection gets a content section by slug (public site)
func (s *ContentService) GetSection(ctx context.Context, slug string) (*models.ContentSection, error) {
	section, err := s.sectionRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	return section, nil
}

// ListSections lists all content sections
func (s *ContentService) ListSections(ctx context.Context) ([]*models.ContentSection, error) {
	return s.sectionRepo.List(ctx)
}

// CreateSection creates a content section
func (s *ContentService) CreateSection(ctx context.Context, input *SectionInput) (*models.ContentSection, error) {
	slug := strings.ToLower(strings.TrimSpace(input.Slug))
	if slug == "" || input.Title == "" {
		return nil, errors.New("slug and title are required")
	}

	if _, err := s.sectionRepo.GetBySlug(ctx, slug); err == nil {
		return nil, ErrDuplicateSlug
	}

	section := &models.ContentSection{
		Slug:     slug,
		Title:    input.Title,
		TitleHi:  input.TitleHi,
		Body:     input.Body,
		BodyHi:   input.BodyHi,
		ImageURL: input.ImageURL,
	}

	if err := s.sectionRepo.Create(ctx, section); err != nil {
		return nil, err
	}
	return section, nil
}

// UpdateSection updates a content section by slug. The slug itself is
// immutable, the public site links by it.
func (s *ContentService) UpdateSection(ctx context.Context, slug string, input *SectionInput) (*models.ContentSection, error) {
	section, err := s.GetSection(ctx, slug)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		section.Title = input.Title
	}
	if input.TitleHi != "" {
		section.TitleHi = input.TitleHi
	}
	if input.Body != "" {
		section.Body = input.Body
	}
	if input.BodyHi != "" {
		section.BodyHi = input.BodyHi
	}
	if input.ImageURL != "" {
		section.ImageURL = input.ImageURL
	}

	if err := s.sectionRepo.Update(ctx, section); err != nil {
		return nil, err
	}
	return section, nil
}

// ============================================================
// Menu
// ============================================================

// MenuItemInput represents menu item create/update input
type MenuItemInput struct {
	Label     string `json:"label"`
	LabelHi   string `json:"label_hi"`
	Path      string `json:"path"`
	Icon      string `json:"icon"`
	SortOrder *int   `json:"sort_order"`
	IsActive  *bool  `json:"is_active"`
}

// GetMenu lists active menu items in display order (public site)
func (s *ContentService) GetMenu(ctx context.Context) ([]*models.MenuItem, error) {
	return s.menuRepo.List(ctx)
}

// ListAllMenuItems lists every menu item for the admin panel
func (s *ContentService) ListAllMenuItems(ctx context.Context) ([]*models.MenuItem, error) {
	return s.menuRepo.ListAll(ctx)
}

// CreateMenuItem creates a menu item
func (s *ContentService) CreateMenuItem(ctx context.Context, input *MenuItemInput) (*models.MenuItem, error) {
	if input.Label == "" || input.Path == "" {
		return nil, errors.New("label and path are required")
	}

	item := &models.MenuItem{
		Label:    input.Label,
		LabelHi:  input.LabelHi,
		Path:     input.Path,
		Icon:     input.Icon,
		IsActive: true,
	}
	if input.SortOrder != nil {
		item.SortOrder = *input.SortOrder
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	if err := s.menuRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateMenuItem updates a menu item
func (s *ContentService) UpdateMenuItem(ctx context.Context, id uint, input *MenuItemInput) (*models.MenuItem, error) {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}

	if input.Label != "" {
		item.Label = input.Label
	}
	if input.LabelHi != "" {
		item.LabelHi = input.LabelHi
	}
	if input.Path != "" {
		item.Path = input.Path
	}
	if input.Icon != "" {
		item.Icon = input.Icon
	}
	if input.SortOrder != nil {
		item.SortOrder = *input.SortOrder
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	if err := s.menuRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteMenuItem soft deletes a menu item
func (s *ContentService) DeleteMenuItem(ctx context.Context, id uint) error {
	if _, err := s.menuRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContentNotFound
		}
		return err
	}
	return s.menuRepo.Delete(ctx, id)
}

// ============================================================
// Settings
// ============================================================

// Public setting keys exposed without authentication. Everything else is
// admin-only.
var publicSettingKeys = map[string]bool{
	"org_name":       true,
	"org_tagline":    true,
	"contact_email":  true,
	"contact_phone":  true,
	"address":        true,
	"upi_id":         true,
	"payment_qr_url": true,
	"bank_details":   true,
}

// GetPublicSettings returns the settings the public site may read
func (s *ContentService) GetPublicSettings(ctx context.Context) (map[string]string, error) {
	settings, err := s.settingRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string)
	for _, setting := range settings {
		if publicSettingKeys[setting.Key] {
			out[setting.Key] = setting.Value
		}
	}
	return out, nil
}

// ListSettings lists all settings for the admin panel
func (s *ContentService) ListSettings(ctx context.Context) ([]*models.Setting, error) {
	return s.settingRepo.List(ctx)
}

// SetSetting upserts a setting value
func (s *ContentService) SetSetting(ctx context.Context, key, value string) (*models.Setting, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, errors.New("setting key is required")
	}
	return s.settingRepo.Set(ctx, key, value)
}

// ============================================================
// Fee Structure
// ============================================================

// FeeInput represents fee structure create/update input
type FeeInput struct {
	Level    string `json:"level"`
	Name     string `json:"name"`
	Amount   int64  `json:"amount"`
	IsActive *bool  `json:"is_active"`
}

// ListFees lists active fee levels (public: shown on the student signup form)
func (s *ContentService) ListFees(ctx context.Context) ([]*models.FeeStructure, error) {
	return s.feeRepo.List(ctx)
}

// ListAllFees lists every fee level for the admin panel
func (s *ContentService) ListAllFees(ctx context.Context) ([]*models.FeeStructure, error) {
	return s.feeRepo.ListAll(ctx)
}

// UpsertFee creates or updates the fee for a level
func (s *ContentService) UpsertFee(ctx context.Context, input *FeeInput) (*models.FeeStructure, error) {
	level := strings.ToLower(strings.TrimSpace(input.Level))
	if level == "" {
		return nil, errors.New("fee level is required")
	}
	if input.Amount < 0 {
		return nil, ErrInvalidAmount
	}

	fee, err := s.feeRepo.GetByLevelAny(ctx, level)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		fee = &models.FeeStructure{
			Level:    level,
			Name:     input.Name,
			Amount:   input.Amount,
			IsActive: true,
		}
		if input.IsActive != nil {
			fee.IsActive = *input.IsActive
		}
		if err := s.feeRepo.Create(ctx, fee); err != nil {
			return nil, err
		}
		return fee, nil
	}

	if input.Name != "" {
		fee.Name = input.Name
	}
	if input.Amount > 0 {
		fee.Amount = input.Amount
	}
	if input.IsActive != nil {
		fee.IsActive = *input.IsActive
	}

	if err := s.feeRepo.Update(ctx, fee); err != nil {
		return nil, err
	}
	return fee, nil
}
