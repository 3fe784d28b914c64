package repositories

import (
	"context"
	"time"

	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// EventRepository handles event data access
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create creates a new event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// GetByID gets an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).First(&event, id).Error
	return &event, err
}

// List lists published events, newest first
func (r *EventRepository) List(ctx context.Context) ([]*models.Event, error) {
	var events []*models.Event
	err := r.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("event_date DESC").
		Find(&events).Error
	return events, err
}

// ListAll lists all events including unpublished
func (r *EventRepository) ListAll(ctx context.Context) ([]*models.Event, error) {
	var events []*models.Event
	err := r.db.WithContext(ctx).Order("event_date DESC").Find(&events).Error
	return events, err
}

// ListUpcoming lists published events on or after a date
func (r *EventRepository) ListUpcoming(ctx context.Context, from time.Time) ([]*models.Event, error) {
	var events []*models.Event
	err := r.db.WithContext(ctx).
		Where("is_published = ? AND event_date >= ?", true, from).
		Order("event_date ASC").
		Find(&events).Error
	return events, err
}

// Update updates an event
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

// Delete soft deletes an event
func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Event{}, id).Error
}

// NewsRepository handles news data access
type NewsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new news repository
func NewNewsRepository(db *gorm.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

// Create creates a news item
func (r *NewsRepository) Create(ctx context.Context, news *models.News) error {
	return r.db.WithContext(ctx).Create(news).Error
}

// GetByID gets a news item by ID
func (r *NewsRepository) GetByID(ctx context.Context, id uint) (*models.News, error) {
	var news models.News
	err := r.db.WithContext(ctx).First(&news, id).Error
	return &news, err
}

// List lists published news, newest first
func (r *NewsRepository) List(ctx context.Context) ([]*models.News, error) {
	var items []*models.News
	err := r.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("published_at DESC").
		Find(&items).Error
	return items, err
}

// ListAll lists all news including unpublished
func (r *NewsRepository) ListAll(ctx context.Context) ([]*models.News, error) {
	var items []*models.News
	err := r.db.WithContext(ctx).Order("published_at DESC").Find(&items).Error
	return items, err
}

// Update updates a news item
func (r *NewsRepository) Update(ctx context.Context, news *models.News) error {
	return r.db.WithContext(ctx).Save(news).Error
}

// Delete soft deletes a news item
func (r *NewsRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.News{}, id).Error
}

// ContentSectionRepository handles content section data access
type ContentSectionRepository struct {
	db *gorm.DB
}

// NewContentSectionRepository creates a new content section repository
func NewContentSectionRepository(db *gorm.DB) *ContentSectionRepository {
	return &ContentSectionRepository{db: db}
}

// Create creates a content section
func (r *ContentSectionRepository) Create(ctx context.Context, section *models.ContentSection) error {
	return r.db.WithContext(ctx).Create(section).Error
}

// GetByID gets a content section by ID
func (r *ContentSectionRepository) GetByID(ctx context.Context, id uint) (*models.ContentSection, error) {
	var section models.ContentSection
	err := r.db.WithContext(ctx).First(&section, id).Error
	return &section, err
}

// GetBySlug gets a content section by slug
func (r *ContentSectionRepository) GetBySlug(ctx context.Context, slug string) (*models.ContentSection, error) {
	var section models.ContentSection
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&section).Error
	return &section, err
}

// List lists all content sections
func (r *ContentSectionRepository) List(ctx context.Context) ([]*models.ContentSection, error) {
	var sections []*models.ContentSection
	err := r.db.WithContext(ctx).Find(&sections).Error
	return sections, err
}

// Update updates a content section
func (r *ContentSectionRepository) Update(ctx context.Context, section *models.ContentSection) error {
	return r.db.WithContext(ctx).Save(section).Error
}

// Delete soft deletes a content section
func (r *ContentSectionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.ContentSection{}, id).Error
}

// MenuItemRepository handles menu item data access
type MenuItemRepository struct {
	db *gorm.DB
}

// NewMenuItemRepository creates a new menu item repository
func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{db: db}
}

// Create creates a menu item
func (r *MenuItemRepository) Create(ctx context.Context, item *models.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// GetByID gets a menu item by ID
func (r *MenuItemRepository) GetByID(ctx context.Context, id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.WithContext(ctx).First(&item, id).Error
	return &item, err
}

// List lists active menu items in display order
func (r *MenuItemRepository) List(ctx context.Context) ([]*models.MenuItem, error) {
	var items []*models.MenuItem
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC").
		Find(&items).Error
	return items, err
}

// ListAll lists all menu items including inactive
func (r *MenuItemRepository) ListAll(ctx context.Context) ([]*models.MenuItem, error) {
	var items []*models.MenuItem
	err := r.db.WithContext(ctx).Order("sort_order ASC").Find(&items).Error
	return items, err
}

// Update updates a menu item
func (r *MenuItemRepository) Update(ctx context.Context, item *models.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete soft deletes a menu item
func (r *MenuItemRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.MenuItem{}, id).Error
}

// SettingRepository handles settings data access
type SettingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// Get gets a setting by key
func (r *SettingRepository) Get(ctx context.Context, key string) (*models.Setting, error) {
	var setting models.Setting
	err := r.db.WithContext(ctx).Where("setting_key = ?", key).First(&setting).Error
	return &setting, err
}

// List lists all settings
func (r *SettingRepository) List(ctx context.Context) ([]*models.Setting, error) {
	var settings []*models.Setting
	err := r.db.WithContext(ctx).Order("setting_key ASC").Find(&settings).Error
	return settings, err
}

// Set upserts a setting value by key
func (r *SettingRepository) Set(ctx context.Context, key, value string) (*models.Setting, error) {
	var setting models.Setting
	err := r.db.WithContext(ctx).Where("setting_key = ?", key).First(&setting).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		setting = models.Setting{Key: key, Value: value}
		if err := r.db.WithContext(ctx).Create(&setting).Error; err != nil {
			return nil, err
		}
		return &setting, nil
	}

	setting.Value = value
	if err := r.db.WithContext(ctx).Save(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

// Delete deletes a setting by key
func (r *SettingRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where("setting_key = ?", key).Delete(&models.Setting{}).Error
}

// FeeStructureRepository handles fee structure data access
type FeeStructureRepository struct {
	db *gorm.DB
}

// NewFeeStructureRepository creates a new fee structure repository
func NewFeeStructureRepository(db *gorm.DB) *FeeStructureRepository {
	return &FeeStructureRepository{db: db}
}

// Create creates a fee structure entry
func (r *FeeStructureRepository) Create(ctx context.Context, fee *models.FeeStructure) error {
	return r.db.WithContext(ctx).Create(fee).Error
}

// GetByID gets a fee structure entry by ID
func (r *FeeStructureRepository) GetByID(ctx context.Context, id uint) (*models.FeeStructure, error) {
	var fee models.FeeStructure
	err := r.db.WithContext(ctx).First(&fee, id).Error
	return &fee, err
}

// GetByLevel gets an active fee structure entry by level
func (r *FeeStructureRepository) GetByLevel(ctx context.Context, level string) (*models.FeeStructure, error) {
	var fee models.FeeStructure
	err := r.db.WithContext(ctx).
		Where("level = ? AND is_active = ?", level, true).
		First(&fee).Error
	return &fee, err
}

// GetByLevelAny gets a fee structure entry by level regardless of active flag
func (r *FeeStructureRepository) GetByLevelAny(ctx context.Context, level string) (*models.FeeStructure, error) {
	var fee models.FeeStructure
	err := r.db.WithContext(ctx).Where("level = ?", level).First(&fee).Error
	return &fee, err
}

// List lists all active fee structure entries
func (r *FeeStructureRepository) List(ctx context.Context) ([]*models.FeeStructure, error) {
	var fees []*models.FeeStructure
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Find(&fees).Error
	return fees, err
}

// ListAll lists all fee structure entries including inactive
func (r *FeeStructureRepository) ListAll(ctx context.Context) ([]*models.FeeStructure, error) {
	var fees []*models.FeeStructure
	err := r.db.WithContext(ctx).Find(&fees).Error
	return fees, err
}

// Update updates a fee structure entry
func (r *FeeStructureRepository) Update(ctx context.Context, fee *models.FeeStructure) error {
	return r.db.WithContext(ctx).Save(fee).Error
}

// Delete soft deletes a fee structure entry
func (r *FeeStructureRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.FeeStructure{}, id).Error
}
