package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Site Content Tables (admin-managed, publicly readable)
// ============================================================

// Event represents events table. Bilingual fields carry the Hindi copy.
type Event struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	TitleHi     string         `gorm:"size:200" json:"title_hi"`
	Description string         `gorm:"type:text" json:"description"`
	Location    string         `gorm:"size:200" json:"location"`
	ImageURL    string         `gorm:"size:255" json:"image_url"`
	EventDate   time.Time      `gorm:"type:date;not null;index" json:"event_date"`
	IsPublished bool           `gorm:"default:true" json:"is_published"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Event) TableName() string {
	return "events"
}

// News represents news table
type News struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	TitleHi     string         `gorm:"size:200" json:"title_hi"`
	Body        string         `gorm:"type:text" json:"body"`
	ImageURL    string         `gorm:"size:255" json:"image_url"`
	IsPublished bool           `gorm:"default:true" json:"is_published"`
	PublishedAt time.Time      `gorm:"not null;index" json:"published_at"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (News) TableName() string {
	return "news"
}

// ContentSection represents content_sections table (about, mission, ...).
// Sections are addressed by slug from the public site.
type ContentSection struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Slug      string         `gorm:"uniqueIndex;size:50;not null" json:"slug"`
	Title     string         `gorm:"size:200;not null" json:"title"`
	TitleHi   string         `gorm:"size:200" json:"title_hi"`
	Body      string         `gorm:"type:text" json:"body"`
	BodyHi    string         `gorm:"type:text" json:"body_hi"`
	ImageURL  string         `gorm:"size:255" json:"image_url"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ContentSection) TableName() string {
	return "content_sections"
}

// MenuItem represents menu_items table. Icon is an opaque capability tag;
// the renderer maps it to presentation, the server only persists it.
type MenuItem struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Label     string         `gorm:"size:100;not null" json:"label"`
	LabelHi   string         `gorm:"size:100" json:"label_hi"`
	Path      string         `gorm:"size:200;not null" json:"path"`
	Icon      string         `gorm:"size:50" json:"icon"`
	SortOrder int            `gorm:"not null;default:0" json:"sort_order"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}

// Setting represents settings table (key/value: UPI id, QR image URL, ...)
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"column:setting_key;uniqueIndex;size:100;not null" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

// FeeStructure represents fee_structures table (Master).
// Maps a student fee level to the amount due in the smallest currency unit.
type FeeStructure struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Level     string         `gorm:"uniqueIndex;size:50;not null" json:"level"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Amount    int64          `gorm:"not null" json:"amount"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (FeeStructure) TableName() string {
	return "fee_structures"
}
