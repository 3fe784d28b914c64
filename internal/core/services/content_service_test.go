package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/adapters/persistence/repositories"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/core/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newContentService(t *testing.T, db *gorm.DB) *services.ContentService {
	t.Helper()

	return services.NewContentService(
		repositories.NewEventRepository(db),
		repositories.NewNewsRepository(db),
		repositories.NewContentSectionRepository(db),
		repositories.NewMenuItemRepository(db),
		repositories.NewSettingRepository(db),
		repositories.NewFeeStructureRepository(db),
	)
}

func TestEvents(t *testing.T) {
	db := setupTestDB(t)
	svc := newContentService(t, db)
	ctx := context.Background()

	unpublished := false

	t.Run("Public listing hides unpublished events", func(t *testing.T) {
		_, err := svc.CreateEvent(ctx, &services.EventInput{
			Title:     "Blood Donation Camp",
			EventDate: time.Now().Add(48 * time.Hour),
		})
		require.NoError(t, err)

		_, err = svc.CreateEvent(ctx, &services.EventInput{
			Title:       "Draft Event",
			EventDate:   time.Now().Add(72 * time.Hour),
			IsPublished: &unpublished,
		})
		require.NoError(t, err)

		public, err := svc.ListEvents(ctx)
		require.NoError(t, err)
		assert.Len(t, public, 1)

		all, err := svc.ListAllEvents(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("Upcoming listing skips past events", func(t *testing.T) {
		_, err := svc.CreateEvent(ctx, &services.EventInput{
			Title:     "Last Year Camp",
			EventDate: time.Now().Add(-365 * 24 * time.Hour),
		})
		require.NoError(t, err)

		upcoming, err := svc.ListUpcomingEvents(ctx)
		require.NoError(t, err)
		for _, event := range upcoming {
			assert.False(t, event.EventDate.Before(time.Now().Add(-24*time.Hour)))
		}
	})

	t.Run("Missing title", func(t *testing.T) {
		_, err := svc.CreateEvent(ctx, &services.EventInput{EventDate: time.Now()})
		assert.Error(t, err)
	})

	t.Run("Delete then get", func(t *testing.T) {
		event, err := svc.CreateEvent(ctx, &services.EventInput{
			Title:     "Short-lived",
			EventDate: time.Now(),
		})
		require.NoError(t, err)

		require.NoError(t, svc.DeleteEvent(ctx, event.ID))

		_, err = svc.GetEvent(ctx, event.ID)
		assert.ErrorIs(t, err, services.ErrContentNotFound)
	})
}

func TestSections(t *testing.T) {
	db := setupTestDB(t)
	svc := newContentService(t, db)
	ctx := context.Background()

	t.Run("Slug is normalized on create", func(t *testing.T) {
		section, err := svc.CreateSection(ctx, &services.SectionInput{
			Slug:  "  About-Us  ",
			Title: "About Us",
			Body:  "We serve the community.",
		})
		require.NoError(t, err)
		assert.Equal(t, "about-us", section.Slug)

		found, err := svc.GetSection(ctx, "about-us")
		require.NoError(t, err)
		assert.Equal(t, "About Us", found.Title)
	})

	t.Run("Duplicate slug", func(t *testing.T) {
		_, err := svc.CreateSection(ctx, &services.SectionInput{
			Slug:  "about-us",
			Title: "About Us Again",
		})
		assert.ErrorIs(t, err, services.ErrDuplicateSlug)
	})

	t.Run("Update keeps the slug", func(t *testing.T) {
		updated, err := svc.UpdateSection(ctx, "about-us", &services.SectionInput{
			Slug:  "something-else",
			Title: "About the Society",
		})
		require.NoError(t, err)
		assert.Equal(t, "about-us", updated.Slug)
		assert.Equal(t, "About the Society", updated.Title)
	})

	t.Run("Unknown slug", func(t *testing.T) {
		_, err := svc.GetSection(ctx, "no-such-page")
		assert.ErrorIs(t, err, services.ErrContentNotFound)
	})
}

func TestSettings(t *testing.T) {
	db := setupTestDB(t)
	svc := newContentService(t, db)
	ctx := context.Background()

	t.Run("Public settings are whitelisted", func(t *testing.T) {
		_, err := svc.SetSetting(ctx, "upi_id", "mwss@upi")
		require.NoError(t, err)
		_, err = svc.SetSetting(ctx, "smtp_password", "hunter2")
		require.NoError(t, err)

		public, err := svc.GetPublicSettings(ctx)
		require.NoError(t, err)

		assert.Equal(t, "mwss@upi", public["upi_id"])
		_, leaked := public["smtp_password"]
		assert.False(t, leaked, "non-public settings must not reach the public map")
	})

	t.Run("Set overwrites", func(t *testing.T) {
		_, err := svc.SetSetting(ctx, "upi_id", "newhandle@upi")
		require.NoError(t, err)

		public, err := svc.GetPublicSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, "newhandle@upi", public["upi_id"])
	})

	t.Run("Empty key", func(t *testing.T) {
		_, err := svc.SetSetting(ctx, "   ", "value")
		assert.Error(t, err)
	})
}

func TestUpsertFee(t *testing.T) {
	db := setupTestDB(t)
	svc := newContentService(t, db)
	ctx := context.Background()

	t.Run("Create new level", func(t *testing.T) {
		fee, err := svc.UpsertFee(ctx, &services.FeeInput{
			Level:  "Primary",
			Name:   "Primary Classes",
			Amount: 50000,
		})
		require.NoError(t, err)
		assert.Equal(t, "primary", fee.Level)
		assert.True(t, fee.IsActive)
	})

	t.Run("Update existing level", func(t *testing.T) {
		fee, err := svc.UpsertFee(ctx, &services.FeeInput{
			Level:  "primary",
			Amount: 60000,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(60000), fee.Amount)

		all, err := svc.ListAllFees(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1, "upsert must not duplicate the level")
	})

	t.Run("Deactivated level hidden from public listing", func(t *testing.T) {
		inactive := false
		_, err := svc.UpsertFee(ctx, &services.FeeInput{
			Level:    "primary",
			IsActive: &inactive,
		})
		require.NoError(t, err)

		public, err := svc.ListFees(ctx)
		require.NoError(t, err)
		assert.Empty(t, public)
	})

	t.Run("Negative amount", func(t *testing.T) {
		_, err := svc.UpsertFee(ctx, &services.FeeInput{
			Level:  "secondary",
			Amount: -1,
		})
		assert.ErrorIs(t, err, services.ErrInvalidAmount)
	})
}
