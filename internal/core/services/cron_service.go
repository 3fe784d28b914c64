package services

import (
	"context"
	"log"
	"time"

	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// CronService runs the scheduled housekeeping jobs: token table cleanup
// every night and a morning digest of claims stuck in pending
type CronService struct {
	cron          *cron.Cron
	refreshRepo   repositories.RefreshTokenRepository
	resetRepo     repositories.ResetTokenRepository
	claimRepo     *repositories.ClaimRepository
	notifyService *NotificationService
}

// NewCronService creates a new cron service
func NewCronService(db *gorm.DB, notifyService *NotificationService) *CronService {
	return &CronService{
		cron:          cron.New(),
		refreshRepo:   repositories.NewRefreshTokenRepository(db),
		resetRepo:     repositories.NewResetTokenRepository(db),
		claimRepo:     repositories.NewClaimRepository(db),
		notifyService: notifyService,
	}
}

// Start registers and starts the scheduled jobs
func (s *CronService) Start() {
	// 02:00 daily: purge expired refresh tokens and spent reset tokens
	s.cron.AddFunc("0 2 * * *", s.purgeTokens)

	// 08:30 daily: remind admins about claims pending too long
	s.cron.AddFunc("30 8 * * *", s.sendStaleClaimDigest)

	s.cron.Start()
	log.Println("✅ Cron service started (token purge 02:00, claim digest 08:30)")
}

// Stop stops the cron scheduler
func (s *CronService) Stop() {
	s.cron.Stop()
	log.Println("🛑 Cron service stopped")
}

func (s *CronService) purgeTokens() {
	ctx := context.Background()

	refreshed, err := s.refreshRepo.DeleteExpired(ctx)
	if err != nil {
		log.Printf("⚠️ Refresh token purge failed: %v", err)
	}

	reset, err := s.resetRepo.DeleteExpired(ctx)
	if err != nil {
		log.Printf("⚠️ Reset token purge failed: %v", err)
	}

	log.Printf("✅ Token purge done: %d refresh, %d reset tokens removed", refreshed, reset)
}

func (s *CronService) sendStaleClaimDigest() {
	ctx := context.Background()

	count, err := s.claimRepo.CountStalePending(ctx, time.Now().Add(-StaleClaimAge))
	if err != nil {
		log.Printf("⚠️ Stale claim count failed: %v", err)
		return
	}

	if count == 0 {
		return
	}

	log.Printf("⏰ %d claim(s) pending longer than %v", count, StaleClaimAge)
	if s.notifyService != nil {
		s.notifyService.NotifyStalePendingClaims(count, StaleClaimAge)
	}
}
