package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/adapters/persistence/models"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/config"
)

// NotificationService pushes operational messages to the society's admin
// webhook (any Slack-compatible incoming webhook works)
type NotificationService struct {
	webhookURL string
	siteURL    string
	enabled    bool
	client     *http.Client
}

// NewNotificationService creates a new notification service
func NewNotificationService(cfg *config.Config) *NotificationService {
	return &NotificationService{
		webhookURL: cfg.Notify.WebhookURL,
		siteURL:    cfg.Notify.SiteURL,
		enabled:    cfg.Notify.WebhookURL != "",
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// IsEnabled checks if notification is enabled
func (s *NotificationService) IsEnabled() bool {
	return s.enabled
}

// sendWebhook posts a message to the configured webhook
func (s *NotificationService) sendWebhook(message string) error {
	if !s.enabled {
		return nil
	}

	payload, err := json.Marshal(map[string]string{"text": message})
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", s.webhookURL, bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return nil
}

// NotifyNewClaim sends notification for a freshly submitted payment claim
func (s *NotificationService) NotifyNewClaim(claim *models.PaymentClaim) {
	message := fmt.Sprintf(`
🆕 New payment claim

📋 Claim: #%d (%s)
👤 Payer: %s
💰 Amount: ₹%.2f
🧾 Txn ID: %s

Please verify against the bank statement`,
		claim.ID,
		claim.Type,
		claim.PayerName,
		float64(claim.Amount)/100,
		claim.TransactionID,
	)

	s.sendWebhook(message)
}

// NotifyClaimApproved sends notification for an approved claim
func (s *NotificationService) NotifyClaimApproved(claim *models.PaymentClaim) {
	message := fmt.Sprintf(`
✅ Claim approved

📋 Claim: #%d (%s)
👤 Payer: %s
💰 Amount: ₹%.2f`,
		claim.ID,
		claim.Type,
		claim.PayerName,
		float64(claim.Amount)/100,
	)

	s.sendWebhook(message)
}

// NotifyClaimRejected sends notification for a rejected claim
func (s *NotificationService) NotifyClaimRejected(claim *models.PaymentClaim, reason string) {
	message := fmt.Sprintf(`
❌ Claim rejected

📋 Claim: #%d (%s)
👤 Payer: %s
📝 Reason: %s`,
		claim.ID,
		claim.Type,
		claim.PayerName,
		reason,
	)

	s.sendWebhook(message)
}

// NotifyPasswordReset sends the reset link for an account
func (s *NotificationService) NotifyPasswordReset(email, token string) {
	message := fmt.Sprintf(`
🔑 Password reset requested

📧 Account: %s
🔗 Link: %s/reset-password?token=%s

The link expires in one hour`,
		email,
		s.siteURL,
		token,
	)

	s.sendWebhook(message)
}

// NotifyNewVolunteer sends notification when a volunteer application arrives
func (s *NotificationService) NotifyNewVolunteer(volunteer *models.Volunteer) {
	message := fmt.Sprintf(`
🙋 New volunteer application

👤 Name: %s
📧 Email: %s
📞 Phone: %s
🧑‍💼 Occupation: %s`,
		volunteer.Name,
		volunteer.Email,
		volunteer.Phone,
		volunteer.Occupation,
	)

	s.sendWebhook(message)
}

// NotifyStalePendingClaims sends the nightly digest of claims waiting too long
func (s *NotificationService) NotifyStalePendingClaims(count int64, olderThan time.Duration) {
	if count == 0 {
		return
	}

	message := fmt.Sprintf(`
⏰ Pending claim digest

📋 %d claim(s) pending for more than %d hours

Please triage them from the admin dashboard`,
		count,
		int(olderThan.Hours()),
	)

	s.sendWebhook(message)
}
