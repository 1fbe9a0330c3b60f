package models

import (
	"time"

	"github.com/google/uuid"
)

// Goal is the campaign-purpose tag picked once per campaign session.
type Goal string

const (
	GoalQuickSend             Goal = "quick-send"
	GoalDriveEvent            Goal = "drive-event"
	GoalPipelineAcceleration  Goal = "pipeline-acceleration"
	GoalProductLaunch         Goal = "product-launch"
	GoalCustomerRelationships Goal = "customer-relationships"
)

// Motion refines a goal into a concrete delivery flow.
type Motion string

const (
	MotionExpressSend       Motion = "express-send"
	MotionClaimLink         Motion = "claim-link"
	MotionBoostRegistration Motion = "boost-registration"
	MotionBoothPickup       Motion = "booth-pickup"
)

// RecipientMode is the recipient-acquisition strategy derived from the
// (goal, motion) pair. Exactly one mode is active per pair.
type RecipientMode string

const (
	ModeExpressSend RecipientMode = "express_send"
	ModeClaimLink   RecipientMode = "claim_link"
	ModeFixedCount  RecipientMode = "fixed_count"
	ModeListBased   RecipientMode = "list_based"
)

// GiftMode determines how gifts are chosen for recipients.
type GiftMode string

const (
	GiftModeOneGift         GiftMode = "one-gift"
	GiftModeRecipientChoice GiftMode = "recipient-choice"
	GiftModeSmartMatch      GiftMode = "smart-match"
)

// CampaignStatus tracks the draft lifecycle. Sessions start as draft and
// become launched exactly once.
type CampaignStatus string

const (
	StatusDraft    CampaignStatus = "draft"
	StatusLaunched CampaignStatus = "launched"
)

// CampaignDraft is the serializable snapshot persisted on save or launch.
// It carries the resolved mode, recipient set or count, gift selection, and
// budget breakdown for the backend draft API.
type CampaignDraft struct {
	ID             uuid.UUID      `json:"id"`
	Name           string         `json:"name"`
	Goal           Goal           `json:"goal"`
	Motion         Motion         `json:"motion"`
	RecipientMode  RecipientMode  `json:"recipient_mode"`
	GiftMode       GiftMode       `json:"gift_mode"`
	BundleID       string         `json:"bundle_id,omitempty"`
	Contacts       []Contact      `json:"contacts,omitempty"`
	RecipientCount int            `json:"recipient_count"`
	Selection      GiftSelection  `json:"selection"`
	Budget         BudgetConfig   `json:"budget"`
	NFCEnabled     bool           `json:"nfc_enabled"`
	Status         CampaignStatus `json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
