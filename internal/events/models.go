package events

import "time"

// Lifecycle event types emitted by the campaign service.
const (
	TypeCampaignCreated  = "campaign.created"
	TypeDraftSaved       = "draft.saved"
	TypeCampaignLaunched = "campaign.launched"
)

// Event is emitted from domain logic to capture campaign lifecycle actions.
// Keep it transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp  time.Time `json:"timestamp"`
	Type       string    `json:"type"`
	CampaignID string    `json:"campaign_id"`
	Name       string    `json:"name,omitempty"`
	Detail     string    `json:"detail,omitempty"`
}
