package handler

import (
	"giftwell/internal/campaign/designer"
	"giftwell/internal/campaign/models"
	dErrors "giftwell/pkg/domain-errors"
)

type createCampaignRequest struct {
	Name string `json:"name"`
}

type queryContactsRequest struct {
	Query string `json:"query"`
}

// eventRequest is the wire form of one designer event. Kind selects the
// event; only the fields that kind uses are read.
type eventRequest struct {
	Kind string `json:"kind"`

	Name      string           `json:"name,omitempty"`
	Goal      string           `json:"goal,omitempty"`
	Motion    string           `json:"motion,omitempty"`
	GiftMode  string           `json:"gift_mode,omitempty"`
	Min       float64          `json:"min,omitempty"`
	Max       float64          `json:"max,omitempty"`
	Credits   int              `json:"credits,omitempty"`
	BundleID  string           `json:"bundle_id,omitempty"`
	GiftID    string           `json:"gift_id,omitempty"`
	Contact   *models.Contact  `json:"contact,omitempty"`
	ContactID string           `json:"contact_id,omitempty"`
	Email     string           `json:"email,omitempty"`
	Company   string           `json:"company,omitempty"`
	Count     int              `json:"count,omitempty"`
	ListID    string           `json:"list_id,omitempty"`
	Contacts  []models.Contact `json:"contacts,omitempty"`
	Query     string           `json:"query,omitempty"`
	Enabled   bool             `json:"enabled,omitempty"`
}

// toEvent translates the wire form into a reducer event. Bundle and
// contact-list resolution happen in the service, not here, so those two
// kinds are handled by the caller.
func (r eventRequest) toEvent() (designer.Event, error) {
	switch r.Kind {
	case "set_name":
		return designer.SetName{Name: r.Name}, nil
	case "set_goal_motion":
		return designer.SetGoalMotion{Goal: models.Goal(r.Goal), Motion: models.Motion(r.Motion)}, nil
	case "set_gift_mode":
		return designer.SetGiftMode{Mode: models.GiftMode(r.GiftMode)}, nil
	case "set_budget_window":
		return designer.SetBudgetWindow{Min: r.Min, Max: r.Max}, nil
	case "set_available_credits":
		return designer.SetAvailableCredits{Credits: r.Credits}, nil
	case "pick_gift":
		return designer.PickGift{GiftID: r.GiftID}, nil
	case "toggle_recipient_gift":
		return designer.ToggleRecipientGift{GiftID: r.GiftID}, nil
	case "add_contact":
		if r.Contact == nil {
			return nil, dErrors.New(dErrors.CodeBadRequest, "add_contact requires a contact")
		}
		return designer.AddContact{Contact: *r.Contact}, nil
	case "quick_add_contact":
		return designer.QuickAddContact{Name: r.Name, Email: r.Email, Company: r.Company}, nil
	case "remove_contact":
		return designer.RemoveContact{ContactID: r.ContactID}, nil
	case "set_fixed_count":
		return designer.SetFixedCount{Count: r.Count}, nil
	case "set_claim_allocation":
		return designer.SetClaimAllocation{Count: r.Count}, nil
	case "set_recipient_list":
		return designer.SetRecipientList{Contacts: r.Contacts}, nil
	case "filter_recipients":
		return designer.FilterRecipients{Query: r.Query}, nil
	case "set_nfc":
		return designer.SetNFC{Enabled: r.Enabled}, nil
	default:
		return nil, dErrors.Newf(dErrors.CodeBadRequest, "unknown event kind %q", r.Kind)
	}
}
