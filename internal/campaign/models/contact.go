package models

// Contact is a campaign recipient. Quick-added contacts get a locally
// generated id and reach the backend only on draft submission.
type Contact struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Company        string `json:"company,omitempty"`
	Role           string `json:"role,omitempty"`
	LinkedInHandle string `json:"linkedin_handle,omitempty"`
	HasAddress     bool   `json:"has_address"`
}
