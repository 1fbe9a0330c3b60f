package mode

import (
	"testing"

	"giftwell/internal/campaign/models"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		name   string
		goal   models.Goal
		motion models.Motion
		want   models.RecipientMode
	}{
		{"quick send express", models.GoalQuickSend, models.MotionExpressSend, models.ModeExpressSend},
		{"quick send claim link", models.GoalQuickSend, models.MotionClaimLink, models.ModeClaimLink},
		{"event registration", models.GoalDriveEvent, models.MotionBoostRegistration, models.ModeListBased},
		{"pipeline default", models.GoalPipelineAcceleration, models.MotionClaimLink, models.ModeListBased},
		{"unknown pair", models.Goal("mystery"), models.Motion("unknown"), models.ModeListBased},
		{"empty pair", models.Goal(""), models.Motion(""), models.ModeListBased},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Resolve(tc.goal, tc.motion); got != tc.want {
				t.Fatalf("Resolve(%q, %q) = %q, want %q", tc.goal, tc.motion, got, tc.want)
			}
		})
	}
}

func TestBoothPickupOverridesGoal(t *testing.T) {
	goals := []models.Goal{
		models.GoalQuickSend,
		models.GoalDriveEvent,
		models.GoalPipelineAcceleration,
		models.GoalProductLaunch,
		models.GoalCustomerRelationships,
		models.Goal("anything-else"),
	}
	for _, goal := range goals {
		if got := Resolve(goal, models.MotionBoothPickup); got != models.ModeFixedCount {
			t.Fatalf("Resolve(%q, booth-pickup) = %q, want fixed_count", goal, got)
		}
	}
}
