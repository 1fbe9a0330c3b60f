package mode

import "giftwell/internal/campaign/models"

// Resolve maps a (goal, motion) pair to the single active recipient mode.
// The mapping is total: unknown combinations fall back to list-based
// selection, and booth pickup forces a fixed headcount regardless of goal.
// Extending the flow taxonomy only requires a new entry here.
func Resolve(goal models.Goal, motion models.Motion) models.RecipientMode {
	if motion == models.MotionBoothPickup {
		return models.ModeFixedCount
	}
	if goal == models.GoalQuickSend {
		switch motion {
		case models.MotionExpressSend:
			return models.ModeExpressSend
		case models.MotionClaimLink:
			return models.ModeClaimLink
		}
	}
	return models.ModeListBased
}
