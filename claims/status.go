package claims

import "Gin_postgres_redis_lost_found/models"

// Status is an item's derived claim state. It is never stored: every read
// recomputes it from the claim history, so it cannot drift from the claims
// that justify it.
type Status string

const (
	StatusUnclaimed Status = "unclaimed"
	StatusClaimed   Status = "claimed"
)

// ResolveStatus derives an item's status from its claim history: claimed
// iff any claim is approved. Pending and denied claims, in any order, never
// change the outcome, and once an approved claim exists the result can only
// be claimed.
func ResolveStatus(cs []models.Claim) Status {
	for _, c := range cs {
		if c.Status == models.ClaimApproved {
			return StatusClaimed
		}
	}
	return StatusUnclaimed
}
