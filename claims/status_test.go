package claims

import (
	"testing"

	"Gin_postgres_redis_lost_found/models"
)

func TestResolveStatusNoClaims(t *testing.T) {
	if got := ResolveStatus(nil); got != StatusUnclaimed {
		t.Errorf("expected unclaimed for empty history, got %q", got)
	}
}

func TestResolveStatusApproved(t *testing.T) {
	histories := [][]models.Claim{
		{{Status: models.ClaimApproved}},
		{{Status: models.ClaimPending}, {Status: models.ClaimApproved}},
		{{Status: models.ClaimApproved}, {Status: models.ClaimDenied}},
		{{Status: models.ClaimDenied}, {Status: models.ClaimPending}, {Status: models.ClaimApproved}},
	}
	for i, h := range histories {
		if got := ResolveStatus(h); got != StatusClaimed {
			t.Errorf("history %d: expected claimed, got %q", i, got)
		}
	}
}

func TestResolveStatusNonApprovedOnly(t *testing.T) {
	// Order of pending/denied claims must never affect the outcome.
	histories := [][]models.Claim{
		{{Status: models.ClaimPending}},
		{{Status: models.ClaimDenied}},
		{{Status: models.ClaimPending}, {Status: models.ClaimDenied}},
		{{Status: models.ClaimDenied}, {Status: models.ClaimPending}},
	}
	for i, h := range histories {
		if got := ResolveStatus(h); got != StatusUnclaimed {
			t.Errorf("history %d: expected unclaimed, got %q", i, got)
		}
	}
}

func TestResolveStatusIsPure(t *testing.T) {
	h := []models.Claim{
		{ID: "a", Status: models.ClaimPending},
		{ID: "b", Status: models.ClaimApproved},
	}
	first := ResolveStatus(h)
	second := ResolveStatus(h)
	if first != second {
		t.Errorf("resolver not deterministic: %q then %q", first, second)
	}
	if h[0].ID != "a" || h[1].ID != "b" || h[0].Status != models.ClaimPending {
		t.Error("resolver mutated its input")
	}
}
