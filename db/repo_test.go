package db

import (
	"context"
	"errors"
	"testing"

	"Gin_postgres_redis_lost_found/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func testRepo(t *testing.T) *Repo {
	t.Helper()
	return NewRepo(NewTestDB(t))
}

func mustUser(t *testing.T, r *Repo, role string) *models.User {
	t.Helper()
	u := &models.User{
		ID:    uuid.NewString(),
		Name:  "Repo Test",
		Email: uuid.NewString() + "@example.com",
		Role:  role,
	}
	if err := r.CreateUser(context.Background(), u); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	return u
}

func mustItem(t *testing.T, r *Repo, finderID string) *models.Item {
	t.Helper()
	it := &models.Item{
		ID:          uuid.NewString(),
		Description: "Umbrella",
		Location:    "Bus stop",
		FinderID:    finderID,
	}
	if err := r.CreateItem(context.Background(), it); err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	return it
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()

	u := mustUser(t, r, models.RoleFinder)
	dup := &models.User{
		ID:    uuid.NewString(),
		Name:  "Duplicate",
		Email: u.Email,
		Role:  models.RoleClaimer,
	}
	err := r.CreateUser(ctx, dup)
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected ErrDuplicatedKey, got %v", err)
	}
}

func TestFindUserByEmailIsCaseInsensitive(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()

	u := &models.User{
		ID:    uuid.NewString(),
		Name:  "Case Test",
		Email: "mixed.case@example.com",
		Role:  models.RoleClaimer,
	}
	if err := r.CreateUser(ctx, u); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	got, err := r.FindUserByEmail(ctx, "Mixed.Case@Example.com")
	if err != nil {
		t.Fatalf("FindUserByEmail: %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("expected user %s, got %s", u.ID, got.ID)
	}
}

func TestInsertClaimOneApprovedPerItem(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()
	finder := mustUser(t, r, models.RoleFinder)
	a := mustUser(t, r, models.RoleClaimer)
	b := mustUser(t, r, models.RoleClaimer)
	item := mustItem(t, r, finder.ID)

	if err := r.InsertClaim(ctx, &models.Claim{
		ItemID: item.ID, ClaimerID: a.ID, Status: models.ClaimApproved,
	}); err != nil {
		t.Fatalf("first approved claim: %v", err)
	}

	// The partial unique index rejects a second approved row...
	err := r.InsertClaim(ctx, &models.Claim{
		ItemID: item.ID, ClaimerID: b.ID, Status: models.ClaimApproved,
	})
	if !errors.Is(err, ErrDuplicateApproval) {
		t.Fatalf("expected ErrDuplicateApproval, got %v", err)
	}

	// ...but non-approved rows are untouched by it.
	if err := r.InsertClaim(ctx, &models.Claim{
		ItemID: item.ID, ClaimerID: b.ID, Status: models.ClaimDenied,
	}); err != nil {
		t.Fatalf("denied claim alongside approved: %v", err)
	}

	n, err := r.CountApprovedClaims(ctx, item.ID)
	if err != nil {
		t.Fatalf("CountApprovedClaims: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 approved claim, got %d", n)
	}
}

func TestInsertClaimMissingReferences(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()
	u := mustUser(t, r, models.RoleClaimer)

	err := r.InsertClaim(ctx, &models.Claim{
		ItemID: uuid.NewString(), ClaimerID: u.ID, Status: models.ClaimApproved,
	})
	if !errors.Is(err, ErrIntegrity) {
		t.Fatalf("expected ErrIntegrity for missing item, got %v", err)
	}
}

func TestGetItemWithClaimsNotFound(t *testing.T) {
	r := testRepo(t)
	_, _, err := r.GetItemWithClaims(context.Background(), uuid.NewString())
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestGetItemWithClaimsOrdersOldestFirst(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()
	finder := mustUser(t, r, models.RoleFinder)
	claimer := mustUser(t, r, models.RoleClaimer)
	item := mustItem(t, r, finder.ID)

	for _, status := range []string{models.ClaimPending, models.ClaimDenied, models.ClaimApproved} {
		if err := r.InsertClaim(ctx, &models.Claim{
			ItemID: item.ID, ClaimerID: claimer.ID, Status: status,
		}); err != nil {
			t.Fatalf("InsertClaim(%s): %v", status, err)
		}
	}

	_, cs, err := r.GetItemWithClaims(ctx, item.ID)
	if err != nil {
		t.Fatalf("GetItemWithClaims: %v", err)
	}
	if len(cs) != 3 {
		t.Fatalf("expected 3 claims, got %d", len(cs))
	}
	for i := 1; i < len(cs); i++ {
		if cs[i].ClaimedAt.Before(cs[i-1].ClaimedAt) {
			t.Fatal("claims not ordered oldest first")
		}
	}
}

func TestDeleteItemCascadesClaims(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()
	finder := mustUser(t, r, models.RoleFinder)
	claimer := mustUser(t, r, models.RoleClaimer)
	item := mustItem(t, r, finder.ID)

	if err := r.InsertClaim(ctx, &models.Claim{
		ItemID: item.ID, ClaimerID: claimer.ID, Status: models.ClaimApproved,
	}); err != nil {
		t.Fatalf("InsertClaim: %v", err)
	}

	if err := r.DeleteItem(ctx, item.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}

	if _, err := r.FindItemByID(ctx, item.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("item still present after delete: %v", err)
	}
	cs, err := r.ListClaimsByItem(ctx, item.ID)
	if err != nil {
		t.Fatalf("ListClaimsByItem: %v", err)
	}
	if len(cs) != 0 {
		t.Errorf("expected no claims after cascade delete, got %d", len(cs))
	}
}

func TestDeleteItemNotFound(t *testing.T) {
	r := testRepo(t)
	err := r.DeleteItem(context.Background(), uuid.NewString())
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestWithTransactionRollsBack(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()
	finder := mustUser(t, r, models.RoleFinder)
	claimer := mustUser(t, r, models.RoleClaimer)
	item := mustItem(t, r, finder.ID)

	boom := errors.New("boom")
	err := r.WithTransaction(ctx, func(tx *Repo) error {
		if err := tx.InsertClaim(ctx, &models.Claim{
			ItemID: item.ID, ClaimerID: claimer.ID, Status: models.ClaimApproved,
		}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	cs, err := r.ListClaimsByItem(ctx, item.ID)
	if err != nil {
		t.Fatalf("ListClaimsByItem: %v", err)
	}
	if len(cs) != 0 {
		t.Errorf("transaction did not roll back: %d claims persisted", len(cs))
	}
}

func TestIsTransient(t *testing.T) {
	if IsTransient(nil) {
		t.Error("nil must not be transient")
	}
	if !IsTransient(context.DeadlineExceeded) {
		t.Error("deadline exceeded must be transient")
	}
	if IsTransient(ErrDuplicateApproval) {
		t.Error("duplicate approval must not be transient")
	}
}
