package db

import (
	"context"
	"errors"
	"net"
	"time"

	"Gin_postgres_redis_lost_found/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Claims

var (
	// ErrDuplicateApproval is returned when an insert trips the partial
	// unique index on approved claims, i.e. a concurrent submission won.
	ErrDuplicateApproval = errors.New("item already has an approved claim")

	// ErrIntegrity is returned when a claim references an item or user
	// that no longer exists (e.g. a concurrent cascade delete).
	ErrIntegrity = errors.New("claim references a missing item or user")
)

// GetItemWithClaims returns the item and its full claim history as one
// point-in-time snapshot, oldest claim first. Under Postgres the item row
// is locked FOR UPDATE so concurrent submissions for the same item
// serialize here; sqlite has no row locks, where the partial unique index
// alone arbitrates.
func (r *Repo) GetItemWithClaims(ctx context.Context, itemID string) (*models.Item, []models.Claim, error) {
	q := r.DB.WithContext(ctx)
	if r.DB.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var it models.Item
	if err := q.First(&it, "id = ?", itemID).Error; err != nil {
		return nil, nil, err
	}
	var cs []models.Claim
	if err := r.DB.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("claimed_at ASC").
		Find(&cs).Error; err != nil {
		return nil, nil, err
	}
	return &it, cs, nil
}

// InsertClaim assigns the claim its identifier and timestamp and writes it.
func (r *Repo) InsertClaim(ctx context.Context, c *models.Claim) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.ClaimedAt.IsZero() {
		c.ClaimedAt = time.Now().UTC()
	}
	err := r.DB.WithContext(ctx).Create(c).Error
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateApproval
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrIntegrity
	}
	return err
}

func (r *Repo) ListClaimsByItem(ctx context.Context, itemID string) ([]models.Claim, error) {
	var cs []models.Claim
	err := r.DB.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("claimed_at ASC").
		Find(&cs).Error
	return cs, err
}

func (r *Repo) ListClaimsByClaimer(ctx context.Context, claimerID string) ([]models.Claim, error) {
	var cs []models.Claim
	err := r.DB.WithContext(ctx).
		Where("claimer_id = ?", claimerID).
		Order("claimed_at DESC").
		Find(&cs).Error
	return cs, err
}

func (r *Repo) CountApprovedClaims(ctx context.Context, itemID string) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.Claim{}).
		Where("item_id = ? AND status = ?", itemID, models.ClaimApproved).
		Count(&n).Error
	return n, err
}

// IsTransient reports whether err looks like a timeout or lost connection.
// Nothing was committed, so the whole call is safe to retry.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
