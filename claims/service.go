// Package claims arbitrates claim submissions against found items and
// derives item status from claim history.
package claims

import (
	"context"
	"errors"

	"Gin_postgres_redis_lost_found/db"
	"Gin_postgres_redis_lost_found/models"

	"gorm.io/gorm"
)

// Service is stateless; all shared state lives in the repository, so a
// service value is safe for concurrent use and callers may be spread
// across processes.
type Service struct {
	repo *db.Repo
}

func NewService(repo *db.Repo) *Service { return &Service{repo: repo} }

// SubmitClaim records claimerID's claim on itemID. At most one claim per
// item ever reaches approved: the in-transaction status check rejects the
// common case, and the partial unique index on approved claims settles any
// race the read could not see. A rejected attempt writes nothing.
func (s *Service) SubmitClaim(ctx context.Context, itemID, claimerID string) (*models.Claim, error) {
	var claim *models.Claim
	err := s.repo.WithTransaction(ctx, func(tx *db.Repo) error {
		_, history, err := tx.GetItemWithClaims(ctx, itemID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrItemNotFound
		}
		if err != nil {
			return err
		}

		if _, err := tx.FindUserByID(ctx, claimerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if ResolveStatus(history) == StatusClaimed {
			return ErrAlreadyClaimed
		}

		c := &models.Claim{
			ItemID:    itemID,
			ClaimerID: claimerID,
			Status:    models.ClaimApproved,
		}
		if err := tx.InsertClaim(ctx, c); err != nil {
			return err
		}
		claim = c
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return claim, nil
}

// DerivedStatus computes itemID's current status from its claim history.
// Read-only; repeated calls never change stored state.
func (s *Service) DerivedStatus(ctx context.Context, itemID string) (Status, error) {
	if _, err := s.repo.FindItemByID(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrItemNotFound
		}
		return "", classify(err)
	}
	history, err := s.repo.ListClaimsByItem(ctx, itemID)
	if err != nil {
		return "", classify(err)
	}
	return ResolveStatus(history), nil
}

// ClaimHistory returns claimerID's claims, newest first. Reporting only;
// no invariant logic here.
func (s *Service) ClaimHistory(ctx context.Context, claimerID string) ([]models.Claim, error) {
	if _, err := s.repo.FindUserByID(ctx, claimerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, classify(err)
	}
	cs, err := s.repo.ListClaimsByClaimer(ctx, claimerID)
	if err != nil {
		return nil, classify(err)
	}
	return cs, nil
}

// classify maps storage errors onto the service's failure kinds. Domain
// rejections pass through untouched.
func classify(err error) error {
	switch {
	case errors.Is(err, ErrItemNotFound),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrAlreadyClaimed):
		return err
	case errors.Is(err, db.ErrDuplicateApproval):
		// Lost the race at commit time: same outcome as the pre-check.
		return ErrAlreadyClaimed
	case errors.Is(err, db.ErrIntegrity):
		return ErrConstraintViolation
	case db.IsTransient(err):
		return ErrStorageUnavailable
	}
	return err
}
