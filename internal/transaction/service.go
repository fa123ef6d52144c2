package transaction

import (
	"context"
	"fmt"

	"github.com/bozhidarvelkov/pixelmorph/internal/logger"
	"github.com/bozhidarvelkov/pixelmorph/internal/models"
	"github.com/bozhidarvelkov/pixelmorph/internal/user"
)

type Service struct {
	txns  Repository
	users user.Repository
}

func NewService(txns Repository, users user.Repository) *Service {
	return &Service{txns: txns, users: users}
}

// RecordPurchase persists the completed payment and credits the buyer. The
// two writes are sequential, not a single database transaction: if the
// credit fails the purchase record stays behind without the matching balance
// change. That state is logged loudly and the error is propagated so the
// payment processor retries the webhook delivery.
func (s *Service) RecordPurchase(ctx context.Context, stripeID, plan string, amountCents int64, credits int, buyerID string) (*models.Transaction, error) {
	txn := &models.Transaction{
		StripeID:    stripeID,
		Plan:        plan,
		AmountCents: amountCents,
		Credits:     credits,
		BuyerID:     buyerID,
	}

	if err := s.txns.Create(ctx, txn); err != nil {
		return nil, err
	}

	if _, err := s.users.AdjustCredits(ctx, buyerID, credits); err != nil {
		logger.Log.Error("purchase recorded but credit failed",
			"transaction_id", txn.ID, "buyer_id", buyerID, "credits", credits, "error", err)
		return nil, fmt.Errorf("transaction %s recorded but credit failed: %w", txn.ID, err)
	}

	return txn, nil
}

func (s *Service) ListByBuyer(ctx context.Context, buyerID string) ([]*models.Transaction, error) {
	return s.txns.ListByBuyer(ctx, buyerID)
}
