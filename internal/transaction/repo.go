package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/bozhidarvelkov/pixelmorph/internal/models"
	"github.com/bozhidarvelkov/pixelmorph/internal/shared"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type Repository interface {
	Create(ctx context.Context, txn *models.Transaction) error
	ListByBuyer(ctx context.Context, buyerID string) ([]*models.Transaction, error)
}

type TransactionRepository struct {
	db *bun.DB
}

func NewTransactionRepository(db *bun.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create inserts a purchase record. Records are write-once: there is no
// update or delete path.
func (r *TransactionRepository) Create(ctx context.Context, txn *models.Transaction) error {
	if txn.Plan == "" || txn.BuyerID == "" {
		return fmt.Errorf("%w: plan and buyer_id are required", shared.ErrorValidation)
	}

	txnDB := models.TransactionFromDomain(txn)
	if txnDB.ID == "" {
		txnDB.ID = uuid.New().String()
	}
	txnDB.CreatedAt = time.Now()
	_, err := r.db.NewInsert().
		Model(txnDB).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	*txn = *txnDB.ToTransaction()
	return nil
}

func (r *TransactionRepository) ListByBuyer(ctx context.Context, buyerID string) ([]*models.Transaction, error) {
	var txnsDB []*models.TransactionDB
	err := r.db.NewSelect().
		Model(&txnsDB).
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	txns := make([]*models.Transaction, 0, len(txnsDB))
	for _, txnDB := range txnsDB {
		txns = append(txns, txnDB.ToTransaction())
	}
	return txns, nil
}
