package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bozhidarvelkov/pixelmorph/internal/models"
	"github.com/bozhidarvelkov/pixelmorph/internal/shared"
	"github.com/uptrace/bun"
)

type Repository interface {
	GetByID(ctx context.Context, userID string) (*models.User, error)
	GetByClerkID(ctx context.Context, clerkID string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, clerkID string) (*models.User, error)
	GetOrCreate(ctx context.Context, clerkID, email, username, photo, firstName, lastName string) (*models.User, error)
	AdjustCredits(ctx context.Context, userID string, delta int) (*models.User, error)
}

type UserRepository struct {
	db *bun.DB
}

func NewUserRepository(db *bun.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	userDB := new(models.UserDB)
	err := r.db.NewSelect().
		Model(userDB).
		Where("id = ?", userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", userID, shared.ErrorNotFound)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return userDB.ToUser(), nil
}

func (r *UserRepository) GetByClerkID(ctx context.Context, clerkID string) (*models.User, error) {
	userDB := new(models.UserDB)
	err := r.db.NewSelect().
		Model(userDB).
		Where("clerk_id = ?", clerkID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", clerkID, shared.ErrorNotFound)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return userDB.ToUser(), nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ClerkID == "" || user.Email == "" || user.Username == "" {
		return fmt.Errorf("%w: clerk_id, email and username are required", shared.ErrorValidation)
	}

	userDB := models.UserFromDomain(user)
	userDB.CreatedAt = time.Now()
	userDB.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().
		Model(userDB).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	*user = *userDB.ToUser()
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	userDB := models.UserFromDomain(user)
	userDB.UpdatedAt = time.Now()
	res, err := r.db.NewUpdate().
		Model(userDB).
		Column("email", "username", "photo", "first_name", "last_name", "plan_id", "updated_at").
		Where("clerk_id = ?", user.ClerkID).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("user %s: %w", user.ClerkID, shared.ErrorNotFound)
	}

	*user = *userDB.ToUser()
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, clerkID string) (*models.User, error) {
	userDB := new(models.UserDB)
	res, err := r.db.NewDelete().
		Model(userDB).
		Where("clerk_id = ?", clerkID).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("user %s: %w", clerkID, shared.ErrorNotFound)
	}
	return userDB.ToUser(), nil
}

func (r *UserRepository) GetOrCreate(ctx context.Context, clerkID, email, username, photo, firstName, lastName string) (*models.User, error) {
	user, err := r.GetByClerkID(ctx, clerkID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, shared.ErrorNotFound) {
		return nil, err
	}

	newUser := &models.User{
		ClerkID:       clerkID,
		Email:         email,
		Username:      username,
		Photo:         photo,
		FirstName:     firstName,
		LastName:      lastName,
		PlanID:        1,
		CreditBalance: 10,
	}

	if err := r.Create(ctx, newUser); err != nil {
		return nil, err
	}

	return newUser, nil
}

// AdjustCredits applies a signed delta to the user's balance in a single
// update statement and returns the post-update record. There is no lower
// bound: a debit may drive the balance negative. Callers that want to refuse
// work on insufficient credit must check before calling; that check and this
// update are not atomic with each other.
func (r *UserRepository) AdjustCredits(ctx context.Context, userID string, delta int) (*models.User, error) {
	userDB := new(models.UserDB)
	res, err := r.db.NewUpdate().
		Model(userDB).
		Set("create_balance = create_balance + ?", delta).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", userID).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("credit adjustment failed: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("credit adjustment failed: %w", err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("user %s: %w", userID, shared.ErrorNotFound)
	}
	return userDB.ToUser(), nil
}
