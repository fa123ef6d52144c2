package image

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bozhidarvelkov/pixelmorph/internal/models"
	"github.com/bozhidarvelkov/pixelmorph/internal/shared"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type Repository interface {
	Create(ctx context.Context, img *models.Image) error
	GetByID(ctx context.Context, id string) (*models.Image, error)
	Update(ctx context.Context, img *models.Image) error
	Delete(ctx context.Context, id string) error
	ListByAuthor(ctx context.Context, authorID string, page, pageSize int) ([]*models.Image, error)
}

type ImageRepository struct {
	db *bun.DB
}

func NewImageRepository(db *bun.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

func validateRequired(img *models.Image) error {
	required := []struct {
		name  string
		value string
	}{
		{"title", img.Title},
		{"transformation_type", img.TransformationType},
		{"public_id", img.PublicID},
		{"secure_url", img.SecureURL},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%w: %s is required", shared.ErrorValidation, r.name)
		}
	}
	return nil
}

func (r *ImageRepository) Create(ctx context.Context, img *models.Image) error {
	if err := validateRequired(img); err != nil {
		return err
	}

	imageDB := models.ImageFromDomain(img)
	if imageDB.ID == "" {
		imageDB.ID = uuid.New().String()
	}
	imageDB.CreatedAt = time.Now()
	imageDB.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().
		Model(imageDB).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}

	*img = *imageDB.ToImage()
	return nil
}

func (r *ImageRepository) GetByID(ctx context.Context, id string) (*models.Image, error) {
	imageDB := new(models.ImageDB)
	err := r.db.NewSelect().
		Model(imageDB).
		Where("i.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("image %s: %w", id, shared.ErrorNotFound)
		}
		return nil, fmt.Errorf("failed to load image: %w", err)
	}
	return imageDB.ToImage(), nil
}

// Update replaces the mutable fields of an existing record. Ownership is not
// checked here; the service layer enforces it.
func (r *ImageRepository) Update(ctx context.Context, img *models.Image) error {
	if err := validateRequired(img); err != nil {
		return err
	}

	imageDB := models.ImageFromDomain(img)
	imageDB.UpdatedAt = time.Now()
	res, err := r.db.NewUpdate().
		Model(imageDB).
		Column("title", "transformation_type", "public_id", "secure_url", "width", "height",
			"config", "transformation_url", "aspect_ratio", "color", "prompt", "updated_at").
		Where("i.id = ?", img.ID).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update image: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update image: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("image %s: %w", img.ID, shared.ErrorNotFound)
	}

	*img = *imageDB.ToImage()
	return nil
}

func (r *ImageRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.NewDelete().
		Model((*models.ImageDB)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("image %s: %w", id, shared.ErrorNotFound)
	}
	return nil
}

func (r *ImageRepository) ListByAuthor(ctx context.Context, authorID string, page, pageSize int) ([]*models.Image, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 9
	}

	var imagesDB []*models.ImageDB
	err := r.db.NewSelect().
		Model(&imagesDB).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}

	images := make([]*models.Image, 0, len(imagesDB))
	for _, imageDB := range imagesDB {
		images = append(images, imageDB.ToImage())
	}
	return images, nil
}
