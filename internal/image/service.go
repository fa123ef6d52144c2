package image

import (
	"context"
	"fmt"

	"github.com/bozhidarvelkov/pixelmorph/internal/logger"
	"github.com/bozhidarvelkov/pixelmorph/internal/models"
	"github.com/bozhidarvelkov/pixelmorph/internal/shared"
	"github.com/bozhidarvelkov/pixelmorph/internal/transform"
	"github.com/bozhidarvelkov/pixelmorph/internal/user"
)

// SaveInput carries the form fields of a transformation submission.
type SaveInput struct {
	Title              string         `json:"title"`
	TransformationType string         `json:"transformation_type"`
	PublicID           string         `json:"public_id"`
	SecureURL          string         `json:"secure_url"`
	Width              *int           `json:"width,omitempty"`
	Height             *int           `json:"height,omitempty"`
	AspectRatio        *string        `json:"aspect_ratio,omitempty"`
	Color              *string        `json:"color,omitempty"`
	Prompt             *string        `json:"prompt,omitempty"`
	Config             map[string]any `json:"config,omitempty"`
}

type Service struct {
	images    Repository
	users     user.Repository
	cloudName string
}

func NewService(images Repository, users user.Repository, cloudName string) *Service {
	return &Service{images: images, users: users, cloudName: cloudName}
}

// composeConfig builds the transformation partial for this submission and
// merges it over the previously accumulated config.
func (s *Service) composeConfig(t transform.Type, in SaveInput, base map[string]any) map[string]any {
	cfg := transform.Definitions[t].Config
	prompt := ""
	if in.Prompt != nil {
		prompt = *in.Prompt
	}
	toColor := ""
	if in.Color != nil {
		toColor = *in.Color
	}
	cfg = cfg.WithPrompt(prompt, toColor)
	return transform.MergeMaps(cfg.ToMap(), base)
}

func (s *Service) buildImage(t transform.Type, in SaveInput, config map[string]any, authorID string) *models.Image {
	width := transform.ImageWidth(t, in.AspectRatio, in.Width)
	height := transform.ImageHeight(t, in.AspectRatio, in.Height)
	url := transform.DeliveryURL(s.cloudName, in.PublicID, width, height, config)

	return &models.Image{
		Title:              in.Title,
		TransformationType: string(t),
		PublicID:           in.PublicID,
		SecureURL:          in.SecureURL,
		Width:              in.Width,
		Height:             in.Height,
		Config:             config,
		TransformationURL:  &url,
		AspectRatio:        in.AspectRatio,
		Color:              in.Color,
		Prompt:             in.Prompt,
		AuthorID:           authorID,
	}
}

// Add persists a new transformation and debits the author's balance. The
// balance check happens before the write and is not atomic with the debit;
// concurrent submissions can still drive the balance negative, which the
// ledger permits.
func (s *Service) Add(ctx context.Context, in SaveInput, author *models.User) (*models.Image, error) {
	t, err := transform.ParseType(in.TransformationType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrorValidation, err)
	}

	if author.CreditBalance < -transform.CreditFee {
		return nil, fmt.Errorf("%w: balance %d", shared.ErrorInsufficientBalance, author.CreditBalance)
	}

	config := s.composeConfig(t, in, in.Config)
	img := s.buildImage(t, in, config, author.ID)

	if err := s.images.Create(ctx, img); err != nil {
		return nil, err
	}

	if _, err := s.users.AdjustCredits(ctx, author.ID, transform.CreditFee); err != nil {
		// The image is already persisted; surface the failed debit rather
		// than rolling back (see the transaction store for the mirror case).
		logger.Log.Error("debit after image create failed", "image_id", img.ID, "user_id", author.ID, "error", err)
		return nil, fmt.Errorf("image saved but debit failed: %w", err)
	}

	return img, nil
}

// Update re-applies a transformation to an existing image, merging the new
// parameters over the stored config, and debits the author again.
func (s *Service) Update(ctx context.Context, id string, in SaveInput, author *models.User) (*models.Image, error) {
	existing, err := s.images.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.AuthorID != author.ID {
		return nil, fmt.Errorf("image %s does not belong to user %s: %w", id, author.ID, shared.ErrorNotFound)
	}

	t, err := transform.ParseType(in.TransformationType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrorValidation, err)
	}

	if author.CreditBalance < -transform.CreditFee {
		return nil, fmt.Errorf("%w: balance %d", shared.ErrorInsufficientBalance, author.CreditBalance)
	}

	config := s.composeConfig(t, in, existing.Config)
	img := s.buildImage(t, in, config, author.ID)
	img.ID = existing.ID
	img.CreatedAt = existing.CreatedAt

	if err := s.images.Update(ctx, img); err != nil {
		return nil, err
	}

	if _, err := s.users.AdjustCredits(ctx, author.ID, transform.CreditFee); err != nil {
		logger.Log.Error("debit after image update failed", "image_id", img.ID, "user_id", author.ID, "error", err)
		return nil, fmt.Errorf("image saved but debit failed: %w", err)
	}

	return img, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.Image, error) {
	return s.images.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string, author *models.User) error {
	existing, err := s.images.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.AuthorID != author.ID {
		return fmt.Errorf("image %s does not belong to user %s: %w", id, author.ID, shared.ErrorNotFound)
	}
	return s.images.Delete(ctx, id)
}

func (s *Service) ListByAuthor(ctx context.Context, authorID string, page, pageSize int) ([]*models.Image, error) {
	return s.images.ListByAuthor(ctx, authorID, page, pageSize)
}
