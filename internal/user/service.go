package user

import (
	"context"
	"strings"

	"github.com/bozhidarvelkov/pixelmorph/internal/auth"
	"github.com/bozhidarvelkov/pixelmorph/internal/models"
)

type Service interface {
	GetOrCreate(ctx context.Context, identity *auth.User) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, clerkID string) (*models.User, error)
}

type UserService struct {
	repo Repository
}

func NewUserService(repo Repository) *UserService {
	return &UserService{repo: repo}
}

// GetOrCreate resolves an identity-provider subject to a stored user,
// provisioning one with the default plan and starting balance on first sight.
func (s *UserService) GetOrCreate(ctx context.Context, identity *auth.User) (*models.User, error) {
	username := identity.Username
	if username == "" {
		username = usernameFromEmail(identity.Email)
	}
	return s.repo.GetOrCreate(ctx, identity.ID, identity.Email, username, identity.Photo, identity.FirstName, identity.LastName)
}

func (s *UserService) UpdateProfile(ctx context.Context, user *models.User) error {
	return s.repo.Update(ctx, user)
}

func (s *UserService) Delete(ctx context.Context, clerkID string) (*models.User, error) {
	return s.repo.Delete(ctx, clerkID)
}

func usernameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
