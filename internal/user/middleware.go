package user

import (
	"context"
	"log"
	"net/http"

	"github.com/bozhidarvelkov/pixelmorph/internal/auth"
	"github.com/bozhidarvelkov/pixelmorph/internal/models"
)

type dbContextKey string

const dbUserContextKey dbContextKey = "db_user"

func GetDBUserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(dbUserContextKey).(*models.User)
	return user, ok
}

// Middleware resolves the authenticated identity to a stored user, creating
// the record on first sight, and puts it on the request context.
func Middleware(userService Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := auth.GetUserFromContext(r.Context())
			if !ok {
				http.Error(w, "Unauthorized: User not found in context", http.StatusUnauthorized)
				return
			}

			dbUser, err := userService.GetOrCreate(r.Context(), identity)
			if err != nil {
				log.Printf("Failed to get or create user: %v", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}

			ctx := context.WithValue(r.Context(), dbUserContextKey, dbUser)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
