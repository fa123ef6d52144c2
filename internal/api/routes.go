package api

import (
	"github.com/bozhidarvelkov/pixelmorph/internal/auth"
	"github.com/bozhidarvelkov/pixelmorph/internal/user"
	"github.com/gorilla/mux"
)

func SetupRoutes(
	imageHandler *ImageHandler,
	userHandler *UserHandler,
	checkoutHandler *CheckoutHandler,
	jwtVerifier *auth.JWTVerifier,
	userService user.Service,
	allowedOrigin string,
) *mux.Router {
	r := mux.NewRouter()

	r.Use(CORSMiddleware(allowedOrigin))
	r.Use(LoggingMiddleware)
	r.Use(RecoveryMiddleware)

	// Webhook endpoint is authenticated by its signature, not a bearer token.
	r.HandleFunc("/webhooks/stripe", checkoutHandler.HandleWebhook).Methods("POST")

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(auth.Middleware(jwtVerifier))
	api.Use(user.Middleware(userService))

	api.HandleFunc("/me", userHandler.GetProfile).Methods("GET")
	api.HandleFunc("/me", userHandler.UpdateProfile).Methods("PATCH")
	api.HandleFunc("/me", userHandler.DeleteAccount).Methods("DELETE")

	api.HandleFunc("/images", imageHandler.AddImage).Methods("POST")
	api.HandleFunc("/images", imageHandler.ListImages).Methods("GET")
	api.HandleFunc("/images/{imageID}", imageHandler.GetImage).Methods("GET")
	api.HandleFunc("/images/{imageID}", imageHandler.UpdateImage).Methods("PUT")
	api.HandleFunc("/images/{imageID}", imageHandler.DeleteImage).Methods("DELETE")

	api.HandleFunc("/plans", checkoutHandler.ListPlans).Methods("GET")
	api.HandleFunc("/checkout", checkoutHandler.CreateCheckout).Methods("POST")
	api.HandleFunc("/transactions", checkoutHandler.ListTransactions).Methods("GET")

	return r
}
