package api

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/bozhidarvelkov/pixelmorph/internal/billing"
	"github.com/bozhidarvelkov/pixelmorph/internal/transaction"
	"github.com/bozhidarvelkov/pixelmorph/internal/user"
	"github.com/stripe/stripe-go/v84"
)

type CheckoutHandler struct {
	billing *billing.Billing
	txns    *transaction.Service
}

func NewCheckoutHandler(b *billing.Billing, txns *transaction.Service) *CheckoutHandler {
	return &CheckoutHandler{billing: b, txns: txns}
}

type CreateCheckoutRequest struct {
	Plan string `json:"plan"`
}

type CreateCheckoutResponse struct {
	CheckoutURL string `json:"checkout_url"`
	SessionID   string `json:"session_id"`
}

type PlanResponse struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Credits    int    `json:"credits"`
}

// CreateCheckout starts a payment session for a credit package and hands the
// buyer off to the payment processor. Nothing is persisted here; the flow
// resumes in HandleWebhook when the processor reports completion.
func (h *CheckoutHandler) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	dbUser, ok := user.GetDBUserFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req CreateCheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	plan := billing.GetPlan(req.Plan)
	if plan == nil {
		http.Error(w, "Invalid plan", http.StatusBadRequest)
		return
	}
	if plan.PriceCents == 0 {
		http.Error(w, "Plan is not purchasable", http.StatusBadRequest)
		return
	}

	amount := float64(plan.PriceCents) / 100
	session, err := h.billing.CheckoutCredits(r.Context(), plan.Name, amount, plan.Credits, dbUser.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, CreateCheckoutResponse{
		CheckoutURL: session.URL,
		SessionID:   session.ID,
	})
}

func (h *CheckoutHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	plans := make([]PlanResponse, 0, len(billing.PlanOrder))
	for _, name := range billing.PlanOrder {
		p := billing.Plans[name]
		plans = append(plans, PlanResponse{
			ID:         p.ID,
			Name:       p.Name,
			PriceCents: p.PriceCents,
			Credits:    p.Credits,
		})
	}

	writeJSON(w, plans)
}

// ListTransactions returns the authenticated user's purchase history,
// newest first.
func (h *CheckoutHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	dbUser, ok := user.GetDBUserFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	txns, err := h.txns.ListByBuyer(r.Context(), dbUser.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, txns)
}

func (h *CheckoutHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("Failed to read webhook body: %v", err)
		http.Error(w, "Failed to read body", http.StatusBadRequest)
		return
	}

	signature := r.Header.Get("Stripe-Signature")
	event, err := h.billing.VerifyWebhookSignature(payload, signature)
	if err != nil {
		log.Printf("Webhook signature verification failed: %v", err)
		http.Error(w, "Invalid signature", http.StatusUnauthorized)
		return
	}

	if event.Type == "checkout.session.completed" {
		if err := h.handleCheckoutCompleted(r, event); err != nil {
			log.Printf("Webhook %s handling failed: %v", event.Type, err)
			http.Error(w, "Webhook handling failed", http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
}

func (h *CheckoutHandler) handleCheckoutCompleted(r *http.Request, event *stripe.Event) error {
	session, err := parseEventData[checkoutSession](event)
	if err != nil {
		return err
	}

	buyerID := session.Metadata["buyerId"]
	plan := session.Metadata["plan"]
	if buyerID == "" || plan == "" {
		// Not a session this service started; ACK so the processor
		// stops redelivering it.
		log.Printf("Skipping checkout session %s without purchase metadata", session.ID)
		return nil
	}

	credits, err := strconv.Atoi(session.Metadata["credits"])
	if err != nil {
		return fmt.Errorf("checkout session %s: bad credits metadata %q: %v",
			session.ID, session.Metadata["credits"], err)
	}

	txn, err := h.txns.RecordPurchase(
		r.Context(),
		session.ID,
		plan,
		session.AmountTotal,
		credits,
		buyerID,
	)
	if err != nil {
		return err
	}

	log.Printf("Purchase recorded: transaction=%s plan=%s credits=%d buyer=%s",
		txn.ID, txn.Plan, txn.Credits, txn.BuyerID)
	return nil
}

func parseEventData[T any](event *stripe.Event) (*T, error) {
	var data T
	if err := json.Unmarshal(event.Data.Raw, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

type checkoutSession struct {
	ID          string            `json:"id"`
	AmountTotal int64             `json:"amount_total"`
	Metadata    map[string]string `json:"metadata"`
}
