package billing

// Plan is a purchasable credit package.
type Plan struct {
	ID         int
	Name       string
	PriceCents int64
	Credits    int
}

// Plans holds all credit packages keyed by plan name.
var Plans = map[string]*Plan{
	"free": {
		ID:         1,
		Name:       "free",
		PriceCents: 0,
		Credits:    20,
	},
	"pro": {
		ID:         2,
		Name:       "pro",
		PriceCents: 4000,
		Credits:    120,
	},
	"premium": {
		ID:         3,
		Name:       "premium",
		PriceCents: 19900,
		Credits:    2000,
	},
}

// PlanOrder defines the display ordering of plans.
var PlanOrder = []string{"free", "pro", "premium"}

// GetPlan returns a plan by its name.
func GetPlan(name string) *Plan {
	return Plans[name]
}
