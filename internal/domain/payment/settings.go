package payment

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source settings.go -destination mock_settings.go -package payment

// Settings is the per-store gateway configuration. The orchestration loads
// a snapshot once per call and treats it as immutable for that call.
type Settings struct {
	StoreID                 int64
	UseSandbox              bool
	APIToken                string
	RegionTwoLetterISOCode  string
	MinOrderTotal           decimal.Decimal
	MaxOrderTotal           decimal.Decimal
	AdditionalFee           decimal.Decimal
	AdditionalFeePercentage bool
	PlanTiers               string

	DisplayProductPageWidget    bool
	DisplayProductListingWidget bool
	DisplayCartWidget           bool
	DisplayInfoBeltWidget       bool
	DisplayLandingPageWidget    bool
	LogCallbackErrors           bool
}

// SettingsRepo loads and persists per-store settings snapshots.
type SettingsRepo interface {
	Load(ctx context.Context, storeID int64) (Settings, error)
	Save(ctx context.Context, settings Settings) error
}

// DefaultSettings returns the configuration a freshly installed store gets.
func DefaultSettings(storeID int64) Settings {
	return Settings{
		StoreID:                     storeID,
		UseSandbox:                  true,
		PlanTiers:                   "2,4,6",
		DisplayProductPageWidget:    true,
		DisplayProductListingWidget: true,
		DisplayCartWidget:           true,
		DisplayInfoBeltWidget:       true,
		DisplayLandingPageWidget:    true,
		LogCallbackErrors:           true,
	}
}

// Region resolves the endpoint region for this snapshot.
func (s Settings) Region() (Region, bool) {
	return FindRegion(s.UseSandbox, s.RegionTwoLetterISOCode)
}

// HasOrderLimits reports whether both order total bounds were synced from
// the gateway. Zero bounds hide the payment method entirely.
func (s Settings) HasOrderLimits() bool {
	return !s.MinOrderTotal.IsZero() && !s.MaxOrderTotal.IsZero()
}

// NormalizePlanTiers parses a comma-separated tier list and returns it
// sorted ascending. Duplicates are kept as entered.
func NormalizePlanTiers(raw string) (string, error) {
	parts := strings.Split(raw, ",")
	tiers := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		tier, err := strconv.Atoi(p)
		if err != nil {
			return "", fmt.Errorf("invalid plan tier %q: %w", p, err)
		}
		tiers = append(tiers, tier)
	}
	if len(tiers) == 0 {
		return "", fmt.Errorf("plan tiers are empty")
	}

	sort.Ints(tiers)

	out := make([]string, len(tiers))
	for i, tier := range tiers {
		out[i] = strconv.Itoa(tier)
	}
	return strings.Join(out, ","), nil
}
