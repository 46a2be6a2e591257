package settings_repo

import (
	"context"
	"errors"
	"fmt"

	"openpay-gateway/internal/domain/payment"
	"openpay-gateway/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var settingsColumns = []string{
	"store_id", "use_sandbox", "api_token", "region_iso",
	"min_order_total", "max_order_total", "additional_fee", "additional_fee_percentage",
	"plan_tiers", "display_product_page_widget", "display_product_listing_widget",
	"display_cart_widget", "display_info_belt_widget", "display_landing_page_widget",
	"log_callback_errors",
}

// PgSettingsRepo persists per-store gateway settings. A store with no row
// yet gets the defaults; Save upserts.
type PgSettingsRepo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func NewPgSettingsRepo(pg *postgres.Postgres) *PgSettingsRepo {
	return &PgSettingsRepo{db: pg.Pool, builder: pg.Builder}
}

func (r *PgSettingsRepo) Load(ctx context.Context, storeID int64) (payment.Settings, error) {
	query, args, err := r.builder.Select(settingsColumns...).
		From("openpay_settings").
		Where(squirrel.Eq{"store_id": storeID}).
		ToSql()
	if err != nil {
		return payment.Settings{}, fmt.Errorf("build settings query: %w", err)
	}

	settings, err := parseSettingsRow(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return payment.DefaultSettings(storeID), nil
	}
	if err != nil {
		return payment.Settings{}, fmt.Errorf("load settings for store %d: %w", storeID, err)
	}
	return settings, nil
}

func (r *PgSettingsRepo) Save(ctx context.Context, settings payment.Settings) error {
	query, args, err := r.builder.Insert("openpay_settings").
		Columns(settingsColumns...).
		Values(
			settings.StoreID, settings.UseSandbox, settings.APIToken, settings.RegionTwoLetterISOCode,
			settings.MinOrderTotal, settings.MaxOrderTotal, settings.AdditionalFee, settings.AdditionalFeePercentage,
			settings.PlanTiers, settings.DisplayProductPageWidget, settings.DisplayProductListingWidget,
			settings.DisplayCartWidget, settings.DisplayInfoBeltWidget, settings.DisplayLandingPageWidget,
			settings.LogCallbackErrors,
		).
		Suffix(`ON CONFLICT (store_id) DO UPDATE SET
			use_sandbox = EXCLUDED.use_sandbox,
			api_token = EXCLUDED.api_token,
			region_iso = EXCLUDED.region_iso,
			min_order_total = EXCLUDED.min_order_total,
			max_order_total = EXCLUDED.max_order_total,
			additional_fee = EXCLUDED.additional_fee,
			additional_fee_percentage = EXCLUDED.additional_fee_percentage,
			plan_tiers = EXCLUDED.plan_tiers,
			display_product_page_widget = EXCLUDED.display_product_page_widget,
			display_product_listing_widget = EXCLUDED.display_product_listing_widget,
			display_cart_widget = EXCLUDED.display_cart_widget,
			display_info_belt_widget = EXCLUDED.display_info_belt_widget,
			display_landing_page_widget = EXCLUDED.display_landing_page_widget,
			log_callback_errors = EXCLUDED.log_callback_errors,
			updated_at = NOW()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build settings upsert: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("save settings for store %d: %w", settings.StoreID, err)
	}
	return nil
}

func parseSettingsRow(row pgx.Row) (payment.Settings, error) {
	var s payment.Settings
	err := row.Scan(
		&s.StoreID, &s.UseSandbox, &s.APIToken, &s.RegionTwoLetterISOCode,
		&s.MinOrderTotal, &s.MaxOrderTotal, &s.AdditionalFee, &s.AdditionalFeePercentage,
		&s.PlanTiers, &s.DisplayProductPageWidget, &s.DisplayProductListingWidget,
		&s.DisplayCartWidget, &s.DisplayInfoBeltWidget, &s.DisplayLandingPageWidget,
		&s.LogCallbackErrors,
	)
	if err != nil {
		return payment.Settings{}, err
	}
	return s, nil
}
