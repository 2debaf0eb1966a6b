package pricing

import "github.com/noah-isme/quotegen/internal/catalog"

// Money represents a monetary value stored in minor units.
type Money = catalog.Money

// PromoCustom is the promotion selection sentinel for a user-entered credit
// with its own value and term.
const PromoCustom = "custom"

// LineConfiguration holds everything the wizard collects for one service
// line. Zero values mean "none selected".
type LineConfiguration struct {
	Category catalog.DeviceCategory
	PlanKey  string

	AddOns   []string
	Features []string

	// ProtectionKey selects single-line protection. Mutually exclusive with
	// InternetSecurityKey: internet lines use the internet security catalog,
	// every other category uses the protection catalog.
	ProtectionKey       string
	InternetSecurityKey string

	// DevicePayment is the user-entered monthly device installment.
	DevicePayment Money

	// IntroDiscount requests the intro percentage discount. Only honored on
	// the intro-eligible plan and only while the account military discount
	// is off.
	IntroDiscount bool

	// PromotionKey is a catalog promotion key, PromoCustom, or empty.
	PromotionKey     string
	CustomPromoValue Money
	CustomPromoTerm  int

	BYOD   bool
	PortIn bool
}

// QuoteConfiguration is the aggregate a wizard session owns: the ordered
// lines plus account-wide flags and display-only sale metadata. Line order
// matters only for display; pricing depends on aggregate counts.
type QuoteConfiguration struct {
	Lines []LineConfiguration

	Autopay    bool
	Military   bool
	JointOffer bool

	// ProtectionBracketMin selects the account multi-device protection
	// bracket by its minimum-line key. Zero means no bracket.
	ProtectionBracketMin int
	WholeOfficeProtect   bool

	// Sale metadata, display-only.
	BusinessName string
	ContactName  string
	RepName      string
	TaxRateBps   int
}

// ExtraItem is one priced add-on or feature on a line breakdown.
type ExtraItem struct {
	Key   string
	Name  string
	Price Money
}

// LineBreakdown is the per-line financial result.
type LineBreakdown struct {
	PlanKey  string
	PlanName string
	Category catalog.DeviceCategory
	Tier     catalog.Tier

	Base             Money
	AutopayDiscount  Money
	MilitaryDiscount Money
	IntroDiscount    Money

	DevicePayment Money
	ExtrasTotal   Money
	Extras        []ExtraItem

	ProtectionTotal Money
	ProtectionName  string

	PromoMonthlyCredit Money
	PromoName          string
	PromoTermMonths    int
	PromoValue         Money

	// Total is base minus discounts plus device payment, extras and
	// protection, minus the monthly promotion credit. Never clamped; a
	// negative total is preserved as computed.
	Total Money
}

// Warning codes surfaced by Compute.
const (
	WarnUnknownPlan             = "unknown_plan"
	WarnUnknownAddOn            = "unknown_addon"
	WarnUnknownFeature          = "unknown_feature"
	WarnUnknownProtection       = "unknown_protection"
	WarnUnknownInternetSecurity = "unknown_internet_security"
	WarnUnknownPromotion        = "unknown_promotion"
	WarnIneligiblePromotion     = "ineligible_promotion"
	WarnUnknownBracket          = "unknown_bracket"
	WarnIneligibleBracket       = "ineligible_bracket"
	WarnIneligibleJointOffer    = "ineligible_joint_offer"
	WarnNoLines                 = "no_lines"
)

// Warning records a recoverable configuration problem encountered during a
// computation. Line is 1-based; zero marks an account-level warning.
type Warning struct {
	Code    string
	Line    int
	Message string
}

// QuoteResult is the full output of one Compute call.
type QuoteResult struct {
	Lines []LineBreakdown

	// MonthlyRecurring is the account monthly total: line totals plus
	// account-level add-ons plus the economic adjustment.
	MonthlyRecurring Money

	// OneTimeCredits aggregates one-time promotion values. It never feeds
	// the monthly recurring total; it belongs to the first-bill section of
	// the exported document.
	OneTimeCredits Money

	// AccountAddOns is the multi-device protection bracket fee plus the
	// whole-office protect fee.
	AccountAddOns Money

	// BasePlanSubtotal sums the per-line discounted base component, the
	// figure downstream tax estimation multiplies.
	BasePlanSubtotal Money

	EconomicAdjustment Money
	TierBracketIndex   int

	Warnings []Warning
}
