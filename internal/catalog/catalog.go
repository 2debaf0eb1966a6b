package catalog

import (
	"errors"
	"fmt"
)

// Money represents a monetary value stored in minor units.
type Money = int64

// ErrUnknownKey is returned when a lookup references a key that is not in
// the catalog. Wizard state can hold keys that a catalog edit removed, so
// callers are expected to treat this as a recoverable condition.
var ErrUnknownKey = errors.New("catalog: unknown key")

// DeviceCategory identifies what kind of device occupies a line.
type DeviceCategory string

const (
	CategorySmartphone DeviceCategory = "smartphone"
	CategoryTablet     DeviceCategory = "tablet"
	CategoryWatch      DeviceCategory = "watch"
	CategoryInternet   DeviceCategory = "internet"
	CategoryOther      DeviceCategory = "other"
)

// Tier is the promotional pricing bracket a line belongs to. Base entries in
// the promotion catalog are universal and offered to every tier.
type Tier string

const (
	TierBase  Tier = "base"
	TierStart Tier = "start"
	TierPlus  Tier = "plus"
	TierPro   Tier = "pro"
)

// PromoKind distinguishes device-payment-plan promotions from
// bring-your-own-device promotions.
type PromoKind string

const (
	PromoDPP  PromoKind = "dpp"
	PromoBYOD PromoKind = "byod"
)

// TermOneTime is the promotion term sentinel for a one-time credit that is
// never amortized into the monthly recurring charge.
const TermOneTime = 0

// PlanDefinition describes a service plan. A plan is priced either flat or
// by the account-wide tiered smartphone line count (TieredPrices non-empty).
type PlanDefinition struct {
	Key      string
	Name     string
	Category DeviceCategory
	// FlatPrice applies when TieredPrices is empty.
	FlatPrice Money
	// TieredPrices is indexed by bracket: more qualifying lines on the
	// account means a lower per-line price, capped at the last entry.
	TieredPrices []Money
	// Tier is the fixed promotional tier. Ignored when DerivedTier is set.
	Tier Tier
	// DerivedTier marks the flagship plan whose tier is computed from the
	// line's add-on and feature spend rather than fixed here.
	DerivedTier bool
	// IntroEligible marks the plan that can carry the intro percentage
	// discount.
	IntroEligible bool
	// StandardInternet marks internet plans that participate in the joint
	// offer. Backup and failover plans are excluded.
	StandardInternet bool
}

// Tiered reports whether the plan participates in tiered line-count pricing.
func (p PlanDefinition) Tiered() bool { return len(p.TieredPrices) > 0 }

// AddOnDefinition maps an add-on key to its flat monthly price.
type AddOnDefinition struct {
	Key   string
	Name  string
	Price Money
}

// FeatureDefinition maps a feature key to its flat monthly price.
type FeatureDefinition struct {
	Key   string
	Name  string
	Price Money
}

// ProtectionDefinition maps a protection (or internet security) key to its
// flat monthly price.
type ProtectionDefinition struct {
	Key   string
	Name  string
	Price Money
}

// ProtectionBracket is one multi-device protection option: a flat account
// fee available once the account has at least MinLines eligible lines.
type ProtectionBracket struct {
	MinLines int
	Name     string
	Price    Money
}

// PromotionDefinition describes one promotional credit. Value is amortized
// over TermMonths unless TermMonths is TermOneTime.
type PromotionDefinition struct {
	Key            string
	Name           string
	Tier           Tier
	Value          Money
	TermMonths     int
	Kind           PromoKind
	RequiresPortIn bool
}

// OneTime reports whether the promotion is a non-amortized one-time credit.
func (p PromotionDefinition) OneTime() bool { return p.TermMonths == TermOneTime }

// Catalog is the immutable pricing reference data. It is loaded once at
// process start and shared read-only; none of its methods mutate it.
type Catalog struct {
	Plans            map[string]PlanDefinition
	AddOns           map[string]AddOnDefinition
	Features         map[string]FeatureDefinition
	Protection       map[string]ProtectionDefinition
	InternetSecurity map[string]ProtectionDefinition
	// Brackets is ordered by ascending MinLines.
	Brackets   []ProtectionBracket
	Promotions []PromotionDefinition

	// Account-level discount and surcharge constants.
	AutopayDiscount    Money
	MilitaryDiscount   Money
	JointOfferDiscount Money
	IntroDiscountBps   int
	WholeOfficeFee     Money
	EconomicAdjPerLine Money

	// Derived-tier thresholds on a line's add-on plus feature spend.
	ProThreshold   Money
	PlusThreshold  Money
	StartThreshold Money
}

// MaxBracket returns the number of tiered pricing brackets. The bracket
// index derived from the qualifying line count is clamped to MaxBracket-1.
func (c *Catalog) MaxBracket() int {
	max := 0
	for _, p := range c.Plans {
		if len(p.TieredPrices) > max {
			max = len(p.TieredPrices)
		}
	}
	return max
}

// LookupPlan resolves a plan by key and verifies it belongs to the given
// category.
func (c *Catalog) LookupPlan(category DeviceCategory, key string) (PlanDefinition, error) {
	plan, ok := c.Plans[key]
	if !ok {
		return PlanDefinition{}, fmt.Errorf("%w: plan %q", ErrUnknownKey, key)
	}
	if plan.Category != category {
		return PlanDefinition{}, fmt.Errorf("%w: plan %q not offered for category %q", ErrUnknownKey, key, category)
	}
	return plan, nil
}

// BasePrice resolves the plan's monthly base price for the given tiered
// bracket index. The index is clamped into the plan's price list.
func (c *Catalog) BasePrice(plan PlanDefinition, bracketIndex int) Money {
	if !plan.Tiered() {
		return plan.FlatPrice
	}
	if bracketIndex < 0 {
		bracketIndex = 0
	}
	if bracketIndex >= len(plan.TieredPrices) {
		bracketIndex = len(plan.TieredPrices) - 1
	}
	return plan.TieredPrices[bracketIndex]
}

// LookupAddOn resolves an add-on price by key.
func (c *Catalog) LookupAddOn(key string) (AddOnDefinition, error) {
	def, ok := c.AddOns[key]
	if !ok {
		return AddOnDefinition{}, fmt.Errorf("%w: add-on %q", ErrUnknownKey, key)
	}
	return def, nil
}

// LookupFeature resolves a feature price by key.
func (c *Catalog) LookupFeature(key string) (FeatureDefinition, error) {
	def, ok := c.Features[key]
	if !ok {
		return FeatureDefinition{}, fmt.Errorf("%w: feature %q", ErrUnknownKey, key)
	}
	return def, nil
}

// LookupProtection resolves a single-line protection price by key.
func (c *Catalog) LookupProtection(key string) (ProtectionDefinition, error) {
	def, ok := c.Protection[key]
	if !ok {
		return ProtectionDefinition{}, fmt.Errorf("%w: protection %q", ErrUnknownKey, key)
	}
	return def, nil
}

// LookupInternetSecurity resolves an internet security price by key.
func (c *Catalog) LookupInternetSecurity(key string) (ProtectionDefinition, error) {
	def, ok := c.InternetSecurity[key]
	if !ok {
		return ProtectionDefinition{}, fmt.Errorf("%w: internet security %q", ErrUnknownKey, key)
	}
	return def, nil
}

// LookupBracket resolves a multi-device protection bracket by its MinLines
// key.
func (c *Catalog) LookupBracket(minLines int) (ProtectionBracket, error) {
	for _, b := range c.Brackets {
		if b.MinLines == minLines {
			return b, nil
		}
	}
	return ProtectionBracket{}, fmt.Errorf("%w: protection bracket min=%d", ErrUnknownKey, minLines)
}

// OfferableBrackets returns the multi-device protection brackets whose
// minimum eligible-line count is met.
func (c *Catalog) OfferableBrackets(eligibleLines int) []ProtectionBracket {
	var out []ProtectionBracket
	for _, b := range c.Brackets {
		if eligibleLines >= b.MinLines {
			out = append(out, b)
		}
	}
	return out
}

// PromotionsForTier returns the promotions cataloged under the given tier
// plus the universal entries cataloged under TierBase.
func (c *Catalog) PromotionsForTier(tier Tier) []PromotionDefinition {
	var out []PromotionDefinition
	for _, p := range c.Promotions {
		if p.Tier == tier || p.Tier == TierBase {
			out = append(out, p)
		}
	}
	return out
}

// LookupPromotion resolves a promotion by key across all tiers.
func (c *Catalog) LookupPromotion(key string) (PromotionDefinition, error) {
	for _, p := range c.Promotions {
		if p.Key == key {
			return p, nil
		}
	}
	return PromotionDefinition{}, fmt.Errorf("%w: promotion %q", ErrUnknownKey, key)
}

// PlansForCategory returns the plans offered for a device category, used by
// the wizard to build its selection menus.
func (c *Catalog) PlansForCategory(category DeviceCategory) []PlanDefinition {
	var out []PlanDefinition
	for _, p := range c.Plans {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}
