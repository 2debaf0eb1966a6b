package pricing

import "github.com/noah-isme/quotegen/internal/catalog"

// TieredLineCount counts the lines whose plan participates in tiered
// line-count pricing. Unknown plan keys do not count.
func TieredLineCount(cfg QuoteConfiguration, cat *catalog.Catalog) int {
	count := 0
	for _, line := range cfg.Lines {
		plan, err := cat.LookupPlan(line.Category, line.PlanKey)
		if err != nil {
			continue
		}
		if plan.Tiered() {
			count++
		}
	}
	return count
}

// ProtectionEligibleLines counts the lines that a multi-device protection
// bracket can cover: smartphones, tablets, watches and jetpack-style other
// devices. Internet lines are covered by internet security instead.
func ProtectionEligibleLines(cfg QuoteConfiguration) int {
	count := 0
	for _, line := range cfg.Lines {
		switch line.Category {
		case catalog.CategorySmartphone, catalog.CategoryTablet, catalog.CategoryWatch, catalog.CategoryOther:
			count++
		}
	}
	return count
}

// OfferableBrackets returns the multi-device protection brackets the account
// currently qualifies for.
func OfferableBrackets(cfg QuoteConfiguration, cat *catalog.Catalog) []catalog.ProtectionBracket {
	return cat.OfferableBrackets(ProtectionEligibleLines(cfg))
}

// JointOfferAvailable reports whether the account qualifies for the joint
// offer: at least one smartphone line and one standard internet line.
func JointOfferAvailable(cfg QuoteConfiguration, cat *catalog.Catalog) bool {
	hasSmartphone := false
	hasStandardInternet := false
	for _, line := range cfg.Lines {
		switch line.Category {
		case catalog.CategorySmartphone:
			hasSmartphone = true
		case catalog.CategoryInternet:
			plan, err := cat.LookupPlan(line.Category, line.PlanKey)
			if err == nil && plan.StandardInternet {
				hasStandardInternet = true
			}
		}
	}
	return hasSmartphone && hasStandardInternet
}

// PromotionEligible reports whether a promotion may apply to the line at its
// derived tier. The wizard uses it to decide what to offer; the engine uses
// it to decide what to honor when a stale selection persists.
func PromotionEligible(line LineConfiguration, tier catalog.Tier, promo catalog.PromotionDefinition) bool {
	if promo.Tier != tier && promo.Tier != catalog.TierBase {
		return false
	}
	if line.BYOD && promo.Kind == catalog.PromoDPP {
		return false
	}
	if !line.BYOD && promo.Kind == catalog.PromoBYOD {
		return false
	}
	if promo.RequiresPortIn && !line.PortIn {
		return false
	}
	return true
}

// OfferablePromotions returns the promotions the line may select at its
// derived tier, filtered by BYOD and port-in flags.
func OfferablePromotions(line LineConfiguration, tier catalog.Tier, cat *catalog.Catalog) []catalog.PromotionDefinition {
	var out []catalog.PromotionDefinition
	for _, promo := range cat.PromotionsForTier(tier) {
		if PromotionEligible(line, tier, promo) {
			out = append(out, promo)
		}
	}
	return out
}
