package pricing

import (
	"fmt"

	"github.com/noah-isme/quotegen/internal/catalog"
)

// Compute calculates the full quote for the given configuration. It is a
// pure function: no I/O, no hidden state, safe to call on every view
// refresh. Unresolvable catalog keys contribute zero and surface a warning
// instead of failing the computation.
func Compute(cfg QuoteConfiguration, cat *catalog.Catalog) QuoteResult {
	result := QuoteResult{
		Lines: make([]LineBreakdown, 0, len(cfg.Lines)),
	}
	if len(cfg.Lines) == 0 {
		result.Warnings = append(result.Warnings, Warning{
			Code:    WarnNoLines,
			Message: "quote has no lines",
		})
		return result
	}

	// Step 1: account-wide tiered bracket index. Every tiered line prices
	// at the same bracket.
	tieredCount := TieredLineCount(cfg, cat)
	bracketIndex := 0
	if tieredCount > 0 {
		bracketIndex = tieredCount
		if max := cat.MaxBracket(); bracketIndex > max {
			bracketIndex = max
		}
		bracketIndex--
	}
	result.TierBracketIndex = bracketIndex

	// A stale joint-offer flag can persist after a line edit removes the
	// qualifying mix. Fall back to full price rather than honoring it.
	if cfg.JointOffer && !JointOfferAvailable(cfg, cat) {
		cfg.JointOffer = false
		result.Warnings = append(result.Warnings, Warning{
			Code:    WarnIneligibleJointOffer,
			Message: "joint offer requires a smartphone line and a standard internet line",
		})
	}

	for i, line := range cfg.Lines {
		bd := computeLine(cfg, line, cat, bracketIndex, i+1, &result)
		result.Lines = append(result.Lines, bd)
		result.MonthlyRecurring += bd.Total
		result.BasePlanSubtotal += bd.Base - bd.AutopayDiscount - bd.MilitaryDiscount - bd.IntroDiscount
	}

	// Account-level add-ons: multi-device protection bracket and whole
	// office protect.
	if cfg.ProtectionBracketMin > 0 {
		bracket, err := cat.LookupBracket(cfg.ProtectionBracketMin)
		if err != nil {
			result.Warnings = append(result.Warnings, Warning{
				Code:    WarnUnknownBracket,
				Message: err.Error(),
			})
		} else if eligible := ProtectionEligibleLines(cfg); eligible < bracket.MinLines {
			result.Warnings = append(result.Warnings, Warning{
				Code:    WarnIneligibleBracket,
				Message: fmt.Sprintf("bracket requires %d eligible lines, account has %d", bracket.MinLines, eligible),
			})
		} else {
			result.AccountAddOns += bracket.Price
		}
	}
	if cfg.WholeOfficeProtect {
		result.AccountAddOns += cat.WholeOfficeFee
	}

	result.EconomicAdjustment = Money(len(cfg.Lines)) * cat.EconomicAdjPerLine
	result.MonthlyRecurring += result.AccountAddOns + result.EconomicAdjustment
	return result
}

func computeLine(cfg QuoteConfiguration, line LineConfiguration, cat *catalog.Catalog, bracketIndex, lineNo int, result *QuoteResult) LineBreakdown {
	bd := LineBreakdown{
		PlanKey:       line.PlanKey,
		Category:      line.Category,
		Tier:          catalog.TierBase,
		DevicePayment: line.DevicePayment,
	}
	if bd.DevicePayment < 0 {
		bd.DevicePayment = 0
	}

	// Step 2: base price, with the joint-offer reduction folded in for
	// standard internet lines.
	plan, planErr := cat.LookupPlan(line.Category, line.PlanKey)
	if planErr != nil {
		result.Warnings = append(result.Warnings, Warning{Code: WarnUnknownPlan, Line: lineNo, Message: planErr.Error()})
	} else {
		bd.PlanName = plan.Name
		bd.Base = cat.BasePrice(plan, bracketIndex)
		if cfg.JointOffer && line.Category == catalog.CategoryInternet && plan.StandardInternet {
			bd.Base -= cat.JointOfferDiscount
		}
	}

	// Step 3: extras. The extras sum, not the plan identity, decides the
	// derived tier for the flagship plan.
	for _, key := range line.AddOns {
		def, err := cat.LookupAddOn(key)
		if err != nil {
			result.Warnings = append(result.Warnings, Warning{Code: WarnUnknownAddOn, Line: lineNo, Message: err.Error()})
			continue
		}
		bd.Extras = append(bd.Extras, ExtraItem{Key: def.Key, Name: def.Name, Price: def.Price})
		bd.ExtrasTotal += def.Price
	}
	for _, key := range line.Features {
		def, err := cat.LookupFeature(key)
		if err != nil {
			result.Warnings = append(result.Warnings, Warning{Code: WarnUnknownFeature, Line: lineNo, Message: err.Error()})
			continue
		}
		bd.Extras = append(bd.Extras, ExtraItem{Key: def.Key, Name: def.Name, Price: def.Price})
		bd.ExtrasTotal += def.Price
	}
	if planErr == nil {
		bd.Tier = DeriveTier(plan, bd.ExtrasTotal, cat)
	}

	// Step 4: autopay applies only to tiered plans.
	if cfg.Autopay && planErr == nil && plan.Tiered() {
		bd.AutopayDiscount = cat.AutopayDiscount
	}

	// Step 5: military and intro. Military applies to any smartphone line;
	// intro is a percentage of the post-autopay base, only on the
	// intro-eligible plan and only while military is off.
	if cfg.Military && line.Category == catalog.CategorySmartphone {
		bd.MilitaryDiscount = cat.MilitaryDiscount
	}
	if line.IntroDiscount && !cfg.Military && planErr == nil && plan.IntroEligible {
		discounted := bd.Base - bd.AutopayDiscount
		bd.IntroDiscount = discounted * Money(cat.IntroDiscountBps) / 10000
	}

	// Step 6: protection. Internet lines use the internet security catalog;
	// other categories contribute nothing while an account multi-device
	// bracket is selected.
	if line.Category == catalog.CategoryInternet {
		if line.InternetSecurityKey != "" {
			def, err := cat.LookupInternetSecurity(line.InternetSecurityKey)
			if err != nil {
				result.Warnings = append(result.Warnings, Warning{Code: WarnUnknownInternetSecurity, Line: lineNo, Message: err.Error()})
			} else {
				bd.ProtectionTotal = def.Price
				bd.ProtectionName = def.Name
			}
		}
	} else if line.ProtectionKey != "" && cfg.ProtectionBracketMin == 0 {
		def, err := cat.LookupProtection(line.ProtectionKey)
		if err != nil {
			result.Warnings = append(result.Warnings, Warning{Code: WarnUnknownProtection, Line: lineNo, Message: err.Error()})
		} else {
			bd.ProtectionTotal = def.Price
			bd.ProtectionName = def.Name
		}
	}

	// Step 7: promotion credit. One-time values accumulate separately and
	// never touch the monthly recurring total.
	applyPromotion(line, bd.Tier, cat, lineNo, &bd, result)

	// Step 8: line total, never clamped.
	bd.Total = bd.Base - bd.AutopayDiscount - bd.MilitaryDiscount - bd.IntroDiscount +
		bd.DevicePayment + bd.ExtrasTotal + bd.ProtectionTotal - bd.PromoMonthlyCredit
	return bd
}

// DeriveTier resolves a line's promotional tier. The flagship plan derives
// it from the extras spend against fixed thresholds; every other plan
// carries it as a catalog attribute.
func DeriveTier(plan catalog.PlanDefinition, extrasTotal Money, cat *catalog.Catalog) catalog.Tier {
	if !plan.DerivedTier {
		return plan.Tier
	}
	switch {
	case extrasTotal >= cat.ProThreshold:
		return catalog.TierPro
	case extrasTotal >= cat.PlusThreshold:
		return catalog.TierPlus
	case extrasTotal >= cat.StartThreshold:
		return catalog.TierStart
	default:
		return catalog.TierBase
	}
}

func applyPromotion(line LineConfiguration, tier catalog.Tier, cat *catalog.Catalog, lineNo int, bd *LineBreakdown, result *QuoteResult) {
	switch line.PromotionKey {
	case "":
		return
	case PromoCustom:
		value := line.CustomPromoValue
		if value < 0 {
			value = 0
		}
		bd.PromoName = "Custom Credit"
		bd.PromoValue = value
		bd.PromoTermMonths = line.CustomPromoTerm
		creditPromotion(value, line.CustomPromoTerm, bd, result)
		return
	}

	promo, err := cat.LookupPromotion(line.PromotionKey)
	if err != nil {
		result.Warnings = append(result.Warnings, Warning{Code: WarnUnknownPromotion, Line: lineNo, Message: err.Error()})
		return
	}
	// A selection can go stale after a later edit (tier change, BYOD or
	// port-in toggle). Fall back to zero credit rather than honoring it.
	if !PromotionEligible(line, tier, promo) {
		result.Warnings = append(result.Warnings, Warning{
			Code:    WarnIneligiblePromotion,
			Line:    lineNo,
			Message: fmt.Sprintf("promotion %q no longer eligible for this line", promo.Key),
		})
		return
	}
	bd.PromoName = promo.Name
	bd.PromoValue = promo.Value
	bd.PromoTermMonths = promo.TermMonths
	creditPromotion(promo.Value, promo.TermMonths, bd, result)
}

func creditPromotion(value Money, termMonths int, bd *LineBreakdown, result *QuoteResult) {
	if value <= 0 {
		return
	}
	if termMonths == catalog.TermOneTime {
		result.OneTimeCredits += value
		return
	}
	if termMonths < 0 {
		return
	}
	bd.PromoMonthlyCredit = value / Money(termMonths)
}
