package wizard

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/quotegen/internal/catalog"
	"github.com/noah-isme/quotegen/internal/pricing"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(catalog.Default())
}

func TestSetQuantityValidation(t *testing.T) {
	s := newSession(t)
	err := s.SetQuantity(QuantityInput{Lines: 0})
	require.ErrorIs(t, err, ErrInvalidInput)

	require.NoError(t, s.SetQuantity(QuantityInput{Lines: 3}))
	require.Len(t, s.Config.Lines, 3)
	require.Equal(t, "my-biz", s.Config.Lines[0].PlanKey)
}

func TestSetQuantityPreservesConfiguredLines(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.SetQuantity(QuantityInput{Lines: 2}))
	require.NoError(t, s.UpdateLine(0, LineInput{
		Category: "smartphone",
		PlanKey:  "bus-unl-pro",
	}))

	require.NoError(t, s.SetQuantity(QuantityInput{Lines: 4}))
	require.Equal(t, "bus-unl-pro", s.Config.Lines[0].PlanKey)
	require.Equal(t, "my-biz", s.Config.Lines[3].PlanKey)

	require.NoError(t, s.SetQuantity(QuantityInput{Lines: 1}))
	require.Len(t, s.Config.Lines, 1)
}

func TestUpdateLineRejectsBadInput(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.SetQuantity(QuantityInput{Lines: 1}))

	err := s.UpdateLine(0, LineInput{Category: "smartphone", PlanKey: "no-such-plan"})
	require.ErrorIs(t, err, ErrInvalidInput)

	err = s.UpdateLine(0, LineInput{Category: "smartphone", PlanKey: "my-biz", DevicePayment: -100})
	require.ErrorIs(t, err, ErrInvalidInput)

	err = s.UpdateLine(5, LineInput{Category: "smartphone", PlanKey: "my-biz"})
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestMilitarySuppressesIntroDiscount(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.SetQuantity(QuantityInput{Lines: 1}))
	require.NoError(t, s.UpdateLine(0, LineInput{
		Category:      "smartphone",
		PlanKey:       "my-biz",
		IntroDiscount: true,
	}))
	require.True(t, s.Config.Lines[0].IntroDiscount)

	// Turning military on clears the intro flag on every line.
	require.NoError(t, s.SetAccount(AccountInput{Military: true}))
	require.False(t, s.Config.Lines[0].IntroDiscount)

	// And while military is active the intro flag cannot be set back.
	require.NoError(t, s.UpdateLine(0, LineInput{
		Category:      "smartphone",
		PlanKey:       "my-biz",
		IntroDiscount: true,
	}))
	require.False(t, s.Config.Lines[0].IntroDiscount)
}

func TestIntroDiscountIgnoredOnNonFlagshipPlan(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.SetQuantity(QuantityInput{Lines: 1}))
	require.NoError(t, s.UpdateLine(0, LineInput{
		Category:      "smartphone",
		PlanKey:       "bus-unl-start",
		IntroDiscount: true,
	}))
	require.False(t, s.Config.Lines[0].IntroDiscount)
}

func TestBracketSelectionClearsLineProtection(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.SetQuantity(QuantityInput{Lines: 3}))
	for i := 0; i < 3; i++ {
		require.NoError(t, s.UpdateLine(i, LineInput{
			Category:      "smartphone",
			PlanKey:       "my-biz",
			ProtectionKey: "total-mobile",
		}))
	}

	require.NoError(t, s.SetAccount(AccountInput{ProtectionBracketMin: 3}))
	for i := range s.Config.Lines {
		require.Empty(t, s.Config.Lines[i].ProtectionKey)
	}

	result := s.Compute()
	require.Equal(t, catalog.Money(6000), result.AccountAddOns)
}

func TestBracketRequiresEligibleLines(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.SetQuantity(QuantityInput{Lines: 1}))
	err := s.SetAccount(AccountInput{ProtectionBracketMin: 3})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestBracketClearedWhenLinesShrink(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.SetQuantity(QuantityInput{Lines: 3}))
	require.NoError(t, s.SetAccount(AccountInput{ProtectionBracketMin: 3}))
	require.Equal(t, 3, s.Config.ProtectionBracketMin)

	require.NoError(t, s.SetQuantity(QuantityInput{Lines: 2}))
	require.Zero(t, s.Config.ProtectionBracketMin)
}

func TestJointOfferRequiresQualifyingMix(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.SetQuantity(QuantityInput{Lines: 1}))
	err := s.SetAccount(AccountInput{JointOffer: true})
	require.ErrorIs(t, err, ErrInvalidInput)

	require.NoError(t, s.SetQuantity(QuantityInput{Lines: 2}))
	require.NoError(t, s.UpdateLine(1, LineInput{
		Category: "internet",
		PlanKey:  "5g-internet-100",
	}))
	require.NoError(t, s.SetAccount(AccountInput{JointOffer: true}))
}

func TestJointOfferClearedWhenMixBreaks(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.SetQuantity(QuantityInput{Lines: 2}))
	require.NoError(t, s.UpdateLine(1, LineInput{
		Category: "internet",
		PlanKey:  "5g-internet-100",
	}))
	require.NoError(t, s.SetAccount(AccountInput{JointOffer: true}))

	// Swapping the only smartphone line for a tablet breaks the qualifying
	// mix; the flag goes with it and the internet line prices at full rate.
	require.NoError(t, s.UpdateLine(0, LineInput{
		Category: "tablet",
		PlanKey:  "tablet-unl",
	}))
	require.False(t, s.Config.JointOffer)
	require.Equal(t, catalog.Money(6900), s.Compute().Lines[1].Base)
}

func TestStalePromotionClearedAfterTierChange(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.SetQuantity(QuantityInput{Lines: 1}))
	// $18 of extras derives tier Plus on the flagship plan; a Plus DPP
	// promotion is offerable.
	require.NoError(t, s.UpdateLine(0, LineInput{
		Category:     "smartphone",
		PlanKey:      "my-biz",
		AddOns:       []string{"mobile-secure", "data-boost", "intl-long-distance"},
		PromotionKey: "plus-700-off",
	}))
	require.Equal(t, "plus-700-off", s.Config.Lines[0].PromotionKey)

	// Dropping the add-ons drops the derived tier to Base and the
	// selection with it.
	require.NoError(t, s.UpdateLine(0, LineInput{
		Category:     "smartphone",
		PlanKey:      "my-biz",
		PromotionKey: "plus-700-off",
	}))
	require.Empty(t, s.Config.Lines[0].PromotionKey)
}

func TestOfferablePromotionsFiltering(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.SetQuantity(QuantityInput{Lines: 1}))
	require.NoError(t, s.UpdateLine(0, LineInput{
		Category: "smartphone",
		PlanKey:  "bus-unl-plus",
		BYOD:     true,
		PortIn:   true,
	}))

	promos, err := s.OfferablePromotions(0)
	require.NoError(t, err)
	require.NotEmpty(t, promos)
	for _, p := range promos {
		require.NotEqualf(t, catalog.PromoDPP, p.Kind, "DPP promo %q offered to BYOD line", p.Key)
	}

	// Without port-in, port-in-required promotions disappear too.
	require.NoError(t, s.UpdateLine(0, LineInput{
		Category: "smartphone",
		PlanKey:  "bus-unl-plus",
		BYOD:     true,
	}))
	promos, err = s.OfferablePromotions(0)
	require.NoError(t, err)
	for _, p := range promos {
		require.Falsef(t, p.RequiresPortIn, "port-in promo %q offered without port-in", p.Key)
	}
}

func TestInternetSecurityExclusiveWithProtection(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.SetQuantity(QuantityInput{Lines: 1}))
	require.NoError(t, s.UpdateLine(0, LineInput{
		Category:            "internet",
		PlanKey:             "lte-internet",
		ProtectionKey:       "total-mobile",
		InternetSecurityKey: "internet-secure",
	}))
	line := s.Config.Lines[0]
	require.Empty(t, line.ProtectionKey)
	require.Equal(t, "internet-secure", line.InternetSecurityKey)
}

func TestStepFlow(t *testing.T) {
	s := newSession(t)
	err := s.Next()
	require.ErrorIs(t, err, ErrInvalidInput)

	require.NoError(t, s.SetQuantity(QuantityInput{Lines: 1}))
	for _, want := range []Step{StepLines, StepAccount, StepSale, StepReview} {
		require.NoError(t, s.Next())
		require.Equal(t, want, s.Step)
	}
	require.NoError(t, s.Next())
	require.Equal(t, StepReview, s.Step)

	s.Back()
	require.Equal(t, StepSale, s.Step)

	s.Reset()
	require.Equal(t, StepQuantity, s.Step)
	require.Empty(t, s.Config.Lines)
}

func TestResetDiscardsEverything(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.SetQuantity(QuantityInput{Lines: 2}))
	require.NoError(t, s.SetSaleInfo(SaleInput{BusinessName: "Stronghold Engineering"}))
	s.Reset()
	require.Equal(t, pricing.QuoteConfiguration{}, s.Config)
}
