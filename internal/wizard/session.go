package wizard

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/quotegen/internal/catalog"
	"github.com/noah-isme/quotegen/internal/pricing"
)

// ErrInvalidInput is returned when a submitted value fails validation.
var ErrInvalidInput = errors.New("wizard: invalid input")

// ErrOutOfRange is returned when a line index does not exist on the quote.
var ErrOutOfRange = errors.New("wizard: line index out of range")

// Step identifies the wizard screen a session is on.
type Step int

const (
	StepQuantity Step = iota
	StepLines
	StepAccount
	StepSale
	StepReview
)

// String returns the display name for the step.
func (s Step) String() string {
	switch s {
	case StepQuantity:
		return "quantity"
	case StepLines:
		return "line details"
	case StepAccount:
		return "account options"
	case StepSale:
		return "sale information"
	case StepReview:
		return "review"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// defaultPlanKey seeds new lines so a fresh quote prices immediately.
const defaultPlanKey = "my-biz"

// Session owns one in-progress quote. It is not safe for concurrent use;
// each user session gets its own instance and edits are serialized by the
// interaction model.
type Session struct {
	Step   Step
	Config pricing.QuoteConfiguration

	cat      *catalog.Catalog
	validate *validator.Validate
}

// NewSession creates an empty session positioned at the quantity step.
func NewSession(cat *catalog.Catalog) *Session {
	return &Session{
		cat:      cat,
		validate: validator.New(),
	}
}

// Reset discards the in-progress quote and returns to the quantity step.
func (s *Session) Reset() {
	s.Step = StepQuantity
	s.Config = pricing.QuoteConfiguration{}
}

// Catalog exposes the read-only catalog backing this session.
func (s *Session) Catalog() *catalog.Catalog { return s.cat }

// Compute recalculates the quote for the current configuration. Cheap and
// side-effect free; called on every view refresh.
func (s *Session) Compute() pricing.QuoteResult {
	return pricing.Compute(s.Config, s.cat)
}

// QuantityInput sizes the quote.
type QuantityInput struct {
	Lines int `validate:"required,min=1,max=99"`
}

// SetQuantity resizes the line list, preserving already-configured lines
// and seeding new ones with the default plan.
func (s *Session) SetQuantity(in QuantityInput) error {
	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	lines := s.Config.Lines
	for len(lines) < in.Lines {
		lines = append(lines, pricing.LineConfiguration{
			Category: catalog.CategorySmartphone,
			PlanKey:  defaultPlanKey,
		})
	}
	if len(lines) > in.Lines {
		lines = lines[:in.Lines]
	}
	s.Config.Lines = lines
	s.revalidateSelections()
	return nil
}

// LineInput carries one line's configuration from the form.
type LineInput struct {
	Category            string `validate:"required,oneof=smartphone tablet watch internet other"`
	PlanKey             string `validate:"required"`
	AddOns              []string
	Features            []string
	ProtectionKey       string
	InternetSecurityKey string
	DevicePayment       int64 `validate:"min=0"`
	IntroDiscount       bool
	PromotionKey        string
	CustomPromoValue    int64 `validate:"min=0"`
	CustomPromoTerm     int   `validate:"min=0,max=72"`
	BYOD                bool
	PortIn              bool
}

// UpdateLine validates and applies one line's configuration, then
// re-validates selections that the edit may have made stale.
func (s *Session) UpdateLine(index int, in LineInput) error {
	if index < 0 || index >= len(s.Config.Lines) {
		return fmt.Errorf("%w: %d", ErrOutOfRange, index)
	}
	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	category := catalog.DeviceCategory(in.Category)
	plan, err := s.cat.LookupPlan(category, in.PlanKey)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	for _, key := range in.AddOns {
		if _, err := s.cat.LookupAddOn(key); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	for _, key := range in.Features {
		if _, err := s.cat.LookupFeature(key); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	line := pricing.LineConfiguration{
		Category:         category,
		PlanKey:          in.PlanKey,
		AddOns:           in.AddOns,
		Features:         in.Features,
		DevicePayment:    in.DevicePayment,
		PromotionKey:     in.PromotionKey,
		CustomPromoValue: in.CustomPromoValue,
		CustomPromoTerm:  in.CustomPromoTerm,
		BYOD:             in.BYOD,
		PortIn:           in.PortIn,
	}

	// Protection and internet security are mutually exclusive; the line's
	// category decides which catalog applies.
	if category == catalog.CategoryInternet {
		if in.InternetSecurityKey != "" {
			if _, err := s.cat.LookupInternetSecurity(in.InternetSecurityKey); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			line.InternetSecurityKey = in.InternetSecurityKey
		}
	} else if in.ProtectionKey != "" && s.Config.ProtectionBracketMin == 0 {
		if _, err := s.cat.LookupProtection(in.ProtectionKey); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		line.ProtectionKey = in.ProtectionKey
	}

	// Intro discount is only meaningful on the intro-eligible plan and is
	// suppressed while the military discount is on.
	if in.IntroDiscount && plan.IntroEligible && !s.Config.Military {
		line.IntroDiscount = true
	}

	if line.PromotionKey != "" && line.PromotionKey != pricing.PromoCustom {
		if _, err := s.cat.LookupPromotion(line.PromotionKey); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	s.Config.Lines[index] = line
	s.revalidateSelections()
	return nil
}

// AccountInput carries the account-wide toggles.
type AccountInput struct {
	Autopay              bool
	Military             bool
	JointOffer           bool
	WholeOfficeProtect   bool
	ProtectionBracketMin int `validate:"min=0"`
}

// SetAccount applies account flags and enforces the cross-line invariants:
// military clears per-line intro flags, a selected multi-device bracket
// clears per-line protection, and the joint offer requires a qualifying
// line mix.
func (s *Session) SetAccount(in AccountInput) error {
	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if in.ProtectionBracketMin > 0 {
		bracket, err := s.cat.LookupBracket(in.ProtectionBracketMin)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if pricing.ProtectionEligibleLines(s.Config) < bracket.MinLines {
			return fmt.Errorf("%w: bracket min=%d not met", ErrInvalidInput, bracket.MinLines)
		}
	}
	if in.JointOffer && !pricing.JointOfferAvailable(s.Config, s.cat) {
		return fmt.Errorf("%w: joint offer requires a smartphone line and a standard internet line", ErrInvalidInput)
	}

	s.Config.Autopay = in.Autopay
	s.Config.Military = in.Military
	s.Config.JointOffer = in.JointOffer
	s.Config.WholeOfficeProtect = in.WholeOfficeProtect
	s.Config.ProtectionBracketMin = in.ProtectionBracketMin

	if in.Military {
		for i := range s.Config.Lines {
			s.Config.Lines[i].IntroDiscount = false
		}
	}
	if in.ProtectionBracketMin > 0 {
		for i := range s.Config.Lines {
			if s.Config.Lines[i].Category != catalog.CategoryInternet {
				s.Config.Lines[i].ProtectionKey = ""
			}
		}
	}
	s.revalidateSelections()
	return nil
}

// SaleInput carries the display-only sale metadata.
type SaleInput struct {
	BusinessName string `validate:"required"`
	ContactName  string
	RepName      string
	TaxRateBps   int `validate:"min=0,max=10000"`
}

// SetSaleInfo stores the sale metadata on the configuration.
func (s *Session) SetSaleInfo(in SaleInput) error {
	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	s.Config.BusinessName = in.BusinessName
	s.Config.ContactName = in.ContactName
	s.Config.RepName = in.RepName
	s.Config.TaxRateBps = in.TaxRateBps
	return nil
}

// Next advances to the following step. The quantity step requires at least
// one line before it yields.
func (s *Session) Next() error {
	if s.Step == StepQuantity && len(s.Config.Lines) == 0 {
		return fmt.Errorf("%w: set a line count first", ErrInvalidInput)
	}
	if s.Step < StepReview {
		s.Step++
	}
	return nil
}

// Back returns to the previous step.
func (s *Session) Back() {
	if s.Step > StepQuantity {
		s.Step--
	}
}

// OfferablePromotions lists the promotions the given line may select right
// now, at its currently derived tier.
func (s *Session) OfferablePromotions(index int) ([]catalog.PromotionDefinition, error) {
	if index < 0 || index >= len(s.Config.Lines) {
		return nil, fmt.Errorf("%w: %d", ErrOutOfRange, index)
	}
	line := s.Config.Lines[index]
	return pricing.OfferablePromotions(line, s.lineTier(line), s.cat), nil
}

// OfferableBrackets lists the multi-device protection brackets the account
// currently qualifies for.
func (s *Session) OfferableBrackets() []catalog.ProtectionBracket {
	return pricing.OfferableBrackets(s.Config, s.cat)
}

// revalidateSelections clears selections that an edit has made stale: a
// promotion that is no longer offerable for its line's derived tier or
// flags, a bracket whose minimum is no longer met, and a joint offer whose
// qualifying line mix is gone.
func (s *Session) revalidateSelections() {
	for i := range s.Config.Lines {
		line := s.Config.Lines[i]
		if line.PromotionKey == "" || line.PromotionKey == pricing.PromoCustom {
			continue
		}
		promo, err := s.cat.LookupPromotion(line.PromotionKey)
		if err != nil || !pricing.PromotionEligible(line, s.lineTier(line), promo) {
			s.Config.Lines[i].PromotionKey = ""
		}
	}
	if min := s.Config.ProtectionBracketMin; min > 0 {
		bracket, err := s.cat.LookupBracket(min)
		if err != nil || pricing.ProtectionEligibleLines(s.Config) < bracket.MinLines {
			s.Config.ProtectionBracketMin = 0
		}
	}
	if s.Config.JointOffer && !pricing.JointOfferAvailable(s.Config, s.cat) {
		s.Config.JointOffer = false
	}
}

// lineTier derives a line's current tier from its plan and extras spend,
// ignoring unknown keys the same way the engine does.
func (s *Session) lineTier(line pricing.LineConfiguration) catalog.Tier {
	plan, err := s.cat.LookupPlan(line.Category, line.PlanKey)
	if err != nil {
		return catalog.TierBase
	}
	var extras catalog.Money
	for _, key := range line.AddOns {
		if def, err := s.cat.LookupAddOn(key); err == nil {
			extras += def.Price
		}
	}
	for _, key := range line.Features {
		if def, err := s.cat.LookupFeature(key); err == nil {
			extras += def.Price
		}
	}
	return pricing.DeriveTier(plan, extras, s.cat)
}
