package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/noah-isme/quotegen/internal/catalog"
	"github.com/noah-isme/quotegen/internal/common"
	"github.com/noah-isme/quotegen/internal/config"
	"github.com/noah-isme/quotegen/internal/export"
	"github.com/noah-isme/quotegen/internal/obs"
	"github.com/noah-isme/quotegen/internal/pricing"
	"github.com/noah-isme/quotegen/internal/wizard"
)

func main() {
	cfg := config.MustLoad()
	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel).With().Str("env", cfg.AppEnv).Logger()

	app := &app{
		cfg:     cfg,
		logger:  logger,
		in:      bufio.NewReader(os.Stdin),
		session: wizard.NewSession(catalog.Default()),
	}
	if err := app.run(); err != nil {
		logger.Error().Err(err).Msg("quote session failed")
		os.Exit(1)
	}
}

type app struct {
	cfg     *config.Config
	logger  zerolog.Logger
	in      *bufio.Reader
	session *wizard.Session
}

func (a *app) run() error {
	fmt.Println("== Business Wireless Quote Builder ==")
	for {
		switch a.session.Step {
		case wizard.StepQuantity:
			a.stepQuantity()
		case wizard.StepLines:
			a.stepLines()
		case wizard.StepAccount:
			a.stepAccount()
		case wizard.StepSale:
			a.stepSale()
		case wizard.StepReview:
			done, err := a.stepReview()
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
	}
}

func (a *app) stepQuantity() {
	fmt.Println("\n-- Step 1: Quantity --")
	for {
		n := common.AtoiDefault(a.prompt("How many lines are we working with? [1]"), 1)
		if err := a.session.SetQuantity(wizard.QuantityInput{Lines: n}); err != nil {
			fmt.Println("  line count must be between 1 and 99")
			continue
		}
		break
	}
	_ = a.session.Next()
}

func (a *app) stepLines() {
	fmt.Println("\n-- Step 2: Line Details --")
	for i := range a.session.Config.Lines {
		a.configureLine(i)
		a.printEstimate()
	}
	_ = a.session.Next()
}

func (a *app) configureLine(index int) {
	fmt.Printf("\nLine %d setup\n", index+1)
	cat := a.session.Catalog()

	for {
		category := a.chooseCategory()
		plans := cat.PlansForCategory(category)
		sort.Slice(plans, func(i, j int) bool { return plans[i].Key < plans[j].Key })
		fmt.Println("  Plans:")
		for _, p := range plans {
			fmt.Printf("    %-16s %s\n", p.Key, p.Name)
		}
		in := wizard.LineInput{Category: string(category)}
		in.PlanKey = a.promptDefault("  Plan key", defaultKey(plans))
		in.DevicePayment = common.MoneyOrDefault(a.prompt("  Monthly device payment ($) [0]"), 0)
		in.AddOns = splitKeys(a.prompt("  Add-on keys (comma separated, blank for none)"))
		in.Features = splitKeys(a.prompt("  Feature keys (comma separated, blank for none)"))
		if category == catalog.CategoryInternet {
			in.InternetSecurityKey = strings.TrimSpace(a.prompt("  Internet security key (blank for none)"))
		} else {
			in.ProtectionKey = strings.TrimSpace(a.prompt("  Protection key (blank for none)"))
		}
		in.BYOD = a.promptBool("  Customer brings their own device?")
		in.PortIn = a.promptBool("  Porting in from another carrier?")
		in.IntroDiscount = a.promptBool("  Apply intro discount (flagship plan only)?")

		if err := a.session.UpdateLine(index, in); err != nil {
			fmt.Printf("  invalid line configuration: %v\n", err)
			continue
		}

		a.offerPromotion(index, &in)
		return
	}
}

func (a *app) offerPromotion(index int, in *wizard.LineInput) {
	promos, err := a.session.OfferablePromotions(index)
	if err != nil || len(promos) == 0 {
		return
	}
	fmt.Println("  Available promotions:")
	for _, p := range promos {
		term := "one-time"
		if !p.OneTime() {
			term = fmt.Sprintf("%d mo", p.TermMonths)
		}
		fmt.Printf("    %-16s %s (%s, %s)\n", p.Key, p.Name, common.FormatMoney(p.Value), term)
	}
	key := strings.TrimSpace(a.prompt("  Promotion key ('custom', blank for none)"))
	if key == "" {
		return
	}
	in.PromotionKey = key
	if key == "custom" {
		in.CustomPromoValue = common.MoneyOrDefault(a.prompt("  Custom credit value ($)"), 0)
		in.CustomPromoTerm = common.AtoiDefault(a.prompt("  Custom credit term in months (0 = one-time)"), 0)
	}
	if err := a.session.UpdateLine(index, *in); err != nil {
		fmt.Printf("  promotion not applied: %v\n", err)
	}
}

func (a *app) stepAccount() {
	fmt.Println("\n-- Step 3: Account Options --")
	for {
		in := wizard.AccountInput{
			Autopay:            a.promptBool("Enroll in autopay?"),
			Military:           a.promptBool("Military discount?"),
			WholeOfficeProtect: a.promptBool("Whole office protect?"),
		}
		if brackets := a.session.OfferableBrackets(); len(brackets) > 0 {
			fmt.Println("  Multi-device protection brackets:")
			for _, b := range brackets {
				fmt.Printf("    min=%-3d %s (%s/mo)\n", b.MinLines, b.Name, common.FormatMoney(b.Price))
			}
			in.ProtectionBracketMin = common.AtoiDefault(a.prompt("  Bracket minimum to select (0 for none)"), 0)
		}
		in.JointOffer = a.promptBool("Apply mobile + internet joint offer?")

		if err := a.session.SetAccount(in); err != nil {
			fmt.Printf("  invalid account options: %v\n", err)
			continue
		}
		break
	}
	a.printEstimate()
	_ = a.session.Next()
}

func (a *app) stepSale() {
	fmt.Println("\n-- Step 4: Sale Information --")
	for {
		in := wizard.SaleInput{
			BusinessName: a.prompt("Business name"),
			ContactName:  a.prompt("Point of contact"),
			RepName:      a.promptDefault("Sales rep", a.cfg.DefaultRepName),
			TaxRateBps:   a.cfg.DefaultTaxRateBps,
		}
		if err := a.session.SetSaleInfo(in); err != nil {
			fmt.Println("  business name is required")
			continue
		}
		break
	}
	_ = a.session.Next()
}

func (a *app) stepReview() (bool, error) {
	fmt.Println("\n-- Step 5: Review & Export --")
	result := a.session.Compute()
	for i, bd := range result.Lines {
		fmt.Printf("  Line %d: %-30s %s\n", i+1, bd.PlanName, common.FormatMoney(bd.Total))
	}
	if result.AccountAddOns != 0 {
		fmt.Printf("  Account protection & services: %s\n", common.FormatMoney(result.AccountAddOns))
	}
	fmt.Printf("  Economic adjustment: %s\n", common.FormatMoney(result.EconomicAdjustment))
	fmt.Printf("  Total monthly: %s\n", common.FormatMoney(result.MonthlyRecurring))
	if result.OneTimeCredits != 0 {
		fmt.Printf("  First-bill credits: %s\n", common.FormatMoney(result.OneTimeCredits))
	}
	for _, w := range result.Warnings {
		a.logger.Warn().Str("code", w.Code).Int("line", w.Line).Msg(w.Message)
	}

	if a.promptBool("Export quote PDF?") {
		if err := a.exportPDF(result); err != nil {
			return false, err
		}
	}
	if a.promptBool("Start a new quote?") {
		a.session.Reset()
		return false, nil
	}
	return true, nil
}

func (a *app) exportPDF(result pricing.QuoteResult) error {
	due := export.DueToday{
		DeviceRetail:   common.MoneyOrDefault(a.prompt("  Device retail price ($) [0]"), 0),
		SetupFees:      common.MoneyOrDefault(a.prompt("  Setup fees ($) [0]"), 0),
		BundleCosts:    common.MoneyOrDefault(a.prompt("  Bundle costs ($) [0]"), 0),
		Accessories:    common.MoneyOrDefault(a.prompt("  Accessory costs ($) [0]"), 0),
		ActivationFees: common.MoneyOrDefault(a.prompt("  Activation fees ($) [0]"), 0),
		BillCredits:    common.MoneyOrDefault(a.prompt("  Bill credits ($) [0]"), 0),
	}
	now := time.Now()
	doc := export.Document{
		QuoteID:   export.NewQuoteID(now),
		CreatedAt: now,
		Config:    a.session.Config,
		Result:    result,
		DueToday:  due,
	}
	pdf, err := export.GeneratePDF(doc)
	if err != nil {
		return fmt.Errorf("export quote: %w", err)
	}

	name := "Quote_" + strings.ReplaceAll(a.session.Config.BusinessName, " ", "_") + ".pdf"
	path := filepath.Join(a.cfg.OutputDir, name)
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return fmt.Errorf("write quote: %w", err)
	}
	a.logger.Info().Str("quote_id", doc.QuoteID).Str("path", path).Int("bytes", len(pdf)).Msg("quote exported")
	fmt.Printf("  Exported %s\n", path)
	return nil
}

func (a *app) printEstimate() {
	result := a.session.Compute()
	fmt.Printf("  Running monthly estimate: %s\n", common.FormatMoney(result.MonthlyRecurring))
}

func (a *app) chooseCategory() catalog.DeviceCategory {
	for {
		raw := strings.ToLower(a.promptDefault("  Category (smartphone/tablet/watch/internet/other)", "smartphone"))
		switch catalog.DeviceCategory(raw) {
		case catalog.CategorySmartphone, catalog.CategoryTablet, catalog.CategoryWatch,
			catalog.CategoryInternet, catalog.CategoryOther:
			return catalog.DeviceCategory(raw)
		}
		fmt.Println("  unrecognized category")
	}
}

func (a *app) prompt(label string) string {
	fmt.Printf("%s: ", label)
	line, err := a.in.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

func (a *app) promptDefault(label, def string) string {
	value := a.prompt(fmt.Sprintf("%s [%s]", label, def))
	if value == "" {
		return def
	}
	return value
}

func (a *app) promptBool(label string) bool {
	switch strings.ToLower(a.prompt(label + " (y/N)")) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func splitKeys(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			keys = append(keys, trimmed)
		}
	}
	return keys
}

func defaultKey(plans []catalog.PlanDefinition) string {
	if len(plans) == 0 {
		return ""
	}
	return plans[0].Key
}
