package export

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/noah-isme/quotegen/internal/common"
	"github.com/noah-isme/quotegen/internal/pricing"
)

// Estimated tax band applied to the base plan subtotal: an explicit
// uncertainty range rather than a fixed figure.
const (
	TaxRangeLowBps  = 1800
	TaxRangeHighBps = 4200
)

// DueToday is the separately-entered one-time cost breakdown for the
// due-today section. Amounts are in cents.
type DueToday struct {
	DeviceRetail   pricing.Money
	SetupFees      pricing.Money
	BundleCosts    pricing.Money
	Accessories    pricing.Money
	ActivationFees pricing.Money
	BillCredits    pricing.Money
}

// Subtotal sums the due-today charges before credits and tax.
func (d DueToday) Subtotal() pricing.Money {
	return d.DeviceRetail + d.SetupFees + d.BundleCosts + d.Accessories + d.ActivationFees
}

// Document bundles everything the quote PDF consumes.
type Document struct {
	QuoteID   string
	CreatedAt time.Time
	Config    pricing.QuoteConfiguration
	Result    pricing.QuoteResult
	DueToday  DueToday
}

// NewQuoteID builds a quote identifier from the creation timestamp plus a
// short random suffix, e.g. "202601171430-7f3a-Q".
func NewQuoteID(now time.Time) string {
	return fmt.Sprintf("%s-%s-Q", now.Format("200601021504"), uuid.NewString()[:4])
}

// GeneratePDF renders the quote document using maroto/v2 and returns the
// raw PDF bytes.
func GeneratePDF(doc Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addHeader(m, doc)
	addDueToday(m, doc)
	addMonthlyTable(m, doc)
	addAccountSummary(m, doc)
	addTaxEstimate(m, doc)
	addFirstBill(m, doc)

	generated, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate quote pdf: %w", err)
	}
	return generated.GetBytes(), nil
}

func addHeader(m core.Maroto, doc Document) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("Business Wireless Quote", props.Text{
					Size:  16,
					Style: fontstyle.Bold,
				}),
			),
		),
		row.New(5).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Quote ID: %s", doc.QuoteID), props.Text{Size: 9}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Created: %s", doc.CreatedAt.Format("2006-01-02")), props.Text{
					Size:  9,
					Align: align.Right,
				}),
			),
		),
		row.New(4),
	)

	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New("Prepared for:", props.Text{Size: 10, Style: fontstyle.Bold}),
			),
		),
		row.New(5).Add(
			col.New(12).Add(
				text.New(doc.Config.BusinessName, props.Text{Size: 10}),
			),
		),
	)
	if doc.Config.ContactName != "" {
		m.AddRows(row.New(5).Add(
			col.New(12).Add(text.New(fmt.Sprintf("Attn: %s", doc.Config.ContactName), props.Text{Size: 9})),
		))
	}
	if doc.Config.RepName != "" {
		m.AddRows(row.New(5).Add(
			col.New(12).Add(text.New(fmt.Sprintf("Sales Rep: %s", doc.Config.RepName), props.Text{Size: 9})),
		))
	}
	m.AddRows(row.New(5))
}

func addDueToday(m core.Maroto, doc Document) {
	due := doc.DueToday
	subtotal := due.Subtotal()
	tax := subtotal * pricing.Money(doc.Config.TaxRateBps) / 10000
	total := subtotal + tax - due.BillCredits

	addSectionTitle(m, "Due Today")
	items := []struct {
		label  string
		amount pricing.Money
	}{
		{"Device retail price", due.DeviceRetail},
		{"Setup fees", due.SetupFees},
		{"Bundle costs", due.BundleCosts},
		{"Accessories", due.Accessories},
		{"Activation fees", due.ActivationFees},
	}
	for _, it := range items {
		if it.amount == 0 {
			continue
		}
		addAmountRow(m, it.label, it.amount, false)
	}
	if tax != 0 {
		addAmountRow(m, fmt.Sprintf("Estimated tax (%.2f%%)", float64(doc.Config.TaxRateBps)/100), tax, false)
	}
	if due.BillCredits != 0 {
		addAmountRow(m, "Bill credits", -due.BillCredits, false)
	}
	addAmountRow(m, "Total due today", total, true)
	m.AddRows(row.New(4))
}

func addMonthlyTable(m core.Maroto, doc Document) {
	addSectionTitle(m, "Monthly Recurring Charges")

	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(7).Add(
			col.New(1).Add(text.New("Line", headerText)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Plan", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Plan Price", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Device", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Extras", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Total", headerText)).WithStyle(&headerCell),
		),
	)

	cell := props.Text{Size: 8, Align: align.Center}
	cellLeft := props.Text{Size: 8}
	for i, bd := range doc.Result.Lines {
		planPrice := bd.Base - bd.AutopayDiscount - bd.MilitaryDiscount - bd.IntroDiscount
		extras := bd.ExtrasTotal + bd.ProtectionTotal - bd.PromoMonthlyCredit
		name := bd.PlanName
		if name == "" {
			name = bd.PlanKey
		}
		m.AddRows(
			row.New(6).Add(
				col.New(1).Add(text.New(fmt.Sprintf("%d", i+1), cell)),
				col.New(3).Add(text.New(name, cellLeft)),
				col.New(2).Add(text.New(common.FormatMoney(planPrice), cell)),
				col.New(2).Add(text.New(common.FormatMoney(bd.DevicePayment), cell)),
				col.New(2).Add(text.New(common.FormatMoney(extras), cell)),
				col.New(2).Add(text.New(common.FormatMoney(bd.Total), cell)),
			),
		)
	}
	m.AddRows(row.New(3))
}

func addAccountSummary(m core.Maroto, doc Document) {
	result := doc.Result
	if result.AccountAddOns != 0 {
		addAmountRow(m, "Account protection & services", result.AccountAddOns, false)
	}
	addAmountRow(m, "Economic adjustment", result.EconomicAdjustment, false)
	addAmountRow(m, "Total due monthly", result.MonthlyRecurring, true)
	m.AddRows(row.New(4))
}

func addTaxEstimate(m core.Maroto, doc Document) {
	low := doc.Result.BasePlanSubtotal * TaxRangeLowBps / 10000
	high := doc.Result.BasePlanSubtotal * TaxRangeHighBps / 10000
	m.AddRows(row.New(5).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Estimated monthly taxes & surcharges: %s - %s",
				common.FormatMoney(low), common.FormatMoney(high)), props.Text{Size: 8}),
		),
	))
}

func addFirstBill(m core.Maroto, doc Document) {
	if doc.Result.OneTimeCredits == 0 {
		return
	}
	m.AddRows(row.New(4))
	addSectionTitle(m, "First Bill Credits")
	addAmountRow(m, "One-time promotional credits", -doc.Result.OneTimeCredits, false)
	m.AddRows(row.New(5).Add(
		col.New(12).Add(
			text.New("One-time credits apply to the first bill and do not reduce the monthly recurring total.", props.Text{Size: 7}),
		),
	))
}

func addSectionTitle(m core.Maroto, title string) {
	m.AddRows(row.New(7).Add(
		col.New(12).Add(
			text.New(title, props.Text{Size: 11, Style: fontstyle.Bold}),
		),
	))
}

func addAmountRow(m core.Maroto, label string, amount pricing.Money, bold bool) {
	style := fontstyle.Normal
	size := 8.0
	if bold {
		style = fontstyle.Bold
		size = 10
	}
	m.AddRows(row.New(6).Add(
		col.New(8).Add(text.New(label, props.Text{Size: size, Style: style})),
		col.New(4).Add(text.New(common.FormatMoney(amount), props.Text{
			Size:  size,
			Style: style,
			Align: align.Right,
		})),
	))
}
