package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/quotegen/internal/catalog"
	"github.com/noah-isme/quotegen/internal/pricing"
)

func TestNewQuoteID(t *testing.T) {
	now := time.Date(2026, 1, 17, 14, 30, 0, 0, time.UTC)
	id := NewQuoteID(now)
	require.True(t, strings.HasPrefix(id, "202601171430-"), "id %q", id)
	require.True(t, strings.HasSuffix(id, "-Q"), "id %q", id)
}

func TestDueTodaySubtotal(t *testing.T) {
	due := DueToday{
		DeviceRetail:   99999,
		SetupFees:      3500,
		Accessories:    4999,
		ActivationFees: 3500,
		BillCredits:    5000,
	}
	require.Equal(t, pricing.Money(99999+3500+4999+3500), due.Subtotal())
}

func TestGeneratePDF(t *testing.T) {
	line := pricing.LineConfiguration{
		Category: catalog.CategorySmartphone,
		PlanKey:  "my-biz",
		AddOns:   []string{"mobile-secure"},
	}
	cfg := pricing.QuoteConfiguration{
		Lines:        []pricing.LineConfiguration{line},
		Autopay:      true,
		BusinessName: "Stronghold Engineering Inc",
		RepName:      "Noah Braun",
		TaxRateBps:   875,
	}
	result := pricing.Compute(cfg, catalog.Default())

	pdf, err := GeneratePDF(Document{
		QuoteID:   NewQuoteID(time.Now()),
		CreatedAt: time.Now(),
		Config:    cfg,
		Result:    result,
		DueToday:  DueToday{DeviceRetail: 99999, ActivationFees: 3500},
	})
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	require.True(t, strings.HasPrefix(string(pdf[:5]), "%PDF-"), "missing pdf magic")
}

func TestGeneratePDFWithOneTimeCredits(t *testing.T) {
	line := pricing.LineConfiguration{
		Category:     catalog.CategorySmartphone,
		PlanKey:      "my-biz",
		BYOD:         true,
		PortIn:       true,
		PromotionKey: "switcher-200",
	}
	cfg := pricing.QuoteConfiguration{
		Lines:        []pricing.LineConfiguration{line},
		BusinessName: "Acme LLC",
	}
	result := pricing.Compute(cfg, catalog.Default())
	require.Equal(t, pricing.Money(20000), result.OneTimeCredits)

	pdf, err := GeneratePDF(Document{
		QuoteID:   NewQuoteID(time.Now()),
		CreatedAt: time.Now(),
		Config:    cfg,
		Result:    result,
	})
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
}
