package catalog

// Default returns the built-in pricing catalog. All amounts are in cents.
// Tiered price lists are indexed by the account-wide qualifying smartphone
// line count bracket (1 line, 2 lines, 3 lines, 4 lines, 5+ lines).
func Default() *Catalog {
	return &Catalog{
		Plans: map[string]PlanDefinition{
			"my-biz": {
				Key:           "my-biz",
				Name:          "My Biz Plan",
				Category:      CategorySmartphone,
				TieredPrices:  []Money{7000, 6000, 4500, 3900, 3400},
				DerivedTier:   true,
				IntroEligible: true,
			},
			"bus-unl-start": {
				Key:          "bus-unl-start",
				Name:         "Business Unlimited Start 5G",
				Category:     CategorySmartphone,
				TieredPrices: []Money{7300, 6300, 4800, 4300, 3800},
				Tier:         TierStart,
			},
			"bus-unl-plus": {
				Key:          "bus-unl-plus",
				Name:         "Business Unlimited Plus 5G",
				Category:     CategorySmartphone,
				TieredPrices: []Money{8300, 7300, 5800, 5300, 4800},
				Tier:         TierPlus,
			},
			"bus-unl-pro": {
				Key:          "bus-unl-pro",
				Name:         "Business Unlimited Pro 5G",
				Category:     CategorySmartphone,
				TieredPrices: []Money{9300, 8300, 6800, 6300, 5800},
				Tier:         TierPro,
			},
			"one-talk": {
				Key:       "one-talk",
				Name:      "One Talk",
				Category:  CategorySmartphone,
				FlatPrice: 2500,
				Tier:      TierBase,
			},
			"tablet-unl": {
				Key:       "tablet-unl",
				Name:      "Business Unlimited Tablet",
				Category:  CategoryTablet,
				FlatPrice: 4000,
				Tier:      TierStart,
			},
			"tablet-pro": {
				Key:       "tablet-pro",
				Name:      "Business Unlimited Tablet Pro",
				Category:  CategoryTablet,
				FlatPrice: 5500,
				Tier:      TierPro,
			},
			"watch-unl": {
				Key:       "watch-unl",
				Name:      "Business Unlimited Smartwatch",
				Category:  CategoryWatch,
				FlatPrice: 1500,
				Tier:      TierBase,
			},
			"lte-internet": {
				Key:              "lte-internet",
				Name:             "LTE Business Internet 25/3",
				Category:         CategoryInternet,
				FlatPrice:        6900,
				Tier:             TierBase,
				StandardInternet: true,
			},
			"5g-internet-100": {
				Key:              "5g-internet-100",
				Name:             "5G Business Internet 100M",
				Category:         CategoryInternet,
				FlatPrice:        6900,
				Tier:             TierBase,
				StandardInternet: true,
			},
			"5g-internet-200": {
				Key:              "5g-internet-200",
				Name:             "5G Business Internet 200M",
				Category:         CategoryInternet,
				FlatPrice:        9900,
				Tier:             TierBase,
				StandardInternet: true,
			},
			"5g-internet-400": {
				Key:              "5g-internet-400",
				Name:             "5G Business Internet 400M",
				Category:         CategoryInternet,
				FlatPrice:        19900,
				Tier:             TierBase,
				StandardInternet: true,
			},
			"internet-backup": {
				Key:       "internet-backup",
				Name:      "Business Internet Backup",
				Category:  CategoryInternet,
				FlatPrice: 3000,
				Tier:      TierBase,
			},
			"jetpack": {
				Key:       "jetpack",
				Name:      "Jetpack Data Device",
				Category:  CategoryOther,
				FlatPrice: 2000,
				Tier:      TierBase,
			},
		},
		AddOns: map[string]AddOnDefinition{
			"mobile-secure":      {Key: "mobile-secure", Name: "Business Mobile Secure", Price: 500},
			"hotspot-100gb":      {Key: "hotspot-100gb", Name: "Mobile Hotspot 100GB", Price: 1000},
			"global-choice":      {Key: "global-choice", Name: "Global Choice", Price: 1000},
			"data-boost":         {Key: "data-boost", Name: "Smartphone Data Boost", Price: 500},
			"premium-network":    {Key: "premium-network", Name: "Premium Network Access", Price: 1000},
			"intl-long-distance": {Key: "intl-long-distance", Name: "International Long Distance", Price: 800},
		},
		Features: map[string]FeatureDefinition{
			"call-filter-plus": {Key: "call-filter-plus", Name: "Call Filter Plus", Price: 300},
			"one-talk-line":    {Key: "one-talk-line", Name: "One Talk Shared Line", Price: 1000},
			"visual-voicemail": {Key: "visual-voicemail", Name: "Premium Visual Voicemail", Price: 300},
		},
		Protection: map[string]ProtectionDefinition{
			"total-mobile":   {Key: "total-mobile", Name: "Total Mobile Protection", Price: 1700},
			"total-equip":    {Key: "total-equip", Name: "Total Equipment Coverage", Price: 1100},
			"wireless-phone": {Key: "wireless-phone", Name: "Wireless Phone Protection", Price: 725},
		},
		InternetSecurity: map[string]ProtectionDefinition{
			"internet-secure":      {Key: "internet-secure", Name: "Business Internet Secure", Price: 1000},
			"internet-secure-plus": {Key: "internet-secure-plus", Name: "Business Internet Secure Plus", Price: 1500},
		},
		Brackets: []ProtectionBracket{
			{MinLines: 3, Name: "Multi-Device Protection 3-10", Price: 6000},
			{MinLines: 11, Name: "Multi-Device Protection 11-24", Price: 22000},
			{MinLines: 25, Name: "Multi-Device Protection 25-49", Price: 50000},
		},
		Promotions: []PromotionDefinition{
			{Key: "pro-iphone", Name: "iPhone On Us", Tier: TierPro, Value: 99999, TermMonths: 36, Kind: PromoDPP, RequiresPortIn: true},
			{Key: "pro-galaxy", Name: "Galaxy Ultra On Us", Tier: TierPro, Value: 79999, TermMonths: 36, Kind: PromoDPP, RequiresPortIn: true},
			{Key: "plus-700-off", Name: "$700 Device Credit", Tier: TierPlus, Value: 70000, TermMonths: 36, Kind: PromoDPP},
			{Key: "plus-byod-540", Name: "$540 BYOD Credit", Tier: TierPlus, Value: 54000, TermMonths: 36, Kind: PromoBYOD, RequiresPortIn: true},
			{Key: "start-500-off", Name: "$500 Device Credit", Tier: TierStart, Value: 50000, TermMonths: 36, Kind: PromoDPP},
			{Key: "start-byod-360", Name: "$360 BYOD Credit", Tier: TierStart, Value: 36000, TermMonths: 36, Kind: PromoBYOD, RequiresPortIn: true},
			{Key: "switcher-200", Name: "$200 Switcher Credit", Tier: TierBase, Value: 20000, TermMonths: TermOneTime, Kind: PromoBYOD, RequiresPortIn: true},
			{Key: "bill-credit-100", Name: "$100 Bill Credit", Tier: TierBase, Value: 10000, TermMonths: TermOneTime, Kind: PromoDPP},
		},

		AutopayDiscount:    500,
		MilitaryDiscount:   1000,
		JointOfferDiscount: 2000,
		IntroDiscountBps:   1500,
		WholeOfficeFee:     3500,
		EconomicAdjPerLine: 298,

		ProThreshold:   2000,
		PlusThreshold:  1500,
		StartThreshold: 500,
	}
}
