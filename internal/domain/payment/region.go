package payment

import "strings"

// Region is an immutable endpoint configuration record. The fixed table
// below is the source of truth for endpoint selection; lookup key is
// (isSandbox, twoLetterISOCode).
type Region struct {
	WidgetCode       string
	TwoLetterISOCode string
	IsSandbox        bool
	APIURL           string
	HandoverURL      string
	CurrencyCode     string
}

var availableRegions = []Region{
	{
		WidgetCode:       "AU",
		TwoLetterISOCode: "AU",
		IsSandbox:        true,
		APIURL:           "https://api.training.myopenpay.com.au",
		HandoverURL:      "https://retailer.myopenpay.com.au/websalestraining",
		CurrencyCode:     "AUD",
	},
	{
		WidgetCode:       "AU",
		TwoLetterISOCode: "AU",
		IsSandbox:        false,
		APIURL:           "https://api.myopenpay.com.au",
		HandoverURL:      "https://retailer.myopenpay.com.au/websaleslive",
		CurrencyCode:     "AUD",
	},
	{
		WidgetCode:       "UK",
		TwoLetterISOCode: "GB",
		IsSandbox:        true,
		APIURL:           "https://api.training.myopenpay.co.uk",
		HandoverURL:      "https://websales.training.myopenpay.co.uk",
		CurrencyCode:     "GBP",
	},
	{
		WidgetCode:       "UK",
		TwoLetterISOCode: "GB",
		IsSandbox:        false,
		APIURL:           "https://api.myopenpay.co.uk",
		HandoverURL:      "https://websales.myopenpay.co.uk",
		CurrencyCode:     "GBP",
	},
}

// AvailableRegions returns a copy of the region table.
func AvailableRegions() []Region {
	regions := make([]Region, len(availableRegions))
	copy(regions, availableRegions)
	return regions
}

// FindRegion resolves the region for an environment and country code.
func FindRegion(isSandbox bool, twoLetterISOCode string) (Region, bool) {
	for _, r := range availableRegions {
		if r.IsSandbox == isSandbox && strings.EqualFold(r.TwoLetterISOCode, twoLetterISOCode) {
			return r, true
		}
	}
	return Region{}, false
}
