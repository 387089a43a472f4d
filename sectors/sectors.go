// Package sectors holds the GICS sector table used for recommendations.
package sectors

import (
	"slices"

	"github.com/vedantwpatil/trendbot/models"
)

var table = []models.Sector{
	{
		ID:          "financials",
		Name:        "Financials",
		Description: "Banks, insurance, diversified financials, real estate investment trusts.",
		ETF:         "XLF",
		Stocks:      []string{"JPM", "BAC", "GS", "WFC", "MS"},
	},
	{
		ID:          "information_technology",
		Name:        "Information Technology",
		Description: "Software, hardware, semiconductors, IT services.",
		ETF:         "XLK",
		Stocks:      []string{"AAPL", "MSFT", "NVDA", "AVGO", "ORCL"},
	},
	{
		ID:          "health_care",
		Name:        "Health Care",
		Description: "Pharma, biotech, health care equipment, providers.",
		ETF:         "XLV",
		Stocks:      []string{"UNH", "JNJ", "LLY", "PFE", "ABBV"},
	},
	{
		ID:          "consumer_discretionary",
		Name:        "Consumer Discretionary",
		Description: "Retail, autos, hotels, leisure, durable household goods.",
		ETF:         "XLY",
		Stocks:      []string{"AMZN", "TSLA", "HD", "MCD", "NKE"},
	},
	{
		ID:          "consumer_staples",
		Name:        "Consumer Staples",
		Description: "Food, beverages, tobacco, household products.",
		ETF:         "XLP",
		Stocks:      []string{"PG", "KO", "PEP", "WMT", "COST"},
	},
	{
		ID:          "energy",
		Name:        "Energy",
		Description: "Oil, gas, coal, consumable fuels, energy equipment.",
		ETF:         "XLE",
		Stocks:      []string{"XOM", "CVX", "COP", "SLB", "EOG"},
	},
	{
		ID:          "industrials",
		Name:        "Industrials",
		Description: "Aerospace, machinery, construction, transportation.",
		ETF:         "XLI",
		Stocks:      []string{"HON", "UNP", "UPS", "CAT", "RTX"},
	},
	{
		ID:          "materials",
		Name:        "Materials",
		Description: "Chemicals, metals, mining, construction materials.",
		ETF:         "XLB",
		Stocks:      []string{"LIN", "APD", "SHW", "ECL", "FCX"},
	},
	{
		ID:          "communication_services",
		Name:        "Communication Services",
		Description: "Media, telecom, interactive media, entertainment.",
		ETF:         "XLC",
		Stocks:      []string{"GOOGL", "META", "NFLX", "DIS", "CMCSA"},
	},
	{
		ID:          "real_estate",
		Name:        "Real Estate",
		Description: "REITs and real estate management.",
		ETF:         "XLRE",
		Stocks:      []string{"PLD", "AMT", "EQIX", "PSA", "O"},
	},
	{
		ID:          "utilities",
		Name:        "Utilities",
		Description: "Electric, gas, water utilities, independent power.",
		ETF:         "XLU",
		Stocks:      []string{"NEE", "DUK", "SO", "D", "AEP"},
	},
}

// All returns a copy of the sector table in its fixed order.
func All() []models.Sector {
	out := make([]models.Sector, len(table))
	for i, s := range table {
		out[i] = clone(s)
	}
	return out
}

func Get(id string) (models.Sector, bool) {
	for _, s := range table {
		if s.ID == id {
			return clone(s), true
		}
	}
	return models.Sector{}, false
}

// ForSymbol finds the sector whose ETF or stock list contains symbol.
func ForSymbol(symbol string) (models.Sector, bool) {
	for _, s := range table {
		if s.ETF == symbol || slices.Contains(s.Stocks, symbol) {
			return clone(s), true
		}
	}
	return models.Sector{}, false
}

// AllTickers lists every ETF and stock once, in table order.
func AllTickers() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(t string) {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	for _, s := range table {
		add(s.ETF)
		for _, t := range s.Stocks {
			add(t)
		}
	}
	return out
}

func AllStocks() []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range table {
		for _, t := range s.Stocks {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	return out
}

func clone(s models.Sector) models.Sector {
	s.Stocks = slices.Clone(s.Stocks)
	return s
}
