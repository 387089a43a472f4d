package stocks

import (
	"context"
	"errors"

	"github.com/vedantwpatil/trendbot/models"
)

// MinObservations is the shortest history a provider hands to the engine.
const MinObservations = 60

var ErrBadRequest = errors.New("bad price request")

// PriceResult is either an available series or an explicit reason it is not.
type PriceResult struct {
	Series    models.PriceSeries
	Available bool
	Reason    string
}

func Available(s models.PriceSeries) PriceResult {
	return PriceResult{Series: s, Available: true}
}

func Unavailable(reason string) PriceResult {
	return PriceResult{Reason: reason}
}

// Provider returns daily closes for a symbol over the last lookbackDays
// calendar days. Ordinary unavailability is reported in the result; the
// error is reserved for malformed requests.
type Provider interface {
	FetchCloses(ctx context.Context, symbol string, lookbackDays int) (PriceResult, error)
}
