package stocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/vedantwpatil/trendbot/models"
)

const DefaultServiceURL = "http://localhost:8001"

const dateLayout = "2006-01-02"

type PriceData struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	Close  float64 `json:"close"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Volume int64   `json:"volume"`
}

// StockClient talks to the stock data service.
type StockClient struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
	now        func() time.Time
}

func NewStockClient(baseURL string, log zerolog.Logger) *StockClient {
	if baseURL == "" {
		baseURL = DefaultServiceURL
	}
	return &StockClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
		now: time.Now,
	}
}

func (c *StockClient) FetchCloses(ctx context.Context, symbol string, lookbackDays int) (PriceResult, error) {
	if strings.TrimSpace(symbol) == "" {
		return PriceResult{}, fmt.Errorf("%w: empty symbol", ErrBadRequest)
	}
	if lookbackDays <= 0 {
		return PriceResult{}, fmt.Errorf("%w: lookback must be positive, got %d", ErrBadRequest, lookbackDays)
	}

	end := c.now()
	start := end.AddDate(0, 0, -lookbackDays)
	rows, err := c.GetHistoricalData(ctx, symbol, start, end)
	if err != nil {
		c.log.Warn().Err(err).Str("symbol", symbol).Msg("price fetch failed")
		return Unavailable(err.Error()), nil
	}

	series, err := seriesFromRows(rows)
	if err != nil {
		return Unavailable(err.Error()), nil
	}
	if series.Len() < MinObservations {
		return Unavailable(fmt.Sprintf("only %d observations, need %d", series.Len(), MinObservations)), nil
	}

	c.log.Debug().Str("symbol", symbol).Int("observations", series.Len()).Msg("fetched prices")
	return Available(series), nil
}

func (c *StockClient) GetHistoricalData(ctx context.Context, ticker string, startDate, endDate time.Time) ([]PriceData, error) {
	payload := map[string]string{
		"ticker":     ticker,
		"start_date": startDate.Format(dateLayout),
		"end_date":   endDate.Format(dateLayout),
	}

	var prices []PriceData
	if err := c.post(ctx, "/stock_data", payload, &prices); err != nil {
		return nil, err
	}
	return prices, nil
}

func (c *StockClient) GetPriceOnDate(ctx context.Context, ticker string, date time.Time) (*PriceData, error) {
	payload := map[string]string{
		"ticker": ticker,
		"date":   date.Format(dateLayout),
	}

	var price PriceData
	if err := c.post(ctx, "/stock_price", payload, &price); err != nil {
		return nil, fmt.Errorf("no price data found for %s on %s: %w", ticker, date.Format(dateLayout), err)
	}
	return &price, nil
}

func (c *StockClient) post(ctx context.Context, path string, payload any, out any) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("stock service returned %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// seriesFromRows sorts by date and drops rows without a usable close.
func seriesFromRows(rows []PriceData) (models.PriceSeries, error) {
	points := make([]models.PricePoint, 0, len(rows))
	for _, r := range rows {
		if r.Close <= 0 {
			continue
		}
		d, err := parseDate(r.Date)
		if err != nil {
			return models.PriceSeries{}, err
		}
		points = append(points, models.PricePoint{Time: d, Close: r.Close})
	}
	if len(points) == 0 {
		return models.PriceSeries{}, fmt.Errorf("no usable closes")
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].Time.Before(points[j].Time) })
	return models.NewPriceSeries(points)
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if d, err := time.Parse(dateLayout, s); err == nil {
		return d, nil
	}
	d, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparseable date %q", s)
	}
	return d.UTC(), nil
}
