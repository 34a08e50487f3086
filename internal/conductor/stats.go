package conductor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// RunStats is the slice of the public run-stats document the conductor
// watches. The feed publishes a JSON array whose first element carries
// the current totals under display-oriented key names.
type RunStats struct {
	Points        int64   `json:"Points: Total"`
	Crashes       int64   `json:"Crashes: Total"`
	BusStops      int64   `json:"Bus Stops: Total"`
	BugSplats     int64   `json:"Bug Splats: Total"`
	Odometer      float64 `json:"Current Mileage"`
	DonationTotal float64 `json:"Total Raised"`
	Live          bool    `json:"Run Live"`
	StartUnix     int64   `json:"Year Start UNIX-Time"`
}

// OmegaFlag is the tri-state answer of the omega-shift page. The page can
// be missing or malformed mid-run, which must not be confused with "off".
type OmegaFlag uint8

const (
	OmegaUnknown OmegaFlag = iota
	OmegaOff
	OmegaOn
)

// Fetcher pulls run stats and the omega-shift flag from the public site.
type Fetcher struct {
	base   string
	client *http.Client
	logger *zap.Logger
	now    func() time.Time
}

func NewFetcher(base string, logger *zap.Logger) *Fetcher {
	return &Fetcher{
		base:   strings.TrimRight(base, "/"),
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
		now:    time.Now,
	}
}

// statsURL builds the year-numbered stats document URL. Run numbering
// starts at 2006, so run N lives under /DB<N>/data/DB<N>_stats.json.
func (f *Fetcher) statsURL(year int) string {
	n := year - 2006
	return fmt.Sprintf("%s/DB%d/data/DB%d_stats.json", f.base, n, n)
}

// Stats fetches the current run totals. Early in a calendar year the
// current year's document does not exist yet, so a 404 falls back to the
// previous year's run.
func (f *Fetcher) Stats(ctx context.Context) (RunStats, error) {
	year := f.now().Year()
	stats, err := f.statsForYear(ctx, year)
	if errors.Is(err, errNoDocument) {
		f.logger.Debug("no stats document for current year, trying previous", zap.Int("year", year))
		return f.statsForYear(ctx, year-1)
	}
	return stats, err
}

var errNoDocument = errors.New("stats document not found")

func (f *Fetcher) statsForYear(ctx context.Context, year int) (RunStats, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.statsURL(year), nil)
	if err != nil {
		return RunStats{}, fmt.Errorf("build stats request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return RunStats{}, fmt.Errorf("fetch stats: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return RunStats{}, errNoDocument
	}
	if resp.StatusCode != http.StatusOK {
		return RunStats{}, fmt.Errorf("fetch stats: unexpected status %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return RunStats{}, fmt.Errorf("read stats body: %w", err)
	}
	var docs []RunStats
	if err := json.Unmarshal(body, &docs); err != nil {
		return RunStats{}, fmt.Errorf("decode stats: %w", err)
	}
	if len(docs) == 0 {
		return RunStats{}, errors.New("decode stats: empty document")
	}
	return docs[0], nil
}

// Omega fetches the omega-shift flag page. Anything other than a clean
// "0" or "1" body reports OmegaUnknown so the caller can hold its last
// known answer instead of flapping.
func (f *Fetcher) Omega(ctx context.Context) OmegaFlag {
	url := f.base + "/Resources/isitomegashift.html"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return OmegaUnknown
	}
	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Warn("omega flag fetch failed", zap.Error(err))
		return OmegaUnknown
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		f.logger.Warn("omega flag fetch failed", zap.String("status", resp.Status))
		return OmegaUnknown
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64))
	if err != nil {
		return OmegaUnknown
	}
	switch v, err := strconv.Atoi(strings.TrimSpace(string(body))); {
	case err != nil:
		return OmegaUnknown
	case v == 1:
		return OmegaOn
	case v == 0:
		return OmegaOff
	default:
		return OmegaUnknown
	}
}
