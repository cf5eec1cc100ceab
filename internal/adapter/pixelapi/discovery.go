package pixelapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"pixel-match/internal/config/configs"
	"pixel-match/internal/core/domain"
)

const dateLayout = "2006-01-02"

// Client implements port.PixelDiscovery against the pixel builder API.
type Client struct {
	url    string
	http   *retryablehttp.Client
	logger *slog.Logger
}

// New creates a discovery client.
func New(cfg configs.Discovery, logger *slog.Logger) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryMax
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.Logger = logger
	return &Client{url: cfg.URL, http: retryClient, logger: logger}
}

type catalog struct {
	TotalPixels int          `json:"totalPixels"`
	Pixels      []pixelEntry `json:"pixels"`
}

type pixelEntry struct {
	ID        pixelID    `json:"id"`
	Name      string     `json:"name"`
	Campaigns []campaign `json:"campaigns"`
}

type campaign struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// pixelID accepts both numeric and string ids.
type pixelID string

func (id *pixelID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = pixelID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("pixel id: %w", err)
	}
	*id = pixelID(n.String())
	return nil
}

// Discover fetches the catalog. Pixels without an id or campaign are
// dropped; dates that cannot be read are left empty.
func (c *Client) Discover(ctx context.Context) (domain.Discovery, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return domain.Discovery{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Discovery{}, fmt.Errorf("fetch pixel catalog: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.Discovery{}, fmt.Errorf("fetch pixel catalog: unexpected status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var cat catalog
	if err = json.NewDecoder(resp.Body).Decode(&cat); err != nil {
		return domain.Discovery{}, fmt.Errorf("decode pixel catalog: %w", err)
	}
	return c.toDomain(cat), nil
}

func (c *Client) toDomain(cat catalog) domain.Discovery {
	d := domain.Discovery{Total: cat.TotalPixels, Pixels: make([]domain.Pixel, 0, len(cat.Pixels))}
	for _, e := range cat.Pixels {
		if e.ID == "" || len(e.Campaigns) == 0 {
			continue
		}
		p := domain.Pixel{ID: string(e.ID), Name: e.Name}
		first := e.Campaigns[0]
		if start, ok := parseDate(first.StartDate); ok {
			p.StartDate = start
		} else {
			c.logger.Debug("pixel without usable start date", "pixel", p.ID, "start_date", first.StartDate)
		}
		if end, ok := parseDate(first.EndDate); ok {
			p.EndDate = &end
		}
		d.Pixels = append(d.Pixels, p)
	}
	return d
}

// parseDate reads the date part of an ISO timestamp.
func parseDate(s string) (time.Time, bool) {
	s, _, _ = strings.Cut(strings.TrimSpace(s), "T")
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
