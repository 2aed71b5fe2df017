package geo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/netip"
	"net/url"
	"path"
	"time"

	"github.com/tidwall/gjson"

	"github.com/projectkrs/krs/internal/domain/model"
	"github.com/projectkrs/krs/internal/metrics"
)

const maxResponseBytes = 64 << 10

// Resolver turns a client IP into a best-effort location. It never fails.
type Resolver interface {
	Resolve(ctx context.Context, ip string) model.Location
}

// HTTPResolver queries an ipapi.co compatible provider.
type HTTPResolver struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPResolver creates a resolver with a fixed per-lookup timeout.
func NewHTTPResolver(baseURL string, timeout time.Duration, logger *slog.Logger) (*HTTPResolver, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse geo url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("geo url must be absolute")
	}
	return &HTTPResolver{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Resolve returns an empty Location for private, loopback or unparsable addresses
// and for any upstream failure.
func (r *HTTPResolver) Resolve(ctx context.Context, ip string) model.Location {
	if !Routable(ip) {
		metrics.GeoLookup(metrics.GeoSkipped)
		return model.Location{}
	}

	loc, err := r.lookup(ctx, ip)
	if err != nil {
		metrics.GeoLookup(metrics.GeoFailed)
		r.logger.Warn("geolocation lookup failed", slog.String("ip", ip), slog.String("error", err.Error()))
		return model.Location{}
	}
	metrics.GeoLookup(metrics.GeoResolved)
	return loc
}

func (r *HTTPResolver) lookup(ctx context.Context, ip string) (model.Location, error) {
	endpoint := *r.baseURL
	endpoint.Path = path.Join(endpoint.Path, ip, "json") + "/"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return model.Location{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return model.Location{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return model.Location{}, fmt.Errorf("geo provider: %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return model.Location{}, err
	}
	return parseLocation(body)
}

func parseLocation(body []byte) (model.Location, error) {
	if !gjson.ValidBytes(body) {
		return model.Location{}, errors.New("geo provider: malformed response")
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return model.Location{}, errors.New("geo provider: unexpected payload")
	}
	if doc.Get("error").Bool() {
		return model.Location{}, fmt.Errorf("geo provider: %s", doc.Get("reason").String())
	}

	return model.Location{
		City:    optString(doc, "city"),
		Region:  optString(doc, "region"),
		Country: optString(doc, "country_name"),
		Lat:     optFloat(doc, "latitude"),
		Lng:     optFloat(doc, "longitude"),
	}, nil
}

func optString(doc gjson.Result, key string) *string {
	v := doc.Get(key)
	if v.Type != gjson.String || v.Str == "" {
		return nil
	}
	s := v.Str
	return &s
}

func optFloat(doc gjson.Result, key string) *float64 {
	v := doc.Get(key)
	if v.Type != gjson.Number {
		return nil
	}
	f := v.Num
	return &f
}

// Routable reports whether ip is a public address worth looking up.
func Routable(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	return !(addr.IsLoopback() || addr.IsPrivate() || addr.IsLinkLocalUnicast() ||
		addr.IsLinkLocalMulticast() || addr.IsUnspecified() || addr.IsMulticast())
}
