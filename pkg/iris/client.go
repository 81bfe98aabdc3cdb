package iris

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bahnboard/bahnboard/pkg/documentcache"
	"github.com/bahnboard/bahnboard/pkg/util"
	"github.com/rs/zerolog/log"
)

// DefaultEndpoint is the public IRIS timetable gateway.
const DefaultEndpoint = "https://iris.noncd.db.de/iris-tts/timetable"

// Client fetches raw timetable documents from the IRIS gateway. A nil Cache
// disables caching and every document is fetched fresh.
type Client struct {
	Endpoint   string
	HTTPClient *http.Client
	Cache      *documentcache.Cache
}

func NewClient(cache *documentcache.Cache) *Client {
	endpoint := DefaultEndpoint

	env := util.GetEnvironmentVariables()
	if env["BAHNBOARD_IRIS_ENDPOINT"] != "" {
		endpoint = env["BAHNBOARD_IRIS_ENDPOINT"]
	}

	return &Client{
		Endpoint:   endpoint,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		Cache:      cache,
	}
}

// FetchPlan retrieves the planned-schedule document for one station and the
// hour bucket containing date. Past buckets never change upstream, so plan
// documents are served from the cache when one is configured.
func (c *Client) FetchPlan(ctx context.Context, eva int, date time.Time) (string, error) {
	date = date.In(FeedLocation())
	path := fmt.Sprintf("plan/%d/%s/%s", eva, date.Format("060102"), date.Format("15"))

	return c.fetchDocument(ctx, path, true)
}

// FetchChanges retrieves the full-change document for one station. It
// reflects live state and is never cached.
func (c *Client) FetchChanges(ctx context.Context, eva int) (string, error) {
	return c.fetchDocument(ctx, fmt.Sprintf("fchg/%d", eva), false)
}

// FetchStationDocument retrieves the station document matching a free-text
// query, an eva number or a DS100 code.
func (c *Client) FetchStationDocument(ctx context.Context, query string) (string, error) {
	return c.fetchDocument(ctx, fmt.Sprintf("station/%s", url.PathEscape(query)), true)
}

func (c *Client) fetchDocument(ctx context.Context, path string, cacheable bool) (string, error) {
	cacheKey := fmt.Sprintf("bahnboard/iris/%s", path)

	if cacheable && c.Cache != nil {
		if document, found := c.Cache.Get(ctx, cacheKey); found {
			return document, nil
		}
	}

	requestURL := fmt.Sprintf("%s/%s", c.Endpoint, path)

	log.Debug().Str("url", requestURL).Msg("Fetching IRIS document")

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "bahnboard")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("iris gateway returned status %d for %s", resp.StatusCode, path)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	document := string(body)

	if cacheable && c.Cache != nil {
		c.Cache.Set(ctx, cacheKey, document)
	}

	return document, nil
}
