package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultEndpoint = "https://nominatim.openstreetmap.org/search"

var ErrNotFound = errors.New("address not found")

type searchResult struct {
	Lat         string   `json:"lat"`
	Lon         string   `json:"lon"`
	BoundingBox []string `json:"boundingbox"`
}

// Client resolves a street address to an OpenStreetMap embed URL through the
// Nominatim search API.
type Client struct {
	endpoint string
	client   *http.Client
}

func NewClient() *Client {
	return &Client{
		endpoint: defaultEndpoint,
		client:   &http.Client{Timeout: 7 * time.Second},
	}
}

func NewClientWithEndpoint(endpoint string) *Client {
	c := NewClient()
	c.endpoint = endpoint
	return c
}

// EmbedURL geocodes the address and builds the embeddable map URL from the
// first result's bounding box and marker coordinates.
func (c *Client) EmbedURL(ctx context.Context, address string) (string, error) {
	if address == "" {
		return "", ErrNotFound
	}

	query := url.Values{}
	query.Set("format", "json")
	query.Set("q", address)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept-Language", "en")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geocoder returned HTTP %d", resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return "", err
	}
	if len(results) == 0 {
		return "", ErrNotFound
	}

	r := results[0]
	if len(r.BoundingBox) != 4 {
		return "", ErrNotFound
	}

	// bbox order in the embed URL is lon-min, lat-min, lon-max, lat-max;
	// Nominatim returns lat-min, lat-max, lon-min, lon-max
	embed := fmt.Sprintf(
		"https://www.openstreetmap.org/export/embed.html?bbox=%s%%2C%s%%2C%s%%2C%s&layer=mapnik&marker=%s%%2C%s",
		r.BoundingBox[2], r.BoundingBox[0], r.BoundingBox[3], r.BoundingBox[1], r.Lat, r.Lon,
	)
	return embed, nil
}
