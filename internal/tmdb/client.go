package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// posterBaseURL is the fixed prefix joined with a poster_path fragment to
// produce a fully-qualified image URL.
const posterBaseURL = "https://image.tmdb.org/t/p/w500"

// Config carries the external service's location and credentials. The bearer
// token goes on every request; the api_key query parameter is only required
// by the details endpoint.
type Config struct {
	BaseURL     string
	BearerToken string
	APIKey      string
}

type Client struct {
	config     Config
	httpClient *http.Client
}

func NewClient(config Config) *Client {
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if params == nil {
		params = url.Values{}
	}

	fullURL := fmt.Sprintf("%s%s?%s", c.config.BaseURL, endpoint, params.Encode())
	log.Printf("metadata API request: %s%s", c.config.BaseURL, endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", c.config.BearerToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("HTTP request failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrExternalService, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("failed to read response body: %v", err)
		return nil, fmt.Errorf("%w: read body: %v", ErrExternalService, err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("metadata API error: status %d, body: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("%w: status %d", ErrExternalService, resp.StatusCode)
	}

	return body, nil
}

// Search queries the service by title and keeps only id and title of each
// hit, preserving the service's result order. A response without a results
// key is an empty list, not an error.
func (c *Client) Search(ctx context.Context, title string) ([]Candidate, error) {
	params := url.Values{}
	params.Set("query", title)

	body, err := c.get(ctx, "/search/movie", params)
	if err != nil {
		return nil, err
	}

	var result searchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		log.Printf("failed to unmarshal search response: %v", err)
		return nil, fmt.Errorf("%w: unmarshal: %v", ErrExternalService, err)
	}

	return result.Results, nil
}

// GetDetails fetches one movie by the service's id and maps it onto the
// fields a collection entry needs. title, release_date and poster_path are
// required; overview may be empty.
func (c *Client) GetDetails(ctx context.Context, externalID int) (Details, error) {
	endpoint := fmt.Sprintf("/movie/%d", externalID)
	params := url.Values{}
	params.Set("api_key", c.config.APIKey)

	body, err := c.get(ctx, endpoint, params)
	if err != nil {
		return Details{}, err
	}

	var resp detailsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		log.Printf("failed to unmarshal movie details: %v", err)
		return Details{}, fmt.Errorf("%w: unmarshal: %v", ErrExternalService, err)
	}

	switch {
	case resp.Title == nil:
		return Details{}, fmt.Errorf("%w: title", ErrMissingField)
	case resp.ReleaseDate == nil:
		return Details{}, fmt.Errorf("%w: release_date", ErrMissingField)
	case resp.PosterPath == nil:
		return Details{}, fmt.Errorf("%w: poster_path", ErrMissingField)
	}

	year, err := yearFromReleaseDate(*resp.ReleaseDate)
	if err != nil {
		return Details{}, err
	}

	return Details{
		Title:       *resp.Title,
		Year:        year,
		Description: resp.Overview,
		ImgURL:      posterBaseURL + *resp.PosterPath,
	}, nil
}

// yearFromReleaseDate takes the segment before the first "-" of a
// "YYYY-MM-DD" date.
func yearFromReleaseDate(releaseDate string) (int, error) {
	head, _, found := strings.Cut(releaseDate, "-")
	if !found {
		return 0, fmt.Errorf("%w: %q", ErrBadReleaseDate, releaseDate)
	}
	year, err := strconv.Atoi(head)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadReleaseDate, releaseDate)
	}
	return year, nil
}
