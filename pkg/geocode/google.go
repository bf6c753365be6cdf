package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"slices"
	"strconv"

	"github.com/rotisserie/eris"

	"droscher.com/BusinessFinder/pkg/model"
)

const statusOK = "OK"

type reverseResponse struct {
	Results []reverseResult `json:"results"`
	Status  string          `json:"status"`
}

type reverseResult struct {
	AddressComponents []addressComponent `json:"address_components"`
}

type addressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

func (a addressComponent) is(types ...string) bool {
	for _, t := range types {
		if slices.Contains(a.Types, t) {
			return true
		}
	}

	return false
}

func (c *Client) lookup(ctx context.Context, lat, lng float64) (*Location, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "geocode: rate limit")
	}

	params := url.Values{
		"latlng": {strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lng, 'f', -1, 64)},
		"key":    {c.apiKey},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: build request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, eris.Wrapf(model.ErrUpstream, "geocode: request failed: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, eris.Wrapf(model.ErrUpstream, "geocode: provider returned status %d", resp.StatusCode)
	}

	var body reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, eris.Wrapf(model.ErrUpstream, "geocode: parse response: %v", err)
	}

	if body.Status != statusOK {
		return nil, eris.Wrapf(model.ErrUpstream, "geocode: provider status %s", body.Status)
	}

	return extractLocation(body.Results), nil
}

// extractLocation takes the first city, state and country seen across results, in order,
// and stops as soon as all three are known.
func extractLocation(results []reverseResult) *Location {
	location := UnknownLocation()

	for _, result := range results {
		for _, component := range result.AddressComponents {
			if location.City == Unknown && component.is("locality", "administrative_area_level_2") {
				location.City = component.LongName
			}

			if location.State == Unknown && component.is("administrative_area_level_1") {
				location.State = component.ShortName
			}

			if location.Country == Unknown && component.is("country") {
				location.Country = component.LongName
			}
		}

		if location.complete() {
			break
		}
	}

	return location
}
