// internal/artwork/artwork.go
package artwork

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"musiccatalog/internal/lib/logger/utils"

	"go.uber.org/zap"
)

// ArtworkAPI resolves cover art for a song. Lookups are best-effort: the
// catalog stores whatever URL the provider returns and works fine without one.
type ArtworkAPI interface {
	GetArtworkURL(artist, title string) (string, error)
}

type artworkResponse struct {
	ArtworkURL string `json:"artwork_url"`
}

type ArtworkClient struct {
	baseURL string
	client  *http.Client
}

func NewArtworkClient(baseURL string) *ArtworkClient {
	return &ArtworkClient{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (api *ArtworkClient) GetArtworkURL(artist, title string) (string, error) {
	if api.baseURL == "" {
		return "", fmt.Errorf("ARTWORK_API_URL not configured")
	}

	u, err := url.Parse(api.baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse ARTWORK_API_URL: %w", err)
	}

	query := u.Query()
	query.Set("artist", artist)
	query.Set("title", title)
	u.RawQuery = query.Encode()

	utils.Logger.Debug("Calling artwork API", zap.String("url", u.String()))

	resp, err := api.client.Get(u.String())
	if err != nil {
		return "", fmt.Errorf("failed to call artwork API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("artwork API returned error: %s", resp.Status)
	}

	var body artworkResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode artwork API response: %w", err)
	}

	utils.Logger.Debug("Artwork API response", zap.String("artwork_url", body.ArtworkURL))
	return body.ArtworkURL, nil
}
