// Package youtube searches videos through the YouTube Data API v3
package youtube

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/studyforge/backend/internal/models"
)

// Client is a minimal YouTube Data API client
type Client struct {
	http   *resty.Client
	apiKey string
}

// NewClient creates a new YouTube client
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	httpClient := resty.New().SetBaseURL(strings.TrimSuffix(baseURL, "/"))
	if timeout > 0 {
		httpClient.SetTimeout(timeout)
	}
	return &Client{http: httpClient, apiKey: apiKey}
}

type thumbnail struct {
	URL string `json:"url"`
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string    `json:"title"`
			Description  string    `json:"description"`
			ChannelTitle string    `json:"channelTitle"`
			PublishedAt  time.Time `json:"publishedAt"`
			Thumbnails   struct {
				Default thumbnail `json:"default"`
				Medium  thumbnail `json:"medium"`
				High    thumbnail `json:"high"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Search returns up to maxResults videos matching query
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]models.YouTubeVideo, error) {
	var out searchResponse
	var apiErr apiError
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part":       "snippet",
			"type":       "video",
			"q":          query,
			"maxResults": strconv.Itoa(maxResults),
			"key":        c.apiKey,
		}).
		SetResult(&out).
		SetError(&apiErr).
		Get("/youtube/v3/search")
	if err != nil {
		return nil, fmt.Errorf("youtube request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("youtube returned status %d: %s", resp.StatusCode(), apiErr.Error.Message)
	}

	videos := make([]models.YouTubeVideo, 0, len(out.Items))
	for _, item := range out.Items {
		if item.ID.VideoID == "" {
			continue
		}
		thumb := item.Snippet.Thumbnails.High.URL
		if thumb == "" {
			thumb = item.Snippet.Thumbnails.Medium.URL
		}
		if thumb == "" {
			thumb = item.Snippet.Thumbnails.Default.URL
		}
		videos = append(videos, models.YouTubeVideo{
			VideoID:      item.ID.VideoID,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			ChannelTitle: item.Snippet.ChannelTitle,
			ThumbnailURL: thumb,
			PublishedAt:  item.Snippet.PublishedAt,
		})
	}
	return videos, nil
}
