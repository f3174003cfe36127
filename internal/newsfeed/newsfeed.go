package newsfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/rtlite/movieworld/internal/cache"
)

const fallbackCount = 6

type Article struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	ImageURL string `json:"urlToImage"`
}

type headlinesResponse struct {
	Articles []Article `json:"articles"`
}

// Service fetches top headlines from the third-party news API, caching the
// result. Any failure degrades to a deterministic placeholder set so the
// storefront's news grid is never empty.
type Service struct {
	endpoint string
	apiKey   string
	client   *http.Client
	cache    *cache.RedisCache
	logger   *zap.Logger
}

func NewService(endpoint, apiKey string, cache *cache.RedisCache, logger *zap.Logger) *Service {
	return &Service{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 8 * time.Second},
		cache:    cache,
		logger:   logger,
	}
}

func (s *Service) Headlines(ctx context.Context) []Article {
	if s.cache != nil {
		var cached []Article
		if err := s.cache.Get(cache.NewsFeedKey, &cached); err == nil && len(cached) > 0 {
			return cached
		}
	}

	articles, err := s.fetch(ctx)
	if err != nil || len(articles) == 0 {
		if err != nil {
			s.logger.Warn("news feed fetch failed, serving placeholders", zap.Error(err))
		}
		return Placeholders()
	}

	if s.cache != nil {
		if err := s.cache.Set(cache.NewsFeedKey, articles, cache.NewsFeedTTL); err != nil {
			s.logger.Warn("failed to cache news feed", zap.Error(err))
		}
	}

	return articles
}

func (s *Service) fetch(ctx context.Context) ([]Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news API returned HTTP %d", resp.StatusCode)
	}

	var payload headlinesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	articles := make([]Article, 0, len(payload.Articles))
	for _, a := range payload.Articles {
		if a.Title == "" {
			continue
		}
		articles = append(articles, a)
	}
	return articles, nil
}

// Placeholders returns the static headline set shown when the feed is down.
func Placeholders() []Article {
	articles := make([]Article, 0, fallbackCount)
	for i := 1; i <= fallbackCount; i++ {
		articles = append(articles, Article{
			Title:    fmt.Sprintf("Top story #%d", i),
			URL:      "article.html",
			ImageURL: fmt.Sprintf("https://picsum.photos/seed/rtlite-fb-%d/800/600", i),
		})
	}
	return articles
}
