package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/rtlite/movieworld/internal/geocode"
	"github.com/rtlite/movieworld/internal/newsfeed"
)

// FeedHandler proxies the third-party collaborators the storefront embeds:
// the news-headline feed and the map geocoder. Keeping them server-side hides
// the API key and lets the feed be cached.
type FeedHandler struct {
	feed *newsfeed.Service
	geo  *geocode.Client
}

func NewFeedHandler(feed *newsfeed.Service, geo *geocode.Client) *FeedHandler {
	return &FeedHandler{
		feed: feed,
		geo:  geo,
	}
}

func (h *FeedHandler) HandleNewsFeed(ctx *gin.Context) {
	articles := h.feed.Headlines(ctx.Request.Context())
	ctx.JSON(200, gin.H{
		"articles": articles,
	})
}

func (h *FeedHandler) HandleMapEmbed(ctx *gin.Context) {
	address := ctx.Query("address")
	embedURL, err := h.geo.EmbedURL(ctx.Request.Context(), address)
	if err != nil {
		if errors.Is(err, geocode.ErrNotFound) {
			ctx.JSON(404, gin.H{
				"message": "address not found",
			})
			return
		}
		ctx.JSON(502, gin.H{
			"message": "geocoding service unavailable",
		})
		return
	}

	ctx.JSON(200, gin.H{
		"embedUrl": embedURL,
	})
}
