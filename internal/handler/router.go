package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rtlite/movieworld/internal/service"
)

// API bundles the handlers behind the storefront's HTTP surface.
type API struct {
	Account *AccountHandler
	News    *NewsHandler
	Order   *OrderHandler
	Health  *HealthHandler
	Feed    *FeedHandler

	// StaticDir, when set, is served at the root for the frontend files.
	StaticDir string
}

func (a *API) Router() *gin.Engine {
	router := gin.Default()
	router.Use(CORS())

	api := router.Group("/api")
	{
		api.POST("/register", a.Account.HandleRegister)
		api.POST("/login", a.Account.HandleLogin)
		api.POST("/logout", a.Account.HandleLogout)
		api.POST("/news-suggest", a.News.HandleSuggest)
		api.POST("/order", a.Order.HandleOrder)
		api.GET("/health", a.Health.HandleHealth)
		if a.Feed != nil {
			api.GET("/news-feed", a.Feed.HandleNewsFeed)
			api.GET("/map-embed", a.Feed.HandleMapEmbed)
		}
	}

	if a.StaticDir != "" {
		router.Static("/site", a.StaticDir)
	}

	return router
}

// CORS mirrors the permissive policy of the original deployment: the static
// frontend may be served from anywhere.
func CORS() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Header("Access-Control-Allow-Origin", "*")
		ctx.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		ctx.Header("Access-Control-Allow-Headers", "Content-Type")
		if ctx.Request.Method == "OPTIONS" {
			ctx.AbortWithStatus(204)
			return
		}
		ctx.Next()
	}
}

// validationMessage strips the sentinel prefix off a wrapped validation error
// so only the human-readable part reaches the response body.
func validationMessage(err error) string {
	msg := err.Error()
	if cut, ok := strings.CutPrefix(msg, service.ErrValidation.Error()+": "); ok {
		return cut
	}
	return msg
}
