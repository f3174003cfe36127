package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/rtlite/movieworld/internal/model"
	"github.com/rtlite/movieworld/internal/service"
	"github.com/rtlite/movieworld/internal/service/domain"
)

type NewsHandler struct {
	news domain.NewsService
}

func NewNewsHandler(news domain.NewsService) *NewsHandler {
	return &NewsHandler{
		news: news,
	}
}

func (h *NewsHandler) HandleSuggest(ctx *gin.Context) {
	var req NewsSuggestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{
			"message": "invalid request format",
		})
		return
	}

	suggestion := &model.NewsSuggestion{
		Name:  req.Name,
		Email: req.Email,
		Title: req.Title,
		Text:  req.Text,
		Link:  req.Link,
	}
	if err := h.news.Suggest(suggestion); err != nil {
		if errors.Is(err, service.ErrValidation) {
			ctx.JSON(400, gin.H{
				"message": validationMessage(err),
			})
			return
		}
		if errors.Is(err, service.ErrUnavailable) {
			ctx.JSON(503, gin.H{
				"message": "service temporarily unavailable, please try again later",
			})
			return
		}
		ctx.JSON(500, gin.H{
			"message": "failed to submit news suggestion, please try again later",
		})
		return
	}

	ctx.JSON(200, gin.H{
		"message": "thank you! your news suggestion has been submitted for review",
	})
}

type NewsSuggestRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Title string  `json:"title"`
	Text  string  `json:"text"`
	Link  *string `json:"link"`
}
