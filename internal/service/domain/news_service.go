package domain

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rtlite/movieworld/internal/model"
	"github.com/rtlite/movieworld/internal/repository"
	"github.com/rtlite/movieworld/internal/service"
)

type NewsService interface {
	Suggest(suggestion *model.NewsSuggestion) error
}

type newsService struct {
	db     *gorm.DB
	repo   repository.NewsRepo
	logger *zap.Logger
}

var _ NewsService = (*newsService)(nil)

func NewNewsService(db *gorm.DB, newsRepo repository.NewsRepo, logger *zap.Logger) *newsService {
	return &newsService{
		db:     db,
		repo:   newsRepo,
		logger: logger,
	}
}

func (s *newsService) Suggest(suggestion *model.NewsSuggestion) error {
	if suggestion.Title == "" || suggestion.Text == "" {
		return fmt.Errorf("%w: title and text are required", service.ErrValidation)
	}
	if err := s.repo.Create(suggestion); err != nil {
		return service.ClassifyStoreErr(err)
	}
	s.logger.Info("news suggestion received", zap.String("title", suggestion.Title))
	return nil
}
