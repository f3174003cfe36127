package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/rtlite/movieworld/internal/model"
)

type NewsRepo interface {
	WithTx(tx *gorm.DB) NewsRepo
	Create(suggestion *model.NewsSuggestion) error
	ListAll() ([]model.NewsSuggestion, error)
}

type newsRepoGorm struct {
	db *gorm.DB
}

var _ NewsRepo = (*newsRepoGorm)(nil)

func NewNewsRepoGorm(db *gorm.DB) *newsRepoGorm {
	return &newsRepoGorm{
		db: db,
	}
}

func (r *newsRepoGorm) WithTx(tx *gorm.DB) NewsRepo {
	return &newsRepoGorm{
		db: tx,
	}
}

func (r *newsRepoGorm) Create(suggestion *model.NewsSuggestion) error {
	ctx := context.Background()
	if err := gorm.G[model.NewsSuggestion](r.db).Create(ctx, suggestion); err != nil {
		return err
	}
	return nil
}

func (r *newsRepoGorm) ListAll() ([]model.NewsSuggestion, error) {
	ctx := context.Background()
	suggestions, err := gorm.G[model.NewsSuggestion](r.db).Find(ctx)
	if err != nil {
		return nil, err
	}
	return suggestions, nil
}
