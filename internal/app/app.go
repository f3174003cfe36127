package app

import (
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rtlite/movieworld/config"
	"github.com/rtlite/movieworld/internal/cache"
	"github.com/rtlite/movieworld/internal/geocode"
	"github.com/rtlite/movieworld/internal/mq"
	"github.com/rtlite/movieworld/internal/newsfeed"
	"github.com/rtlite/movieworld/internal/repository"
	"github.com/rtlite/movieworld/internal/service/domain"
	"github.com/rtlite/movieworld/internal/service/workflow"
)

type App struct {
	Config *config.Config

	DB     *gorm.DB
	Cache  *cache.RedisCache
	Logger *zap.Logger
	MQConn *amqp.Connection

	UserRepo  repository.UserRepo
	NewsRepo  repository.NewsRepo
	OrderRepo repository.OrderRepo

	AccountService domain.AccountService
	NewsService    domain.NewsService
	OrderService   domain.OrderService

	NewsFeed *newsfeed.Service
	Geocoder *geocode.Client

	FulfillmentWorkflow *workflow.FulfillmentWorkflow
}

// New wires the application. Cache and MQ connection may be nil; the services
// degrade gracefully without them.
func New(config *config.Config, db *gorm.DB, redisCache *cache.RedisCache, mqConn *amqp.Connection, logger *zap.Logger) (*App, error) {
	userRepo := repository.NewUserRepoGorm(db)
	newsRepo := repository.NewNewsRepoGorm(db)
	orderRepo := repository.NewOrderRepoGorm(db)

	var producer *mq.Producer
	if mqConn != nil {
		var err error
		producer, err = mq.NewProducer(mqConn)
		if err != nil {
			return nil, err
		}
	}

	accountService := domain.NewAccountService(db, userRepo, logger)
	newsService := domain.NewNewsService(db, newsRepo, logger)
	orderService := domain.NewOrderService(db, redisCache, orderRepo, producer, logger)

	newsFeed := newsfeed.NewService(config.NewsAPIURL, config.NewsAPIKey, redisCache, logger)
	geocoder := geocode.NewClient()

	fulfillmentWorkflow := workflow.NewFulfillmentWorkflow(redisCache, logger)

	return &App{
		Config:              config,
		DB:                  db,
		Cache:               redisCache,
		Logger:              logger,
		MQConn:              mqConn,
		UserRepo:            userRepo,
		NewsRepo:            newsRepo,
		OrderRepo:           orderRepo,
		AccountService:      accountService,
		NewsService:         newsService,
		OrderService:        orderService,
		NewsFeed:            newsFeed,
		Geocoder:            geocoder,
		FulfillmentWorkflow: fulfillmentWorkflow,
	}, nil
}

func (app *App) Init() error {
	if app.MQConn != nil {
		if err := mq.InitQueues(app.MQConn); err != nil {
			return err
		}
		if err := app.FulfillmentWorkflow.Start(app.MQConn); err != nil {
			return err
		}
	}
	return nil
}

func (app *App) Close() error {
	if app.MQConn != nil {
		app.MQConn.Close()
	}
	sqlDB, err := app.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
