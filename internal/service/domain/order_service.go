package domain

import (
	"fmt"
	"math"
	"regexp"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rtlite/movieworld/internal/cache"
	"github.com/rtlite/movieworld/internal/model"
	"github.com/rtlite/movieworld/internal/mq"
	"github.com/rtlite/movieworld/internal/repository"
	"github.com/rtlite/movieworld/internal/service"
)

const (
	minQuantity = 1
	maxQuantity = 10
	minPhoneLen = 10
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigitPattern = regexp.MustCompile(`\D`)
)

type OrderService interface {
	Place(order *model.Order) error
}

type orderService struct {
	db       *gorm.DB
	cache    *cache.RedisCache
	repo     repository.OrderRepo
	producer *mq.Producer
	logger   *zap.Logger
}

var _ OrderService = (*orderService)(nil)

// NewOrderService accepts nil cache and nil producer: order placement still
// works, only the async fulfillment notification is skipped.
func NewOrderService(db *gorm.DB, cache *cache.RedisCache, orderRepo repository.OrderRepo, producer *mq.Producer, logger *zap.Logger) *orderService {
	return &orderService{
		db:       db,
		cache:    cache,
		repo:     orderRepo,
		producer: producer,
		logger:   logger,
	}
}

// Place validates the checkout payload, recomputes the total from price and
// quantity (a client-supplied total is never trusted) and inserts the order.
// Publishing the fulfillment message is best effort: the order stands even if
// the broker is down.
func (s *orderService) Place(order *model.Order) error {
	if err := validateOrder(order); err != nil {
		return err
	}

	order.TotalPrice = math.Round(order.MoviePrice*float64(order.Quantity)*100) / 100

	if err := s.repo.Create(order); err != nil {
		return service.ClassifyStoreErr(err)
	}

	s.logger.Info("order placed",
		zap.Uint("order_id", order.ID),
		zap.String("movie", order.MovieName),
		zap.Float64("total", order.TotalPrice),
	)

	if s.cache != nil {
		if err := s.cache.SetOrderStatus(order.ID, cache.OrderStatusPlaced); err != nil {
			s.logger.Warn("failed to record order status", zap.Uint("order_id", order.ID), zap.Error(err))
		}
	}
	if s.producer != nil {
		msg := mq.OrderPlacedMessage{
			OrderID:       order.ID,
			CustomerEmail: order.CustomerEmail,
			TotalPrice:    order.TotalPrice,
		}
		if err := s.producer.SendOrderPlaced(msg); err != nil {
			s.logger.Warn("failed to publish order placed message", zap.Uint("order_id", order.ID), zap.Error(err))
		}
	}

	return nil
}

func validateOrder(order *model.Order) error {
	if order.MovieName == "" || order.MoviePrice == 0 || order.Quantity == 0 ||
		order.CustomerName == "" || order.CustomerEmail == "" || order.CustomerPhone == "" ||
		order.DeliveryAddress == "" || order.PaymentMethod == "" {
		return fmt.Errorf("%w: all fields are required", service.ErrValidation)
	}
	if !emailPattern.MatchString(order.CustomerEmail) {
		return fmt.Errorf("%w: invalid email address", service.ErrValidation)
	}
	if len(nonDigitPattern.ReplaceAllString(order.CustomerPhone, "")) < minPhoneLen {
		return fmt.Errorf("%w: invalid phone number", service.ErrValidation)
	}
	if order.Quantity < minQuantity || order.Quantity > maxQuantity {
		return fmt.Errorf("%w: quantity must be between %d and %d", service.ErrValidation, minQuantity, maxQuantity)
	}
	return nil
}
