package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/rtlite/movieworld/internal/model"
	"github.com/rtlite/movieworld/internal/service"
	"github.com/rtlite/movieworld/internal/service/domain"
)

type OrderHandler struct {
	orders domain.OrderService
}

func NewOrderHandler(orders domain.OrderService) *OrderHandler {
	return &OrderHandler{
		orders: orders,
	}
}

func (h *OrderHandler) HandleOrder(ctx *gin.Context) {
	var req OrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{
			"message": "invalid request format",
		})
		return
	}

	// total price is intentionally not taken from the request
	order := &model.Order{
		MovieName:       req.MovieName,
		MoviePrice:      req.MoviePrice,
		Quantity:        req.Quantity,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
	}
	if err := h.orders.Place(order); err != nil {
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
			"message": "failed to place order, please try again later",
		})
		return
	}

	ctx.JSON(200, gin.H{
		"message": "order placed successfully! we will contact you shortly",
		"orderId": order.ID,
	})
}

type OrderRequest struct {
	MovieName       string  `json:"movieName"`
	MoviePrice      float64 `json:"moviePrice"`
	Quantity        int     `json:"quantity"`
	CustomerName    string  `json:"customerName"`
	CustomerEmail   string  `json:"customerEmail"`
	CustomerPhone   string  `json:"customerPhone"`
	DeliveryAddress string  `json:"deliveryAddress"`
	PaymentMethod   string  `json:"paymentMethod"`
	// TotalPrice is accepted but ignored; the server recomputes it.
	TotalPrice float64 `json:"totalPrice"`
}
