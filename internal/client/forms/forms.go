// Package forms holds the controllers behind the storefront's forms:
// register, login, news suggestion and purchase. Each controller validates
// its input, runs the dual-path remote/local operation through the fallback
// orchestrator, and reports the outcome as a transient notification. A
// controller never returns an error: every failure is a notification.
package forms

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/rtlite/movieworld/internal/client/api"
	"github.com/rtlite/movieworld/internal/client/fallback"
	"github.com/rtlite/movieworld/internal/client/gateway"
	"github.com/rtlite/movieworld/internal/client/localstore"
)

const minPasswordLen = 6

// RemoteAPI is the slice of the typed API client the controllers use.
type RemoteAPI interface {
	Register(ctx context.Context, name, email, password string) (*api.MessageResponse, error)
	Login(ctx context.Context, email, password string) (*api.LoginResponse, error)
	Logout(ctx context.Context) (*api.MessageResponse, error)
	SuggestNews(ctx context.Context, req api.NewsSuggestRequest) (*api.MessageResponse, error)
	PlaceOrder(ctx context.Context, req api.OrderRequest) (*api.OrderResponse, error)
}

// LocalStore is the slice of the persistence facade the controllers use.
type LocalStore interface {
	AppendUser(user localstore.User) error
	FindUser(email, password string) (*localstore.User, error)
	SetSession(session localstore.Session) error
	ClearSession() error
	AppendNewsSuggestion(suggestion localstore.NewsSuggestion) error
	AppendOrder(order localstore.Order) error
}

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notification is the transient, dismissable message a form renders.
type Notification struct {
	Kind    Kind
	Message string
}

func success(message string) Notification {
	return Notification{Kind: KindSuccess, Message: message}
}

func failure(message string) Notification {
	return Notification{Kind: KindError, Message: message}
}

type Controller struct {
	remote RemoteAPI
	store  LocalStore
	logger *zap.Logger
}

func NewController(remote RemoteAPI, store LocalStore, logger *zap.Logger) *Controller {
	return &Controller{
		remote: remote,
		store:  store,
		logger: logger,
	}
}

type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	PasswordConfirm string
}

// Register validates the input, attempts remote registration and falls back
// to the local user list. On success the session is set to the new identity.
func (c *Controller) Register(ctx context.Context, in RegisterInput) (*localstore.Session, Notification) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if name == "" || email == "" || in.Password == "" || in.PasswordConfirm == "" {
		return nil, failure("please fill in all fields")
	}
	if in.Password != in.PasswordConfirm {
		return nil, failure("passwords do not match")
	}
	if len(in.Password) < minPasswordLen {
		return nil, failure("password must be at least 6 characters")
	}

	res, err := fallback.Execute(ctx,
		func(ctx context.Context) (any, error) {
			return c.remote.Register(ctx, name, email, in.Password)
		},
		func(ctx context.Context) (any, error) {
			user := localstore.User{Name: name, Email: email, Password: in.Password}
			if err := c.store.AppendUser(user); err != nil {
				return nil, err
			}
			return user, nil
		},
	)
	if err != nil {
		if errors.Is(err, localstore.ErrAlreadyExists) {
			return nil, failure("user already exists")
		}
		return nil, failure(errMessage(err, "registration failed, please try again"))
	}

	session := localstore.Session{Name: name, Email: email}
	if err := c.store.SetSession(session); err != nil {
		c.logger.Warn("failed to persist session", zap.Error(err))
	}
	c.logger.Info("registered", zap.String("email", email), zap.String("source", string(res.Source)))

	return &session, success("registration successful! you are now logged in")
}

type LoginInput struct {
	Email    string
	Password string
}

// Login authenticates remotely, falling back to the local user list. The
// session name prefers what the active store knows over the typed email.
func (c *Controller) Login(ctx context.Context, in LoginInput) (*localstore.Session, Notification) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, failure("please fill in all fields")
	}

	res, err := fallback.Execute(ctx,
		func(ctx context.Context) (any, error) {
			return c.remote.Login(ctx, email, in.Password)
		},
		func(ctx context.Context) (any, error) {
			return c.store.FindUser(email, in.Password)
		},
	)
	if err != nil {
		if errors.Is(err, localstore.ErrInvalidCredentials) {
			return nil, failure("invalid email or password")
		}
		return nil, failure(errMessage(err, "invalid email or password"))
	}

	name := email
	switch payload := res.Payload.(type) {
	case *api.LoginResponse:
		if payload.User.Name != "" {
			name = payload.User.Name
		}
	case *localstore.User:
		if payload.Name != "" {
			name = payload.Name
		}
	}

	session := localstore.Session{Name: name, Email: email}
	if err := c.store.SetSession(session); err != nil {
		c.logger.Warn("failed to persist session", zap.Error(err))
	}
	c.logger.Info("logged in", zap.String("email", email), zap.String("source", string(res.Source)))

	return &session, success("login successful!")
}

// Logout acknowledges with the server on a best-effort basis and always
// clears the local session.
func (c *Controller) Logout(ctx context.Context) Notification {
	if _, err := c.remote.Logout(ctx); err != nil {
		c.logger.Debug("remote logout failed, clearing session anyway", zap.Error(err))
	}
	if err := c.store.ClearSession(); err != nil {
		return failure("failed to clear session")
	}
	return success("logged out")
}

type NewsInput struct {
	Name  string
	Email string
	Title string
	Text  string
	Link  string
}

func (c *Controller) SuggestNews(ctx context.Context, in NewsInput) Notification {
	title := strings.TrimSpace(in.Title)
	text := strings.TrimSpace(in.Text)
	if title == "" || text == "" {
		return failure("please fill in the title and the text")
	}

	_, err := fallback.Execute(ctx,
		func(ctx context.Context) (any, error) {
			return c.remote.SuggestNews(ctx, api.NewsSuggestRequest{
				Name:  in.Name,
				Email: in.Email,
				Title: title,
				Text:  text,
				Link:  in.Link,
			})
		},
		func(ctx context.Context) (any, error) {
			suggestion := localstore.NewsSuggestion{
				Name:  in.Name,
				Email: in.Email,
				Title: title,
				Text:  text,
				Link:  in.Link,
			}
			if err := c.store.AppendNewsSuggestion(suggestion); err != nil {
				return nil, err
			}
			return suggestion, nil
		},
	)
	if err != nil {
		return failure("failed to submit, please try again later")
	}

	return success("thank you! your news suggestion has been submitted for review")
}

type PurchaseInput struct {
	MovieName       string
	MoviePrice      float64
	Quantity        int
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	DeliveryAddress string
	PaymentMethod   string
}

// Purchase validates the checkout form and submits the order, remote first.
// The upper quantity bound is deliberately left to the server. Validation
// failures abort before any remote or local call.
func (c *Controller) Purchase(ctx context.Context, in PurchaseInput) Notification {
	email := strings.ToLower(strings.TrimSpace(in.CustomerEmail))
	if in.MovieName == "" || in.MoviePrice == 0 || in.Quantity == 0 ||
		in.CustomerName == "" || email == "" || in.CustomerPhone == "" ||
		in.DeliveryAddress == "" || in.PaymentMethod == "" {
		return failure("please fill in all fields")
	}
	if !emailPattern.MatchString(email) {
		return failure("invalid email address")
	}
	if countDigits(in.CustomerPhone) < 10 {
		return failure("invalid phone number")
	}

	res, err := fallback.Execute(ctx,
		func(ctx context.Context) (any, error) {
			return c.remote.PlaceOrder(ctx, api.OrderRequest{
				MovieName:       in.MovieName,
				MoviePrice:      in.MoviePrice,
				Quantity:        in.Quantity,
				CustomerName:    in.CustomerName,
				CustomerEmail:   email,
				CustomerPhone:   in.CustomerPhone,
				DeliveryAddress: in.DeliveryAddress,
				PaymentMethod:   in.PaymentMethod,
			})
		},
		func(ctx context.Context) (any, error) {
			order := localstore.Order{
				MovieName:       in.MovieName,
				MoviePrice:      in.MoviePrice,
				Quantity:        in.Quantity,
				CustomerName:    in.CustomerName,
				CustomerEmail:   email,
				CustomerPhone:   in.CustomerPhone,
				DeliveryAddress: in.DeliveryAddress,
				PaymentMethod:   in.PaymentMethod,
			}
			if err := c.store.AppendOrder(order); err != nil {
				return nil, err
			}
			return order, nil
		},
	)
	if err != nil {
		return failure(errMessage(err, "failed to place the order, please try again later"))
	}

	if resp, ok := res.Payload.(*api.OrderResponse); ok && resp.Message != "" {
		return success(resp.Message)
	}
	return success("order saved locally, we will process it once the service is back")
}

// errMessage prefers the server-supplied message of an HTTP error over the
// generic fallback text.
func errMessage(err error, fallbackMsg string) string {
	var httpErr *gateway.HTTPError
	if errors.As(err, &httpErr) && httpErr.Message != "" {
		return httpErr.Message
	}
	return fallbackMsg
}
