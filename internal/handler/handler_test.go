package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rtlite/movieworld/internal/model"
	"github.com/rtlite/movieworld/internal/service"
	"github.com/rtlite/movieworld/internal/service/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeAccounts struct {
	registerErr error
	loginUser   *model.User
	loginErr    error
}

var _ domain.AccountService = (*fakeAccounts)(nil)

func (f *fakeAccounts) Register(name, email, password string) error { return f.registerErr }
func (f *fakeAccounts) Login(email, password string) (*model.User, error) {
	return f.loginUser, f.loginErr
}

type fakeNews struct {
	err error
}

var _ domain.NewsService = (*fakeNews)(nil)

func (f *fakeNews) Suggest(s *model.NewsSuggestion) error { return f.err }

type fakeOrders struct {
	err    error
	nextID uint
}

var _ domain.OrderService = (*fakeOrders)(nil)

func (f *fakeOrders) Place(o *model.Order) error {
	if f.err != nil {
		return f.err
	}
	o.ID = f.nextID
	return nil
}

func newTestRouter(accounts domain.AccountService, news domain.NewsService, orders domain.OrderService) *gin.Engine {
	api := &API{
		Account: NewAccountHandler(accounts),
		News:    NewNewsHandler(news),
		Order:   NewOrderHandler(orders),
		Health:  NewHealthHandler(nil),
	}
	return api.Router()
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var payload map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	}
	return rec, payload
}

func TestHandleRegister(t *testing.T) {
	router := newTestRouter(&fakeAccounts{}, &fakeNews{}, &fakeOrders{})

	rec, payload := doJSON(t, router, http.MethodPost, "/api/register", gin.H{
		"name": "Ann", "email": "a@x.com", "password": "secret1",
	})
	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "registration successful", payload["message"])
}

func TestHandleRegisterConflict(t *testing.T) {
	router := newTestRouter(&fakeAccounts{registerErr: service.ErrAlreadyExists}, &fakeNews{}, &fakeOrders{})

	rec, payload := doJSON(t, router, http.MethodPost, "/api/register", gin.H{
		"name": "Ann", "email": "a@x.com", "password": "secret1",
	})
	assert.Equal(t, 400, rec.Code)
	assert.Equal(t, "user already exists", payload["message"])
}

func TestHandleRegisterUnavailable(t *testing.T) {
	router := newTestRouter(&fakeAccounts{registerErr: service.ErrUnavailable}, &fakeNews{}, &fakeOrders{})

	rec, _ := doJSON(t, router, http.MethodPost, "/api/register", gin.H{
		"name": "Ann", "email": "a@x.com", "password": "secret1",
	})
	assert.Equal(t, 503, rec.Code)
}

func TestHandleLogin(t *testing.T) {
	accounts := &fakeAccounts{loginUser: &model.User{ID: 7, Name: "Ann", Email: "a@x.com"}}
	router := newTestRouter(accounts, &fakeNews{}, &fakeOrders{})

	rec, payload := doJSON(t, router, http.MethodPost, "/api/login", gin.H{
		"email": "a@x.com", "password": "secret1",
	})
	require.Equal(t, 200, rec.Code)
	user, ok := payload["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(7), user["id"])
	assert.Equal(t, "Ann", user["name"])
	assert.Equal(t, "a@x.com", user["email"])
}

func TestHandleLoginInvalidCredentials(t *testing.T) {
	router := newTestRouter(&fakeAccounts{loginErr: service.ErrInvalidCredentials}, &fakeNews{}, &fakeOrders{})

	rec, payload := doJSON(t, router, http.MethodPost, "/api/login", gin.H{
		"email": "a@x.com", "password": "wrong",
	})
	assert.Equal(t, 400, rec.Code)
	assert.Equal(t, "invalid email or password", payload["message"])
}

func TestHandleNewsSuggestValidation(t *testing.T) {
	newsErr := service.ErrValidation
	router := newTestRouter(&fakeAccounts{}, &fakeNews{err: newsErr}, &fakeOrders{})

	rec, _ := doJSON(t, router, http.MethodPost, "/api/news-suggest", gin.H{"title": "only title"})
	assert.Equal(t, 400, rec.Code)
}

func TestHandleOrder(t *testing.T) {
	router := newTestRouter(&fakeAccounts{}, &fakeNews{}, &fakeOrders{nextID: 42})

	rec, payload := doJSON(t, router, http.MethodPost, "/api/order", gin.H{
		"movieName": "Inception", "moviePrice": 9.99, "quantity": 2,
		"customerName": "Ann", "customerEmail": "a@x.com", "customerPhone": "+79123456789",
		"deliveryAddress": "1 Main St", "paymentMethod": "card",
	})
	require.Equal(t, 200, rec.Code)
	assert.Equal(t, float64(42), payload["orderId"])
}

func TestHandleLogoutIsStatelessAck(t *testing.T) {
	router := newTestRouter(&fakeAccounts{}, &fakeNews{}, &fakeOrders{})

	rec, payload := doJSON(t, router, http.MethodPost, "/api/logout", nil)
	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "logged out", payload["message"])
}

func TestHandleHealthIdempotent(t *testing.T) {
	router := newTestRouter(&fakeAccounts{}, &fakeNews{}, &fakeOrders{})

	var statuses []string
	for i := 0; i < 3; i++ {
		rec, payload := doJSON(t, router, http.MethodGet, "/api/health", nil)
		require.Equal(t, 200, rec.Code)
		assert.Equal(t, "ok", payload["status"])
		statuses = append(statuses, payload["db"].(string))
	}
	// no database is wired in this test, so the answer never flips
	assert.Equal(t, []string{"disconnected", "disconnected", "disconnected"}, statuses)
}

func TestValidationMessageStripsSentinelPrefix(t *testing.T) {
	wrapped := fmt.Errorf("%w: invalid phone number", service.ErrValidation)
	assert.Equal(t, "invalid phone number", validationMessage(wrapped))
}
