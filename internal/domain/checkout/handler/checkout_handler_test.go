package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"checkout_solid/internal/domain/checkout/model"
	"checkout_solid/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCheckoutService is a mock of CheckoutService
type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) RunCheckout(order *model.Order) bool {
	args := m.Called(order)
	if args.Bool(0) {
		order.MarkPaid()
	}
	return args.Bool(0)
}

func setupRouter(s *MockCheckoutService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/checkout/test", NewCheckoutHandler(s).Checkout)
	return r
}

func doCheckout(r *gin.Engine, body string) (*httptest.ResponseRecorder, response.Response) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkout/test", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var resp response.Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestCheckout(t *testing.T) {
	t.Run("Paid order is returned", func(t *testing.T) {
		s := new(MockCheckoutService)
		s.On("RunCheckout", mock.MatchedBy(func(o *model.Order) bool {
			return o.CustomerName == "Andi" && o.TotalPrice == 500000
		})).Return(true)

		w, resp := doCheckout(setupRouter(s), `{"customer_name":"Andi","total_price":500000}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, response.CodeSuccess, resp.Code)
		data, ok := resp.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Andi", data["customer_name"])
		assert.Equal(t, 500000.0, data["total_price"])
		assert.Equal(t, "paid", data["status"])
		assert.NotContains(t, data, "customerName")
		s.AssertExpectations(t)
	})

	t.Run("Payment failure returns business error", func(t *testing.T) {
		s := new(MockCheckoutService)
		s.On("RunCheckout", mock.Anything).Return(false)

		w, resp := doCheckout(setupRouter(s), `{"customer_name":"Budi","total_price":100000}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, response.ErrPaymentFailed, resp.Code)
	})

	t.Run("Invalid input", func(t *testing.T) {
		s := new(MockCheckoutService)

		w, resp := doCheckout(setupRouter(s), `{"customer_name":"Andi","total_price":0}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, response.ErrInvalidParam, resp.Code)
		s.AssertNotCalled(t, "RunCheckout", mock.Anything)
	})
}
