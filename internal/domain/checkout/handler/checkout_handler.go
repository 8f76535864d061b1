package handler

import (
	"net/http"

	"checkout_solid/internal/domain/checkout/model"
	"checkout_solid/internal/domain/checkout/service"
	"checkout_solid/pkg/response"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler 绑定到某一个已装配好的 CheckoutService
type CheckoutHandler struct {
	service service.CheckoutService
}

func NewCheckoutHandler(s service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{service: s}
}

type CheckoutInput struct {
	CustomerName string  `json:"customer_name" binding:"required"`
	TotalPrice   float64 `json:"total_price" binding:"required,gt=0"`
}

// Checkout 结账
// @Summary 结账
// @Tags Checkout
// @Accept json
// @Produce json
// @Param input body CheckoutInput true "Order Info"
// @Success 200 {object} response.Response{data=model.Order} "Order"
// @Router /checkout/{channel} [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var input CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	order := model.NewOrder(input.CustomerName, input.TotalPrice)
	if !h.service.RunCheckout(order) {
		response.Fail(c, response.ErrPaymentFailed, "payment failed")
		return
	}

	response.Success(c, order)
}
