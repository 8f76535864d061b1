package handler

import (
	"net/http"

	"checkout_solid/internal/domain/notification/model"
	"checkout_solid/internal/domain/notification/service"
	"checkout_solid/pkg/response"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	service service.NotificationService
}

func NewNotificationHandler(s service.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: s}
}

type NotifyInput struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"omitempty,email"`
	Message string `json:"message" binding:"required"`
}

// Notify 发送通知
// @Summary 发送通知
// @Tags Notification
// @Accept json
// @Produce json
// @Param input body NotifyInput true "Notification"
// @Success 200 {object} response.Response
// @Router /notifications/{channel} [post]
func (h *NotificationHandler) Notify(c *gin.Context) {
	var input NotifyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	user := model.User{Name: input.Name, Phone: input.Phone, Email: input.Email}
	h.service.Notify(user, input.Message)

	response.Success(c, nil)
}
