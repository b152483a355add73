package handlers

import (
	"net/http"
	"strconv"
	"strings"
	response "winnet_crm/internal/adapter/http/dto/response"
	"winnet_crm/internal/usecase"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

// ListNotifications reads ?user_id= and falls back to the acting user.
// ?unread=true limits the list to unread items.
//
// @Summary     List notifications
// @Tags        notifications
// @Param       X-User-ID  header  string  false  "Acting user id"
// @Param       user_id  query  string  false  "User id"
// @Param       unread  query  bool  false  "Only unread"
// @Produce     json
// @Success     200  {array}   response.NotificationResponse
// @Failure     400  {object}  pkg.HTTPError
// @Failure     500  {object}  pkg.HTTPError
// @Router      /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID := strings.TrimSpace(c.Query("user_id"))
	if userID == "" {
		userID = actorID(c)
	}
	unreadOnly, _ := strconv.ParseBool(c.Query("unread"))

	list, err := h.usecase.ListByUser(c.Request.Context(), userID, unreadOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromNotifications(list))
}

// @Summary     Mark notification read
// @Tags        notifications
// @Param       id  path  string  true  "Notification ID"
// @Produce     json
// @Success     200  {object}  response.NotificationResponse
// @Failure     404  {object}  pkg.HTTPError
// @Failure     500  {object}  pkg.HTTPError
// @Router      /notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	n, err := h.usecase.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromNotification(n))
}
