package handlers

import (
	"net/http"
	"strconv"

	"cloudbox/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type PostMessageRequest struct {
	QQ      string `json:"qq"`
	Message string `json:"message"`
}

// MessagePost handles POST /api/message. The sender id only has to look like
// a QQ id; unregistered senders are stored with a null nickname.
func MessagePost(c *gin.Context) {
	req := PostMessageRequest{}
	if err := c.ShouldBindWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, BadRequestResponse)
		return
	}
	if req.QQ == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, MissingFieldsResponse)
		return
	}
	if err := models.ValidateQQ(req.QQ); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	body, err := models.ValidateMessageBody(req.Message)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	message, err := models.MessageCreate(req.QQ, body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, InternalErrorResponse)
		return
	}
	broadcastMessage(message)
	c.JSON(http.StatusOK, gin.H{"id": message.ID, "timestamp": message.Stamp})
}

// MessageList handles GET /api/messages?limit=N. The newest `limit` messages
// are delivered oldest-first.
func MessageList(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	messages, err := models.MessageLatest(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, InternalErrorResponse)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
