package handlers

import (
	"net/http"
	"strconv"

	"github.com/Vic-Sports/Vic-Sports-BE-sub001/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SendMessageHandler delivers a chat message to another user.
func (h *HandlerBundle) SendMessageHandler(c *gin.Context) {
	senderID := c.GetString("userID")

	var req models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	msg, err := h.ChatSvc.SendMessage(c.Request.Context(), senderID, req)
	if err != nil {
		getLogger(c).Error("Message send failed", zap.String("senderID", senderID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// GetConversationsHandler lists the caller's conversations.
func (h *HandlerBundle) GetConversationsHandler(c *gin.Context) {
	userID := c.GetString("userID")

	convs, err := h.ChatSvc.GetConversations(userID)
	if err != nil {
		getLogger(c).Error("Failed to list conversations", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load conversations"})
		return
	}
	c.JSON(http.StatusOK, convs)
}

// GetMessagesHandler pages through a conversation the caller belongs to.
func (h *HandlerBundle) GetMessagesHandler(c *gin.Context) {
	userID := c.GetString("userID")
	conversationID := c.Param("id")
	page, perPage := pagination(c)

	msgs, err := h.ChatSvc.GetMessages(userID, conversationID, page, perPage)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// MarkReadHandler marks the other party's messages as read.
func (h *HandlerBundle) MarkReadHandler(c *gin.Context) {
	userID := c.GetString("userID")
	conversationID := c.Param("id")

	if err := h.ChatSvc.MarkConversationRead(userID, conversationID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Conversation marked read"})
}

// pagination reads page/perPage query params with sane defaults.
func pagination(c *gin.Context) (int64, int64) {
	page, err := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	perPage, err := strconv.ParseInt(c.DefaultQuery("perPage", "50"), 10, 64)
	if err != nil || perPage < 1 || perPage > 200 {
		perPage = 50
	}
	return page, perPage
}
