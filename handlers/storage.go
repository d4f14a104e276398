package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/Vic-Sports/Vic-Sports-BE-sub001/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// saveUpload spools a multipart upload to a temp file and returns its path.
// The caller removes the file once the upload to storage is done.
func saveUpload(c *gin.Context, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", err
	}
	path := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, path); err != nil {
		return "", err
	}
	return path, nil
}

// UploadVenueImageHandler attaches a photo to one of the caller's venues.
func (h *HandlerBundle) UploadVenueImageHandler(c *gin.Context) {
	ownerID := c.GetString("userID")
	venueID := c.Param("id")

	path, err := saveUpload(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	defer os.Remove(path)

	publicID, err := h.VenueSvc.AttachImage(c.Request.Context(), ownerID, venueID, path)
	if err != nil {
		getLogger(c).Error("Venue image upload failed", zap.String("venueID", venueID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	url, err := h.Storage.GetDownloadURL(c.Request.Context(), publicID, 0)
	if err != nil {
		url = ""
	}
	c.JSON(http.StatusCreated, gin.H{"publicId": publicID, "url": url})
}

// UploadAvatarHandler replaces the caller's profile picture.
func (h *HandlerBundle) UploadAvatarHandler(c *gin.Context) {
	userID := c.GetString("userID")

	path, err := saveUpload(c, "avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "avatar file is required"})
		return
	}
	defer os.Remove(path)

	publicID, err := h.Storage.UploadFile(c.Request.Context(), path, "avatars/"+userID)
	if err != nil {
		getLogger(c).Error("Avatar upload failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}

	url, err := h.Storage.GetDownloadURL(c.Request.Context(), publicID, 0)
	if err != nil {
		url = publicID
	}

	if _, err := h.UserSvc.UpdateUser(models.User{ID: userID, AvatarURL: url}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save avatar"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"avatarUrl": url})
}
