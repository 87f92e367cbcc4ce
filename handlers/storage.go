// File: handlers/storage.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lakehouse/services/storage"
)

// StorageHandler serves the shared-document surface: floor plans and annual
// documents kept in the default bucket.
type StorageHandler struct {
	Svc storage.Service
}

func NewStorageHandler(svc storage.Service) *StorageHandler {
	return &StorageHandler{Svc: svc}
}

// allowedFolders defines the bucket folders reachable over the API.
var allowedFolders = map[string]bool{
	storage.FloorPlansFolder:      true,
	storage.AnnualDocumentsFolder: true,
}

func folderParam(c *gin.Context) (string, bool) {
	folder := c.Param("folder")
	if !allowedFolders[folder] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid folder; allowed values are 'floorPlans' and 'annualDocuments'"})
		return "", false
	}
	return folder, true
}

func (h *StorageHandler) ListFiles(c *gin.Context) {
	folder, ok := folderParam(c)
	if !ok {
		return
	}
	names, err := h.Svc.ListFiles(c.Request.Context(), folder)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"files": names})
}

func (h *StorageHandler) UploadFile(c *gin.Context) {
	folder, ok := folderParam(c)
	if !ok {
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "details": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file", "details": err.Error()})
		return
	}
	defer file.Close()

	if err := h.Svc.UploadFile(c.Request.Context(), folder, fileHeader.Filename, file); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"filename": fileHeader.Filename})
}

func (h *StorageHandler) DeleteFile(c *gin.Context) {
	folder, ok := folderParam(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteFile(c.Request.Context(), folder, c.Param("filename")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("filename")})
}

func (h *StorageHandler) GetDownloadURL(c *gin.Context) {
	folder, ok := folderParam(c)
	if !ok {
		return
	}

	expiry := 15 * time.Minute
	if expStr := c.Query("expires"); expStr != "" {
		if exp, err := time.ParseDuration(expStr); err == nil {
			expiry = exp
		}
	}

	url, err := h.Svc.GetDownloadURL(c.Request.Context(), folder, c.Param("filename"), expiry)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"downloadURL": url})
}
