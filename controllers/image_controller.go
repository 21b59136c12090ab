package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type ImageController struct {
	imagesDir string
}

func NewImageController(imagesDir string) *ImageController {
	return &ImageController{imagesDir: imagesDir}
}

// AvailableImages 返回服务器图片目录里可选的图片文件名
func (ic *ImageController) AvailableImages(c *gin.Context) {
	entries, err := os.ReadDir(ic.imagesDir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read images directory"})
		return
	}

	images := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if imageExtensions[ext] {
			images = append(images, entry.Name())
		}
	}

	c.JSON(http.StatusOK, images)
}
