package handlers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
)

func parseIDParam(c *gin.Context, name string) (uint, error) {
	return parseID(c.Param(name))
}

func parseID(value string) (uint, error) {
	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

// saveUploadedIcon stores an optional multipart "icon" upload under the
// media directory and returns its media-relative path. A missing file is
// not an error.
func saveUploadedIcon(c *gin.Context, mediaDir string, userID uint) (string, error) {
	file, err := c.FormFile("icon")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", err
	}

	relPath := filepath.Join("uploads", strconv.FormatUint(uint64(userID), 10), filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(mediaDir, relPath)); err != nil {
		return "", err
	}
	return relPath, nil
}
