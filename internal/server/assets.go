package server

import (
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FACorreiaa/mindful-miles/assets"
)

// SetupAssets serves the embedded stylesheet under /assets and the fallback card images under /images.
func SetupAssets(r *gin.Engine) error {
	r.StaticFS("/assets", http.FS(assets.Assets))

	images, err := fs.Sub(assets.Assets, "images")
	if err != nil {
		return err
	}
	r.StaticFS("/images", http.FS(images))
	return nil
}
