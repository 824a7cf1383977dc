package handler

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"canvas-server/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	assetsPrefix  = "/assets"
	entryDocument = "index.html"
	assetsSubdir  = "assets"
)

type spaHandler struct {
	root  string
	index string
}

// RegisterStaticRoutes mounts the pre-built client bundle found at distDir.
// The directory is checked once; when it is missing nothing is registered
// and gin's default 404 applies. Reports whether the routes were mounted.
func RegisterStaticRoutes(router *gin.Engine, distDir string, logger *zap.Logger) bool {
	info, err := os.Stat(distDir)
	if err != nil || !info.IsDir() {
		logger.Info("Client bundle not found, static routes disabled", zap.String("dist_dir", distDir))
		return false
	}

	// --- /assets: hashed build output, served as-is ---
	assetsDir := filepath.Join(distDir, assetsSubdir)
	if _, err := os.Stat(assetsDir); err != nil {
		logger.Warn("Client bundle has no assets directory", zap.String("assets_dir", assetsDir), zap.Error(err))
	}
	router.Static(assetsPrefix, assetsDir)

	// --- Everything else: bundle file or entry document ---
	spa := &spaHandler{
		root:  distDir,
		index: filepath.Join(distDir, entryDocument),
	}
	router.NoRoute(spa.serve)

	logger.Info("Client bundle mounted", zap.String("dist_dir", distDir))
	return true
}

// serve is the catch-all: a file from the bundle if one matches the path,
// otherwise the entry document so client-side routing can take over.
func (h *spaHandler) serve(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.AbortWithStatusJSON(http.StatusMethodNotAllowed, models.ErrorResponse{Detail: "Method Not Allowed"})
		return
	}

	urlPath := c.Request.URL.Path
	// Missing assets land here from the /assets static route and must stay 404.
	if urlPath == assetsPrefix || strings.HasPrefix(urlPath, assetsPrefix+"/") {
		c.AbortWithStatusJSON(http.StatusNotFound, models.ErrorResponse{Detail: "Not Found"})
		return
	}

	// Cleaning a rooted path drops any ".." so the result stays inside root.
	candidate := filepath.Join(h.root, filepath.FromSlash(path.Clean("/"+urlPath)))
	if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
		serveRawFile(c, candidate)
		return
	}

	serveRawFile(c, h.index)
}

// serveRawFile writes the file bytes as they are. c.File goes through
// http.ServeFile, which redirects any path ending in /index.html.
func serveRawFile(c *gin.Context, name string) {
	f, err := os.Open(name)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, models.ErrorResponse{Detail: "Not Found"})
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		c.AbortWithStatusJSON(http.StatusNotFound, models.ErrorResponse{Detail: "Not Found"})
		return
	}

	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
}
