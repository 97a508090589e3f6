// Package gin provides the HTTP API for pagelens: the scrape endpoint, the
// contact form, and health reporting. It is glue around the extraction core
// and owns no extraction logic itself.
package gin

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(handler *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// CORS for browser front-ends. The API serves public page models, so
	// any origin is allowed.
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/", handler.GetRoot)
	r.GET("/health", handler.GetHealth)

	api := r.Group("/api")
	{
		api.GET("/hello", handler.GetHello)
		api.GET("/scrape", handler.GetScrape)
		api.POST("/contact", handler.PostContact)
	}

	return r
}
