package main

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

const webRoot = "./web"

// setupStaticFiles serves the dashboard frontend from ./web when present.
// API routes always win; unknown non-API paths fall back to index.html so
// client-side routing works.
func setupStaticFiles(router *gin.Engine) {
	if _, err := os.Stat(webRoot); err != nil {
		router.NoRoute(func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		})
		return
	}

	router.Static("/static", webRoot+"/static")
	router.StaticFile("/", webRoot+"/index.html")
	router.StaticFile("/favicon.ico", webRoot+"/static/favicon.ico")

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API endpoint not found"})
			return
		}
		c.File(webRoot + "/index.html")
	})
}
