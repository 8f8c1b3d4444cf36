// README: Landing page, favicon and health handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const pageTitle = "TripFluencer AI Itinerary Generator"

// Index handles GET /. The engine must have the embedded templates loaded.
func Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"Title": pageTitle})
}

// Favicon handles GET /favicon.ico with an empty icon so browsers stop asking.
func Favicon(c *gin.Context) {
	c.Data(http.StatusOK, "image/x-icon", []byte{})
}

func Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
