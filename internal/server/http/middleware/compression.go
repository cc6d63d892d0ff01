package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
)

// DecompressRequest transparently handles gzip and brotli encoded requests.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		encoding := strings.ToLower(strings.TrimSpace(c.GetHeader("Content-Encoding")))
		originalBody := c.Request.Body

		var reader io.Reader
		switch {
		case encoding == "":
			c.Next()
			return
		case strings.Contains(encoding, "gzip"):
			gz, err := gzip.NewReader(originalBody)
			if err != nil {
				c.AbortWithStatus(http.StatusBadRequest)
				return
			}
			defer gz.Close()
			reader = gz
		case encoding == "br":
			reader = brotli.NewReader(originalBody)
		case encoding == "identity":
			c.Next()
			return
		default:
			c.AbortWithStatus(http.StatusUnsupportedMediaType)
			return
		}
		defer originalBody.Close()

		c.Request.Body = io.NopCloser(reader)
		c.Request.Header.Del("Content-Encoding")
		c.Request.ContentLength = -1
		c.Next()
	}
}
