package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// uncompressedPaths serve payloads that are compressed already.
var uncompressedPaths = []string{"/api/export_excel"}

// Compression returns a middleware that gzips responses for clients that
// accept it. Workbook downloads are left alone.
func Compression() gin.HandlerFunc {
	return gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths(uncompressedPaths))
}
