package handlers

import (
	"net/http"
	"portfolio/core"
	"portfolio/database"
	"portfolio/version"
	"runtime"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports whether the database answers a ping
func HealthCheck(c *gin.Context) {
	up := database.Up(c.Request.Context())

	status, code := "ok", http.StatusOK
	if !up {
		status, code = "degraded", http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":   status,
		"database": up,
		"version":  version.GetFullVersion(),
	})
}

// GetMetrics returns query counters and runtime figures
func GetMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"database":   database.CurrentStats(),
		"goroutines": runtime.NumGoroutine(),
		"error_logs": len(core.ErrorLoggerInstance.GetErrorLogs()),
	})
}

// GetErrorLogs lists recorded server errors, latest first
func GetErrorLogs(c *gin.Context) {
	logs := core.ErrorLoggerInstance.GetErrorLogs()
	c.JSON(http.StatusOK, gin.H{
		"data":  logs,
		"total": len(logs),
	})
}

// ClearErrorLogs removes all recorded server errors
func ClearErrorLogs(c *gin.Context) {
	core.ErrorLoggerInstance.ClearErrorLogs()
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
