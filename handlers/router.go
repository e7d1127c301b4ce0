package handlers

import (
	"log"
	"portfolio/core"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the site pages and the operational API on r.
// r must already have the page templates loaded.
func RegisterRoutes(r gin.IRouter) {
	r.GET("/", Home)
	r.GET("/project", Project)
	r.GET("/user-management-dashboard", UserManagementDashboard)
	r.GET("/ancap-automation", AncapAutomation)
	r.GET("/reroom", Reroom)
	r.GET("/insurance-call-simulator", InsuranceCallSimulator)
	r.GET("/ocr-pdf-extractor", OCRPDFExtractor)
	r.GET("/survey-creator", SurveyCreator)
	r.GET("/contact", Contact)
	r.POST("/contact", Contact)

	api := r.Group("/api")
	{
		api.GET("/health", HealthCheck)
		api.GET("/metrics", GetMetrics)
		api.GET("/error-logs", GetErrorLogs)
		api.DELETE("/error-logs", ClearErrorLogs)
	}
}

// RecordErrors logs every error a handler attached to the context and keeps
// it in the in-memory error log.
func RecordErrors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, e := range c.Errors {
			route := c.Request.Method + " " + c.Request.URL.Path
			log.Printf("Request %s failed: %v", route, e.Err)
			core.LogErrorWithContext("http", e.Error(), route, map[string]interface{}{
				"status":    c.Writer.Status(),
				"client_ip": c.ClientIP(),
			})
		}
	}
}
