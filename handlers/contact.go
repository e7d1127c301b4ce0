package handlers

import (
	"net/http"
	"portfolio/models"
	"portfolio/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// Contact stores a submitted contact form and renders the home page.
// Missing form fields are stored as empty strings. The page carries no
// confirmation; a storage failure is handed to gin as a 500.
func Contact(c *gin.Context) {
	if c.Request.Method == http.MethodPost {
		// Body fields only; query parameters never reach the stored row.
		var b binding.Binding = binding.FormPost
		if c.ContentType() == binding.MIMEMultipartPOSTForm {
			b = binding.FormMultipart
		}
		var req models.ContactCreate
		if err := c.ShouldBindWith(&req, b); err != nil {
			_ = c.AbortWithError(http.StatusBadRequest, err)
			return
		}

		if _, err := service.GlobalServices.Contact.Create(c.Request.Context(), req); err != nil {
			_ = c.AbortWithError(http.StatusInternalServerError, err)
			return
		}
	}

	renderPage(c, "home")
}
