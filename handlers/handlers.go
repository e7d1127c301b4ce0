package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// page describes one statically rendered site page
type page struct {
	Template string
	Title    string
}

var pages = map[string]page{
	"home":                      {Template: "home.html", Title: "Home"},
	"project":                   {Template: "project.html", Title: "Projects"},
	"user_management_dashboard": {Template: "user_management_dashboard.html", Title: "User Management Dashboard"},
	"ancap_automation":          {Template: "ancap_automation.html", Title: "ANCAP Automation"},
	"reroom":                    {Template: "reroom.html", Title: "Reroom"},
	"insurance_call_simulator":  {Template: "insurance_call_simulator.html", Title: "Insurance Call Simulator"},
	"ocr_pdf_extractor":         {Template: "ocr_pdf_extractor.html", Title: "OCR PDF Extractor"},
	"survey_creator":            {Template: "survey_creator.html", Title: "Survey Creator"},
}

func renderPage(c *gin.Context, name string) {
	p := pages[name]
	c.HTML(http.StatusOK, p.Template, gin.H{
		"Title": p.Title,
		"Page":  name,
	})
}

// Home renders the landing page
func Home(c *gin.Context) {
	renderPage(c, "home")
}

// Project renders the project overview
func Project(c *gin.Context) {
	renderPage(c, "project")
}

// UserManagementDashboard renders the project page of the same name
func UserManagementDashboard(c *gin.Context) {
	renderPage(c, "user_management_dashboard")
}

// AncapAutomation renders the project page of the same name
func AncapAutomation(c *gin.Context) {
	renderPage(c, "ancap_automation")
}

// Reroom renders the project page of the same name
func Reroom(c *gin.Context) {
	renderPage(c, "reroom")
}

// InsuranceCallSimulator renders the project page of the same name
func InsuranceCallSimulator(c *gin.Context) {
	renderPage(c, "insurance_call_simulator")
}

// OCRPDFExtractor renders the project page of the same name
func OCRPDFExtractor(c *gin.Context) {
	renderPage(c, "ocr_pdf_extractor")
}

// SurveyCreator renders the project page of the same name
func SurveyCreator(c *gin.Context) {
	renderPage(c, "survey_creator")
}
