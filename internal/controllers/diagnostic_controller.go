package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"linkhop/internal/service"
)

// DiagnosticController exposes the manual click tester. It bypasses the
// transactional resolve path on purpose; see service.DiagnosticService.
type DiagnosticController struct {
	diagnosticService service.DiagnosticService
	testCode          string
}

func NewDiagnosticController(diagnosticService service.DiagnosticService, testCode string) *DiagnosticController {
	return &DiagnosticController{
		diagnosticService: diagnosticService,
		testCode:          testCode,
	}
}

// TestTracking handles GET /test-tracking - increments the configured test
// code's private counter and reports the before/after values
func (dc *DiagnosticController) TestTracking(c *gin.Context) {
	result, err := dc.diagnosticService.TestIncrement(c.Request.Context(), dc.testCode)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Test link not found. Seed a private record for code " + dc.testCode,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
