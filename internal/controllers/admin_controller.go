package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"linkhop/internal/service"
)

type AdminController struct {
	syncService       service.SyncService
	diagnosticService service.DiagnosticService
}

func NewAdminController(syncService service.SyncService, diagnosticService service.DiagnosticService) *AdminController {
	return &AdminController{
		syncService:       syncService,
		diagnosticService: diagnosticService,
	}
}

// SyncShortLinks handles POST /admin/sync-short-links - runs the
// reconciliation sync. Partial failures still return 200; the stats tell the
// operator whether a re-run is needed.
func (ac *AdminController) SyncShortLinks(c *gin.Context) {
	report, err := ac.syncService.Sync(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	response := gin.H{
		"success": true,
		"message": fmt.Sprintf(
			"Synced %d of %d private links (%d already public, %d errors)",
			report.Stats.SyncedLinks,
			report.Stats.TotalPrivateLinks,
			report.Stats.ExistingPublicLinks,
			report.Stats.Errors,
		),
		"stats": report.Stats,
	}
	if len(report.Errors) > 0 {
		response["errors"] = report.Errors
	}

	c.JSON(http.StatusOK, response)
}

// SyncStatus handles GET /admin/sync-short-links - read-only divergence report
func (ac *AdminController) SyncStatus(c *gin.Context) {
	status, err := ac.syncService.Status(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, status)
}

// GetLinkStats handles GET /admin/links/:code - private and public counters
// side by side
func (ac *AdminController) GetLinkStats(c *gin.Context) {
	code := c.Param("code")

	stats, err := ac.diagnosticService.LinkStats(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Link not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}
