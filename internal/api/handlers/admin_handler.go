package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boleia/internal/services"
)

type AdminHandler struct {
	auditService  *services.AuditService
	exportService *services.ExportService
}

func NewAdminHandler(auditService *services.AuditService, exportService *services.ExportService) *AdminHandler {
	return &AdminHandler{
		auditService:  auditService,
		exportService: exportService,
	}
}

// AuditLog handles GET /admin/audit — the retained trail, newest first.
func (h *AdminHandler) AuditLog(c *gin.Context) {
	entries, err := h.auditService.Entries(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Export handles GET /admin/export — a read-only snapshot of every
// collection for diagnostics.
func (h *AdminHandler) Export(c *gin.Context) {
	snapshot, err := h.exportService.Export(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
