// File: handlers/admin.go
package handlers

import (
	"net/http"

	tenantRepo "kaojai/database/repository/tenant"
	"kaojai/models"
	"kaojai/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes tenant configuration management.
type AdminHandler struct {
	TenantRepo tenantRepo.TenantRepository
}

func NewAdminHandler(repo tenantRepo.TenantRepository) *AdminHandler {
	return &AdminHandler{TenantRepo: repo}
}

// GetTenantConfigHandler returns the stored configuration for a tenant.
func (h *AdminHandler) GetTenantConfigHandler(c *gin.Context) {
	tenantID := c.Param("id")

	cfg, err := h.TenantRepo.GetConfig(c.Request.Context(), tenantID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch tenant config", err.Error())
		return
	}
	if cfg == nil {
		utils.JSONError(c, http.StatusNotFound, "Tenant config not found", "")
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// UpsertTenantConfigHandler creates or replaces a tenant's configuration.
func (h *AdminHandler) UpsertTenantConfigHandler(c *gin.Context) {
	tenantID := c.Param("id")

	var cfg models.TenantConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid tenant config", err.Error())
		return
	}
	cfg.TenantID = tenantID

	if err := h.TenantRepo.UpsertConfig(c.Request.Context(), cfg); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save tenant config", err.Error())
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// GetTenantChannelHandler returns the checkslip notification registrations
// for a tenant.
func (h *AdminHandler) GetTenantChannelHandler(c *gin.Context) {
	tenantID := c.Param("id")

	ch, err := h.TenantRepo.GetChannel(c.Request.Context(), tenantID, tenantRepo.LineNotifyChannel)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch tenant channel", err.Error())
		return
	}
	c.JSON(http.StatusOK, ch)
}
