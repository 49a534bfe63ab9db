// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coverage-server/coverage"
	"coverage-server/db"
	"coverage-server/models"
)

// GetProviders godoc
// @Summary      List network providers
// @Description  Retrieves the configured network providers in fallback order.
// @Tags         providers
// @Produce      json
// @Success      200 {object} ProvidersResponse "Providers retrieved"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /v1/providers [get]
func (a *API) GetProviders(c echo.Context) error {
	var providers []models.NetworkProvider
	result := db.Conn.Order("priority asc").Find(&providers)
	if result.Error != nil {
		c.Logger().Error("Failed to retrieve providers:", result.Error)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Success: false,
			Error:   "failed to retrieve providers",
			Code:    string(coverage.CodeInternalError),
		})
	}

	infos := make([]ProviderInfo, 0, len(providers))
	for _, provider := range providers {
		infos = append(infos, ProviderInfo{
			Code:        provider.Code,
			DisplayName: provider.DisplayName,
			Enabled:     provider.Enabled,
			Priority:    provider.Priority,
		})
	}
	return c.JSON(http.StatusOK, ProvidersResponse{Success: true, Providers: infos})
}
