// SPDX-License-Identifier: GPL-3.0-only

package routes

import (
	"coverage-server/commons"
	"coverage-server/handlers"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, api *handlers.API) {
	commons.Logger.Debug("Registering v1 routes")
	e.GET("/health", api.Health)
	api_v1 := e.Group("/v1")
	api_v1.POST("/coverage/check", api.CheckCoverage)
	api_v1.GET("/coverage/check", api.CheckCoverageQuery)
	api_v1.GET("/coverage/packages", api.GetPackages)
	api_v1.GET("/providers", api.GetProviders)
	commons.Logger.Info("v1 routes registered successfully")
}
