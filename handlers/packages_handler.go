// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"coverage-server/coverage"
)

// GetPackages godoc
// @Summary      Get packages available at a location
// @Description  Runs a coverage check at the given location, maps available services to product categories and returns the matching packages, cheapest first.
// @Tags         packages
// @Produce      json
// @Param        lat query number false "Latitude in decimal degrees"
// @Param        lng query number false "Longitude in decimal degrees"
// @Param        address query string false "Free-text address, used when coordinates are absent"
// @Param        type query string false "Customer type: consumer or business" default(consumer)
// @Success      200 {object} PackagesResponse "Packages retrieved"
// @Failure      400 {object} ErrorResponse "Missing or invalid location"
// @Failure      502 {object} ErrorResponse "Geocoding failed"
// @Router       /v1/coverage/packages [get]
func (a *API) GetPackages(c echo.Context) error {
	req, err := requestFromQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	if req.Coordinates == nil && strings.TrimSpace(req.Address) == "" {
		return respondError(c, coverage.NewError(coverage.CodeMissingLocation,
			"either coordinates or an address is required"))
	}

	opts := coverage.Options{Address: strings.TrimSpace(req.Address)}
	ctx := c.Request().Context()
	var result coverage.CoverageResult
	if req.Coordinates != nil {
		result, err = a.Engine.Check(ctx, coverage.Coordinates{Lat: req.Coordinates.Lat, Lng: req.Coordinates.Lng}, opts)
	} else {
		result, err = a.Engine.CheckAddress(ctx, opts.Address, opts)
	}
	if err != nil {
		c.Logger().Warn("Coverage check for packages failed:", err)
		return respondError(c, err)
	}

	outcome, err := a.Engine.SelectPackages(ctx, result, c.QueryParam("type"))
	if err != nil {
		c.Logger().Error("Package selection failed:", err)
		return respondError(c, err)
	}

	c.Response().Header().Set("Cache-Control", cacheControl)
	return c.JSON(http.StatusOK, PackagesResponse{Success: true, Data: outcome})
}
