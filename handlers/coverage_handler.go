// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"coverage-server/coverage"
)

// API carries the handlers' collaborators. Handlers hold no state of
// their own.
type API struct {
	Engine *coverage.Engine
}

func NewAPI(engine *coverage.Engine) *API {
	return &API{Engine: engine}
}

// cacheControl mirrors the result cache TTL so intermediaries hold
// responses for the same window the engine would.
const cacheControl = "public, max-age=300, stale-while-revalidate=600"

// CheckCoverage godoc
// @Summary      Check coverage at a location
// @Description  Resolves service availability at coordinates or a free-text address, trying live provider data first and falling back to stored footprints and area matching.
// @Tags         coverage
// @Accept       json
// @Produce      json
// @Param        request body CheckCoverageRequest true "Location to check"
// @Success      200 {object} CheckCoverageResponse "Coverage resolved"
// @Failure      400 {object} ErrorResponse "Missing or invalid location"
// @Failure      502 {object} ErrorResponse "Geocoding failed"
// @Router       /v1/coverage/check [post]
func (a *API) CheckCoverage(c echo.Context) error {
	req := new(CheckCoverageRequest)
	if err := c.Bind(req); err != nil {
		c.Logger().Warn("Malformed coverage check request:", err)
		return respondError(c, coverage.NewError(coverage.CodeInvalidRequest, "malformed request body"))
	}
	return a.runCheck(c, req)
}

// CheckCoverageQuery godoc
// @Summary      Check coverage via query parameters
// @Description  GET alias of the coverage check for clients that cannot send a body. Accepts lat, lng, address, types, signal and hybrid query parameters.
// @Tags         coverage
// @Produce      json
// @Success      200 {object} CheckCoverageResponse "Coverage resolved"
// @Failure      400 {object} ErrorResponse "Missing or invalid location"
// @Failure      502 {object} ErrorResponse "Geocoding failed"
// @Router       /v1/coverage/check [get]
func (a *API) CheckCoverageQuery(c echo.Context) error {
	req, err := requestFromQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	return a.runCheck(c, req)
}

// runCheck resolves the request. When both coordinates and an address are
// supplied, coordinates win and the address only feeds the text fallback
// tier; geocoding runs solely for address-only requests.
func (a *API) runCheck(c echo.Context, req *CheckCoverageRequest) error {
	if req.Coordinates == nil && strings.TrimSpace(req.Address) == "" {
		return respondError(c, coverage.NewError(coverage.CodeMissingLocation,
			"either coordinates or an address is required"))
	}

	serviceTypes, err := parseServiceTypes(req.ServiceTypes)
	if err != nil {
		return respondError(c, err)
	}
	opts := coverage.Options{
		ServiceTypes:          serviceTypes,
		IncludeSignalStrength: req.IncludeSignalStrength,
		Address:               strings.TrimSpace(req.Address),
		HybridSources:         req.HybridSources,
	}

	ctx := c.Request().Context()
	var result coverage.CoverageResult
	if req.Coordinates != nil {
		result, err = a.Engine.Check(ctx, coverage.Coordinates{Lat: req.Coordinates.Lat, Lng: req.Coordinates.Lng}, opts)
	} else {
		result, err = a.Engine.CheckAddress(ctx, opts.Address, opts)
	}
	if err != nil {
		c.Logger().Warn("Coverage check failed:", err)
		return respondError(c, err)
	}

	c.Response().Header().Set("Cache-Control", cacheControl)
	return c.JSON(http.StatusOK, CheckCoverageResponse{Success: true, Data: result})
}

func requestFromQuery(c echo.Context) (*CheckCoverageRequest, error) {
	req := &CheckCoverageRequest{
		Address:               c.QueryParam("address"),
		IncludeSignalStrength: queryFlag(c, "includeSignalStrength", "signal"),
		HybridSources:         queryFlag(c, "hybridSources", "hybrid"),
	}
	if types := queryAlias(c, "serviceTypes", "types"); types != "" {
		req.ServiceTypes = strings.Split(types, ",")
	}

	latParam := c.QueryParam("lat")
	lngParam := c.QueryParam("lng")
	if latParam == "" && lngParam == "" {
		return req, nil
	}
	if latParam == "" || lngParam == "" {
		return nil, coverage.NewError(coverage.CodeMissingCoordinates,
			"both lat and lng query parameters are required")
	}
	lat, latErr := strconv.ParseFloat(latParam, 64)
	lng, lngErr := strconv.ParseFloat(lngParam, 64)
	if latErr != nil || lngErr != nil {
		return nil, coverage.NewError(coverage.CodeInvalidRequest,
			"lat and lng must be decimal degrees")
	}
	req.Coordinates = &CoordinatesPayload{Lat: lat, Lng: lng}
	return req, nil
}

// queryAlias returns the first non-empty value among the parameter names.
// The long forms match the JSON body fields; the short forms are kept for
// existing callers.
func queryAlias(c echo.Context, names ...string) string {
	for _, name := range names {
		if value := c.QueryParam(name); value != "" {
			return value
		}
	}
	return ""
}

func queryFlag(c echo.Context, names ...string) bool {
	return queryAlias(c, names...) == "true"
}

func parseServiceTypes(raw []string) ([]coverage.ServiceType, error) {
	var serviceTypes []coverage.ServiceType
	for _, value := range raw {
		value = strings.ToLower(strings.TrimSpace(value))
		if value == "" {
			continue
		}
		serviceType := coverage.ServiceType(value)
		if !serviceType.Valid() {
			return nil, coverage.NewError(coverage.CodeInvalidRequest,
				fmt.Sprintf("unknown service type %q", value))
		}
		serviceTypes = append(serviceTypes, serviceType)
	}
	return serviceTypes, nil
}

func respondError(c echo.Context, err error) error {
	typed := coverage.AsError(err)
	status := http.StatusInternalServerError
	switch typed.Code {
	case coverage.CodeInvalidRequest,
		coverage.CodeMissingCoordinates,
		coverage.CodeMissingLocation,
		coverage.CodeLocationOutOfBounds:
		status = http.StatusBadRequest
	case coverage.CodeGeocodingFailed:
		status = http.StatusBadGateway
	}
	return c.JSON(status, ErrorResponse{
		Success:     false,
		Error:       typed.Message,
		Code:        string(typed.Code),
		Warnings:    typed.Warnings,
		Suggestions: typed.Suggestions,
	})
}
