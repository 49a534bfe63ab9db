// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"os"
	"slices"
	"time"

	"coverage-server/commons"
	"coverage-server/coverage"
	"coverage-server/coverage/wms"
	"coverage-server/db"
	"coverage-server/events"
	"coverage-server/geocode"
	"coverage-server/handlers"
	"coverage-server/models"
	"coverage-server/routes"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	commons.LoadEnvFile()

	e := echo.New()
	e.HideBanner = true

	e.Logger.SetLevel(commons.Logger.Level())
	e.Logger.SetHeader("${time_rfc3339} ${level} ${short_file}:${line} -")

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logMsg := func(format string, args ...any) {
				switch {
				case v.Status >= 500:
					e.Logger.Errorf(format, args...)
				case v.Status >= 400:
					e.Logger.Warnf(format, args...)
				default:
					e.Logger.Infof(format, args...)
				}
			}
			logMsg("%s %s - %d - %.2fms - %s",
				v.Method,
				v.URI,
				v.Status,
				float64(v.Latency.Microseconds())/1000.0,
				v.RemoteIP,
			)
			return nil
		},
	}))
	debugMode := slices.Contains(os.Args[1:], "--debug")
	if debugMode {
		e.Logger.Warn("Debug mode is enabled.")
		e.Debug = true
		e.Logger.SetLevel(log.DEBUG)
	}

	e.Use(middleware.Recover())

	db.InitDB()
	if slices.Contains(os.Args[1:], "--migrate-db") {
		commons.Logger.Debug("--migrate-db flag detected, running migrations")
		db.MigrateDB()
	}

	engine := buildEngine()
	routes.RegisterRoutes(e, handlers.NewAPI(engine))

	port := commons.GetEnv("PORT")
	if port == "" {
		port = ":8080"
	}
	if port[0] != ':' {
		port = ":" + port
	}
	e.Logger.Fatal(e.Start(port))
}

func buildEngine() *coverage.Engine {
	store := coverage.NewStore(db.Conn)
	publisher := events.NewPublisher(commons.GetEnv("AMQP_URL"))

	cacheTTL := coverage.DefaultCacheTTL
	if raw := commons.GetEnv("COVERAGE_CACHE_TTL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			cacheTTL = parsed
		} else {
			commons.Logger.Warnf("Invalid COVERAGE_CACHE_TTL %q, using default: %v", raw, err)
		}
	}

	wmsTimeout := wms.DefaultTimeout
	if raw := commons.GetEnv("WMS_TIMEOUT"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			wmsTimeout = parsed
		} else {
			commons.Logger.Warnf("Invalid WMS_TIMEOUT %q, using default: %v", raw, err)
		}
	}

	return &coverage.Engine{
		Gateways: loadGateways(wmsTimeout),
		Spatial:  store,
		Areas:    store,
		Mappings: store,
		Catalog:  store,
		Geocoder: geocode.NewClient(geocode.Config{}),
		Cache:    coverage.NewResultCache(cacheTTL),
		Recorder: events.NewRecorder(db.Conn, publisher),
	}
}

// loadGateways builds one live adapter per enabled provider row, in
// fallback order. No rows means the live tier is simply skipped.
func loadGateways(timeout time.Duration) []coverage.Gateway {
	var rows []models.NetworkProvider
	if err := db.Conn.Where("enabled = ?", true).Order("priority asc").Find(&rows).Error; err != nil {
		commons.Logger.Errorf("Failed to load network providers, live tier disabled: %v", err)
		return nil
	}
	gateways := make([]coverage.Gateway, 0, len(rows))
	for _, row := range rows {
		gateways = append(gateways, wms.NewClient(wms.Config{
			Provider:    row.Code,
			BusinessURL: row.BusinessURL,
			ConsumerURL: row.ConsumerURL,
			Timeout:     timeout,
		}))
		commons.Logger.Debugf("Live coverage adapter registered: %s", row.Code)
	}
	return gateways
}
