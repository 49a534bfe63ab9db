// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	serverURL string
	address   string
	lat       float64
	lng       float64
	types     string
	signal    bool
	customer  string
)

var httpClient = &http.Client{Timeout: 30 * time.Second}

var rootCmd = &cobra.Command{
	Use:   "coveragecli",
	Short: "Query a running coverage server from the command line",
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check coverage at coordinates or an address",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := url.Values{}
		if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lng") {
			params.Set("lat", fmt.Sprintf("%f", lat))
			params.Set("lng", fmt.Sprintf("%f", lng))
		}
		if address != "" {
			params.Set("address", address)
		}
		if types != "" {
			params.Set("serviceTypes", types)
		}
		if signal {
			params.Set("includeSignalStrength", "true")
		}
		return getJSON("/v1/coverage/check", params)
	},
}

var packagesCmd = &cobra.Command{
	Use:   "packages",
	Short: "List packages available at a location",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := url.Values{}
		if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lng") {
			params.Set("lat", fmt.Sprintf("%f", lat))
			params.Set("lng", fmt.Sprintf("%f", lng))
		}
		if address != "" {
			params.Set("address", address)
		}
		if customer != "" {
			params.Set("type", customer)
		}
		return getJSON("/v1/coverage/packages", params)
	},
}

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List configured network providers",
	RunE: func(cmd *cobra.Command, args []string) error {
		return getJSON("/v1/providers", nil)
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check server health",
	RunE: func(cmd *cobra.Command, args []string) error {
		return getJSON("/health", nil)
	},
}

func getJSON(path string, params url.Values) error {
	requestURL := strings.TrimSuffix(serverURL, "/") + path
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}
	resp, err := httpClient.Get(requestURL)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var pretty map[string]any
	if err := json.Unmarshal(body, &pretty); err != nil {
		fmt.Println(string(body))
	} else {
		out, _ := json.MarshalIndent(pretty, "", "  ")
		fmt.Println(string(out))
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}
	return nil
}

func main() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "Coverage server base URL")

	for _, cmd := range []*cobra.Command{checkCmd, packagesCmd} {
		cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude in decimal degrees")
		cmd.Flags().Float64Var(&lng, "lng", 0, "Longitude in decimal degrees")
		cmd.Flags().StringVar(&address, "address", "", "Free-text address")
	}
	checkCmd.Flags().StringVar(&types, "types", "", "Comma-separated service types to check")
	checkCmd.Flags().BoolVar(&signal, "signal", false, "Include signal strength detail")
	packagesCmd.Flags().StringVar(&customer, "customer", "consumer", "Customer type: consumer or business")

	rootCmd.AddCommand(checkCmd, packagesCmd, providersCmd, healthCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
