package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"

	"github.com/dustin/go-humanize"

	"marketgate/internal/domain"
)

const (
	noDataText = "Error: No data returned from API."

	dashRule  = "--------------------------------------------------"
	equalRule = "======================================================================"
)

func usd(v float64) string {
	return "$" + humanize.FormatFloat("#,###.##", v)
}

func num4(v float64) string {
	return humanize.FormatFloat("#,###.####", v)
}

func truncate(s string, max int) string {
	if s == "" {
		return "N/A"
	}
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

func firstOr(values []string, fallback string) string {
	if len(values) == 0 || values[0] == "" {
		return fallback
	}
	return values[0]
}

// errorText converts any failure into the display string handed back to the
// client. Tool calls never surface a Go error past this boundary.
func errorText(err error) string {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return "Input Validation Error: " + vErr.Msg
	}

	var cErr *domain.ConfigError
	if errors.As(err, &cErr) {
		return fmt.Sprintf("Error: %s is not set. This tool domain is unavailable until it is configured.", cErr.Key)
	}

	var uErr *domain.UpstreamError
	if errors.As(err, &uErr) {
		slog.Error("upstream error", "provider", uErr.Provider, "status", uErr.StatusCode, "body", uErr.Body)
		switch {
		case uErr.StatusCode == 401:
			return fmt.Sprintf("Error: Invalid API credentials. Please check your %s API key.", uErr.Provider)
		case uErr.StatusCode == 429:
			return "Error: Rate limit exceeded. Please wait before making more requests or upgrade your API plan."
		case uErr.StatusCode == 400:
			return "Error: Invalid request. Please check your input parameters."
		case uErr.StatusCode == 404:
			return "Error: Requested resource was not found."
		case uErr.StatusCode >= 500 && uErr.StatusCode < 600:
			return fmt.Sprintf("Error: The %s API is experiencing issues. Please try again later.", uErr.Provider)
		default:
			return fmt.Sprintf("Error: API request failed with status code %d.", uErr.StatusCode)
		}
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return "Error: Request to the data provider timed out. Please try again."
	}
	if errors.As(err, &netErr) {
		return "Error: Unable to connect to the data provider. Please check your network connection."
	}

	slog.Error("unexpected tool error", "error", err)
	return "Error: An unexpected error occurred. Please try again."
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
