package cli

import (
	"io"
	"net/http"

	"github.com/fatih/color"
)

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func printStatus(w io.Writer, status int) {
	var statusColor *color.Color
	var icon string

	switch {
	case isSuccess(status):
		statusColor = color.New(color.FgGreen)
		icon = "✅"
	case status >= 300 && status < 400:
		statusColor = color.New(color.FgCyan)
		icon = "↪️"
	case status >= 400 && status < 500:
		statusColor = color.New(color.FgYellow)
		icon = "⚠️"
	default:
		statusColor = color.New(color.FgRed)
		icon = "❌"
	}

	statusColor.Fprintf(w, "%s %d %s\n", icon, status, http.StatusText(status))
}
