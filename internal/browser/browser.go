// Package browser opens external links, honoring the user's tri-state
// "open links in Steam" policy.
package browser

import (
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"github.com/levosilimo/steamlens/internal/settings"
)

// steamProcessName is the process the hybrid policy probes for.
const steamProcessName = "steam"

// steamProtocolPrefix routes a URL through the Steam client overlay.
const steamProtocolPrefix = "steam://openurl/"

// OpenLink opens url according to the link policy:
//
//	OpenLinksPlain:  the plain URL in the default browser
//	OpenLinksSteam:  always through the steam:// protocol handler
//	OpenLinksHybrid: steam:// when the Steam client is running, plain otherwise
func OpenLink(url string, policy int) error {
	target, fallback := resolveTarget(url, policy)

	if fallback != "" && !isProcessRunning(steamProcessName) {
		slog.Debug("steam client not running, using fallback URL", "url", fallback)
		target = fallback
	}

	slog.Debug("opening external link", "url", target)
	return launch(target)
}

// resolveTarget maps a URL and policy to the URL to open plus an optional
// fallback that applies only when the Steam client is not running.
func resolveTarget(url string, policy int) (target, fallback string) {
	switch policy {
	case settings.OpenLinksPlain:
		return url, ""
	case settings.OpenLinksSteam:
		return steamProtocolPrefix + url, ""
	default:
		return steamProtocolPrefix + url, url
	}
}

// isProcessRunning reports whether a process with the given name exists.
func isProcessRunning(name string) bool {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "linux", "darwin":
		cmd = exec.Command("pgrep", name)
	case "windows":
		cmd = exec.Command("tasklist", "/FI", "IMAGENAME eq "+name+".exe")
	default:
		return false
	}

	output, err := cmd.CombinedOutput()
	if err != nil {
		return false
	}

	if runtime.GOOS == "windows" {
		return strings.Contains(string(output), name)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(output)))
	if err != nil {
		return false
	}
	return pid > 0
}

// launch hands the URL to the platform opener without waiting for it.
func launch(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	default:
		cmd = exec.Command("open", url)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch url handler: %w", err)
	}
	return nil
}
