// Package browser opens URLs in the user's default browser. Used for
// the help-overlay links; failures fall back to printing the URL.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Open launches the default browser for url.
func Open(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "linux":
		return exec.Command("xdg-open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return fmt.Errorf("no browser launcher for %s", runtime.GOOS)
	}
}
