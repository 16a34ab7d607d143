package landing

import (
	"fmt"
	"os/exec"
	"runtime"
)

// openCommand returns the platform command that opens url in the default browser.
func openCommand(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	}
	return "xdg-open", []string{url}
}

// Open opens the panel's URL in the default browser without waiting for it.
func Open(p Panel) error {
	name, args := openCommand(runtime.GOOS, p.URL)
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", p.Title, err)
	}
	go cmd.Wait()
	return nil
}
