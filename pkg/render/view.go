package render

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Open hands path to the host's default file opener and returns without
// waiting. The viewer runs detached: its exit status is never collected,
// so a viewer that fails after starting goes unnoticed.
func Open(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", path)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
	return cmd.Start()
}
