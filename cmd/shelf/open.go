package main

import (
	"os/exec"
	"runtime"
)

// openFolder opens dir in the system file manager. The viewer is started and
// left alone, its exit status is not collected.
func openFolder(dir string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", dir)
	case "windows":
		cmd = exec.Command("explorer", dir)
	default:
		cmd = exec.Command("xdg-open", dir)
	}
	return cmd.Start()
}
