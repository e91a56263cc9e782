//go:build !unix

package img

import (
	"os"
	"os/exec"
)

func processGroupEnable(cmd *exec.Cmd) {}

func processGroupKill(cmd *exec.Cmd) error {
	return cmd.Process.Signal(os.Interrupt)
}
