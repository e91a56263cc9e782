//go:build rpi

// Package testing provides utilities for writing tests that run both
// on the host and on the rpi target.
package testing

import (
	"embedded/rtos"
	"os"
	"syscall"
	"testing"

	"github.com/blinken/rpi/bcm/miniuart"
	"github.com/blinken/rpi/drivers"
	_ "github.com/blinken/rpi/machine"

	"github.com/embeddedgo/fs/termfs"
)

// TestMain should be used as TestMain for rpi specific tests.
//
// On the target it mounts a console filesystem on the mini UART and
// redirects stdout and stderr there, so the test output shows up on
// the serial console.
func TestMain(m *testing.M) {
	var err error

	// Route runtime print() and panic() through the driver layer
	// instead of the failsafe writer.
	rtos.SetSystemWriter(drivers.NewSystemWriter(miniuart.Default))

	fs := termfs.NewLight("termfs", miniuart.Default, miniuart.Default)
	rtos.Mount(fs, "/dev/console")
	os.Stdout, err = os.OpenFile("/dev/console", syscall.O_WRONLY, 0)
	if err != nil {
		panic(err)
	}
	os.Stderr = os.Stdout

	// TODO find a way to pass these from the 'go test' command
	os.Args = append(os.Args, "-test.v")

	os.Exit(m.Run())
}
