//go:build !rpi

// Package testing provides utilities for writing tests that run both
// on the host and on the rpi target.
package testing

import (
	"os"
	"testing"
)

// TestMain should be used as TestMain for rpi specific tests.
//
// On the host there is nothing to set up, the simulated peripheral bus
// in the bcm package is ready to use.
func TestMain(m *testing.M) {
	os.Exit(m.Run())
}
