// Package debug gates diagnostic logging behind environment variables so
// tree operations can be traced without wiring a logger through library
// code. Set FORMATION_DEBUG_DIFF, FORMATION_DEBUG_PATCH or
// FORMATION_DEBUG_SELECT to a truthy value before process start.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Diff   bool
	Patch  bool
	Select bool
}

var d *debug

func init() {
	d = &debug{}
	d.Diff = boolEnv("FORMATION_DEBUG_DIFF")
	d.Patch = boolEnv("FORMATION_DEBUG_PATCH")
	d.Select = boolEnv("FORMATION_DEBUG_SELECT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Diff() bool {
	return d.Diff
}
func Patch() bool {
	return d.Patch
}
func Select() bool {
	return d.Select
}
