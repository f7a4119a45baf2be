package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Events bool
	Paths  bool
	Keys   bool
	Build  bool
	Parse  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Events = boolEnv("COMPOSE_DEBUG_EVENTS")
	d.Paths = boolEnv("COMPOSE_DEBUG_PATHS")
	d.Keys = boolEnv("COMPOSE_DEBUG_KEYS")
	d.Build = boolEnv("COMPOSE_DEBUG_BUILD")
	d.Parse = boolEnv("COMPOSE_DEBUG_PARSE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Events traces every event dispatched by a composer.
func Events() bool {
	return d.Events
}

// Paths traces path component pushes and pops.
func Paths() bool {
	return d.Paths
}

// Keys traces complex key accumulation.
func Keys() bool {
	return d.Keys
}

// Build traces document building and alias resolution.
func Build() bool {
	return d.Build
}

// Parse traces events produced by parsers.
func Parse() bool {
	return d.Parse
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
