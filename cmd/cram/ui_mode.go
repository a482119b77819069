package main

import (
	"fmt"
	"os"
	"strings"
)

// uiMode controls whether generate runs under the interactive progress UI.
type uiMode int

const (
	uiAuto uiMode = iota
	uiOn
	uiOff
)

func parseUIMode(value string) (uiMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return uiAuto, nil
	case "on":
		return uiOn, nil
	case "off":
		return uiOff, nil
	}
	return uiAuto, fmt.Errorf("invalid --ui value %q (expected auto, on, or off)", value)
}

// enabled reports whether the interactive UI should run. quiet always wins;
// auto additionally requires stdout to be a terminal.
func (m uiMode) enabled(quiet bool) bool {
	switch {
	case quiet:
		return false
	case m == uiOn:
		return true
	case m == uiOff:
		return false
	}
	return isTerminal(os.Stdout)
}
