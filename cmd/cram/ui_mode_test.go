package main

import "testing"

func TestParseUIMode(t *testing.T) {
	cases := []struct {
		input   string
		want    uiMode
		wantErr bool
	}{
		{"", uiAuto, false},
		{"auto", uiAuto, false},
		{"AUTO", uiAuto, false},
		{"on", uiOn, false},
		{" On ", uiOn, false},
		{"off", uiOff, false},
		{"tui", uiAuto, true},
		{"yes", uiAuto, true},
	}
	for _, tc := range cases {
		got, err := parseUIMode(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseUIMode(%q) succeeded, want error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseUIMode(%q) error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseUIMode(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestUIModeEnabled(t *testing.T) {
	if uiOn.enabled(true) {
		t.Errorf("on mode enabled under quiet, want disabled")
	}
	if !uiOn.enabled(false) {
		t.Errorf("on mode disabled, want enabled")
	}
	if uiOff.enabled(false) {
		t.Errorf("off mode enabled, want disabled")
	}
}
