package main

import "testing"

func TestParseSteps(t *testing.T) {
	steps, err := parseSteps(walkthrough)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(steps) != 6 {
		t.Fatalf("expected 6 steps, got %d", len(steps))
	}
	if steps[3].op.String() != "get" || steps[3].key != 1 {
		t.Errorf("expected get 1, got %s %d", steps[3].op, steps[3].key)
	}

	upper, err := parseSteps([]string{"PUT:7"})
	if err != nil || upper[0].op.String() != "put" {
		t.Errorf("expected case-insensitive op, got %v, %v", upper, err)
	}
}

func TestParseSteps_Invalid(t *testing.T) {
	for _, arg := range []string{"put", "put:x", "del:1", ""} {
		if _, err := parseSteps([]string{arg}); err == nil {
			t.Errorf("expected error for %q", arg)
		}
	}
}
