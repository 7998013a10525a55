package main

import "testing"

func TestFeedsStdin(t *testing.T) {
	for _, c := range []struct {
		action   action
		script   string
		expected bool
	}{
		{actionRun, "", true},
		{actionProfile, "", true},
		{actionAnnotate, "", false},
		{actionInspect, "", false},
		{actionInspect, "check.star", true},
	} {
		if got := feedsStdin(c.action, c.script); got != c.expected {
			t.Fatalf("%v %q: got %v", c.action, c.script, got)
		}
	}
}
