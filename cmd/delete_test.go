package cmd

import (
	"context"
	"testing"
)

func TestDeleteEntry(t *testing.T) {
	tests := []struct {
		name       string
		yes        bool
		stdin      string
		want       string
		wantGone   bool
		wantPrompt bool
	}{
		{"with --yes", true, "", "Deleted entry for 2024-01-10", true, false},
		{"confirmed", false, "y\n", "Deleted entry for 2024-01-10", true, true},
		{"declined", false, "n\n", "Deletion cancelled", false, true},
		{"no answer", false, "", "Deletion cancelled", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTest(t)
			env.logDay(t, "2024-01-10", 4, 7, "")
			env.input(tt.stdin)

			deleteEntry("today", tt.yes)
			env.assertOK(t)

			out := env.stdout.String()
			assertContains(t, out, "Entry to delete:", "mood 4", tt.want)
			if tt.wantPrompt {
				assertContains(t, out, "Delete this entry? [y/N]")
			}

			svcs, _ := deps.Services(context.Background())
			_, err := svcs.Entry.Get(context.Background(), "2024-01-10")
			if gone := err != nil; gone != tt.wantGone {
				t.Errorf("entry gone = %v, want %v", gone, tt.wantGone)
			}
		})
	}
}

func TestDeleteEntry_NotFound(t *testing.T) {
	env := setupTest(t)
	deleteEntry("2024-01-05", true)
	env.assertFailed(t, "No entry for 2024-01-05")
	assertContains(t, env.stderr.String(), "lifetuner list")
}

func TestDeleteEntry_InvalidDate(t *testing.T) {
	env := setupTest(t)
	deleteEntry("someday", true)
	env.assertFailed(t, "Failed to read entry")
}
