package config

import (
	"testing"
	"time"
)

func TestPrefix_Composition(t *testing.T) {
	t.Setenv("GITPULSE_API_PORT", "4100")

	root := New()
	api := root.Prefix("GITPULSE_").Prefix("API_")
	if got := api.MayString("PORT", ""); got != "4100" {
		t.Fatalf("nested prefix read = %q, want 4100", got)
	}
}

func TestMay_Defaults(t *testing.T) {
	c := New().Prefix("GITPULSE_TEST_")

	if got := c.MayString("MISSING", "fallback"); got != "fallback" {
		t.Fatalf("MayString = %q", got)
	}
	if got := c.MayInt("MISSING", 7); got != 7 {
		t.Fatalf("MayInt = %d", got)
	}
	if got := c.MayBool("MISSING", true); got != true {
		t.Fatalf("MayBool = %v", got)
	}
	if got := c.MayDuration("MISSING", 3*time.Second); got != 3*time.Second {
		t.Fatalf("MayDuration = %v", got)
	}
	if got := c.MayCSV("MISSING", []string{"a"}); len(got) != 1 || got[0] != "a" {
		t.Fatalf("MayCSV = %v", got)
	}
}

func TestMay_ParsesAndFallsBackOnGarbage(t *testing.T) {
	c := New().Prefix("GITPULSE_TEST_")

	t.Setenv("GITPULSE_TEST_N", "42")
	t.Setenv("GITPULSE_TEST_B", "true")
	t.Setenv("GITPULSE_TEST_D", "250ms")
	t.Setenv("GITPULSE_TEST_CSV", " a , ,b ")
	t.Setenv("GITPULSE_TEST_BAD", "not-a-number")

	if got := c.MayInt("N", 0); got != 42 {
		t.Fatalf("MayInt = %d", got)
	}
	if got := c.MayBool("B", false); !got {
		t.Fatalf("MayBool = %v", got)
	}
	if got := c.MayDuration("D", 0); got != 250*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	if got := c.MayCSV("CSV", nil); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("MayCSV = %v", got)
	}
	if got := c.MayInt("BAD", 9); got != 9 {
		t.Fatalf("MayInt garbage = %d, want default 9", got)
	}
}

func TestOptInt_OptBool(t *testing.T) {
	c := New().Prefix("GITPULSE_TEST_")

	if got := c.OptInt("ABSENT"); got != nil {
		t.Fatalf("OptInt absent = %v, want nil", got)
	}
	t.Setenv("GITPULSE_TEST_LIMIT", "30")
	if got := c.OptInt("LIMIT"); got == nil || *got != 30 {
		t.Fatalf("OptInt = %v", got)
	}
	t.Setenv("GITPULSE_TEST_LIMIT", "junk")
	if got := c.OptInt("LIMIT"); got != nil {
		t.Fatalf("OptInt junk = %v, want nil", got)
	}

	if got := c.OptBool("ABSENT"); got != nil {
		t.Fatalf("OptBool absent = %v, want nil", got)
	}
	t.Setenv("GITPULSE_TEST_FLAG", "1")
	if got := c.OptBool("FLAG"); got == nil || !*got {
		t.Fatalf("OptBool = %v", got)
	}
}
