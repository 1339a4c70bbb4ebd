package validation

import (
	"strings"
	"testing"
)

func strp(s string) *string { return &s }

func TestBranchNilPassesThrough(t *testing.T) {
	res := ValidateBranch(nil)
	if !res.IsOk() || res.Value() != nil {
		t.Fatalf("nil branch must pass through, got %v / %v", res.Value(), res.Failure())
	}
}

func TestBranchValid(t *testing.T) {
	for _, b := range []string{"main", "feature/login-form", "release-1.2", "hotfix_x"} {
		res := ValidateBranch(strp(b))
		if !res.IsOk() {
			t.Fatalf("%q: expected success, got %v", b, res.Failure())
		}
		if got := res.Value(); got == nil || *got != b {
			t.Fatalf("%q: value = %v", b, got)
		}
	}
}

func TestBranchEmpty(t *testing.T) {
	for _, b := range []string{"", "   ", "\t"} {
		res := ValidateBranch(strp(b))
		if res.IsOk() {
			t.Fatalf("%q: expected failure", b)
		}
		errs := res.Failure()
		if len(errs) != 1 || errs[0] != "Branch name cannot be empty" {
			t.Fatalf("%q: errors = %v", b, errs)
		}
	}
}

// both the length and charset violations must report together
func TestBranchLengthAndCharsetAccumulate(t *testing.T) {
	long := strings.Repeat("x", 260) + " spaced"
	res := ValidateBranch(strp(long))
	if res.IsOk() {
		t.Fatal("expected failure")
	}
	errs := res.Failure()
	if len(errs) != 2 {
		t.Fatalf("want both violations, got %v", errs)
	}
	if errs[0] != "Branch name cannot exceed 250 characters" || errs[1] != "Branch name contains invalid characters" {
		t.Fatalf("errors = %v", errs)
	}
}

func TestBranchPolicyLimit(t *testing.T) {
	ten := 10
	v := New(NewConfig(Overrides{MaxBranchLength: &ten}))
	res := v.Branch(strp("much-too-long-branch"))
	if res.IsOk() {
		t.Fatal("expected failure")
	}
	if errs := res.Failure(); errs[0] != "Branch name cannot exceed 10 characters" {
		t.Fatalf("errors = %v", errs)
	}
}
