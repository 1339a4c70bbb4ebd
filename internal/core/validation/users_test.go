package validation

import (
	"strings"
	"testing"
)

func TestUsersNilPassesThrough(t *testing.T) {
	res := ValidateUsers(nil, DefaultConfig())
	if !res.IsOk() {
		t.Fatalf("nil users must pass, got %v", res.Failure())
	}
	if res.Value() != nil {
		t.Fatalf("value = %v, want nil", res.Value())
	}
}

func TestUsersEmptyIsValid(t *testing.T) {
	res := ValidateUsers([]string{}, DefaultConfig())
	if !res.IsOk() {
		t.Fatalf("empty users must pass, got %v", res.Failure())
	}
	if got := res.Value(); got == nil || len(got) != 0 {
		t.Fatalf("value = %#v, want empty slice", got)
	}
}

func TestUsersCaseInsensitiveDuplicates(t *testing.T) {
	res := ValidateUsers([]string{"user1", "User2", "USER1"}, DefaultConfig())
	if res.IsOk() {
		t.Fatal("expected duplicate failure")
	}
	errs := res.Failure()
	if len(errs) != 1 || !strings.Contains(errs[0], "Duplicate users") {
		t.Fatalf("errors = %v", errs)
	}
}

func TestUsersTooMany(t *testing.T) {
	one := 1
	cfg := NewConfig(Overrides{MaxUsers: &one})
	res := ValidateUsers([]string{"alice", "bob"}, cfg)
	if res.IsOk() {
		t.Fatal("expected failure")
	}
	if errs := res.Failure(); errs[0] != "Cannot filter by more than 1 users (selected 2)" {
		t.Fatalf("errors = %v", errs)
	}
}

func TestUsernamePattern(t *testing.T) {
	cases := []struct {
		user string
		ok   bool
	}{
		{"octocat", true},
		{"a", true},
		{"mona-lisa", true},
		{"mona_lisa", true},
		{"-leading", false},
		{"trailing-", false},
		{strings.Repeat("a", 39), true},
		{strings.Repeat("a", 40), false},
		{"has space", false},
		{"", false},
	}
	for _, tc := range cases {
		res := ValidateUsers([]string{tc.user}, DefaultConfig())
		if res.IsOk() != tc.ok {
			t.Fatalf("%q: ok = %v, want %v", tc.user, res.IsOk(), tc.ok)
		}
	}
}

func TestUsersDoesNotMutateInput(t *testing.T) {
	users := []string{"B", "a", "A"}
	snapshot := append([]string(nil), users...)
	_ = ValidateUsers(users, DefaultConfig())
	for i := range snapshot {
		if users[i] != snapshot[i] {
			t.Fatalf("input mutated: %v", users)
		}
	}
}
