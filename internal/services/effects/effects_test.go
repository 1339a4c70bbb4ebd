package effects

import (
	"context"
	"errors"
	"testing"
)

func TestSucceedAndFail(t *testing.T) {
	ctx := context.Background()

	v, err := Succeed(42).Run(ctx)
	if err != nil || v != 42 {
		t.Fatalf("succeed: %v, %v", v, err)
	}

	boom := errors.New("boom")
	if _, err := Fail[int](boom).Run(ctx); !errors.Is(err, boom) {
		t.Fatalf("fail: %v", err)
	}
}

func TestConstructorKinds(t *testing.T) {
	fn := func(context.Context) (int, error) { return 0, nil }
	cases := []struct {
		eff  Effect[int]
		want Kind
	}{
		{New(fn), KindPure},
		{IO(fn), KindIO},
		{Log(fn), KindLog},
		{Timed(fn), KindTime},
		{Succeed(1), KindPure},
	}
	for _, tc := range cases {
		if tc.eff.Kind() != tc.want {
			t.Fatalf("kind = %q, want %q", tc.eff.Kind(), tc.want)
		}
	}
}

func TestEffectIsDeferredAndReusable(t *testing.T) {
	runs := 0
	e := New(func(context.Context) (int, error) {
		runs++
		return runs, nil
	})
	if runs != 0 {
		t.Fatal("construction must not execute the body")
	}
	ctx := context.Background()
	if _, err := e.Run(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Run(ctx); err != nil {
		t.Fatal(err)
	}
	if runs != 2 {
		t.Fatalf("runs = %d, want 2 (no memoization)", runs)
	}
}

func TestRunRespectsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	e := New(func(context.Context) (int, error) {
		ran = true
		return 1, nil
	})
	if _, err := e.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
	if ran {
		t.Fatal("body must not run under a done context")
	}
}

func TestMap(t *testing.T) {
	ctx := context.Background()

	v, err := Map(Succeed(5), func(n int) string {
		if n != 5 {
			t.Fatalf("mapped input = %d", n)
		}
		return "ok"
	}).Run(ctx)
	if err != nil || v != "ok" {
		t.Fatalf("map: %v, %v", v, err)
	}

	boom := errors.New("boom")
	if _, err := Map(Fail[int](boom), func(int) int { return 0 }).Run(ctx); !errors.Is(err, boom) {
		t.Fatalf("map must propagate failure: %v", err)
	}
}

func TestFlatMapSequencing(t *testing.T) {
	ctx := context.Background()

	chained := FlatMap(
		FlatMap(Succeed(5), func(x int) Effect[int] { return Succeed(x + 1) }),
		func(x int) Effect[int] { return Succeed(x * 2) },
	)
	v, err := chained.Run(ctx)
	if err != nil || v != 12 {
		t.Fatalf("chain = %v, %v; want 12", v, err)
	}
}

func TestFlatMapFailurePropagates(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	ran := false
	e := FlatMap(Fail[int](boom), func(int) Effect[int] {
		ran = true
		return Succeed(0)
	})
	if _, err := e.Run(ctx); !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
	if ran {
		t.Fatal("continuation must not run after failure")
	}
}
