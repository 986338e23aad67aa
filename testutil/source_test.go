package testutil

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/kbukum/weave/stream"
)

func TestCountingSource(t *testing.T) {
	src := NewCountingSlice([]int{1, 2, 3})
	got, err := stream.Collect(context.Background(), src)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("got %v", got)
	}
	// three values plus the exhausted pull
	if src.NextCalls != 4 {
		t.Errorf("expected 4 Next calls, got %d", src.NextCalls)
	}
	if src.CloseCalls != 1 {
		t.Errorf("expected 1 Close call, got %d", src.CloseCalls)
	}
}

func TestFailingSource(t *testing.T) {
	boom := errors.New("boom")
	src := &FailingSource[string]{Values: []string{"a"}, Err: boom}
	got, err := stream.Collect(context.Background(), src)
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if !slices.Equal(got, []string{"a"}) {
		t.Errorf("got %v", got)
	}
}
