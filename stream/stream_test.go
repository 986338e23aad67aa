package stream

import (
	"context"
	"errors"
	"slices"
	"testing"
)

func TestFromSlice_Collect(t *testing.T) {
	got, err := Collect(context.Background(), FromSlice([]int{1, 2, 3}))
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 2, 3}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFromSlice_Empty(t *testing.T) {
	got, err := Collect(context.Background(), FromSlice([]int{}))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestFromFunc(t *testing.T) {
	n := 0
	it := FromFunc(func(_ context.Context) (int, bool, error) {
		if n >= 3 {
			return 0, false, nil
		}
		n++
		return n * 10, true, nil
	})
	got, err := Collect(context.Background(), it)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{10, 20, 30}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFromFunc_Error(t *testing.T) {
	boom := errors.New("boom")
	n := 0
	it := FromFunc(func(_ context.Context) (int, bool, error) {
		n++
		if n == 2 {
			return 0, false, boom
		}
		return n, true, nil
	})
	got, err := Collect(context.Background(), it)
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if !slices.Equal(got, []int{1}) {
		t.Errorf("expected [1] before error, got %v", got)
	}
	// exhausted after an error
	if _, ok, err := it.Next(context.Background()); ok || err != nil {
		t.Errorf("expected exhausted iterator after error, got ok=%v err=%v", ok, err)
	}
}

func TestDrain(t *testing.T) {
	var seen []string
	err := Drain(context.Background(), FromSlice([]string{"a", "b"}), func(_ context.Context, s string) error {
		seen = append(seen, s)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(seen, []string{"a", "b"}) {
		t.Errorf("got %v", seen)
	}
}

func TestDrain_SinkError(t *testing.T) {
	fail := errors.New("sink failed")
	err := Drain(context.Background(), FromSlice([]int{1, 2}), func(_ context.Context, n int) error {
		if n == 2 {
			return fail
		}
		return nil
	})
	if !errors.Is(err, fail) {
		t.Fatalf("expected sink error, got %v", err)
	}
}

func TestForEach(t *testing.T) {
	sum := 0
	if err := ForEach(context.Background(), FromSlice([]int{1, 2, 3}), func(n int) error {
		sum += n
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if sum != 6 {
		t.Errorf("expected sum 6, got %d", sum)
	}
}

func TestCount(t *testing.T) {
	n, err := Count(context.Background(), FromSlice(make([]struct{}, 7)))
	if err != nil {
		t.Fatal(err)
	}
	if n != 7 {
		t.Errorf("expected 7, got %d", n)
	}
}

func TestFromSeq(t *testing.T) {
	seq := func(yield func(int) bool) {
		for i := 1; i <= 3; i++ {
			if !yield(i) {
				return
			}
		}
	}
	it := FromSeq(seq)
	got, err := Collect(context.Background(), it)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("got %v", got)
	}
}

func TestFromSeq_CloseEarly(t *testing.T) {
	produced := 0
	seq := func(yield func(int) bool) {
		for i := 0; ; i++ {
			produced++
			if !yield(i) {
				return
			}
		}
	}
	it := FromSeq(seq)
	if _, ok, err := it.Next(context.Background()); !ok || err != nil {
		t.Fatalf("expected a value, got ok=%v err=%v", ok, err)
	}
	if err := it.Close(); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := it.Next(context.Background()); ok {
		t.Error("expected exhausted iterator after Close")
	}
	if produced > 2 {
		t.Errorf("producer ran ahead of demand: produced %d", produced)
	}
}

func TestSeq_RangeConsumption(t *testing.T) {
	var got []string
	for v, err := range Seq(context.Background(), FromSlice([]string{"x", "y"})) {
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, v)
	}
	if !slices.Equal(got, []string{"x", "y"}) {
		t.Errorf("got %v", got)
	}
}

func TestSeq_SurfacesError(t *testing.T) {
	boom := errors.New("boom")
	it := FromFunc(func(_ context.Context) (int, bool, error) {
		return 0, false, boom
	})
	var last error
	for _, err := range Seq(context.Background(), it) {
		last = err
	}
	if !errors.Is(last, boom) {
		t.Errorf("expected boom, got %v", last)
	}
}
