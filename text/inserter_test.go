package text

import (
	"context"
	"testing"

	"github.com/kbukum/weave/errors"
	"github.com/kbukum/weave/insert"
	"github.com/kbukum/weave/interleave"
)

func TestInsertOneAtBeginning(t *testing.T) {
	out, err := New("fghij").Insert(0, "abcde").Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if out != "abcdefghij" {
		t.Errorf("got %q", out)
	}
}

func TestInsertOneAtEnd(t *testing.T) {
	out, err := New("abcde").Insert(5, "fghij").Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if out != "abcdefghij" {
		t.Errorf("got %q", out)
	}
}

func TestInsertOnePastEndClamps(t *testing.T) {
	out, err := New("abcde").Insert(10, "klmno").Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if out != "abcdeklmno" {
		t.Errorf("got %q", out)
	}
}

func TestInsertPastEndRejects(t *testing.T) {
	_, err := New("abcde", insert.WithEndPolicy(interleave.EndPolicyReject)).
		Insert(10, "klmno").
		Execute(context.Background())
	if !errors.HasCode(err, errors.ErrCodeOutOfRangeOffset) {
		t.Fatalf("expected OUT_OF_RANGE_OFFSET, got %v", err)
	}
}

func TestInterleave(t *testing.T) {
	out, err := New("alpha bravo delta hotel").
		Insert(12, "charlie ").
		Insert(18, "echo fox golf ").
		Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if out != "alpha bravo charlie delta echo fox golf hotel" {
		t.Errorf("got %q", out)
	}
}

func TestSameOffsetKeepsInputOrder(t *testing.T) {
	out, err := New("ad").Insert(1, "b").Insert(1, "c").Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if out != "abcd" {
		t.Errorf("got %q", out)
	}
}

func TestNoInsertions(t *testing.T) {
	out, err := New("unchanged").Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if out != "unchanged" {
		t.Errorf("got %q", out)
	}
}

func TestEmptyOrigin(t *testing.T) {
	out, err := New("").Insert(0, "x").Insert(0, "y").Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if out != "xy" {
		t.Errorf("got %q", out)
	}
}

func TestOffsetSplittingRuneFails(t *testing.T) {
	// "é" is two bytes; offset 1 lands inside it
	_, err := New("é").Insert(1, "x").Execute(context.Background())
	if !errors.HasCode(err, errors.ErrCodeInvalidEncoding) {
		t.Fatalf("expected INVALID_ENCODING, got %v", err)
	}
}

func TestMultiByteSafeOffsets(t *testing.T) {
	out, err := New("héllo").Insert(3, "y").Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if out != "héyllo" {
		t.Errorf("got %q", out)
	}
}
