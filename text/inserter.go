package text

import (
	"bytes"
	"context"
	"strings"
	"unicode/utf8"

	"github.com/kbukum/weave/errors"
	"github.com/kbukum/weave/insert"
)

// Inserter tracks an origin string and its points of insertion.
// It is a single-use builder: configure with Insert, then call Execute.
type Inserter struct {
	origin     string
	insertions []insertion
	opts       []insert.Option
}

type insertion struct {
	offset int
	text   string
}

// New creates an Inserter over origin. Options are forwarded to the
// underlying stream inserter.
func New(origin string, opts ...insert.Option) *Inserter {
	return &Inserter{origin: origin, opts: opts}
}

// Insert schedules text to appear at the given byte offset of the
// origin. Returns the receiver for chaining.
func (si *Inserter) Insert(offset int, text string) *Inserter {
	si.insertions = append(si.insertions, insertion{offset: offset, text: text})
	return si
}

// Execute runs the insertion pass and returns the combined string.
func (si *Inserter) Execute(ctx context.Context) (string, error) {
	size := len(si.origin)
	for _, ins := range si.insertions {
		size += len(ins.text)
	}
	buf := bytes.NewBuffer(make([]byte, 0, size))

	in := insert.New(strings.NewReader(si.origin), buf, si.opts...)
	for _, ins := range si.insertions {
		in.Insert(int64(ins.offset), strings.NewReader(ins.text))
	}
	if err := in.Execute(ctx); err != nil {
		return "", err
	}

	out := buf.String()
	if !utf8.ValidString(out) {
		return "", errors.InvalidEncoding("an insertion offset splits a multi-byte rune")
	}
	return out, nil
}
