package main

import (
	"errors"
	"reflect"
	"testing"
)

type closer struct {
	err    error
	closed bool
}

func (c *closer) Close() error {
	c.closed = true
	return c.err
}

func TestCloseOutput(t *testing.T) {
	diskFull := errors.New("disk full")
	renderErr := errors.New("render failed")

	tests := []struct {
		name     string
		closeErr error
		err      error
		want     error
	}{
		{name: "clean", want: nil},
		{name: "close failure", closeErr: diskFull, want: diskFull},
		{name: "render failure wins", closeErr: diskFull, err: renderErr, want: renderErr},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &closer{err: tt.closeErr}
			got := closeOutput(c, tt.err)
			if !c.closed {
				t.Fatal("output was not closed")
			}
			if !errors.Is(got, tt.want) || (tt.want == nil && got != nil) {
				t.Errorf("closeOutput() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSplitColors(t *testing.T) {
	got := splitColors(" #000000, navy,,#ffffff ")
	want := []string{"#000000", "navy", "#ffffff"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitColors() = %v, want %v", got, want)
	}
}
