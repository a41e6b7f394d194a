package argerr_test

import (
	stderrs "errors"
	"testing"

	"github.com/sirkon/dstoolbox/internal/argerr"
	"github.com/sirkon/dstoolbox/internal/tlog"
	"github.com/sirkon/errors"
)

func TestAsCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want argerr.ErrorCode
	}{
		{
			name: "nil",
			err:  nil,
			want: argerr.CodeOK,
		},
		{
			name: "plain",
			err:  argerr.NewInvalidArgument("head must not be nil"),
			want: argerr.CodeInvalidArgument,
		},
		{
			name: "wrapped-with-context",
			err: errors.Wrap(argerr.NewInvalidArgument("index out of bounds"), "remove element").
				Int("index", 10).
				Int("length", 5),
			want: argerr.CodeInvalidArgument,
		},
		{
			name: "foreign",
			err:  stderrs.New("something else"),
			want: argerr.CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tlog.Log(t, tt.err)
			if got := argerr.AsCode(tt.err); got != tt.want {
				t.Errorf("unexpected code %s, want %s", got, tt.want)
			}
		})
	}
}

func TestErrorText(t *testing.T) {
	if got := argerr.NewInvalidArgument().Error(); got != "INVALID_ARGUMENT" {
		t.Errorf("unexpected bare error text '%s'", got)
	}

	if got := argerr.NewInvalidArgument("a", "b").Error(); got != "INVALID_ARGUMENT[a: b]" {
		t.Errorf("unexpected error text '%s'", got)
	}

	if !argerr.IsInvalidArgument(errors.Wrap(argerr.NewInvalidArgument(), "wrapped")) {
		t.Error("wrapped invalid argument error must be recognized")
	}
}
