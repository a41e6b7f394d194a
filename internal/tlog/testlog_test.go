package tlog_test

import (
	stderrs "errors"
	"testing"

	"github.com/sirkon/dstoolbox/internal/argerr"
	"github.com/sirkon/dstoolbox/internal/tlog"
	"github.com/sirkon/errors"
)

func TestLogging(t *testing.T) {
	t.Run("log-std-error", func(t *testing.T) {
		tlog.Log(t, stderrs.New("not an error"))
	})

	t.Run("log-ctxed-error", func(t *testing.T) {
		tlog.Log(t, errors.New("ctx error").Int("index", 12).Any("values", []int{1, 2, 3}).Str("op", "remove"))
	})

	t.Run("check-nil", func(t *testing.T) {
		if tlog.Check(t, nil) {
			t.Error("nil error must not be reported")
		}
	})

	t.Run("invalid-argument", func(t *testing.T) {
		err := errors.Wrap(argerr.NewInvalidArgument("index out of bounds"), "add element").
			Int("index", 7).
			Int("length", 5)
		if !tlog.InvalidArgument(t, err) {
			t.Error("wrapped invalid argument error must be recognized")
		}
	})
}
