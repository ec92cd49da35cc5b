package testutils

import (
	"testing"
)

// FlakyT is the part of testing.T a flaky test may report through.
// Failures are swallowed until the attempts run out. T gives access to
// the real test for logging and cleanup.
type FlakyT interface {
	Error(args ...any)
	Errorf(format string, args ...any)
	Logf(format string, args ...any)

	T() *testing.T
}

type flakyT struct {
	t       *testing.T
	left    int
	attempt int
	failed  bool
}

// fail records a failure and reports whether it should reach t.
func (ft *flakyT) fail() bool {
	ft.failed = true
	ft.left--
	if ft.left > 0 {
		ft.t.Logf("attempt %d flaked, %d left", ft.attempt, ft.left)
		return false
	}
	return true
}

func (ft *flakyT) T() *testing.T {
	return ft.t
}

func (ft *flakyT) Errorf(format string, args ...any) {
	ft.t.Helper()
	if ft.fail() {
		ft.t.Errorf(format, args...)
	}
}

func (ft *flakyT) Error(args ...any) {
	ft.t.Helper()
	if ft.fail() {
		ft.t.Error(args...)
	}
}

func (ft *flakyT) Logf(format string, args ...any) {
	ft.t.Helper()
	ft.t.Logf(format, args...)
}

// Flaky reruns testFunc until it passes, for at most maxTimes failures.
// Only the last failure is reported. Use it for timing-sensitive tests:
//
//	t.Run("skip", testutils.Flaky(3, func(ft testutils.FlakyT) {
//		...
//	}))
func Flaky(maxTimes int, testFunc func(FlakyT)) func(*testing.T) {
	return func(t *testing.T) {
		t.Helper()
		ft := &flakyT{t: t, left: maxTimes}

		for {
			ft.attempt++
			ft.failed = false
			testFunc(ft)
			if !ft.failed || ft.left <= 0 {
				return
			}
		}
	}
}
