package app

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"go.lepak.sg/bstviz/animate"
	"go.lepak.sg/bstviz/display"
)

// Config holds everything an App needs. There is no package-level
// state, so several Apps can run side by side.
type Config struct {
	// MaxNodes is the most nodes the tree may hold.
	MaxNodes int
	// MaxKey bounds the keys picked by CreateRandom to [0, MaxKey).
	MaxKey int
	// TickInterval is the time between animation frames.
	TickInterval time.Duration
	Layout       display.Layout

	// Logger defaults to the standard logrus logger.
	Logger *logrus.Entry
	// Registerer receives the animation metrics, if set.
	Registerer prometheus.Registerer
}

func DefaultConfig() Config {
	return Config{
		MaxNodes:     2000,
		MaxKey:       9999,
		TickInterval: animate.DefaultInterval,
		Layout:       display.DefaultLayout,
	}
}
