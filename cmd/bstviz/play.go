package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.lepak.sg/bstviz/animate"
	"go.lepak.sg/bstviz/app"
	"go.lepak.sg/bstviz/camera"
	"go.lepak.sg/bstviz/display"
	"go.lepak.sg/bstviz/render"
	"golang.org/x/sync/errgroup"
)

var playConfig struct {
	keys     string
	random   int
	seed     int64
	tick     time.Duration
	format   string
	out      string
	maxNodes int
	width    float64
	height   float64
	stats    bool
}

var playCmd = &cobra.Command{
	Use:   "play [op...]",
	Short: "run operations on a tree and print every animation frame",
	Long: `play builds a tree and runs the given operations in order,
printing every frame of every animation.

Operations:
  build:K,K,...    replace the tree with a balanced tree of the keys
  random:N         replace the tree with N random keys
  insert:K         insert K
  find:K           search for K
  delete:K         delete K
  traverse:ORDER   traverse in levelorder, inorder, preorder or postorder
  balance          rebuild the tree with minimal height
  clear            remove every node
  recenter         move the camera home
  print            print the live tree

Interrupting skips the running animation and stops the script.`,
	RunE: runPlay,
}

func initPlayFlags() {
	playCmd.Flags().StringVarP(
		&playConfig.keys, "keys", "k", "", "initial keys, separated by commas")
	playCmd.Flags().IntVarP(
		&playConfig.random, "random", "r", 0, "start with this many random keys instead")
	playCmd.Flags().Int64VarP(
		&playConfig.seed, "seed", "s", 0, "random seed (default current unix time in ns)")
	playCmd.Flags().DurationVarP(
		&playConfig.tick, "tick", "t", animate.DefaultInterval, "time between animation frames")
	playCmd.Flags().StringVarP(
		&playConfig.format, "format", "f", "text", "frame format: text, dot or table")
	playCmd.Flags().StringVarP(
		&playConfig.out, "out", "o", "", "write frames to this file instead of stdout")
	playCmd.Flags().IntVar(
		&playConfig.maxNodes, "max-nodes", app.DefaultConfig().MaxNodes, "maximum number of nodes")
	playCmd.Flags().Float64Var(
		&playConfig.width, "width", camera.DefaultConfig.Width, "viewport width")
	playCmd.Flags().Float64Var(
		&playConfig.height, "height", camera.DefaultConfig.Height, "viewport height")
	playCmd.Flags().BoolVar(
		&playConfig.stats, "stats", false, "print animation statistics at the end")
}

func newRenderer(format string, w io.Writer, layout display.Layout) (display.Renderer[int], error) {
	switch format {
	case "text":
		return render.NewText[int](w, layout), nil
	case "dot":
		return render.NewDOT[int](w), nil
	case "table":
		return render.NewTable[int](w), nil
	default:
		return nil, errors.Newf("unknown format %q", format)
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	ops, err := parseScript(args)
	if err != nil {
		return err
	}

	if playConfig.seed == 0 {
		playConfig.seed = time.Now().UnixNano()
	}

	var w io.Writer = cmd.OutOrStdout()
	if playConfig.out != "" {
		f, err := os.Create(playConfig.out)
		if err != nil {
			return errors.Wrap(err, "opening output")
		}
		defer f.Close()
		w = f
	}

	cfg := app.DefaultConfig()
	cfg.TickInterval = playConfig.tick
	cfg.MaxNodes = playConfig.maxNodes
	cfg.Logger = logrus.WithField("seed", playConfig.seed)

	reg := prometheus.NewRegistry()
	cfg.Registerer = reg

	r, err := newRenderer(playConfig.format, w, cfg.Layout)
	if err != nil {
		return err
	}
	viewport := render.NewViewport[int](camera.Config{
		Width:        playConfig.width,
		Height:       playConfig.height,
		WorldPadding: camera.DefaultConfig.WorldPadding,
	}, r)

	a := app.New(cfg, viewport)

	switch {
	case playConfig.keys != "":
		keys, err := parseInts(playConfig.keys)
		if err != nil {
			return err
		}
		if err := a.BuildTree(keys); err != nil {
			return err
		}
	case playConfig.random > 0:
		if err := a.CreateRandom(playConfig.random, playConfig.seed); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := play(ctx, a, ops, w, playConfig.seed); err != nil {
		return err
	}

	if playConfig.stats {
		return writeStats(cmd.OutOrStdout(), reg)
	}
	return nil
}

type player interface {
	controller
	SkipAnimation() bool
}

// play runs ops one after the other, waiting for every animation.
// Canceling ctx skips the running animation and stops.
func play(ctx context.Context, c player, ops []op, w io.Writer, seed int64) error {
	g, ctx := errgroup.WithContext(ctx)
	finished := make(chan struct{})

	g.Go(func() error {
		defer close(finished)

		log := logrus.WithField("pkg", "play")
		for i, o := range ops {
			if ctx.Err() != nil {
				log.Infof("stopped before %s", o)
				return nil
			}

			log.Debugf("op %d: %s", i, o)
			if o.name == "print" {
				if _, err := io.WriteString(w, c.String()); err != nil {
					return errors.Wrap(err, "printing tree")
				}
				continue
			}

			anim, err := o.apply(c, seed)
			if recoverable(err) {
				log.Warnf("%s: %v", o, err)
				continue
			}
			if err != nil {
				return errors.Wrapf(err, "op %d (%s)", i, o)
			}

			if anim != nil {
				if err := anim.Wait(context.Background()); err != nil {
					return errors.Wrapf(err, "animating %s", o)
				}
			}
		}
		return nil
	})

	g.Go(func() error {
		select {
		case <-ctx.Done():
			if c.SkipAnimation() {
				logrus.WithField("pkg", "play").Info("skipped")
			}
		case <-finished:
		}
		return nil
	})

	return g.Wait()
}

func writeStats(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "gathering metrics")
	}

	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Metric", "Value"})
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			var v float64
			switch {
			case m.GetCounter() != nil:
				v = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				v = m.GetGauge().GetValue()
			default:
				continue
			}
			tbl.Append([]string{mf.GetName(), fmt.Sprintf("%g", v)})
		}
	}
	tbl.Render()
	return nil
}
