// Package app is the controller of the visualizer. It turns user
// actions into tree operations, refuses them while an animation is in
// flight, and starts the animations.
package app

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"go.lepak.sg/bstviz/animate"
	"go.lepak.sg/bstviz/display"
	"go.lepak.sg/bstviz/tree/binary"
)

var (
	ErrNotFound         = errors.New("number does not exist in the tree")
	ErrCapacityExceeded = errors.New("reached the maximum number of nodes")
	ErrAnimating        = errors.New("an animation is in progress")
)

type App struct {
	cfg    Config
	log    *logrus.Entry
	tree   *binary.Tree[int]
	driver *animate.Driver[int]

	// serializes controller operations
	mu sync.Mutex
}

// New creates an App with an empty tree that draws to r.
// Zero fields in cfg take their DefaultConfig values.
func New(cfg Config, r display.Renderer[int]) *App {
	def := DefaultConfig()
	if cfg.MaxNodes <= 0 {
		cfg.MaxNodes = def.MaxNodes
	}
	if cfg.MaxKey <= 0 {
		cfg.MaxKey = def.MaxKey
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = def.TickInterval
	}
	if cfg.Layout == (display.Layout{}) {
		cfg.Layout = def.Layout
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.NewEntry(logrus.StandardLogger())
	}

	tr := binary.New[int](binary.WithLayout(cfg.Layout))

	return &App{
		cfg:  cfg,
		log:  cfg.Logger.WithField("pkg", "app"),
		tree: tr,
		driver: animate.NewDriver[int](tr, r,
			animate.WithInterval(cfg.TickInterval),
			animate.WithLogger(cfg.Logger.WithField("pkg", "animate")),
			animate.WithMetrics(animate.NewMetrics(cfg.Registerer)),
		),
	}
}

// lock takes the controller lock, unless an animation is in flight.
func (a *App) lock() error {
	a.mu.Lock()
	if a.driver.IsAnimating() {
		a.mu.Unlock()
		return ErrAnimating
	}
	return nil
}

// BuildTree replaces the tree with a minimal-height tree of keys.
// Duplicates are dropped.
func (a *App) BuildTree(keys []int) error {
	if err := a.lock(); err != nil {
		return err
	}
	defer a.mu.Unlock()

	return a.build(keys)
}

func (a *App) build(keys []int) error {
	if n := countUnique(keys); n > a.cfg.MaxNodes {
		return errors.Wrapf(ErrCapacityExceeded, "cannot build %d nodes, max %d", n, a.cfg.MaxNodes)
	}

	a.tree.Build(keys)
	a.log.Infof("built tree with %d nodes, height %d", a.tree.Len(), a.tree.Height())

	return a.driver.Render(display.Frame[int]{})
}

func countUnique(keys []int) int {
	seen := make(map[int]struct{}, len(keys))
	for _, k := range keys {
		seen[k] = struct{}{}
	}
	return len(seen)
}

// CreateRandom replaces the tree with n unique random keys below
// Config.MaxKey.
func (a *App) CreateRandom(n int, seed int64) error {
	if err := a.lock(); err != nil {
		return err
	}
	defer a.mu.Unlock()

	if n > a.cfg.MaxNodes {
		return errors.Wrapf(ErrCapacityExceeded, "cannot create %d nodes, max %d", n, a.cfg.MaxNodes)
	}

	keys, err := binary.RandomKeys(n, a.cfg.MaxKey, seed)
	if err != nil {
		return err
	}
	return a.build(keys)
}

// InsertNumber inserts k and animates the path to its new place.
// Inserting a key that is already present animates the path too, but
// leaves the tree unchanged.
func (a *App) InsertNumber(k int) (*animate.Animation, error) {
	if err := a.lock(); err != nil {
		return nil, err
	}
	defer a.mu.Unlock()

	if a.tree.Len() >= a.cfg.MaxNodes {
		return nil, errors.Wrapf(ErrCapacityExceeded, "cannot insert %d", k)
	}

	a.driver.Save()
	if !a.tree.Insert(k) {
		a.log.Debugf("%d is already in the tree", k)
	}

	return a.driver.Begin(animate.BeginOptions[int]{})
}

// FindNumber animates the search for k. The final frame carries the
// height and depth of the found node.
func (a *App) FindNumber(k int) (*animate.Animation, error) {
	if err := a.lock(); err != nil {
		return nil, err
	}
	defer a.mu.Unlock()

	n := a.tree.Find(k)
	if n == nil {
		a.tree.ClearRecords()
		return nil, errors.Wrapf(ErrNotFound, "cannot find %d", k)
	}
	// Find does not change the tree, so this is still the before state
	a.driver.Save()

	focus := &display.Focus[int]{
		Key:    n.Key,
		Height: a.tree.HeightOf(n),
		Depth:  a.tree.DepthOf(n),
	}

	return a.driver.Begin(animate.BeginOptions[int]{Focus: focus})
}

// DeleteNumber deletes k and animates the path to it, and to its
// successor if it had two children.
func (a *App) DeleteNumber(k int) (*animate.Animation, error) {
	if err := a.lock(); err != nil {
		return nil, err
	}
	defer a.mu.Unlock()

	if !a.tree.Contains(k) {
		return nil, errors.Wrapf(ErrNotFound, "cannot delete %d", k)
	}

	a.driver.Save()
	a.tree.Delete(k)

	return a.driver.Begin(animate.BeginOptions[int]{Deleted: &k})
}

// Balance rebuilds the tree with minimal height.
func (a *App) Balance() error {
	if err := a.lock(); err != nil {
		return err
	}
	defer a.mu.Unlock()

	before := a.tree.Height()
	a.tree.Rebalance()
	a.log.Infof("rebalanced, height %d -> %d", before, a.tree.Height())

	return a.driver.Render(display.Frame[int]{})
}

// Traverse animates a traversal of the whole tree and then recenters.
func (a *App) Traverse(tv binary.Traversal) (*animate.Animation, error) {
	if err := a.lock(); err != nil {
		return nil, err
	}
	defer a.mu.Unlock()

	keys, err := a.tree.RecordTraversal(tv)
	if err != nil {
		return nil, errors.Wrap(err, "there is no tree to traverse")
	}
	a.driver.Save()
	a.log.Debugf("%s: %v", tv, keys)

	return a.driver.Begin(animate.BeginOptions[int]{Recenter: true})
}

// Clear removes every node and recenters.
func (a *App) Clear() error {
	if err := a.lock(); err != nil {
		return err
	}
	defer a.mu.Unlock()

	a.tree.Clear()
	a.log.Info("cleared")

	return a.driver.Render(display.Frame[int]{Recenter: true})
}

// SkipAnimation ends the animation in flight. It returns false if
// there was none.
func (a *App) SkipAnimation() bool {
	return a.driver.Skip()
}

func (a *App) IsAnimating() bool {
	return a.driver.IsAnimating()
}

// Recenter sends the camera home and renders.
func (a *App) Recenter() error {
	if err := a.lock(); err != nil {
		return err
	}
	defer a.mu.Unlock()

	return a.driver.Render(display.Frame[int]{Recenter: true})
}

// Snapshot returns a copy of what is on screen.
func (a *App) Snapshot() *display.Snapshot[int] {
	return a.driver.Current()
}

// Len returns the number of nodes in the tree.
func (a *App) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.tree.Len()
}

// String draws the live tree, see binary.Tree.String.
func (a *App) String() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.tree.String()
}
