package search

// Observer receives a snapshot after every frontier pop.
type Observer interface {
	Observe(Snapshot)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Snapshot)

// Observe calls f(snap).
func (f ObserverFunc) Observe(snap Snapshot) { f(snap) }

// Options defines parameters for the search.
type Options struct {
	Costs      CostModel
	Pruning    Pruning
	Projection Projection
	Observer   Observer

	// MaxExpansions caps the number of expanded states. Goals popped after
	// the cap is reached are still accepted; the first pop that needs one
	// more expansion stops the search with ErrExpansionLimit. Zero means no
	// limit.
	MaxExpansions int
}

// Option is a function that modifies Options.
type Option func(*Options)

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		Costs:      DefaultCostModel(),
		Pruning:    DefaultPruning(),
		Projection: ByPositionHeadingTurn,
	}
}

// WithCosts sets the action weights.
func WithCosts(costs CostModel) Option {
	return func(o *Options) { o.Costs = costs }
}

// WithPruning sets the pruning policy.
func WithPruning(p Pruning) Option {
	return func(o *Options) { o.Pruning = p }
}

// WithProjection sets the visited-set key projection.
func WithProjection(p Projection) Option {
	return func(o *Options) { o.Projection = p }
}

// WithObserver registers an observer called once per pop.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observer = obs }
}

// WithMaxExpansions caps the number of expanded states.
func WithMaxExpansions(n int) Option {
	return func(o *Options) { o.MaxExpansions = n }
}
