// Package config resolves parsed CLI flags into an immutable Settings
// value, following a builderConfig-style functional-options pattern but
// collapsed to a single Resolve call since tbtctl has one flag source,
// not many constructor call sites.
package config

import "errors"

// ErrLogfileRequired is returned by Resolve when Logfile is empty — the
// only required flag of spec.md §6.
var ErrLogfileRequired = errors.New("config: logfile is required")

// Settings is the fully-resolved, immutable configuration for one tbtctl
// run. Every field mirrors a spec.md §6 CLI flag one-for-one.
type Settings struct {
	// Logfile is the input logfile prefix; the ingester appends
	// "SIMOUT_Ship.csv" and "SIMOUT_UAS.csv" to it.
	Logfile string

	// Lazy enables lazy/short-circuiting evaluation.
	Lazy bool

	// Sampling enables the subsampling heuristic (GetBestNumberSkipped).
	Sampling bool

	// Debug enables periodic progress prints and JSON (rather than
	// console) log output.
	Debug bool

	// Tau is the time-distance threshold for alternative segmentations.
	Tau int

	// Rho is the robustness-distance threshold for alternative
	// segmentations.
	Rho float32

	// Amount is the number of alternative segmentations to report.
	Amount int

	// ChildrenOnly restricts segmentation printing to leaf rows.
	ChildrenOnly bool
}

// Defaults returns the spec.md §6 default flag values with an empty,
// not-yet-resolved Logfile.
func Defaults() Settings {
	return Settings{
		Tau:    20000,
		Rho:    50.0,
		Amount: 3,
	}
}

// Option mutates a Settings being built by Resolve.
type Option func(*Settings)

// WithLogfile sets the required logfile prefix.
func WithLogfile(path string) Option {
	return func(s *Settings) { s.Logfile = path }
}

// WithLazy toggles lazy evaluation.
func WithLazy(v bool) Option {
	return func(s *Settings) { s.Lazy = v }
}

// WithSampling toggles the subsampling heuristic.
func WithSampling(v bool) Option {
	return func(s *Settings) { s.Sampling = v }
}

// WithDebug toggles debug progress prints and JSON logging.
func WithDebug(v bool) Option {
	return func(s *Settings) { s.Debug = v }
}

// WithTau overrides the default tau threshold.
func WithTau(tau int) Option {
	return func(s *Settings) { s.Tau = tau }
}

// WithRho overrides the default rho threshold.
func WithRho(rho float32) Option {
	return func(s *Settings) { s.Rho = rho }
}

// WithAmount overrides the default alternative count.
func WithAmount(amount int) Option {
	return func(s *Settings) { s.Amount = amount }
}

// WithChildrenOnly toggles leaf-only segmentation printing.
func WithChildrenOnly(v bool) Option {
	return func(s *Settings) { s.ChildrenOnly = v }
}

// Resolve applies opts over the spec.md §6 defaults and validates the
// result. It is the only way to obtain a Settings outside of tests, so
// an invalid configuration can never reach internal/runner.
func Resolve(opts ...Option) (Settings, error) {
	s := Defaults()
	for _, opt := range opts {
		opt(&s)
	}

	if s.Logfile == "" {
		return Settings{}, ErrLogfileRequired
	}

	return s, nil
}
