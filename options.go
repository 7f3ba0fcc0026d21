package curve

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"
)

// ErrInvalidOptions is wrapped by errors reporting an unusable [Options]
// value.
var ErrInvalidOptions = errors.New("invalid options")

// DefaultAccuracy is the default absolute accuracy of polynomial roots found
// while searching for the nearest point on a Bézier curve.
const DefaultAccuracy = 1e-12

// Options tunes the iterative parts of the kernel. The zero value is ready to
// use: every zero field falls back to the corresponding value of
// [DefaultOptions].
//
// Options can be loaded from YAML:
//
//	accuracy: 1e-12
//	arclen:
//	  tolerance: 0.001
//	  max_subdivisions: 1024
//	  min_subdivisions: 4
//	arc_search:
//	  samples: 25
//	  passes: 3
//	  tolerance: 0.001
type Options struct {
	// Accuracy is the absolute accuracy of polynomial roots.
	Accuracy  float64          `yaml:"accuracy"`
	Arclen    ArclenOptions    `yaml:"arclen"`
	ArcSearch ArcSearchOptions `yaml:"arc_search"`

	// Logger receives debug records when an iterative solver gives up before
	// reaching its tolerance. A nil Logger discards them.
	Logger *slog.Logger `yaml:"-"`
}

// ArclenOptions controls adaptive Simpson integration of arc length.
type ArclenOptions struct {
	// Tolerance is the relative change between successive estimates below
	// which the estimate is accepted.
	Tolerance float64 `yaml:"tolerance"`
	// MaxSubdivisions caps the number of subintervals.
	MaxSubdivisions int `yaml:"max_subdivisions"`
	// MinSubdivisions is the number of subintervals that have to be reached
	// before an estimate can be accepted. Curves whose speed is symmetric can
	// otherwise agree between the first two estimates by accident.
	MinSubdivisions int `yaml:"min_subdivisions"`
}

// ArcSearchOptions controls the coarse-to-fine search for the point on an
// elliptical arc nearest to a query point.
type ArcSearchOptions struct {
	// Samples is the number of equally spaced angles evaluated per pass.
	Samples int `yaml:"samples"`
	// Passes is the number of refinement passes after the initial one.
	Passes int `yaml:"passes"`
	// Tolerance is the angular step, in radians, below which the search
	// stops early.
	Tolerance float64 `yaml:"tolerance"`
}

// DefaultOptions returns the options used by [Length], [NearestParameter] and
// [Distance].
func DefaultOptions() Options {
	return Options{
		Accuracy: DefaultAccuracy,
		Arclen: ArclenOptions{
			Tolerance:       0.001,
			MaxSubdivisions: 1024,
			MinSubdivisions: 4,
		},
		ArcSearch: ArcSearchOptions{
			Samples:   25,
			Passes:    3,
			Tolerance: 0.001,
		},
	}
}

// withDefaults replaces zero fields with their defaults.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Accuracy == 0 {
		o.Accuracy = def.Accuracy
	}
	if o.Arclen.Tolerance == 0 {
		o.Arclen.Tolerance = def.Arclen.Tolerance
	}
	if o.Arclen.MaxSubdivisions == 0 {
		o.Arclen.MaxSubdivisions = def.Arclen.MaxSubdivisions
	}
	if o.Arclen.MinSubdivisions == 0 {
		o.Arclen.MinSubdivisions = def.Arclen.MinSubdivisions
	}
	if o.ArcSearch.Samples == 0 {
		o.ArcSearch.Samples = def.ArcSearch.Samples
	}
	if o.ArcSearch.Passes == 0 {
		o.ArcSearch.Passes = def.ArcSearch.Passes
	}
	if o.ArcSearch.Tolerance == 0 {
		o.ArcSearch.Tolerance = def.ArcSearch.Tolerance
	}
	return o
}

// Validate reports whether o, after zero fields have been replaced by their
// defaults, is usable. The returned error wraps [ErrInvalidOptions].
func (o Options) Validate() error {
	o = o.withDefaults()
	var errs []error
	if !(o.Accuracy > 0) {
		errs = append(errs, fmt.Errorf("accuracy must be positive, got %g", o.Accuracy))
	}
	errs = append(errs, o.Arclen.validate()...)
	errs = append(errs, o.ArcSearch.validate()...)
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, errors.Join(errs...))
	}
	return nil
}

func (o ArclenOptions) validate() []error {
	var errs []error
	if !(o.Tolerance > 0) {
		errs = append(errs, fmt.Errorf("arclen.tolerance must be positive, got %g", o.Tolerance))
	}
	if o.MaxSubdivisions < 2 {
		errs = append(errs, fmt.Errorf("arclen.max_subdivisions must be at least 2, got %d", o.MaxSubdivisions))
	}
	if o.MinSubdivisions < 0 {
		errs = append(errs, fmt.Errorf("arclen.min_subdivisions must not be negative, got %d", o.MinSubdivisions))
	}
	if o.MinSubdivisions > o.MaxSubdivisions {
		errs = append(errs, fmt.Errorf("arclen.min_subdivisions (%d) exceeds arclen.max_subdivisions (%d)",
			o.MinSubdivisions, o.MaxSubdivisions))
	}
	return errs
}

func (o ArcSearchOptions) validate() []error {
	var errs []error
	if o.Samples < 2 {
		errs = append(errs, fmt.Errorf("arc_search.samples must be at least 2, got %d", o.Samples))
	}
	if o.Passes < 0 {
		errs = append(errs, fmt.Errorf("arc_search.passes must not be negative, got %d", o.Passes))
	}
	if !(o.Tolerance > 0) {
		errs = append(errs, fmt.Errorf("arc_search.tolerance must be positive, got %g", o.Tolerance))
	}
	return errs
}

// ParseOptions decodes YAML-encoded options. Keys that do not correspond to
// an option are an error. Missing keys keep their defaults.
func ParseOptions(data []byte) (Options, error) {
	return LoadOptions(bytes.NewReader(data))
}

// LoadOptions is like [ParseOptions] but reads the YAML document from r.
func LoadOptions(r io.Reader) (Options, error) {
	opts := DefaultOptions()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("%w: decoding yaml: %w", ErrInvalidOptions, err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func (o Options) debug(msg string, args ...any) {
	if o.Logger == nil {
		return
	}
	o.Logger.Log(context.Background(), slog.LevelDebug, msg, args...)
}
