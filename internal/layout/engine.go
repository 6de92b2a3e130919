package layout

// Limits bounds the row and seat counts a Config may declare.
type Limits struct {
	MaxRows        int
	MaxSeatsPerRow int
}

// DefaultLimits are the ranges the hall editor accepts.
var DefaultLimits = Limits{MaxRows: 20, MaxSeatsPerRow: 30}

// Engine bundles the row labeling scheme and the validation limits used by
// every operation.  The zero value is not usable; build one with NewEngine.
// An Engine holds no mutable state.
type Engine struct {
	labeler RowLabeler
	limits  Limits
}

// EngineOption customizes NewEngine.
type EngineOption func(*Engine)

// WithLabeler replaces the canonical single-letter scheme.
func WithLabeler(l RowLabeler) EngineOption {
	return func(e *Engine) { e.labeler = l }
}

// WithLimits replaces DefaultLimits.  Limits wider than the labeler's
// capacity are allowed; the Validator then reports LabelSpaceError for the
// rows it cannot name.
func WithLimits(l Limits) EngineOption {
	return func(e *Engine) { e.limits = l }
}

func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{labeler: LetterLabeler{}, limits: DefaultLimits}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = NewEngine()

// Limits returns the engine's validation limits.
func (e *Engine) Limits() Limits { return e.limits }

// Labeler returns the engine's row labeler.
func (e *Engine) Labeler() RowLabeler { return e.labeler }

// NewConfig is the validating factory behind New.
func (e *Engine) NewConfig(rows, seatsPerRow int, opts ...Option) (Config, error) {
	c := Config{RowCount: rows, SeatsPerRow: seatsPerRow}
	for _, opt := range opts {
		opt(&c)
	}
	c = c.Normalize()
	if err := e.Validate(c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// ParseSeatID resolves ids like "A3" with the engine's labeler.  It does not
// check the position against any config.
func (e *Engine) ParseSeatID(id string) (Position, error) {
	return parseSeatID(e.labeler, id)
}

// Validate checks cfg with the default engine.
func Validate(cfg Config) error { return defaultEngine.Validate(cfg) }

// Generate derives a grid with the default engine.
func Generate(cfg Config) (Grid, error) { return defaultEngine.Generate(cfg) }

// Toggle flips one seat's disabled flag with the default engine.
func Toggle(cfg Config, row, seat int) (Config, error) { return defaultEngine.Toggle(cfg, row, seat) }

// TogglePremiumRow flips one row's premium flag with the default engine.
func TogglePremiumRow(cfg Config, rowNumber int) (Config, error) {
	return defaultEngine.TogglePremiumRow(cfg, rowNumber)
}

// Resize changes the grid dimensions with the default engine.
func Resize(cfg Config, rows, seatsPerRow int) (Config, error) {
	return defaultEngine.Resize(cfg, rows, seatsPerRow)
}

// ParseSeatID resolves a seat id with the default engine.
func ParseSeatID(id string) (Position, error) { return defaultEngine.ParseSeatID(id) }
