package server

// Config holds the server-level tunables spec.md's §5 concurrency model
// leaves to the host process: the chunk size the data-parallel kernel loop
// splits work into (applied via array.SetChunkSize when a Dispatcher is
// built), and the default maxBits new BigInt arrays are created with when
// one operand is BigInt and the other is a fixed-width value with no
// maxBits of its own to inherit (applied to dispatch.Dispatcher's
// DefaultMaxBits field). It is a plain struct built with functional
// options, matching the teacher's preference for plain constructor
// functions (atype.Make) over a config-file/flag library.
type Config struct {
	ChunkSize      int
	DefaultMaxBits int
	Logger         Logger
}

// Option configures a Config.
type Option func(*Config)

// WithChunkSize overrides the default data-parallel chunk size. n <= 0 is
// ignored, leaving the previous value in place.
func WithChunkSize(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.ChunkSize = n
		}
	}
}

// WithDefaultMaxBits overrides the maxBits new unbounded-by-default BigInt
// arrays are given; -1 (the default) means unbounded.
func WithDefaultMaxBits(bits int) Option {
	return func(c *Config) {
		c.DefaultMaxBits = bits
	}
}

// WithLogger installs a Logger. A nil logger is ignored.
func WithLogger(l Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}

// NewConfig builds a Config with sane defaults, then applies opts in order.
func NewConfig(opts ...Option) Config {
	c := Config{
		ChunkSize:      1 << 16,
		DefaultMaxBits: -1,
		Logger:         noopLogger{},
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
