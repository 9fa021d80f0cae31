package hive

// Option configures Open. The zero value of openConfig (no logs, default
// cell-size ceiling) is a plain read-only open of the base image.
type Option func(*openConfig)

type openConfig struct {
	log1Path    string
	log2Path    string
	maxCellSize int
}

const defaultMaxCellSize = 64 << 20 // 64 MiB, matching hivekit's conservative default

func newOpenConfig() *openConfig {
	return &openConfig{maxCellSize: defaultMaxCellSize}
}

// WithLog1 supplies the primary (.LOG1) transaction-log sidecar to
// reconcile against the base image before Open returns.
func WithLog1(path string) Option {
	return func(c *openConfig) { c.log1Path = path }
}

// WithLog2 supplies the secondary (.LOG2) transaction-log sidecar.
func WithLog2(path string) Option {
	return func(c *openConfig) { c.log2Path = path }
}

// WithMaxCellSize overrides the ceiling placed on any single cell's declared
// size, guarding against absurd or malicious length fields. Zero or
// negative values are ignored.
func WithMaxCellSize(n int) Option {
	return func(c *openConfig) {
		if n > 0 {
			c.maxCellSize = n
		}
	}
}
