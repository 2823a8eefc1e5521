package spanscan

import "github.com/coregx/spanscan/accel"

// maxAccelLen bounds MinAccelLen.
const maxAccelLen = 1 << 20

// Config controls how a ByteScanner dispatches between the word-at-a-time
// kernels (package accel) and the element-wise fallback kernels.
//
// Example:
//
//	config := spanscan.DefaultConfig()
//	config.EnableAccel = false // always use the fallback kernels
//	scanner, err := spanscan.NewByteScanner(config)
type Config struct {
	// EnableAccel enables the word-at-a-time byte kernels.
	// They are only used on platforms with 64-bit words.
	// Default: true
	EnableAccel bool

	// MinAccelLen is the shortest haystack for which the word-at-a-time
	// kernels are used. Shorter inputs go to the fallback kernels, which have
	// no setup cost.
	// Default: 32 on CPUs with AVX2, 16 otherwise
	MinAccelLen int
}

// DefaultConfig returns a configuration tuned for the running CPU.
func DefaultConfig() Config {
	minLen := 16
	if accel.Detect().AVX2 {
		minLen = 32
	}
	return Config{
		EnableAccel: true,
		MinAccelLen: minLen,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - MinAccelLen: 1 to 1,048,576
func (c Config) Validate() error {
	if c.MinAccelLen < 1 || c.MinAccelLen > maxAccelLen {
		return &ConfigError{
			Field:   "MinAccelLen",
			Message: "must be between 1 and 1,048,576",
		}
	}
	return nil
}
