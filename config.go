package vstr

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// Config holds package-wide settings. It is read from the environment by
// LoadConfig and put into effect by Configure.
type Config struct {
	// CheckSubranges cross-checks every fast sub-range check with a full
	// validation and panics if the two disagree.
	CheckSubranges bool `env:"VSTR_CHECK_SUBRANGES" envDefault:"false"`
	// TraceLevel is one of "debug", "info" or "error".
	TraceLevel string `env:"VSTR_TRACE_LEVEL" envDefault:"error"`
	// PoolMinCap is the initial capacity of buffers created by buffer pools.
	PoolMinCap int `env:"VSTR_POOL_MIN_CAP" envDefault:"64"`
}

// DefaultConfig is the configuration in effect if Configure is never called.
var DefaultConfig = Config{
	TraceLevel: "error",
	PoolMinCap: 64,
}

var (
	current     atomic.Value // holds a Config
	checkRanges atomic.Bool
	envOnce     sync.Once
)

func init() {
	current.Store(DefaultConfig)
}

// LoadConfig reads configuration from environment variables. If envFiles
// are given, they are loaded first (see github.com/joho/godotenv); values
// already present in the environment take precedence. Files are loaded
// only on the first call.
func LoadConfig(envFiles ...string) (Config, error) {
	var err error
	if len(envFiles) > 0 {
		envOnce.Do(func() {
			err = godotenv.Load(envFiles...)
		})
		if err != nil {
			return DefaultConfig, fmt.Errorf("vstr: loading env files: %w", err)
		}
	}
	var cfg Config
	if err = env.Parse(&cfg); err != nil {
		return DefaultConfig, fmt.Errorf("vstr: parsing configuration: %w", err)
	}
	if cfg.PoolMinCap < 0 {
		return DefaultConfig, fmt.Errorf("vstr: negative pool capacity %d", cfg.PoolMinCap)
	}
	return cfg, nil
}

// Configure puts a configuration into effect.
func Configure(cfg Config) {
	current.Store(cfg)
	checkRanges.Store(cfg.CheckSubranges)
	switch strings.ToLower(cfg.TraceLevel) {
	case "debug":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	case "info":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	default:
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	}
	CT().Debugf("vstr configured: check sub-ranges=%v, pool cap=%d", cfg.CheckSubranges, cfg.PoolMinCap)
}

// CurrentConfig returns the configuration in effect.
func CurrentConfig() Config {
	return current.Load().(Config)
}

// SetCheckSubranges switches the sub-range cross-check on or off and returns
// the previous setting. Tests use it as
//
//	defer vstr.SetCheckSubranges(vstr.SetCheckSubranges(true))
//
func SetCheckSubranges(on bool) bool {
	return checkRanges.Swap(on)
}

// CheckSubranges reports whether sub-range checks are cross-checked.
func CheckSubranges() bool {
	return checkRanges.Load()
}
