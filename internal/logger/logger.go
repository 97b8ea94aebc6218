package logger

import "go.uber.org/zap"

// New returns a development logger writing to stderr when verbose is set,
// and a no-op logger otherwise. Console output for users never goes through it.
func New(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	return cfg.Build()
}
