package autop

import (
	"log/slog"
	"runtime"
)

// Version information for the autop library.
const (
	Version = "1.0.0"
	Name    = "autop"
)

// Options configures a Formatter.
type Options struct {
	LineBreaks   bool         // Convert remaining single newlines into <br />
	MaxInputSize int64        // Largest input FormatReader accepts, in bytes; <= 0 means unlimited
	Logger       *slog.Logger // Receives FormatReader diagnostics; never nil after New
}

// DefaultOptions returns the default formatter options: line breaks are
// converted, FormatReader accepts up to 1MB and nothing is logged.
func DefaultOptions() Options {
	return Options{
		LineBreaks:   true,
		MaxInputSize: 1024 * 1024, // 1MB
		Logger:       discardLogger(),
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// BuildInfo contains version and build information for the library.
type BuildInfo struct {
	Version   string
	Name      string
	GoVersion string
}

// GetBuildInfo returns the current version information.
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Name:      Name,
		GoVersion: runtime.Version(),
	}
}
