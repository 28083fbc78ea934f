package talib

import "github.com/hsiuhsiu/talib-go/internal/bindings"

// Version is the wrapper release, set at build time with
// -ldflags "-X github.com/hsiuhsiu/talib-go/pkg/talib.Version=v1.2.3".
var Version = "v0.0.0-in-progress"

// Backend names reported by Backend.
const (
	BackendNative = bindings.BackendNative
	BackendPureGo = bindings.BackendPureGo
)

// WrapperVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func WrapperVersion() string {
	return Version
}

// UpstreamVersion returns TA_GetVersionString when the native library is
// linked and the name of the pure-Go engine otherwise.
func UpstreamVersion() string {
	return bindings.Version()
}

// Backend reports which engine computes the indicators.
func Backend() string {
	return bindings.Backend()
}
