package version

// Version is the current ADC release version.
// Overridden at build time via -ldflags "-X adc/internal/version.Version=...".
var Version = "0.1.0"
