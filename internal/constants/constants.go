package constants

// Application identity
const (
	AppID   = "io.fynemvp.demo"
	AppName = "fynemvp demo"
)

// Settings file name, looked up next to the executable
const (
	SettingsFileName = "settings.jsonc"
)

// Network defaults for the diagnostics demo
const (
	DefaultSTUNServer  = "stun.l.google.com:19302"
	DefaultSocksProbe  = "127.0.0.1:1080"
	NetworkNotifyTitle = "Diagnostics"
)

// Application version
// Can be overridden at build time using -ldflags="-X fynemvp/internal/constants.AppVersion=..."
var (
	AppVersion = "v0.1.0"
)
