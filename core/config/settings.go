// Package config loads the demo application settings from a JSONC file so
// users can keep comments in their settings. Missing files and missing
// fields fall back to defaults; a present-but-broken file is an error the
// caller should surface rather than silently ignore.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"

	"github.com/muhammadmuzzammil1998/jsonc"

	"fynemvp/internal/constants"
)

// Settings is the demo application configuration.
type Settings struct {
	// LogLevel overrides the FYNEMVP_DEBUG env filter when non-empty.
	LogLevel string `json:"log_level,omitempty"`

	// STUNServer is the host:port used by the external IP check.
	STUNServer string `json:"stun_server,omitempty"`

	// SocksProbe is the host:port of the SOCKS5 proxy the diagnostics
	// tab probes.
	SocksProbe string `json:"socks_probe,omitempty"`

	// Window size of the main demo window.
	WindowWidth  int `json:"window_width,omitempty"`
	WindowHeight int `json:"window_height,omitempty"`
}

// Defaults returns the settings used when no file is present.
func Defaults() Settings {
	return Settings{
		STUNServer:   constants.DefaultSTUNServer,
		SocksProbe:   constants.DefaultSocksProbe,
		WindowWidth:  760,
		WindowHeight: 520,
	}
}

var reTrailingCommas = regexp.MustCompile(`,(\s*[\]\}])`)

func removeTrailingCommas(data []byte) []byte {
	return reTrailingCommas.ReplaceAll(data, []byte("$1"))
}

// toJSON strips comments and trailing commas. The comma scrub runs before
// and after jsonc so jsonc never sees invalid input and cases like
// ", // comment \n ]" still get fixed.
func toJSON(data []byte) []byte {
	data = removeTrailingCommas(data)
	clean := jsonc.ToJSON(data)
	return removeTrailingCommas(clean)
}

// Load reads settings from path. A missing file yields Defaults with no
// error; unknown fields are ignored; absent fields keep their defaults.
func Load(path string) (Settings, error) {
	s := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("failed to read settings: %w", err)
	}
	if err := json.Unmarshal(toJSON(data), &s); err != nil {
		return Defaults(), fmt.Errorf("failed to parse settings: %w", err)
	}
	return s, nil
}
