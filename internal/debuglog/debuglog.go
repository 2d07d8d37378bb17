package debuglog

import (
	"fmt"
	"log"
	"os"
	"strings"
)

type Level uint8

const (
	LevelOff Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelVerbose
	LevelTrace

	UseGlobal Level = 255
)

const envKey = "FYNEMVP_DEBUG"

var (
	GlobalLevel = parseEnvLevel(os.Getenv(envKey))
)

func parseEnvLevel(raw string) Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return LevelTrace
	case "verbose", "debug":
		return LevelVerbose
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	case "off":
		return LevelOff
	default:
		// Framework internals are chatty at verbose; stay quiet unless asked
		return LevelWarn
	}
}

// SetGlobalLevel overrides the env-derived level, e.g. from a settings
// file. Empty input leaves the current level untouched.
func SetGlobalLevel(raw string) {
	if strings.TrimSpace(raw) == "" {
		return
	}
	GlobalLevel = parseEnvLevel(raw)
}

// Log writes a formatted message when level passes the effective threshold.
// Pass UseGlobal as local to defer to the process-wide level.
func Log(prefix string, level Level, local Level, format string, args ...interface{}) {
	effective := GlobalLevel
	if local != UseGlobal {
		effective = local
	}
	if level > effective {
		return
	}
	message := fmt.Sprintf(format, args...)
	if prefix != "" {
		log.Printf("[%s] %s", prefix, message)
	} else {
		log.Print(message)
	}
}

// ShouldLog reports whether a message at level would be emitted.
func ShouldLog(level Level, local Level) bool {
	effective := GlobalLevel
	if local != UseGlobal {
		effective = local
	}
	return level <= effective
}
