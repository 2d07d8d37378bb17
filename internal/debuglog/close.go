package debuglog

import (
	"io"
	"log"
)

// CloseWithLog closes c and logs a name-prefixed error if closing fails.
// Safe to call with a nil closer, so it works in deferred cleanup paths.
func CloseWithLog(name string, c io.Closer) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		log.Printf("%s: close: %v", name, err)
	}
}
