package process

import (
	"strings"

	"github.com/mitchellh/go-ps"
)

// Info is a small struct representing a running process.
// It is intentionally minimal to keep cross-platform compatibility.
type Info struct {
	PID  int
	Name string
}

// List returns the running processes in a platform-agnostic format.
// It wraps github.com/mitchellh/go-ps internally and normalizes the result.
func List() ([]Info, error) {
	procs, err := ps.Processes()
	if err != nil {
		return nil, err
	}
	out := make([]Info, 0, len(procs))
	for _, p := range procs {
		out = append(out, Info{PID: p.Pid(), Name: p.Executable()})
	}
	return out, nil
}

// FindByName returns all processes whose executable name contains name,
// compared case-insensitively.
func FindByName(name string) ([]Info, error) {
	procs, err := List()
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(name)
	var out []Info
	for _, p := range procs {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out, nil
}
