// Package browser opens URLs in the user's browser.
package browser

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/bnema/orbit/internal/application/port"
	"github.com/bnema/orbit/internal/logging"
)

// ErrNoOpener is returned when neither $BROWSER nor a platform opener is available.
var ErrNoOpener = errors.New("no browser opener found (set $BROWSER)")

// Navigator implements port.Navigator by starting an external opener.
type Navigator struct {
	getenv   func(string) string
	lookPath func(string) (string, error)
	start    func(name string, args ...string) error
	goos     string
}

// NewNavigator creates a navigator for the current platform.
func NewNavigator() *Navigator {
	return &Navigator{
		getenv:   os.Getenv,
		lookPath: exec.LookPath,
		start:    startDetached,
		goos:     runtime.GOOS,
	}
}

// Navigate opens url without waiting for the browser to exit.
// ORBIT_NO_BROWSER suppresses the launch.
func (n *Navigator) Navigate(ctx context.Context, url string) error {
	log := logging.FromContext(ctx)

	if n.getenv("ORBIT_NO_BROWSER") != "" {
		log.Debug().Msg("browser launch suppressed")
		return nil
	}

	name, args, err := n.command(url)
	if err != nil {
		return err
	}

	log.Debug().Str("opener", name).Msg("opening browser")
	if err := n.start(name, args...); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	return nil
}

// command resolves the opener. $BROWSER is a colon-separated list; the first
// entry found on PATH wins, and a "%s" in it is replaced by the URL.
func (n *Navigator) command(url string) (string, []string, error) {
	for _, candidate := range strings.Split(n.getenv("BROWSER"), ":") {
		fields := strings.Fields(candidate)
		if len(fields) == 0 {
			continue
		}
		path, err := n.lookPath(fields[0])
		if err != nil {
			continue
		}
		args := fields[1:]
		substituted := false
		for i, a := range args {
			if strings.Contains(a, "%s") {
				args[i] = strings.ReplaceAll(a, "%s", url)
				substituted = true
			}
		}
		if !substituted {
			args = append(args, url)
		}
		return path, args, nil
	}

	var opener string
	switch n.goos {
	case "darwin":
		opener = "open"
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}, nil
	default:
		opener = "xdg-open"
	}
	path, err := n.lookPath(opener)
	if err != nil {
		return "", nil, ErrNoOpener
	}
	return path, []string{url}, nil
}

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap the child so it does not linger as a zombie.
	go func() { _ = cmd.Wait() }()
	return nil
}

var _ port.Navigator = (*Navigator)(nil)
