// Package launcher opens files with the host's default application.
package launcher

import (
	"os/exec"
	"runtime"

	"github.com/pkg/errors"
)

// ErrNoHandler is returned when the platform's opener command is not
// installed or the platform has none.
var ErrNoHandler = errors.New("no default application handler")

// lookPath and start are replaced in tests.
var (
	lookPath = exec.LookPath
	start    = startDetached
)

// Command returns the opener command and arguments for path on goos.
func Command(goos, path string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{path}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}, nil
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly", "solaris", "illumos":
		return "xdg-open", []string{path}, nil
	default:
		return "", nil, errors.Wrapf(ErrNoHandler, "unsupported platform: %s", goos)
	}
}

// Open asks the desktop to open path with its default application.
// The launched program is not waited for.
func Open(path string) error {
	name, args, err := Command(runtime.GOOS, path)
	if err != nil {
		return err
	}

	bin, err := lookPath(name)
	if err != nil {
		return errors.Wrapf(ErrNoHandler, "%s: %v", name, err)
	}

	if err := start(bin, args...); err != nil {
		return errors.Wrapf(err, "starting %s", name)
	}
	return nil
}

// startDetached starts the command and releases it without waiting.
func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
