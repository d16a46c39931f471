package install

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// Runner executes external commands.
type Runner interface {
	// LookPath resolves name against PATH.
	LookPath(name string) (string, error)
	// Run executes bin with args in dir.
	Run(ctx context.Context, dir, bin string, args ...string) error
}

// ExecRunner runs commands with os/exec, streaming output to Stdout and Stderr.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// LookPath implements Runner.
func (ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run implements Runner.
func (r ExecRunner) Run(ctx context.Context, dir, bin string, args ...string) error {
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = io.Discard
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = io.Discard
	}
	return cmd.Run()
}

// Manager is a package manager keyed by its manifest file.
type Manager struct {
	Manifest string
	Bin      string
	Args     []string
}

// Managers are run in order.
var Managers = []Manager{
	{Manifest: "package.json", Bin: "npm", Args: []string{"install"}},
	{Manifest: "bower.json", Bin: "bower", Args: []string{"install"}},
}

// Report describes what an install run did.
type Report struct {
	Ran      []string
	Skipped  []string
	Warnings []string
}

// Installer runs the applicable package managers for a theme directory.
type Installer struct {
	Fs     afero.Fs // defaults to the OS filesystem
	Runner Runner   // defaults to ExecRunner writing to Out
	Out    io.Writer
	Logger *log.Logger
}

// Run installs dependencies in dir. A failing manager aborts the run;
// a missing one only adds a warning.
func (in *Installer) Run(ctx context.Context, dir string) (*Report, error) {
	fsys := in.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	out := in.Out
	if out == nil {
		out = os.Stdout
	}
	runner := in.Runner
	if runner == nil {
		runner = ExecRunner{Stdout: out, Stderr: out}
	}
	logger := in.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	report := &Report{}
	for _, m := range Managers {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		ok, err := afero.Exists(fsys, filepath.Join(dir, m.Manifest))
		if err != nil {
			return report, fmt.Errorf("checking %s: %w", m.Manifest, err)
		}
		if !ok {
			logger.Debug("no manifest, skipping", "manager", m.Bin, "manifest", m.Manifest)
			report.Skipped = append(report.Skipped, m.Bin)
			continue
		}

		bin, err := runner.LookPath(m.Bin)
		if err != nil {
			msg := fmt.Sprintf("%s not found, skipping %s %s", m.Bin, m.Bin, m.Args[0])
			logger.Warn(msg)
			report.Warnings = append(report.Warnings, msg)
			continue
		}

		logger.Info("installing dependencies", "manager", m.Bin, "dir", dir)
		if err := runner.Run(ctx, dir, bin, m.Args...); err != nil {
			return report, fmt.Errorf("%s install in %s: %w", m.Bin, dir, err)
		}
		report.Ran = append(report.Ran, m.Bin)
	}
	return report, nil
}
