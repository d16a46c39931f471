package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/rabellamy/generator-drupal-theme/internal/branding"
	"github.com/rabellamy/generator-drupal-theme/internal/config"
	"github.com/rabellamy/generator-drupal-theme/internal/install"
	"github.com/rabellamy/generator-drupal-theme/internal/prompt"
	"github.com/rabellamy/generator-drupal-theme/internal/scaffold"
	"github.com/rabellamy/generator-drupal-theme/internal/schema"
	"github.com/rabellamy/generator-drupal-theme/internal/store"
	"github.com/rabellamy/generator-drupal-theme/internal/wizard"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// newOptions holds the flags shared by the root and new commands.
type newOptions struct {
	skipInstall bool
	dir         string
	verbose     bool
}

var newOpts = &newOptions{}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Scaffold a new Drupal theme",
	Long: `Ask for a theme name, a base theme and optional directory names, then
create <slug>/ with sass, css, js and template directories, <slug>.info,
.editorconfig and .jshintrc.

Answers are saved to ` + store.FileName + ` in the working directory.

Example:
  ` + branding.CLIName() + ` new --dir ~/sites/all/themes --skip-install`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNew(cmd, newOpts)
	},
}

func init() {
	bindNewFlags(newCmd, newOpts)
	rootCmd.AddCommand(newCmd)
}

func bindNewFlags(cmd *cobra.Command, opts *newOptions) {
	cmd.Flags().BoolVar(&opts.skipInstall, "skip-install", false, "Do not run npm/bower install after generating")
	cmd.Flags().StringVar(&opts.dir, "dir", "", "Directory to generate the theme in (default: current directory)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
}

func runNew(cmd *cobra.Command, opts *newOptions) error {
	in := cmd.InOrStdin()
	return generate(cmd.Context(), opts, newAsker(in, cmd.OutOrStdout()), cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// newAsker picks the interactive huh renderer when in is a terminal and the
// plain line reader otherwise.
func newAsker(in io.Reader, out io.Writer) prompt.Asker {
	if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return &prompt.HuhAsker{In: in, Out: out}
	}
	return prompt.NewLineAsker(in, out)
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: branding.CLIName(),
	})
}

// generate runs the whole flow: wizard, validation, materialization, install.
func generate(ctx context.Context, opts *newOptions, asker prompt.Asker, out, errOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := newLogger(errOut, opts.verbose)

	dir, err := resolveDir(opts.dir)
	if err != nil {
		return err
	}
	fsys := afero.NewBasePathFs(afero.NewOsFs(), dir)

	fmt.Fprintln(out, greetingStyle.Render(branding.Greeting()))
	fmt.Fprintln(out)

	st, err := store.Open(fsys, ".", branding.StoreNamespace())
	if err != nil {
		return err
	}
	logger.Debug("Opened answer store", "path", filepath.Join(dir, st.Path()))

	p := &wizard.Pipeline{Asker: asker, Store: st, Logger: logger}
	if _, err := p.Run(ctx); err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			return fmt.Errorf("cancelled, nothing generated: %w", err)
		}
		return err
	}
	logger.Debug("Wizard finished", "keys", st.Keys())

	// The store is the source of truth for materialization.
	res, err := schema.Validate(st.Values())
	if err != nil {
		return err
	}
	if !res.Valid {
		return fmt.Errorf("saved answers are invalid: %w", res)
	}
	cfg, err := wizard.FromValues(st.Values())
	if err != nil {
		return err
	}

	result, err := scaffold.Generate(fsys, scaffold.NewData(cfg))
	if err != nil {
		if scaffold.IsExist(err) {
			return fmt.Errorf("%w (remove it or choose another theme name)", err)
		}
		return err
	}
	logger.Info("Generated theme", "result", result.String())

	themeDir := filepath.Join(dir, result.Root)
	var report *install.Report
	if opts.skipInstall || config.SkipInstall() {
		logger.Debug("Skipping dependency installation")
	} else {
		in := &install.Installer{Out: out, Logger: logger}
		report, err = in.Run(ctx, themeDir)
		if err != nil {
			return err
		}
	}

	printSummary(out, cfg, result, themeDir, report)
	return nil
}

func resolveDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("target directory %s: %w", abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", abs)
	}
	return abs, nil
}

var (
	greetingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 2)
	headingStyle = lipgloss.NewStyle().Bold(true)
)

func printSummary(out io.Writer, cfg *wizard.Config, result *scaffold.Result, themeDir string, report *install.Report) {
	fmt.Fprintf(out, "\n%s %s\n", headingStyle.Render("Created theme:"), themeDir)
	for _, d := range result.Dirs {
		fmt.Fprintf(out, "  %s/\n", d)
	}
	for _, f := range result.Files {
		fmt.Fprintf(out, "  %s\n", f)
	}

	if report != nil {
		for _, w := range report.Warnings {
			fmt.Fprintf(out, "\nWarning: %s\n", w)
		}
	}

	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintf(out, "  1. Write your styles in %s/ and compile them into %s/%s.css\n", cfg.SassDir, cfg.CSSDir, cfg.ProjectSlug)
	fmt.Fprintf(out, "  2. Put template overrides in %s/\n", cfg.TemplateDir)
	fmt.Fprintf(out, "  3. Enable '%s' at admin/appearance\n", cfg.ProjectName)
}
