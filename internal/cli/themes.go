package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rabellamy/generator-drupal-theme/internal/basetheme"
	"github.com/spf13/cobra"
)

var themesJSON bool

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the base themes a new theme can extend",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries := themeEntries(basetheme.DefaultRegistry())
		if themesJSON {
			return printThemesJSON(cmd.OutOrStdout(), entries)
		}
		return printThemesTable(cmd.OutOrStdout(), entries)
	},
}

func init() {
	themesCmd.Flags().BoolVar(&themesJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(themesCmd)
}

// themeEntry represents a catalog entry for display.
type themeEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Settings int    `json:"settings"`
}

// themeEntries lists the catalog with the number of extra questions each
// base theme asks. Entries whose provider is unknown report zero.
func themeEntries(reg basetheme.Registry) []themeEntry {
	var entries []themeEntry
	for _, d := range basetheme.Catalog() {
		e := themeEntry{ID: d.ID, Name: d.Name}
		if p, err := reg.Resolve(d); err == nil && p != nil {
			e.Settings = len(p.Prompts())
		}
		entries = append(entries, e)
	}
	return entries
}

func printThemesTable(w io.Writer, entries []themeEntry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSETTINGS")
	for _, e := range entries {
		id := e.ID
		if id == basetheme.None {
			id = "-"
		}
		settings := "-"
		if e.Settings > 0 {
			settings = fmt.Sprintf("%d", e.Settings)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", id, e.Name, settings)
	}
	return tw.Flush()
}

func printThemesJSON(w io.Writer, entries []themeEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
