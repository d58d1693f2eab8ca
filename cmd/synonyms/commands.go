package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"beverage-kg/internal/app"
	"beverage-kg/internal/config"
	"beverage-kg/internal/logger"
	"beverage-kg/internal/search"
	"beverage-kg/internal/synonym"
	"beverage-kg/internal/usecase"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type exportEntry struct {
	Term     string       `json:"term" yaml:"term"`
	Kind     synonym.Kind `json:"kind" yaml:"kind"`
	Group    string       `json:"group" yaml:"group"`
	Synonyms []string     `json:"synonyms" yaml:"synonyms"`
}

type exportDoc struct {
	Fingerprint string              `json:"fingerprint" yaml:"fingerprint"`
	Collisions  []synonym.Collision `json:"collisions" yaml:"collisions"`
	Terms       []exportEntry       `json:"terms" yaml:"terms"`
}

func rootCmd(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "synonyms",
		Short: "Inspect and publish the beverage knowledge-graph synonym table",
		Long: `synonyms inspects the canonical-term synonym table used to rewrite
free-text questions into knowledge-graph schema terms.

The table is compiled into this binary. "publish" copies it to Postgres
for services that read it from there.`,
		SilenceUsage: true,
	}
	cmd.SetOut(out)

	uc := usecase.NewSynonymUsecase(synonym.Default())

	cmd.AddCommand(listCmd(uc), getCmd(uc), resolveCmd(), collisionsCmd(uc), exportCmd(), publishCmd())
	return cmd
}

func listCmd(uc usecase.SynonymUsecase) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List canonical terms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := uc.List(kind)
			if err != nil {
				return err
			}
			for _, it := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%-13s %s\n", it.Kind, it.Term)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "Only list terms of this kind (label, relationship, property, value, product)")
	return cmd
}

func getCmd(uc usecase.SynonymUsecase) *cobra.Command {
	return &cobra.Command{
		Use:   "get <term>",
		Short: "Print the synonyms of one canonical term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := uc.Get(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s (%s, %s)\n", it.Term, it.Kind, it.Group)
			for _, s := range it.Synonyms {
				fmt.Fprintf(w, "  - %s\n", s)
			}
			return nil
		},
	}
}

func resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <text>",
		Short: "Resolve free text to canonical terms",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := search.NewResolver(synonym.Default())
			qc := r.ProcessQuery(strings.Join(args, " "))
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "normalized: %s\n", qc.Normalized)
			fmt.Fprintf(w, "rewritten:  %s\n", qc.Rewritten)
			if len(qc.Matches) == 0 {
				fmt.Fprintln(w, "no canonical terms found")
				return nil
			}
			for _, m := range qc.Matches {
				fmt.Fprintf(w, "  %q -> %s (%s)\n", m.Phrase, m.Term, m.Kind)
			}
			return nil
		},
	}
}

func collisionsCmd(uc usecase.SynonymUsecase) *cobra.Command {
	return &cobra.Command{
		Use:   "collisions",
		Short: "List terms authored more than once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range uc.Collisions() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %q replaced by %q\n", c.Term, c.Replaced, c.Winner)
			}
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	var (
		format  string
		outPath string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the resolved table as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("create %s: %w", outPath, err)
				}
				defer f.Close()
				w = f
			}
			return writeExport(w, synonym.Default(), format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format (json, yaml)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to file instead of stdout")
	return cmd
}

func writeExport(w io.Writer, table *synonym.Table, format string) error {
	doc := exportDoc{
		Fingerprint: table.Fingerprint(),
		Collisions:  table.Collisions(),
		Terms:       make([]exportEntry, 0, table.Len()),
	}
	for _, term := range table.Terms() {
		syns, _ := table.Lookup(term)
		kind, _ := table.Kind(term)
		group, _ := table.Group(term)
		doc.Terms = append(doc.Terms, exportEntry{Term: term, Kind: kind, Group: group, Synonyms: syns})
	}

	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(doc)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func publishCmd() *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Apply migrations and copy the table to Postgres",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log, err := logger.New(cfg.Log.Format, cfg.Log.Level)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			c, err := app.NewContainer(cfg, log)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			st, err := c.Publisher.Publish(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "published %d terms, fingerprint %s\n", c.Table.Len(), st.Local)
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "Overall publish timeout")
	return cmd
}
