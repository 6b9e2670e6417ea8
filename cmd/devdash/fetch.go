package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vukan322/devdash/internal/core"
	"github.com/vukan322/devdash/internal/render"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
	formatSVG  = "svg"
)

func newFetchCmd(configPath *string) *cobra.Command {
	var (
		githubHandle   string
		leetcodeHandle string
		format         string
		output         string
		useDemo        bool
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Refresh the dashboard once and print it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			log := setupLogger(cfg.Env, cmd.ErrOrStderr())

			ctrl, err := newController(cfg, log, useDemo)
			if err != nil {
				return err
			}

			d, err := ctrl.Refresh(cmd.Context(), cfg.HandlesWith(githubHandle, leetcodeHandle))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create %s: %w", output, err)
				}
				defer f.Close()
				out = f
			}

			if err := writeDashboard(out, d, format); err != nil {
				return err
			}
			if output != "" {
				log.Info("dashboard written", slog.String("path", output), slog.String("format", format))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&githubHandle, "github", "", "GitHub handle (overrides config)")
	cmd.Flags().StringVar(&leetcodeHandle, "leetcode", "", "LeetCode handle (overrides config)")
	cmd.Flags().StringVar(&format, "format", formatText, "output format: text|json|yaml|svg")
	cmd.Flags().StringVar(&output, "out", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&useDemo, "demo", false, "use deterministic demo data instead of calling upstream APIs")

	return cmd
}

func writeDashboard(w io.Writer, d core.Dashboard, format string) error {
	switch format {
	case formatText:
		_, err := io.WriteString(w, render.Text(d))
		return err
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case formatSVG:
		svg, err := render.RenderSVG(d)
		if err != nil {
			return fmt.Errorf("render svg: %w", err)
		}
		_, err = w.Write(svg)
		return err
	default:
		return fmt.Errorf("unknown format %q (want text, json, yaml or svg)", format)
	}
}
