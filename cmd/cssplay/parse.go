package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssplay/internal/preview"
	"github.com/yacobolo/cssplay/internal/rules"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [rule-text|-]",
		Short: "Parse declaration text into a style map",
		Long: `Parse CSS declaration text ("font-size: 20px; z-index: 10") into a style map
keyed by camelCase property names. All-digit values become numbers.
Reads standard input when the argument is "-" or missing.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := ruleText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString("format")
			return writeStyleMap(cmd.OutOrStdout(), rules.Parse(text), format)
		},
	}
	cmd.Flags().String("format", "json", "Output format: json|css|inline")
	return cmd
}

func ruleText(stdin io.Reader, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read rule text: %w", err)
	}
	return string(data), nil
}

func writeStyleMap(w io.Writer, m rules.StyleMap, format string) error {
	switch strings.ToLower(format) {
	case "json":
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return fmt.Errorf("encode style map: %w", err)
		}
		fmt.Fprintln(w, string(data))
	case "css":
		fmt.Fprintln(w, m.CSS())
	case "inline":
		fmt.Fprintln(w, preview.InlineStyle(m))
	default:
		return fmt.Errorf("unknown format %q (want json, css or inline)", format)
	}
	return nil
}
