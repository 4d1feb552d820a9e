package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeYAML encodes v as a YAML document to the command's stdout.
func writeYAML(cmd *cobra.Command, v any) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// writeOutput renders v in the selected format. renderText is used for table
// output and should print everything a human needs.
func writeOutput(cmd *cobra.Command, ctx *commandContext, v any, renderText func() string) error {
	format, err := ctx.outputFormat()
	if err != nil {
		return err
	}
	switch format {
	case outputJSON:
		return writeJSON(cmd, v)
	case outputYAML:
		return writeYAML(cmd, v)
	default:
		_, err := fmt.Fprintln(cmd.OutOrStdout(), renderText())
		return err
	}
}

// writeJSONLine writes v as a single compact JSON line, for streaming output.
func writeJSONLine(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}
