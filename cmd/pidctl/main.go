// Command pidctl офлайн-инструменты Smart P&ID: классификация тегов,
// сопоставление позиций, пересчет координат и разбор xlsx.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var pretty bool

	root := &cobra.Command{
		Use:           "pidctl",
		Short:         "Smart P&ID command line tools",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	out := func(cmd *cobra.Command, v any) error {
		return writeJSON(cmd.OutOrStdout(), v, pretty)
	}

	root.AddCommand(
		newClassifyCmd(out),
		newMatchCmd(out),
		newMapCmd(out),
		newImportCmd(out),
	)
	return root
}

// printer пишет результат команды
type printer func(cmd *cobra.Command, v any) error

func writeJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return nil
}

func readJSONFile(path string, dst any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
