package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"smartpid/internal/domain/geometry"
	"smartpid/internal/domain/mandatory"
	"smartpid/internal/domain/matching"
	"smartpid/internal/infrastructure/spreadsheet"
)

// classification результат classify для одного текста
type classification struct {
	Text        string `json:"text"`
	IsMandatory bool   `json:"isMandatory"`
}

func newClassifyCmd(out printer) *cobra.Command {
	var patterns []string

	cmd := &cobra.Command{
		Use:   "classify TAG...",
		Short: "Check whether tags are mandatory",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			classifier, err := mandatory.NewClassifier(patterns...)
			if err != nil {
				return fmt.Errorf("invalid pattern: %w", err)
			}

			results := make([]classification, 0, len(args))
			for _, text := range args {
				results = append(results, classification{Text: text, IsMandatory: classifier.IsMandatory(text)})
			}
			return out(cmd, results)
		},
	}
	cmd.Flags().StringArrayVar(&patterns, "pattern", nil, "Extra mandatory tag pattern (repeatable)")
	return cmd
}

func newMatchCmd(out printer) *cobra.Command {
	var itemsPath, detectionPath string

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match spreadsheet items against detected text",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var items []matching.SpreadsheetItem
			if err := readJSONFile(itemsPath, &items); err != nil {
				return err
			}

			var detection *matching.DetectionResult
			if detectionPath != "" {
				detection = &matching.DetectionResult{}
				if err := readJSONFile(detectionPath, detection); err != nil {
					return err
				}
			}
			return out(cmd, matching.Match(items, detection))
		},
	}
	cmd.Flags().StringVar(&itemsPath, "items", "", "JSON file with spreadsheet items")
	cmd.Flags().StringVar(&detectionPath, "detection", "", "JSON file with detection result")
	_ = cmd.MarkFlagRequired("items")
	return cmd
}

func newMapCmd(out printer) *cobra.Command {
	var (
		box                 geometry.BoundingBox
		docWidth, docHeight float64
		zoom                float64
	)

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Convert a normalized bounding box to viewer pixels",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return out(cmd, geometry.MapToViewer(&box, docWidth, docHeight, zoom))
		},
	}
	flags := cmd.Flags()
	flags.Float64Var(&box.X, "x", 0, "Normalized left edge")
	flags.Float64Var(&box.Y, "y", 0, "Normalized top edge")
	flags.Float64Var(&box.Width, "width", 0, "Normalized width")
	flags.Float64Var(&box.Height, "height", 0, "Normalized height")
	flags.Float64Var(&docWidth, "doc-width", 0, "Image width in pixels")
	flags.Float64Var(&docHeight, "doc-height", 0, "Image height in pixels")
	flags.Float64Var(&zoom, "zoom", 1, "Viewer zoom")
	return cmd
}

func newImportCmd(out printer) *cobra.Command {
	var patterns []string

	cmd := &cobra.Command{
		Use:   "import-xlsx FILE",
		Short: "Parse item sheets from an xlsx workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			classifier, err := mandatory.NewClassifier(patterns...)
			if err != nil {
				return fmt.Errorf("invalid pattern: %w", err)
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("file not found: %s", args[0])
			}
			defer f.Close()

			sheets, err := spreadsheet.ParseWorkbook(f, spreadsheet.ImportOptions{Classifier: classifier})
			if err != nil {
				return err
			}
			return out(cmd, sheets)
		},
	}
	cmd.Flags().StringArrayVar(&patterns, "pattern", nil, "Extra mandatory tag pattern (repeatable)")
	return cmd
}
