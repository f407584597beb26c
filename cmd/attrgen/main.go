// Command attrgen generates the attribute description workbook from a
// tabular data file without going through the web UI.
//
//	attrgen --number 616 --category "Ручной" -o 616_атрибуты.xlsx data.xlsx
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aiaiai-hi/Report-App/adapters/inference"
	"github.com/aiaiai-hi/Report-App/adapters/tabular"
	"github.com/aiaiai-hi/Report-App/adapters/workbook"
	"github.com/aiaiai-hi/Report-App/domain/attribute"
	apperrors "github.com/aiaiai-hi/Report-App/internal/errors"
)

var (
	reportNumber string
	categoryName string
	outputPath   string
)

var rootCmd = &cobra.Command{
	Use:   "attrgen [file]",
	Short: "Generate an attribute description workbook from report data",
	Long: "Reads a tabular file (xlsx, xls or csv), infers a base type for every column\n" +
		"and writes the attribute description workbook.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args[0])
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVarP(&reportNumber, "number", "n", "", "report number used in attribute codes (required)")
	rootCmd.Flags().StringVarP(&categoryName, "category", "c", string(attribute.CategoryManual), "report formation type")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output path (default <number>_атрибуты.xlsx)")
	rootCmd.MarkFlagRequired("number")
}

func run(inputPath string) error {
	category, err := attribute.ParseCategory(categoryName)
	if err != nil {
		return err
	}
	if !tabular.IsSupported(inputPath) {
		return apperrors.ValidationError("неподдерживаемый формат файла: " + inputPath)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return apperrors.LoadError("не удалось прочитать файл "+inputPath, err)
	}
	ds, err := tabular.ReadBytes(data, inputPath)
	if err != nil {
		return err
	}

	detector := inference.New(inference.DefaultConfig())
	records, err := attribute.Transform(ds, category, reportNumber, detector)
	if err != nil {
		return err
	}
	payload, err := workbook.WriteAttributes(records)
	if err != nil {
		return err
	}

	out := outputPath
	if out == "" {
		out = fmt.Sprintf("%s_атрибуты.xlsx", reportNumber)
	}
	if err := os.WriteFile(out, payload, 0o644); err != nil {
		return apperrors.SaveError("не удалось записать "+out, err)
	}
	fmt.Printf("Сформировано атрибутов: %d -> %s\n", len(records), out)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
