package main

import (
	"fmt"
	"io"
	"os"

	"github.com/quillback/scanledger/internal/categorize"
	"github.com/quillback/scanledger/internal/cli"
	"github.com/quillback/scanledger/internal/extract"
	"github.com/quillback/scanledger/internal/model"
	"github.com/quillback/scanledger/internal/parser"
	"github.com/spf13/cobra"
)

func scanCmd() *cobra.Command {
	var (
		save       bool
		structured bool
		notes      string
	)

	cmd := &cobra.Command{
		Use:   "scan [file]",
		Short: "Parse a receipt transcript",
		Long: `Parse raw OCR text (or, with --structured, a JSON guess from an external
extraction service) into a categorized receipt. Reads from stdin when no
file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}

			var parsed model.ParsedReceipt
			if structured {
				parsed = extract.NewAdapter().NormalizeJSON(input)
			} else {
				parsed = parser.New().Parse(string(input))
			}

			category := categorize.Categorize(parsed.StoreName, parsed.Items)
			printParsed(parsed, category)

			if !save {
				return nil
			}

			store, err := initStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			rawText := ""
			if !structured {
				rawText = string(input)
			}
			receipt := model.FromParsed(parsed, category, rawText)
			receipt.Notes = notes

			if err := store.SaveReceipt(cmd.Context(), &receipt); err != nil {
				return fmt.Errorf("failed to save receipt: %w", err)
			}
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Saved receipt %s", receipt.ID)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "persist the parsed receipt")
	cmd.Flags().BoolVar(&structured, "structured", false, "input is a JSON guess from an external extractor")
	cmd.Flags().StringVar(&notes, "notes", "", "freeform notes to store with the receipt")

	return cmd
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return data, nil
}

func printParsed(parsed model.ParsedReceipt, category model.Category) {
	fmt.Println(cli.TitleStyle.Render(parsed.StoreName))
	fmt.Printf("%s  %s\n", parsed.Date.Format("2006-01-02"), cli.BoldStyle.Render(string(category)))

	for _, item := range parsed.Items {
		fmt.Printf("  %-40s %8.2f\n", item.Name, item.Price)
	}
	fmt.Printf("  %-40s %8.2f\n", cli.BoldStyle.Render("Total"), parsed.Total)
}
