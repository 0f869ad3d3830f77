package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/quillback/scanledger/internal/categorize"
	"github.com/quillback/scanledger/internal/cli"
	"github.com/quillback/scanledger/internal/common"
	"github.com/quillback/scanledger/internal/model"
	"github.com/quillback/scanledger/internal/parser"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <directory>",
		Short: "Batch-import OCR transcripts",
		Long:  `Parse and save every .txt OCR transcript in a directory. Per-file failures are logged and skipped.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := expandPath(args[0])

			files, err := transcriptFiles(dir)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No .txt transcripts found."))
				return nil
			}

			store, err := initStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			bar := progressbar.NewOptions(len(files),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("Importing receipts..."),
			)

			p := parser.New()
			imported := 0
			for _, file := range files {
				if err := cmd.Context().Err(); err != nil {
					return err
				}

				data, err := os.ReadFile(file)
				if err != nil {
					common.LogError(err, "failed to read transcript", common.Fields{"file": file})
					_ = bar.Add(1)
					continue
				}

				parsed := p.Parse(string(data))
				category := categorize.Categorize(parsed.StoreName, parsed.Items)
				receipt := model.FromParsed(parsed, category, string(data))

				if err := store.SaveReceipt(cmd.Context(), &receipt); err != nil {
					common.LogError(err, "failed to save receipt", common.Fields{"file": file})
					_ = bar.Add(1)
					continue
				}

				imported++
				_ = bar.Add(1)
			}

			fmt.Println()
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Imported %d of %d transcripts", imported, len(files))))
			return nil
		},
	}
}

func transcriptFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}
