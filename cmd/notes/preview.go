package main

import (
	"fmt"
	"os"

	"github.com/b-hayes/notes/internal/core"
	"github.com/b-hayes/notes/internal/preview"
	"github.com/spf13/cobra"
)

var watch bool
var outputPath string

func init() {
	previewCmd.Flags().StringVarP(&engineName, "engine", "e", "", "Markdown engine (default is the configured engine)")
	previewCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Render again every time the file changes")
	previewCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the HTML page to a file instead of the standard output")
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview FILE",
	Short: "Preview a note",
	Long:  `Render a note as an HTML page, optionally watching the file to refresh the page after every change.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		previewConfig := core.CurrentConfig().ConfigFile.Preview
		engine, err := lookupEngine(engineName)
		exitOnError(err)
		delay, err := core.CurrentConfig().ConfigFile.DebounceDelay()
		exitOnError(err)

		path := args[0]
		debouncer := preview.NewDebouncer(delay, engine, previewConfig.Placeholder, func(result preview.Result) {
			if err := writePreview(path, result); err != nil {
				core.CurrentLogger().Warnf("Unable to write preview: %v", err)
			}
		})

		if !watch {
			content, err := os.ReadFile(path)
			exitOnError(err)
			debouncer.RenderNow(string(content))
			return
		}

		if outputPath != "" {
			fmt.Printf("Watching %s. Open %s to see the preview.\n", path, outputPath)
		}
		exitOnError(preview.Watch(cmd.Context(), path, debouncer))
	},
}

func writePreview(path string, result preview.Result) error {
	if outputPath == "" {
		return preview.WritePage(os.Stdout, path, result.HTML)
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	if err := preview.WritePage(f, path, result.HTML); err != nil {
		f.Close()
		return err
	}
	core.CurrentLogger().Infof("Refreshed %s (generation %d)", outputPath, result.Generation)
	return f.Close()
}
