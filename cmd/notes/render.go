package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/b-hayes/notes/internal/core"
	"github.com/b-hayes/notes/internal/preview"
	"github.com/b-hayes/notes/pkg/markdown"
	"github.com/b-hayes/notes/pkg/text"
	"github.com/spf13/cobra"
)

var engineName string
var fullPage bool

func init() {
	renderCmd.Flags().StringVarP(&engineName, "engine", "e", "", "Markdown engine (default is the configured engine)")
	renderCmd.Flags().BoolVarP(&fullPage, "page", "", false, "Output a standalone HTML page")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render [FILE]",
	Short: "Convert Markdown to HTML",
	Long:  `Convert a Markdown file, or the standard input when no file is given, to HTML.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := lookupEngine(engineName)
		exitOnError(err)

		title := "stdin"
		var content []byte
		if len(args) == 0 {
			content, err = io.ReadAll(os.Stdin)
		} else {
			title = text.TrimExtension(filepath.Base(args[0]))
			content, err = os.ReadFile(args[0])
		}
		exitOnError(err)

		html := engine(string(content))
		if !fullPage {
			fmt.Println(html)
			return
		}
		exitOnError(preview.WritePage(os.Stdout, title, html))
	},
}

// lookupEngine returns the named engine, or the configured one when the name is empty.
func lookupEngine(name string) (markdown.Engine, error) {
	if name == "" {
		name = core.CurrentConfig().ConfigFile.Preview.Engine
	}
	return markdown.LookupEngine(name)
}
