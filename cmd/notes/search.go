package main

import (
	"fmt"
	"strings"

	"github.com/b-hayes/notes/internal/core"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listOnly bool

func init() {
	searchCmd.Flags().BoolVarP(&listOnly, "list", "l", false, "Only print the paths of matching notes")
	searchCmd.Flags().BoolVarP(&outputYAML, "yaml", "", false, "Output results in YAML")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search TERM...",
	Short: "Search notes",
	Long:  `Search lines of notes containing the given term.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		result, err := core.CurrentCollection().Search(cmd.Context(), strings.Join(args, " "), listOnly)
		exitOnError(err)
		if outputYAML {
			exitOnError(printYAML(result))
			return
		}
		fmt.Print(FormatSearchResult(result))
	},
}

var (
	pathColor = color.New(color.FgMagenta)
	lineColor = color.New(color.FgGreen)
)

// FormatSearchResult prints matches the way grep does.
func FormatSearchResult(result *core.SearchResult) string {
	var sb strings.Builder
	for _, file := range result.Files {
		sb.WriteString(pathColor.Sprint(file))
		sb.WriteString("\n")
	}
	for _, match := range result.Matches {
		fmt.Fprintf(&sb, "%s:%s: %s\n", pathColor.Sprint(match.Path), lineColor.Sprint(match.LineNum), strings.TrimSpace(match.Text))
	}
	return sb.String()
}
