package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/b-hayes/notes/internal/core"
	"github.com/b-hayes/notes/pkg/markdown"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var title string
var content string
var showDiff bool
var plainText bool

func init() {
	newCmd.Flags().StringVarP(&title, "title", "t", "", "Title of the note, also used to name the file when PATH is a directory")
	newCmd.Flags().StringVarP(&content, "content", "c", "", "Initial content")
	writeCmd.Flags().StringVarP(&content, "content", "c", "", "New content (default is the standard input)")
	writeCmd.Flags().BoolVarP(&showDiff, "diff", "", false, "Show changes")
	appendCmd.Flags().StringVarP(&content, "content", "c", "", "Content to add (default is the standard input)")
	catCmd.Flags().BoolVarP(&plainText, "text", "", false, "Print without Markdown syntax")
	rootCmd.AddCommand(newCmd, writeCmd, appendCmd, catCmd, rmCmd, mvCmd, mkdirCmd)
}

var newCmd = &cobra.Command{
	Use:   "new PATH",
	Short: "Create a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		notePath := args[0]
		body := content
		if title != "" {
			if strings.HasSuffix(notePath, "/") {
				notePath = path.Join(notePath, markdown.Slug(title))
			}
			body = fmt.Sprintf("# %s\n\n%s", title, content)
		}

		result, err := core.CurrentCollection().New(notePath, body)
		if errors.Is(err, core.ErrNoteExists) {
			fmt.Fprintf(os.Stderr, "Note %s already exists. Use \"notes write\" to replace it.\n", notePath)
			os.Exit(1)
		}
		exitOnError(err)
		fmt.Println(result.Path)
	},
}

var writeCmd = &cobra.Command{
	Use:   "write PATH",
	Short: "Replace the content of a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		body, err := contentOrStdin(cmd)
		exitOnError(err)
		result, err := core.CurrentCollection().Write(args[0], body)
		exitOnError(err)
		if showDiff {
			printDiff(result.Patch)
			return
		}
		fmt.Println(result.Path)
	},
}

var appendCmd = &cobra.Command{
	Use:   "append PATH",
	Short: "Add content at the end of a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		body, err := contentOrStdin(cmd)
		exitOnError(err)
		result, err := core.CurrentCollection().Append(args[0], body)
		exitOnError(err)
		fmt.Println(result.Path)
	},
}

var catCmd = &cobra.Command{
	Use:   "cat PATH",
	Short: "Print a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		note, err := core.CurrentCollection().Read(args[0])
		exitOnError(err)
		if plainText {
			fmt.Println(markdown.ToText(note.Content))
			return
		}
		fmt.Print(note.Content)
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm PATH",
	Short: "Delete a note or a directory",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deleted, err := core.CurrentCollection().Delete(args[0])
		exitOnError(err)
		fmt.Printf("Deleted %s\n", deleted)
	},
}

var mvCmd = &cobra.Command{
	Use:   "mv FROM TO",
	Short: "Move a note or a directory",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		result, err := core.CurrentCollection().Move(args[0], args[1])
		exitOnError(err)
		fmt.Printf("Moved %s to %s\n", result.From, result.To)
	},
}

var mkdirCmd = &cobra.Command{
	Use:   "mkdir PATH",
	Short: "Create a directory",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		created, err := core.CurrentCollection().Mkdir(args[0])
		exitOnError(err)
		fmt.Println(created)
	},
}

// contentOrStdin returns the --content flag when set, the standard input otherwise.
func contentOrStdin(cmd *cobra.Command) (string, error) {
	if cmd.Flags().Changed("content") {
		return content, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func printDiff(diff string) {
	for _, line := range strings.Split(diff, "\n") {
		if strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---") {
			color.Red(line)
		} else if strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++") {
			color.Green(line)
		} else {
			fmt.Println(line)
		}
	}
}
