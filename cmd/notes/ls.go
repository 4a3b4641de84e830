package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/b-hayes/notes/internal/core"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var recursive bool
var outputYAML bool

func init() {
	lsCmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "List subdirectories recursively")
	lsCmd.Flags().BoolVarP(&outputYAML, "yaml", "", false, "Output entries in YAML")
	treeCmd.Flags().BoolVarP(&outputYAML, "yaml", "", false, "Output entries in YAML")
	rootCmd.AddCommand(lsCmd, treeCmd)
}

var lsCmd = &cobra.Command{
	Use:   "ls [PATH]",
	Short: "List notes",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := ""
		if len(args) > 0 {
			dir = args[0]
		}
		entries, err := core.CurrentCollection().List(dir, recursive)
		exitOnError(err)
		if outputYAML {
			exitOnError(printYAML(entries))
			return
		}
		fmt.Print(FormatList(entries))
	},
}

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Show the folder structure",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		tree, err := core.CurrentCollection().Tree()
		exitOnError(err)
		if outputYAML {
			exitOnError(printYAML(tree))
			return
		}
		fmt.Print(FormatTree(tree))
	},
}

func printYAML(value any) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(value)
}

var dirColor = color.New(color.FgBlue, color.Bold)

func entryName(entry *core.Entry, name string) string {
	if entry.IsDir() {
		return dirColor.Sprint(name + "/")
	}
	return name
}

// FormatList prints entries returned by a listing, one per line.
// Recursive listings are drawn as a tree using the indentation level of each entry.
func FormatList(entries []*core.Entry) string {
	var sb strings.Builder
	// Whether the last entry seen at each level was the last child
	var lastAt []bool
	for _, entry := range entries {
		level := entry.IndentLevel
		if len(lastAt) <= level {
			lastAt = append(lastAt, make([]bool, level+1-len(lastAt))...)
		}
		lastAt[level] = entry.IsLastChild

		for i := 1; i < level; i++ {
			if lastAt[i] {
				sb.WriteString("    ")
			} else {
				sb.WriteString("│   ")
			}
		}
		if level > 0 {
			sb.WriteString(connector(entry.IsLastChild))
		}
		name := entry.Name
		if level == 0 {
			name = entry.Path
		}
		sb.WriteString(entryName(entry, name))
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatTree prints the folder structure with box-drawing characters.
func FormatTree(entries []*core.Entry) string {
	var sb strings.Builder
	for _, entry := range entries {
		sb.WriteString(entryName(entry, entry.Name))
		sb.WriteString("\n")
		formatChildren(&sb, entry.Children, "")
	}
	return sb.String()
}

func formatChildren(sb *strings.Builder, children []*core.Entry, prefix string) {
	for i, child := range children {
		last := i == len(children)-1
		sb.WriteString(prefix)
		sb.WriteString(connector(last))
		sb.WriteString(entryName(child, child.Name))
		sb.WriteString("\n")
		if last {
			formatChildren(sb, child.Children, prefix+"    ")
		} else {
			formatChildren(sb, child.Children, prefix+"│   ")
		}
	}
}

func connector(last bool) string {
	if last {
		return "└── "
	}
	return "├── "
}
