package main

import (
	"fmt"
	"strings"

	"github.com/b-hayes/notes/internal/core"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(journalCmd)
}

var journalCmd = &cobra.Command{
	Use:   "journal [TEXT...]",
	Short: "Write in today's journal",
	Long:  `Add a timestamped entry to today's journal, or print the journal when no text is given.`,
	Run: func(cmd *cobra.Command, args []string) {
		entry, err := core.CurrentCollection().Journal(strings.Join(args, " "))
		exitOnError(err)

		if len(args) > 0 {
			fmt.Printf("Added entry at %s to %s\n", entry.Time, entry.Path)
			return
		}
		if !entry.Exists {
			fmt.Printf("Nothing written today (%s)\n", entry.Path)
			return
		}
		fmt.Print(entry.Content)
	},
}
