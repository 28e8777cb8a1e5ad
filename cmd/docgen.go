//go:build docgen

package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

var DocGenCommand = &cobra.Command{
	Use:    "docgen",
	Short:  "Generate documentation",
	Hidden: true,
}

var ManDocGenCommand = &cobra.Command{
	Use:   "man",
	Short: "Generate man pages",
	RunE: func(_ *cobra.Command, _ []string) error {
		hdr := &doc.GenManHeader{
			Title:   "TEMPCONV",
			Section: "1",
		}
		if err := os.MkdirAll("docs/man", 0750); err != nil {
			return err
		}
		return doc.GenManTree(RootCommand, hdr, "docs/man")
	},
}

var MarkdownDocGenCommand = &cobra.Command{
	Use:   "markdown",
	Short: "Generate markdown docs",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := os.MkdirAll("docs/md", 0750); err != nil {
			return err
		}
		return doc.GenMarkdownTree(RootCommand, "docs/md")
	},
}

func init() {
	DocGenCommand.AddCommand(ManDocGenCommand, MarkdownDocGenCommand)
	RootCommand.AddCommand(DocGenCommand)
}
