package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vcrobe/siteheader/header"
)

func newPageIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "page-id PATH...",
		Short: "Print the nav page id each URL path maps to",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", p, header.PageID(p))
			}
		},
	}
}
