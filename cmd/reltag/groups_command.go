package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func newGroupsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List the release groups recognized in bracket tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := ctx.classifier()
			if err != nil {
				return err
			}
			names := c.Groups().Names()
			return writeOutput(cmd, ctx, names, func() string {
				return strings.Join(names, "\n")
			})
		},
	}
}
