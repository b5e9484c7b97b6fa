package main

import (
	"fmt"
	"github.com/spf13/cobra"
)

func (app *application) mapCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "map",
		Short:   "Print the mansion layout with its clues",
		GroupID: "game",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			variant, err := app.variant()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), variant.Mansion().String())
			return err
		},
	}
}
