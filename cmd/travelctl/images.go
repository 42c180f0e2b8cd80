package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newImagesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "images", Short: "Uploaded images (admin)"}

	cmd.AddCommand(&cobra.Command{
		Use:   "upload <file>",
		Short: "Upload an image and print its URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			ctx, cancel := a.context(cmd)
			defer cancel()
			res := a.client.Images().Upload(ctx, filepath.Base(args[0]), f)
			if err := check(res); err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(cmd, map[string]string{"imageUrl": res.Data})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Data)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <filename>",
		Short: "Delete an uploaded image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()
			res := a.client.Images().Delete(ctx, args[0])
			if err := check(res); err != nil {
				return err
			}
			return a.printMessage(cmd, res.Message)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List image URLs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()
			res := a.client.Images().List(ctx)
			if err := check(res); err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(cmd, res.Data)
			}
			for _, u := range res.Data {
				fmt.Fprintln(cmd.OutOrStdout(), a.client.ImageURL(u))
			}
			return nil
		},
	})
	return cmd
}
