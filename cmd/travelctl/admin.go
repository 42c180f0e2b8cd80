package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wanderlust/travel-client/client"
	"github.com/wanderlust/travel-client/client/fallback"
)

func newAdminCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "admin", Short: "Admin dashboard tasks"}

	var creds client.AdminCredentials
	login := &cobra.Command{
		Use:   "login",
		Short: "Verify admin credentials and keep the admin key",
		RunE: func(cmd *cobra.Command, args []string) error {
			res := a.client.Admin().VerifyAdmin(creds)
			if err := check(res); err != nil {
				return err
			}
			return a.printMessage(cmd, res.Message)
		},
	}
	f := login.Flags()
	f.StringVar(&creds.Username, "username", "", "Admin user name (required)")
	f.StringVar(&creds.Password, "password", "", "Admin password (required)")
	f.StringVar(&creds.AuthKey, "auth-key", "", "Admin key (required)")
	for _, name := range []string{"username", "password", "auth-key"} {
		_ = login.MarkFlagRequired(name)
	}
	cmd.AddCommand(login)

	cmd.AddCommand(&cobra.Command{
		Use:   "logout",
		Short: "Forget the admin key",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.Admin().Logout(); err != nil {
				return err
			}
			return a.printMessage(cmd, "Admin logged out")
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show whether an admin key is held",
		RunE: func(cmd *cobra.Command, args []string) error {
			admin := a.client.Admin().IsAdmin()
			if a.jsonOut {
				return a.printJSON(cmd, map[string]bool{"admin": admin})
			}
			if admin {
				return a.printMessage(cmd, "Admin key present")
			}
			return a.printMessage(cmd, "No admin key; run travelctl admin login")
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Create the bundled demo records on the backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := fallback.Demo()
			if err != nil {
				return err
			}
			ctx, cancel := a.context(cmd)
			defer cancel()
			res := a.client.Admin().Seed(ctx, ds)
			if a.jsonOut {
				if err := a.printJSON(cmd, res.Data); err != nil {
					return err
				}
			} else {
				r := res.Data
				fmt.Fprintf(cmd.OutOrStdout(), "%s: created %d, failed %d, skipped %d\n",
					res.Message, r.Created, r.Failed, r.Skipped)
				if len(r.Errors) > 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "  "+strings.Join(r.Errors, "\n  "))
				}
			}
			return check(res)
		},
	})
	return cmd
}
