package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wanderlust/travel-client/client"
	"github.com/wanderlust/travel-client/session"
)

func newLoginCmd(a *app) *cobra.Command {
	var creds client.Credentials
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and keep the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Validate(creds); err != nil {
				return err
			}
			ctx, cancel := a.context(cmd)
			defer cancel()
			res := a.client.Auth().Login(ctx, creds)
			if err := check(res); err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(cmd, res.Data)
			}
			return a.printMessage(cmd, fmt.Sprintf("Logged in as %s", creds.Email))
		},
	}
	cmd.Flags().StringVar(&creds.Email, "email", "", "Account email (required)")
	cmd.Flags().StringVar(&creds.Password, "password", "", "Account password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCmd(a *app) *cobra.Command {
	var req client.RegisterRequest
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a user account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("confirm-password") {
				req.ConfirmPassword = req.Password
			}
			if err := client.Validate(req); err != nil {
				return err
			}
			ctx, cancel := a.context(cmd)
			defer cancel()
			res := a.client.Auth().Register(ctx, req)
			if err := check(res); err != nil {
				return err
			}
			return a.printMessage(cmd, res.Message)
		},
	}
	f := cmd.Flags()
	f.StringVar(&req.Name, "name", "", "Full name (required)")
	f.IntVar(&req.Age, "age", 0, "Age, 18 to 100 (required)")
	f.StringVar(&req.Mobile, "mobile", "", "10-digit mobile number (required)")
	f.StringVar(&req.Email, "email", "", "Email (required)")
	f.StringVar(&req.Password, "password", "", "Password, at least 6 characters (required)")
	f.StringVar(&req.ConfirmPassword, "confirm-password", "", "Password confirmation (defaults to --password)")
	for _, name := range []string{"name", "age", "mobile", "email", "password"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and forget the token",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()
			a.client.Auth().Logout(ctx)
			return a.printMessage(cmd, "Logged out")
		},
	}
}

type sessionStatus struct {
	LoggedIn   bool       `json:"loggedIn"`
	Subject    string     `json:"subject,omitempty"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
	Expired    bool       `json:"expired"`
	Admin      bool       `json:"admin"`
	APIBaseURL string     `json:"apiBaseUrl"`
	Fallback   string     `json:"fallback"`
}

func newSessionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Show the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := sessionStatus{
				LoggedIn:   a.client.Auth().LoggedIn(),
				Admin:      a.client.Admin().IsAdmin(),
				APIBaseURL: a.client.BaseURL(),
				Fallback:   string(a.client.FallbackMode()),
			}
			if st.LoggedIn {
				// display only; the backend decides whether the token is valid
				info, err := session.DescribeToken(a.client.Token())
				if err == nil {
					st.Subject = info.Subject
					st.ExpiresAt = info.ExpiresAt
					st.Expired = info.Expired(time.Now())
				}
			}
			if a.jsonOut {
				return a.printJSON(cmd, st)
			}
			rows := [][]string{
				{"api", st.APIBaseURL},
				{"fallback", st.Fallback},
				{"logged in", fmt.Sprint(st.LoggedIn)},
				{"admin key", fmt.Sprint(st.Admin)},
			}
			if st.Subject != "" {
				rows = append(rows, []string{"user", st.Subject})
			}
			if st.ExpiresAt != nil {
				rows = append(rows, []string{"expires", st.ExpiresAt.Format(time.RFC3339)})
				rows = append(rows, []string{"expired", fmt.Sprint(st.Expired)})
			}
			return writeTable(cmd.OutOrStdout(), []string{"FIELD", "VALUE"}, rows)
		},
	}
}
