// Command travelctl drives the travel backend from the terminal: user
// accounts, the catalog, bookings, feedback, images and the admin tasks of
// the dashboard.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/wanderlust/travel-client/client"
	"github.com/wanderlust/travel-client/client/fallback"
	"github.com/wanderlust/travel-client/internal/config"
	"github.com/wanderlust/travel-client/internal/logger"
	"github.com/wanderlust/travel-client/session"
)

const commandTimeout = 30 * time.Second

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// app carries the flag values and the client shared by every sub-command.
type app struct {
	apiURL         string
	debug          bool
	sessionBackend string
	sessionPath    string
	fallbackMode   string
	jsonOut        bool

	cfg    *config.Config
	client *client.Client
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "travelctl",
		Short:         "travelctl manages accounts, tours and bookings on the travel backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.client == nil {
				return nil
			}
			return a.client.Close()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.apiURL, "api-url", "", "Base URL of the travel backend (env TRAVEL_API_BASE_URL)")
	pf.BoolVarP(&a.debug, "debug", "d", false, "Enable verbose debug output")
	pf.StringVar(&a.sessionBackend, "session-backend", "", "Session store: file, sqlite or memory (env TRAVEL_SESSION_BACKEND)")
	pf.StringVar(&a.sessionPath, "session-path", "", "Session store location (env TRAVEL_SESSION_PATH)")
	pf.StringVar(&a.fallbackMode, "fallback", "", "Demo data policy: auto, off or demo (env TRAVEL_FALLBACK_MODE)")
	pf.BoolVar(&a.jsonOut, "json", false, "Print JSON instead of tables")

	rootCmd.AddCommand(newLoginCmd(a))
	rootCmd.AddCommand(newRegisterCmd(a))
	rootCmd.AddCommand(newLogoutCmd(a))
	rootCmd.AddCommand(newSessionCmd(a))
	rootCmd.AddCommand(newPackagesCmd(a))
	rootCmd.AddCommand(newTravelsCmd(a))
	rootCmd.AddCommand(newHotelsCmd(a))
	rootCmd.AddCommand(newBookingsCmd(a))
	rootCmd.AddCommand(newFeedbackCmd(a))
	rootCmd.AddCommand(newImagesCmd(a))
	rootCmd.AddCommand(newAdminCmd(a))

	return rootCmd
}

// setup resolves configuration (env, then flags), installs the logger and
// builds the client.
func (a *app) setup(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.New()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("api-url") {
		cfg.APIBaseURL = a.apiURL
	}
	if flags.Changed("debug") {
		cfg.Debug = a.debug
	}
	if flags.Changed("fallback") {
		cfg.FallbackMode = a.fallbackMode
	}
	if flags.Changed("session-backend") {
		cfg.SessionBackend = a.sessionBackend
		cfg.SessionPath = ""
	}
	if flags.Changed("session-path") {
		cfg.SessionPath = a.sessionPath
	}
	if err := cfg.ResolveDefaults(); err != nil {
		return err
	}
	a.cfg = cfg

	log.Logger = logger.NewConsole(cfg.Debug, cfg.LogFile)
	log.Debug().Str("api_base_url", cfg.APIBaseURL).Msg("client configured")

	store, err := session.Open(cfg.SessionBackend, cfg.SessionPath)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	mode, err := fallback.ParseMode(cfg.FallbackMode)
	if err != nil {
		return err
	}

	opts := []client.Option{
		client.WithSessionStore(store),
		client.WithFallbackMode(mode),
		client.WithHTTPTimeout(cfg.HTTPTimeout),
		client.WithReadRetries(cfg.ReadRetries),
		client.WithDebugLogging(cfg.Debug),
	}
	if cfg.ImageBaseURL != "" {
		opts = append(opts, client.WithImageBaseURL(cfg.ImageBaseURL))
	}
	if cfg.BreakerFailures > 0 {
		opts = append(opts, client.WithCircuitBreaker(cfg.BreakerFailures, cfg.BreakerOpenFor))
	}
	c, err := client.New(cfg.APIBaseURL, opts...)
	if err != nil {
		if closer, ok := store.(interface{ Close() error }); ok {
			_ = closer.Close()
		}
		return err
	}
	a.client = c
	return nil
}

func (a *app) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), commandTimeout)
}
