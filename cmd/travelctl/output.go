package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/wanderlust/travel-client/client"
)

// check turns a failed Result into a command error.
func check[T any](res client.Result[T]) error {
	if res.Success {
		return nil
	}
	if res.Err != nil {
		return fmt.Errorf("%s: %w", res.Message, res.Err)
	}
	return errors.New(res.Message)
}

// noteFallback warns that res came from the bundled demo data.
func noteFallback[T any](res client.Result[T], resource string) {
	if res.Fallback {
		log.Warn().Str("resource", resource).Msg("backend unavailable; showing demo data")
	}
}

func (a *app) printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printTable writes header and rows as aligned columns, or v as JSON when
// --json is set.
func (a *app) printTable(cmd *cobra.Command, v any, header []string, rows [][]string) error {
	if a.jsonOut {
		return a.printJSON(cmd, v)
	}
	return writeTable(cmd.OutOrStdout(), header, rows)
}

func writeTable(w io.Writer, header []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	return tw.Flush()
}

// printMessage prints msg, or {"message": msg} with --json.
func (a *app) printMessage(cmd *cobra.Command, msg string) error {
	if a.jsonOut {
		return a.printJSON(cmd, map[string]string{"message": msg})
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), msg)
	return err
}

func money(v float64) string { return fmt.Sprintf("%.2f", v) }

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
