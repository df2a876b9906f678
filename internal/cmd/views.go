package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"fieldcal/services/calendar"

	"github.com/spf13/cobra"
)

func newMonthCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "month",
		Short: "Show the six-week month grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, id, err := opts.open(cmd.Context(), calendar.ModeMonth)
			if err != nil {
				return err
			}
			view, err := svc.MonthView(cmd.Context(), id)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), view)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), renderMonth(view))
			return err
		},
	}
}

func newWeekCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "week",
		Short: "Show every visible team across the anchor's week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, id, err := opts.open(cmd.Context(), calendar.ModeWeek)
			if err != nil {
				return err
			}
			view, err := svc.WeekView(cmd.Context(), id)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), view)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), renderWeek(view))
			return err
		},
	}
}

func newDayCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "day",
		Short: "Show one column per visible team on the anchor date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, id, err := opts.open(cmd.Context(), calendar.ModeDay)
			if err != nil {
				return err
			}
			view, err := svc.DayView(cmd.Context(), id)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), view)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), renderDay(view))
			return err
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode view: %w", err)
	}
	return nil
}
