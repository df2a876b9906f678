package cmd

import (
	"context"
	"fmt"

	directoryRepo "fieldcal/database/repository/directory"
	fixtureRepo "fieldcal/database/repository/fixture"
	"fieldcal/models"
	"fieldcal/services/calendar"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// options are the flags shared by every view command.
type options struct {
	directory       string
	data            string
	date            string
	hideTeams       []string
	hideContractors []string
	hideKinds       []string
	asJSON          bool
	verbose         bool
}

// NewRootCmd builds the calview command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "calview",
		Short: "Render crew calendar views from fixture files",
		Long: `calview lays out month, week and day views offline from a team
directory file and a schedules/exclusions dataset, using the same
composition as the calendar service.`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.directory, "directory", "./config/directory.yaml", "team directory YAML file")
	flags.StringVar(&opts.data, "data", "./config/schedules.yaml", "schedules and exclusions YAML file")
	flags.StringVarP(&opts.date, "date", "d", "", "anchor date YYYY-MM-DD (default today)")
	flags.StringSliceVar(&opts.hideTeams, "hide-team", nil, "team IDs to hide")
	flags.StringSliceVar(&opts.hideContractors, "hide-contractor", nil, "contractor IDs to hide")
	flags.StringSliceVar(&opts.hideKinds, "hide-kind", nil, "schedule kinds to hide (construction, survey)")
	flags.BoolVar(&opts.asJSON, "json", false, "print the view as JSON")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log service activity to stderr")

	root.AddCommand(newMonthCmd(opts), newWeekCmd(opts), newDayCmd(opts))
	return root
}

// open wires a calendar service over the fixture files and starts a session
// with the requested filters applied.
func (o *options) open(ctx context.Context, mode calendar.ViewMode) (calendar.CalendarService, string, error) {
	dir, err := directoryRepo.NewYAMLDirectory(o.directory)
	if err != nil {
		return nil, "", err
	}
	ds, err := fixtureRepo.LoadDataset(o.data)
	if err != nil {
		return nil, "", err
	}

	logger := zap.NewNop()
	if o.verbose {
		if logger, err = zap.NewDevelopment(); err != nil {
			return nil, "", fmt.Errorf("failed to build logger: %w", err)
		}
	}

	svc := &calendar.DefaultCalendarService{
		Schedules:  fixtureRepo.NewScheduleRepo(ds.Schedules),
		Exclusions: fixtureRepo.NewExclusionRepo(ds.Exclusions),
		Directory:  dir,
		Sessions:   calendar.NewMemorySessionStore(),
		Logger:     logger,
	}

	sess, err := svc.StartSession(ctx, mode, o.date)
	if err != nil {
		return nil, "", err
	}
	for _, id := range o.hideContractors {
		if _, err := svc.ToggleContractor(ctx, sess.ID, id, false); err != nil {
			return nil, "", fmt.Errorf("contractor %s: %w", id, err)
		}
	}
	for _, id := range o.hideTeams {
		if _, err := svc.ToggleTeam(ctx, sess.ID, id, false); err != nil {
			return nil, "", fmt.Errorf("team %s: %w", id, err)
		}
	}
	for _, kind := range o.hideKinds {
		if _, err := svc.SetKindVisible(ctx, sess.ID, models.ScheduleKind(kind), false); err != nil {
			return nil, "", err
		}
	}
	return svc, sess.ID, nil
}
