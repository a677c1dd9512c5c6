package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hydrotrack/core/internal/domain/entities"
	"github.com/hydrotrack/core/internal/ports"
)

// NewTimelineCommand prints a plant's milestones and progress
func NewTimelineCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "timeline <plant-id>",
		Short: "Show a plant's lifecycle timeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				plant, err := a.services.Garden.GetPlant(ctx, args[0])
				if err != nil {
					return err
				}
				summary, err := a.services.Garden.PlantTimeline(ctx, args[0])
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s %s (%s)\n", plant.Species, plant.Variety, plant.Status)

				w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				for _, m := range summary.Milestones {
					fmt.Fprintf(w, "%s\t%s\t%s\n", m.Date, m.Name, m.Source)
				}
				if err := w.Flush(); err != nil {
					return err
				}

				fmt.Fprintf(out, "Progress: %.0f%% (target %s, %d days remaining)\n",
					summary.Completion*100, summary.Target, summary.DaysRemaining)
				for _, unit := range harvestUnits(plant) {
					fmt.Fprintf(out, "Harvested: %g %s\n", plant.TotalHarvested(unit), unit)
				}
				return nil
			})
		},
	}
}

// harvestUnits lists the units a plant was harvested in, first use first.
func harvestUnits(p *entities.Plant) []string {
	seen := make(map[string]bool)
	var units []string
	for _, h := range p.Harvests {
		if !seen[h.Unit] {
			seen[h.Unit] = true
			units = append(units, h.Unit)
		}
	}
	return units
}

// NewSetupsCommand lists setups with their most recent water reading
func NewSetupsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "setups",
		Short: "List setups and their latest water reading",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				setups, err := a.services.Garden.ListSetups(ctx)
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME\tSYSTEM\tLAST READING")
				for _, s := range setups {
					reading := "none"
					if log, ok := s.LatestWaterLog(); ok {
						reading = fmt.Sprintf("%s pH %.1f EC %.2f %.1fC", log.Date, log.PH, log.EC, log.Temperature)
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ID, s.Name, s.SystemType, reading)
				}
				return w.Flush()
			})
		},
	}
}

// NewProjectCommand asks for projected milestone dates
func NewProjectCommand() *cobra.Command {
	var req ports.ProjectionRequest

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project germination, flowering and harvest dates from today",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				projection, err := a.services.Projection.Project(ctx, req)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if !projection.Available {
					fmt.Fprintln(out, "No projection available")
					return nil
				}
				fmt.Fprintf(out, "Germination: %s\nFlowering:   %s\nHarvest:     %s\n",
					projection.Germination, projection.Flowering, projection.Harvest)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&req.Species, "species", "", "Plant species (required)")
	cmd.Flags().StringVar(&req.Variety, "variety", "", "Plant variety")
	cmd.Flags().StringVar(&req.SystemType, "system", "", "Growing system type")
	_ = cmd.MarkFlagRequired("species")

	return cmd
}

// NewBackupCommand exports all data to a file, stdout or object storage
func NewBackupCommand() *cobra.Command {
	var (
		outPath string
		upload  bool
	)

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export all garden data",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				if upload {
					res, err := a.services.Backup.Upload(ctx)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Backup stored at %s (%d bytes)\n", res.Location, res.Bytes)
					return nil
				}

				snap, err := a.services.Backup.Export(ctx)
				if err != nil {
					return err
				}
				body, err := json.MarshalIndent(snap, "", "  ")
				if err != nil {
					return fmt.Errorf("encode backup: %w", err)
				}

				if outPath == "" {
					_, err = cmd.OutOrStdout().Write(append(body, '\n'))
					return err
				}
				if err := os.WriteFile(outPath, body, 0o600); err != nil {
					return fmt.Errorf("write backup: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Backup written to %s\n", outPath)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Write the backup to this file instead of stdout")
	cmd.Flags().BoolVar(&upload, "upload", false, "Upload the backup to the configured S3 bucket")
	cmd.MarkFlagsMutuallyExclusive("out", "upload")

	return cmd
}

// NewTipCommand prints the daily tip
func NewTipCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tip",
		Short: "Print a hydroponics tip",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				fmt.Fprintln(cmd.OutOrStdout(), a.services.Advisor.DailyTip(ctx))
				return nil
			})
		},
	}
}

// withApp bootstraps the application for the duration of fn.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}
