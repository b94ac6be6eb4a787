// Command emdadctl runs maintenance tasks against the CMS database.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/Emdad-Export/emdad-cms-backend/seasonality"
	"github.com/Emdad-Export/emdad-cms-backend/services"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:           "emdadctl",
		Short:         "Maintenance tasks for the Emdad CMS",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.InitDB()
			return config.Migrate(config.CmsGorm)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			config.CloseDB()
		},
	}
	cmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Minute, "Overall timeout")

	cmd.AddCommand(migrateSeasonalityCmd(&timeout))
	cmd.AddCommand(seedAdminCmd(&timeout))
	return cmd
}

func commandContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	return ctx, func() {
		stop()
		cancel()
	}
}

func migrateSeasonalityCmd(timeout *time.Duration) *cobra.Command {
	var (
		dryRun     bool
		outputJSON bool
	)

	cmd := &cobra.Command{
		Use:   "migrate-seasonality",
		Short: "Rewrite stored seasonality in the fresh/iqf layout",
		Long: `Reads every product's stored seasonality in any historical layout
(flat, nested or language-wrapped), using the English view, and writes it back
in the nested fresh/iqf layout. Values that cannot be read are left untouched.

Examples:
  emdadctl migrate-seasonality --dry-run
  emdadctl migrate-seasonality --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(*timeout)
			defer cancel()

			report, err := services.MigrateSeasonality(ctx, dryRun)
			if err != nil {
				return err
			}
			if outputJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			printReport(cmd, report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would change without writing")
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Output the report as JSON")
	return cmd
}

func printReport(cmd *cobra.Command, report *services.SeasonalityMigrationReport) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scanned:   %d\n", report.Scanned)
	fmt.Fprintln(out, "Shapes:")
	shapes := make([]seasonality.Shape, 0, len(report.Shapes))
	for shape := range report.Shapes {
		shapes = append(shapes, shape)
	}
	sort.Slice(shapes, func(i, j int) bool { return shapes[i] < shapes[j] })
	for _, shape := range shapes {
		fmt.Fprintf(out, "  %-10s %d\n", shape, report.Shapes[shape])
	}
	if len(report.Skipped) > 0 {
		fmt.Fprintln(out, "Skipped:")
		reasons := make([]string, 0, len(report.Skipped))
		for reason := range report.Skipped {
			reasons = append(reasons, reason)
		}
		sort.Strings(reasons)
		for _, reason := range reasons {
			fmt.Fprintf(out, "  %-20s %d\n", reason, report.Skipped[reason])
		}
	}
	verb := "Rewritten"
	if report.DryRun {
		verb = "Would rewrite"
	}
	fmt.Fprintf(out, "%s: %d\n", verb, report.Rewritten)
	fmt.Fprintf(out, "Unchanged: %d\n", report.Unchanged)
}

func seedAdminCmd(timeout *time.Duration) *cobra.Command {
	var email, name, password string

	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Create a super admin account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(*timeout)
			defer cancel()

			admin, err := services.GetAdminAuthService().CreateAdmin(ctx, email, name, password, models.AdminRoleSuperAdmin)
			if errors.Is(err, services.ErrAdminExists) {
				return fmt.Errorf("admin with email %q already exists", email)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "✅ Super Admin Created Successfully!")
			fmt.Fprintf(out, "ID:    %s\n", admin.ID)
			fmt.Fprintf(out, "Email: %s\n", admin.Email)
			fmt.Fprintf(out, "Name:  %s\n", admin.Name)
			fmt.Fprintf(out, "Role:  %s\n", admin.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Admin email")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&password, "password", "", "Password (at least 8 characters)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
