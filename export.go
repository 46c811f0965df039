package main

import (
	"bytes"
	"fmt"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/carson-networks/finance-tracker/internal/export"
	"github.com/carson-networks/finance-tracker/internal/report"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type exportFlags struct {
	email string
	start string
	end   string
	out   string
}

func createExportCmd() *cobra.Command {
	var flags exportFlags
	cmd := &cobra.Command{
		Use:   "export",
		Short: "write a user's transactions in a date range to a CSV file",
		Long: `Write every income and expense of the user in the inclusive date range to a CSV file.
The file is replaced atomically; without --out it is named report_<start>_to_<end>.csv.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, flags)
		},
	}
	cmd.Flags().StringVar(&flags.email, "email", "", "email of the user to export")
	cmd.Flags().StringVar(&flags.start, "start", "", "first day, YYYY-MM-DD")
	cmd.Flags().StringVar(&flags.end, "end", "", "last day, YYYY-MM-DD")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "output file")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func runExport(cmd *cobra.Command, flags exportFlags) error {
	window, err := report.ParseWindow(flags.start, flags.end)
	if err != nil {
		return fmt.Errorf("--start %q --end %q: %w", flags.start, flags.end, err)
	}

	_, logger, dbStorage, err := setup()
	if err != nil {
		return err
	}
	defer dbStorage.Close()

	ctx := cmd.Context()
	user, err := dbStorage.Users.FindByEmail(ctx, service.NormalizeEmail(flags.email))
	if err != nil {
		return fmt.Errorf("find user %s: %w", flags.email, err)
	}

	// Reads only; nothing is published or queued.
	reports := service.NewReportService(dbStorage, nil, nil)
	txs, err := reports.Transactions(ctx, user.ID, window.Start, window.End)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, txs); err != nil {
		return err
	}

	target := flags.out
	if target == "" {
		target = export.FileName(window)
	}
	if err := atomic.WriteFile(target, &buf); err != nil {
		return err
	}

	logger.WithField("file", target).WithField("rows", len(txs)).Info("export.Complete")
	return nil
}
