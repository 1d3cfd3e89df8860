package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"doctor-slot-sync/cmd/bootstrap"
	"doctor-slot-sync/pkg/jwt"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "doctor-slot-sync",
		Short:        "Synchronizes doctors and their slots from the vendor API",
		SilenceUsage: true,
		// without a subcommand the service is started
		RunE: runServe,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newSyncCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newTokenCmd())

	return rootCmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the scheduler and the HTTP API",
		RunE:  runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	app, err := bootstrap.New()
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	app.Run()
	return nil
}

func newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run one synchronization cycle and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(contextOrBackground(cmd), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			app, err := bootstrap.New()
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			return app.SyncOnce(ctx)
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(_ *cobra.Command, _ []string) error {
			return bootstrap.Migrate()
		},
	}
}

func newTokenCmd() *cobra.Command {
	var scopes []string

	cmd := &cobra.Command{
		Use:   "token <subject>",
		Short: "Print an operator token for the HTTP API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := bootstrap.IssueToken(args[0], scopes)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&scopes, "scope", []string{jwt.ScopeSyncTrigger}, "Scopes granted by the token")

	return cmd
}

// contextOrBackground keeps cobra commands runnable outside Execute
func contextOrBackground(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
