package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/diegobernardes/strata/internal/application/api"
)

var defaultConfigPath = "./strata.toml"

func main() {
	var rootCmd = &cobra.Command{Use: "strata"}
	rootCmd.AddCommand(commandStart(), commandSetup(), commandVersion())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(errors.Wrap(err, "error during strata command initialization"))
		os.Exit(1)
	}
}

func commandStart() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the service",
		Long:  "Command used to start the service. It runs until a interrupt signal is received.",
		Run: func(cmd *cobra.Command, args []string) {
			client := newClient(configPath)

			ctx, ctxCancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer ctxCancel()

			if err := client.Start(ctx); err != nil {
				fmt.Println(errors.Wrap(err, "error during client start"))
				os.Exit(1)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "")

	return cmd
}

func commandSetup() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Setup the required resources",
		Long:  "Based at the configuration, it run the setup on the repository engine.",
		Run: func(cmd *cobra.Command, args []string) {
			client := newClient(configPath)

			ctx, ctxCancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer ctxCancel()

			if err := client.Setup(ctx); err != nil {
				fmt.Println(errors.Wrap(err, "error during client setup"))
				os.Exit(1)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "")

	return cmd
}

func commandVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version",
		Long:  "Show information about the Go runtime and strata version.",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 8, 1, '\t', tabwriter.AlignRight)

			if api.Version != "" {
				fmt.Fprintf(w, "Version:\t%s\n", api.Version)
			}

			if api.Commit != "" {
				fmt.Fprintf(w, "Commit:\t%s\n", api.Commit)
			}

			if api.BuildTime != "" {
				fmt.Fprintf(w, "Build Time:\t%s\n", api.BuildTime)
			}

			fmt.Fprintf(w, "Go Version:\t%s\n", api.GoVersion)

			if err := w.Flush(); err != nil {
				fmt.Println(errors.Wrap(err, "error during version output write"))
				os.Exit(1)
			}
		},
	}
}

// readConfig load the file content. A missing file at the default path results in a empty
// configuration.
func readConfig(path string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if path != defaultConfigPath {
			return "", err
		}
		return "", nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

func newClient(path string) *api.Client {
	config, err := readConfig(path)
	if err != nil {
		fmt.Println(errors.Wrap(err, "could not load configuration file"))
		os.Exit(1)
	}

	client := &api.Client{Config: config}
	if err := client.Init(); err != nil {
		fmt.Println(errors.Wrap(err, "error during client initialization"))
		os.Exit(1)
	}
	return client
}
