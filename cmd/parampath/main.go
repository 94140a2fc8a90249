// Package main implements the parampath CLI for reading and writing AWS
// Systems Manager Parameter Store values.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jacentio/parampath/paramstore"
)

var (
	// debug enables development logging on the root logger
	debug bool
	// logger is swapped for a development logger when --debug is set
	logger = zap.NewNop()
	// version information
	version = "dev"
)

// Exit codes. Failures map to distinct codes so scripts can branch on the
// failure kind without parsing messages.
const (
	exitFailure           = 1
	exitNoValueSource     = 2
	exitNodeNotFound      = 3
	exitConflict          = 4
	exitInvalidParameters = 5
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "parampath",
	Short: "CLI for AWS SSM Parameter Store",
	Long: `parampath reads and writes AWS Systems Manager Parameter Store values.
It can list whole parameter paths as flat maps or nested trees, and store
values sourced from the command line or from YAML files.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !debug {
			return nil
		}
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		logger = l
		logger.Debug("debug logging on")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(putCmd)
}

// newStore builds the store from the default AWS credential chain.
func newStore(ctx context.Context) (*paramstore.ParameterStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return paramstore.NewFromConfig(awsCfg, paramstore.DefaultConfig()), nil
}

// exitCode maps an error to its process exit code.
func exitCode(err error) int {
	var invalid *paramstore.InvalidParametersError
	switch {
	case errors.Is(err, errNoValueSource):
		return exitNoValueSource
	case errors.Is(err, errNodeNotFound):
		return exitNodeNotFound
	case errors.Is(err, paramstore.ErrParameterExists):
		return exitConflict
	case errors.As(err, &invalid):
		return exitInvalidParameters
	}
	return exitFailure
}

// printJSON writes v to the command output as a single JSON line.
func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
