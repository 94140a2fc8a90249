package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jacentio/parampath/paramstore"
)

var (
	getPath      string
	getKey       string
	getRecursive bool
	getNested    bool
)

// getCmd reads a single parameter or a whole path listing
var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Read a parameter or a path listing",
	Long: `Read parameters from SSM.

With --path, the whole listing under that base path is printed as JSON;
--key then narrows the output to one suffix key of the listing. With only
--key, that single parameter is fetched and its raw value printed (nothing
is printed when the parameter is absent).

Examples:
  # One parameter, raw value
  parampath get --key /app/prod/db/host

  # Flat listing under a path
  parampath get --path /app/prod/ --recursive

  # Nested tree
  parampath get --path /app/prod/ --nested`,
	RunE: runGet,
}

func init() {
	getCmd.Flags().StringVar(&getPath, "path", "", "base path to list")
	getCmd.Flags().StringVar(&getKey, "key", "", "parameter name, or suffix key within --path")
	getCmd.Flags().BoolVar(&getRecursive, "recursive", false, "include parameters under sub-paths")
	getCmd.Flags().BoolVar(&getNested, "nested", false, "reshape the listing into a nested tree (implies --recursive)")
}

func runGet(cmd *cobra.Command, args []string) error {
	if getPath == "" && getKey == "" {
		return fmt.Errorf("either --path or --key must be given")
	}
	if getNested && getKey != "" {
		return fmt.Errorf("--key cannot be combined with --nested")
	}

	ctx := cmd.Context()
	store, err := newStore(ctx)
	if err != nil {
		return err
	}

	// Single named parameter, raw value output.
	if getPath == "" {
		logger.Debug("fetching parameter", zap.String("key", getKey))
		params, err := store.GetParameters(ctx, []string{getKey})
		if err != nil {
			return err
		}
		if v := params[getKey]; v != nil {
			fmt.Fprintln(cmd.OutOrStdout(), *v)
		}
		return nil
	}

	query := paramstore.PathQuery{
		Path:           getPath,
		Recursive:      getRecursive || getNested,
		WithDecryption: true,
	}
	logger.Debug("listing path",
		zap.String("path", getPath),
		zap.Bool("recursive", query.Recursive),
		zap.Bool("nested", getNested),
	)

	if getNested {
		tree, err := store.GetParameterTree(ctx, query)
		if err != nil {
			return err
		}
		return printJSON(cmd, tree)
	}

	flat, err := store.GetParametersByPath(ctx, query)
	if err != nil {
		return err
	}
	if getKey != "" {
		return printJSON(cmd, flat[getKey])
	}
	return printJSON(cmd, flat)
}
