package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/jacentio/parampath/paramstore"
)

var (
	putPath      string
	putValue     string
	putOverwrite bool
	putToJSON    bool
	putYAMLNode  string
	putTags      []string
)

var (
	errNoValueSource = errors.New("either --value or a file argument must be given")
	errNodeNotFound  = errors.New("yaml node not found")
)

// putCmd writes a parameter value sourced from a flag or a YAML file
var putCmd = &cobra.Command{
	Use:   "put [file]",
	Short: "Write a parameter value",
	Long: `Write a value to an SSM parameter path.

The value comes from --value when given, otherwise from the file argument
parsed as YAML. --yaml-node narrows the file to one top-level node before
storing. Non-scalar values are serialized back to YAML, or to a JSON string
with --to-json. Parameters are stored as String in the Standard tier.

Examples:
  # Literal value
  parampath put --path /app/prod/db/host --value db.internal

  # Whole YAML file as a JSON string
  parampath put --path /app/prod/config --to-json config.yaml

  # One node of a YAML file, overwriting any existing value
  parampath put --path /app/prod/db --yaml-node database --overwrite config.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPut,
}

func init() {
	putCmd.Flags().StringVar(&putPath, "path", "", "parameter name to store under")
	putCmd.Flags().StringVar(&putValue, "value", "", "literal value to store (takes priority over a file)")
	putCmd.Flags().BoolVar(&putOverwrite, "overwrite", false, "replace an existing value")
	putCmd.Flags().BoolVar(&putToJSON, "to-json", false, "serialize the file value to a JSON string")
	putCmd.Flags().StringVar(&putYAMLNode, "yaml-node", "", "store only this top-level node of the file")
	putCmd.Flags().StringArrayVar(&putTags, "tag", nil, "tag as key=value, repeatable")
	_ = putCmd.MarkFlagRequired("path")
}

func runPut(cmd *cobra.Command, args []string) error {
	var file string
	if len(args) == 1 {
		file = args[0]
	}

	value, err := resolveValue(putValue, file, putYAMLNode, putToJSON)
	if err != nil {
		return err
	}
	tags, err := parseTags(putTags)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	store, err := newStore(ctx)
	if err != nil {
		return err
	}

	logger.Debug("putting parameter",
		zap.String("path", putPath),
		zap.Bool("overwrite", putOverwrite),
		zap.Int("value_bytes", len(value)),
	)
	result, err := store.PutParameter(ctx, putPath, value, paramstore.PutOptions{
		Overwrite: putOverwrite,
		Tags:      tags,
	})
	if err != nil {
		return err
	}
	return printJSON(cmd, result)
}

// resolveValue picks the value to store. An explicit --value wins; else the
// file is parsed as YAML and optionally narrowed to one top-level node. A
// narrowed scalar string is stored as-is; anything else is serialized, as
// JSON when toJSON is set and as YAML otherwise.
func resolveValue(value, file, node string, toJSON bool) (string, error) {
	if value != "" {
		return value, nil
	}
	if file == "" {
		return "", errNoValueSource
	}

	raw, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return "", fmt.Errorf("parse %s: %w", file, err)
	}

	var selected any = doc
	if node != "" {
		nodeValue, ok := doc[node]
		if !ok {
			return "", fmt.Errorf("%w: %s", errNodeNotFound, node)
		}
		selected = nodeValue
	}

	if s, ok := selected.(string); ok && !toJSON {
		return s, nil
	}
	if toJSON {
		out, err := json.Marshal(selected)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
	out, err := yaml.Marshal(selected)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// parseTags parses repeated key=value pairs into a map.
func parseTags(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	tags := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("malformed tag %q, want key=value", pair)
		}
		tags[key] = value
	}
	return tags, nil
}
