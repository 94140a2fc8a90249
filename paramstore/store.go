package paramstore

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"

	"github.com/jacentio/parampath/internal/pathkey"
)

// Parameters is a flat mapping from parameter name (or suffix path) to its
// value. A nil value means the name was requested but absent from the store.
type Parameters map[string]*string

// ParameterStore provides Parameter Store reads and writes with
// hierarchical output support.
type ParameterStore struct {
	client API
	config Config
}

// New creates a ParameterStore around an existing SSM client.
func New(client API, config Config) *ParameterStore {
	config.validate()
	return &ParameterStore{
		client: client,
		config: config,
	}
}

// NewFromConfig creates a ParameterStore with an SSM client built from an
// AWS SDK config, typically the result of config.LoadDefaultConfig.
func NewFromConfig(awsConfig aws.Config, config Config) *ParameterStore {
	return New(ssm.NewFromConfig(awsConfig), config)
}

// GetParameters retrieves a batch of named parameters in one call. The
// result has exactly one entry per requested name: names present in the
// store map to their decrypted value, absent names map to nil. Response
// entries for names that were never requested are dropped.
//
// Returns *InvalidParametersError when the store rejects any requested
// name; no filling is attempted in that case.
func (s *ParameterStore) GetParameters(ctx context.Context, names []string) (Parameters, error) {
	out, err := s.client.GetParameters(ctx, &ssm.GetParametersInput{
		Names:          names,
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.InvalidParameters) > 0 {
		return nil, &InvalidParametersError{Names: out.InvalidParameters}
	}

	// Seed with nil so absent names still have an entry.
	filled := make(Parameters, len(names))
	for _, name := range names {
		filled[name] = nil
	}
	for _, p := range out.Parameters {
		name := aws.ToString(p.Name)
		if _, requested := filled[name]; requested {
			filled[name] = p.Value
		}
	}

	return filled, nil
}

// PathQuery describes a path listing request.
type PathQuery struct {
	// Path is the base path the listing is scoped to.
	Path string

	// Recursive includes entries nested under sub-paths of Path. Without
	// it the store never returns nested keys. GetParameterTree always
	// lists recursively regardless of this field.
	Recursive bool

	// WithDecryption asks the store to decrypt SecureString values.
	WithDecryption bool

	// Required lists suffix paths that must appear as keys in the listing.
	// Express them in the flat suffix form the keys have before any
	// nesting, e.g. "foo/bar" for "/base/foo/bar" under base "/base/".
	// A key present with a nil value still counts as present.
	Required []string
}

// GetParametersByPath lists every parameter under q.Path in one call and
// returns a flat map keyed by suffix path, with leading separators trimmed
// uniformly whether or not q.Path ends in a separator. An empty listing is
// an empty map, not an error.
func (s *ParameterStore) GetParametersByPath(ctx context.Context, q PathQuery) (Parameters, error) {
	flat, err := s.listByPath(ctx, q, q.Recursive)
	if err != nil {
		return nil, err
	}

	stripped := make(Parameters, len(flat))
	for key, value := range flat {
		stripped[pathkey.TrimLeading(key, s.config.Separator)] = value
	}
	return stripped, nil
}

// GetParameterTree lists every parameter under q.Path recursively and
// reshapes the suffix paths into a nested tree, one Branch level per path
// segment. Entries sharing the same full suffix path resolve to a single
// leaf; sibling segments from all entries are preserved.
func (s *ParameterStore) GetParameterTree(ctx context.Context, q PathQuery) (Branch, error) {
	flat, err := s.listByPath(ctx, q, true)
	if err != nil {
		return nil, err
	}

	tree := Branch{}
	for key, value := range flat {
		key = pathkey.TrimLeading(key, s.config.Separator)
		single := buildBranch(pathkey.Split(key, s.config.Separator), value)
		tree = merge(tree, single).(Branch)
	}
	return tree, nil
}

// listByPath issues the single listing call and derives suffix-path keys by
// stripping the base path prefix. The required assertion runs here, against
// the suffix keys exactly as derived, before any trimming or nesting.
func (s *ParameterStore) listByPath(ctx context.Context, q PathQuery, recursive bool) (Parameters, error) {
	out, err := s.client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(q.Path),
		Recursive:      aws.Bool(recursive),
		WithDecryption: aws.Bool(q.WithDecryption),
	})
	if err != nil {
		return nil, err
	}

	flat := make(Parameters, len(out.Parameters))
	for _, p := range out.Parameters {
		flat[pathkey.StripBase(aws.ToString(p.Name), q.Path)] = p.Value
	}

	if len(q.Required) > 0 {
		if err := assertRequired(q.Required, flat, q.Path); err != nil {
			return nil, err
		}
	}

	return flat, nil
}

// assertRequired verifies every required suffix path appears as a key in
// the listing. Only absent keys count as missing; a key mapped to nil
// passes.
func assertRequired(required []string, actual Parameters, path string) error {
	var missing []string
	for _, name := range required {
		if _, ok := actual[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &MissingParametersError{Names: missing, Path: path}
	}
	return nil
}

// PutOptions configures put behavior.
type PutOptions struct {
	// Overwrite replaces an existing value instead of failing.
	Overwrite bool

	// Tags are attached to the parameter on creation.
	Tags map[string]string
}

// PutResult is the unwrapped provider response for a put.
type PutResult struct {
	// Version is the parameter version the write produced.
	Version int64

	// Tier is the storage tier the parameter landed in.
	Tier string
}

// PutParameter writes value under name as a String parameter in the
// Standard tier. Without opts.Overwrite, a name that already has a value
// fails with an error wrapping [ErrParameterExists]. Every other remote
// failure propagates unchanged.
func (s *ParameterStore) PutParameter(ctx context.Context, name, value string, opts PutOptions) (*PutResult, error) {
	in := &ssm.PutParameterInput{
		Name:      aws.String(name),
		Value:     aws.String(value),
		Type:      types.ParameterTypeString,
		Tier:      types.ParameterTierStandard,
		Overwrite: aws.Bool(opts.Overwrite),
	}
	for key, val := range opts.Tags {
		in.Tags = append(in.Tags, types.Tag{
			Key:   aws.String(key),
			Value: aws.String(val),
		})
	}

	out, err := s.client.PutParameter(ctx, in)
	if err != nil {
		var exists *types.ParameterAlreadyExists
		if errors.As(err, &exists) {
			return nil, fmt.Errorf("%w: %s", ErrParameterExists, name)
		}
		return nil, err
	}

	return &PutResult{
		Version: out.Version,
		Tier:    string(out.Tier),
	}, nil
}
