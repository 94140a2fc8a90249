// Package paramstore provides a thin client for AWS Systems Manager
// Parameter Store with hierarchical output support.
//
// Parampath is designed for applications that keep configuration under
// slash-delimited SSM parameter paths and want those flat namespaces back
// as plain maps or nested trees, with hard guarantees about which keys are
// present.
//
// # Key Features
//
//   - Batch gets with null-filling: every requested name gets an entry,
//     absent names map to nil
//   - Path listings with optional recursion into sub-paths
//   - Nested tree reshaping: suffix paths split on the separator and
//     deep-merged into a [Branch] of [Leaf] values
//   - Required-parameter assertion against the flat listing
//   - Puts with conflict detection when overwrite is off
//
// # Construction
//
// The store takes any implementation of [API], which *ssm.Client satisfies:
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	ps := paramstore.NewFromConfig(cfg, paramstore.DefaultConfig())
//
// Tests inject a fake [API] instead; no operation touches the network
// through any other seam.
//
// # Errors
//
// The package defines domain-specific errors:
//
//   - [InvalidParametersError] - the store rejected requested names as malformed
//   - [MissingParametersError] - a required parameter set was not satisfied
//   - [ErrParameterExists] - put refused because the name already has a value
//
// Every other remote failure propagates to the caller unchanged; the
// package never retries and never downgrades an error to a default value.
package paramstore
