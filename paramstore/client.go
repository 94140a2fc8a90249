package paramstore

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// API is the subset of the SSM client consumed by [ParameterStore]. It is
// the injection seam for tests; *ssm.Client satisfies it.
type API interface {
	GetParameters(ctx context.Context, params *ssm.GetParametersInput, optFns ...func(*ssm.Options)) (*ssm.GetParametersOutput, error)
	GetParametersByPath(ctx context.Context, params *ssm.GetParametersByPathInput, optFns ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error)
	PutParameter(ctx context.Context, params *ssm.PutParameterInput, optFns ...func(*ssm.Options)) (*ssm.PutParameterOutput, error)
}

var _ API = (*ssm.Client)(nil)
