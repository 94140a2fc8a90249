//go:build e2e

// Package e2e contains end-to-end integration tests against real SSM
// parameters. Run with: go test -tags=e2e -v ./e2e/...
//
// The tests use the default AWS credential chain; set PARAMPATH_E2E_PROFILE
// to pick a shared config profile.
package e2e

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/google/uuid"

	"github.com/jacentio/parampath/paramstore"
)

// Parameter names - unique per test run to avoid conflicts
const pathPrefix = "/parampath-e2e-test"

var (
	testID   string
	basePath string

	ssmClient *ssm.Client
	testStore *paramstore.ParameterStore

	seeded = map[string]string{
		"db/host": "db.internal",
		"db/port": "5432",
		"debug":   "true",
	}
)

// --- Test Setup & Teardown ---

func TestMain(m *testing.M) {
	// Generate unique test ID
	testID = uuid.New().String()[:8]
	basePath = fmt.Sprintf("%s-%s/", pathPrefix, testID)

	fmt.Printf("Test ID: %s\n", testID)
	fmt.Printf("Base path: %s\n", basePath)

	ctx := context.Background()
	var opts []func(*config.LoadOptions) error
	if profile := os.Getenv("PARAMPATH_E2E_PROFILE"); profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		fmt.Printf("Failed to load AWS config: %v\n", err)
		os.Exit(1)
	}

	ssmClient = ssm.NewFromConfig(cfg)
	testStore = paramstore.New(ssmClient, paramstore.DefaultConfig())

	if err := seedParameters(ctx); err != nil {
		fmt.Printf("Failed to seed parameters: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	if err := deleteParameters(ctx); err != nil {
		fmt.Printf("Failed to delete parameters: %v\n", err)
	}

	os.Exit(code)
}

func seedParameters(ctx context.Context) error {
	fmt.Println("Seeding test parameters...")
	for suffix, value := range seeded {
		if _, err := testStore.PutParameter(ctx, basePath+suffix, value, paramstore.PutOptions{}); err != nil {
			return fmt.Errorf("seed %s: %w", suffix, err)
		}
	}
	return nil
}

func deleteParameters(ctx context.Context) error {
	fmt.Println("Deleting test parameters...")
	names := make([]string, 0, len(seeded))
	for suffix := range seeded {
		names = append(names, basePath+suffix)
	}
	_, err := ssmClient.DeleteParameters(ctx, &ssm.DeleteParametersInput{Names: names})
	return err
}

// --- Tests ---

func TestGetParametersByPathFlat(t *testing.T) {
	flat, err := testStore.GetParametersByPath(context.Background(), paramstore.PathQuery{
		Path:           basePath,
		Recursive:      true,
		WithDecryption: true,
	})
	if err != nil {
		t.Fatalf("GetParametersByPath: %v", err)
	}

	if len(flat) != len(seeded) {
		t.Fatalf("expected %d entries, got %d: %v", len(seeded), len(flat), flat)
	}
	for suffix, want := range seeded {
		got, ok := flat[suffix]
		if !ok || got == nil || *got != want {
			t.Errorf("expected %s=%s, got %v", suffix, want, got)
		}
	}
}

func TestGetParametersByPathNonRecursive(t *testing.T) {
	flat, err := testStore.GetParametersByPath(context.Background(), paramstore.PathQuery{
		Path: basePath,
	})
	if err != nil {
		t.Fatalf("GetParametersByPath: %v", err)
	}

	// Only the top-level key; db/host and db/port sit under a sub-path.
	if len(flat) != 1 {
		t.Fatalf("expected 1 entry, got %d: %v", len(flat), flat)
	}
	if got := flat["debug"]; got == nil || *got != "true" {
		t.Errorf("expected debug=true, got %v", got)
	}
}

func TestGetParameterTree(t *testing.T) {
	tree, err := testStore.GetParameterTree(context.Background(), paramstore.PathQuery{
		Path:     basePath,
		Required: []string{"db/host", "db/port", "debug"},
	})
	if err != nil {
		t.Fatalf("GetParameterTree: %v", err)
	}

	db, ok := tree["db"].(paramstore.Branch)
	if !ok {
		t.Fatalf("expected db branch, got %v", tree["db"])
	}
	host, ok := db["host"].(paramstore.Leaf)
	if !ok || host.Value == nil || *host.Value != "db.internal" {
		t.Errorf("expected db/host leaf, got %v", db["host"])
	}
}

func TestRequiredParameterMissing(t *testing.T) {
	_, err := testStore.GetParametersByPath(context.Background(), paramstore.PathQuery{
		Path:      basePath,
		Recursive: true,
		Required:  []string{"db/host", "never/seeded"},
	})

	var missing *paramstore.MissingParametersError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingParametersError, got %v", err)
	}
	if len(missing.Names) != 1 || missing.Names[0] != "never/seeded" {
		t.Errorf("unexpected missing names: %v", missing.Names)
	}
}

func TestGetParametersNullFills(t *testing.T) {
	present := basePath + "debug"
	absent := basePath + "does-not-exist"

	params, err := testStore.GetParameters(context.Background(), []string{present, absent})
	if err != nil {
		t.Fatalf("GetParameters: %v", err)
	}

	if len(params) != 2 {
		t.Fatalf("expected 2 entries, got %v", params)
	}
	if got := params[present]; got == nil || *got != "true" {
		t.Errorf("expected %s=true, got %v", present, got)
	}
	if got := params[absent]; got != nil {
		t.Errorf("expected nil for absent name, got %v", aws.ToString(got))
	}
}

func TestPutParameterConflictAndOverwrite(t *testing.T) {
	name := basePath + "debug"

	_, err := testStore.PutParameter(context.Background(), name, "false", paramstore.PutOptions{})
	if !errors.Is(err, paramstore.ErrParameterExists) {
		t.Fatalf("expected ErrParameterExists, got %v", err)
	}

	result, err := testStore.PutParameter(context.Background(), name, "true", paramstore.PutOptions{Overwrite: true})
	if err != nil {
		t.Fatalf("expected overwrite to succeed, got %v", err)
	}
	if result.Version < 2 {
		t.Errorf("expected version to advance, got %d", result.Version)
	}
}
