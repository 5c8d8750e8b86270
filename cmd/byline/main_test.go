package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	for _, key := range []string{"BYLINE_LOG_LEVEL", "BYLINE_LOG_FORMAT", "BYLINE_TRACING_ENABLED", "BYLINE_METRICS_ENABLED"} {
		if _, ok := os.LookupEnv(key); !ok {
			t.Setenv(key, "")
		}
	}

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestDemo(t *testing.T) {
	stdout, _, err := execute(t, "demo")
	require.NoError(t, err)

	want := strings.Join([]string{
		"Title: AI Revolution, Author: Luqman Bashir, Magazine: Daily Nation",
		"Title: Fitness Trends, Author: Luqman Bashir, Magazine: Taifa Ya Leo",
		"Title: Blockchain Basics, Author: Abdullahi Aden, Magazine: Daily Nation",
		"Title: Quantum Computing, Author: Luqman Bashir, Magazine: Daily Nation",
		"Magazines by Luqman Bashir: Daily Nation, Taifa Ya Leo",
		"Topic areas of Abdullahi Aden: General News",
		"Contributors to Daily Nation: Luqman Bashir, Abdullahi Aden",
		"Titles in Daily Nation: AI Revolution, Blockchain Basics, Quantum Computing",
		"Top publisher: Daily Nation",
	}, "\n") + "\n"
	assert.Equal(t, want, stdout)
}

func TestDemo_RejectsArgs(t *testing.T) {
	_, _, err := execute(t, "demo", "extra")
	assert.Error(t, err)
}

func TestReport_Text(t *testing.T) {
	stdout, _, err := execute(t, "report")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Daily Nation (General News)\n  Articles: 3\n")
	assert.Contains(t, stdout, "  Contributors: Luqman Bashir, Abdullahi Aden\n")
	assert.Contains(t, stdout, "Taifa Ya Leo (Taarifa Ya Leo)\n  Articles: 1\n")
	assert.Contains(t, stdout, "Top publisher: Daily Nation\n")
	assert.NotContains(t, stdout, "Metrics:")
}

func TestReport_JSON(t *testing.T) {
	stdout, _, err := execute(t, "report", "--output", "json")
	require.NoError(t, err)

	var report ReportOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	require.Len(t, report.Magazines, 2)
	assert.Equal(t, "Daily Nation", report.TopPublisher)
	assert.Equal(t, []string{"AI Revolution", "Blockchain Basics", "Quantum Computing"}, report.Magazines[0].Titles)
	assert.Equal(t, []string{}, report.Magazines[0].ContributingAuthors)
	assert.Empty(t, report.Metrics)
}

func TestReport_InvalidOutput(t *testing.T) {
	_, _, err := execute(t, "report", "--output", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --output")
}

func TestReport_Metrics(t *testing.T) {
	stdout, _, err := execute(t, "report", "--metrics")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Metrics:\n")
	assert.Contains(t, stdout, "byline_articles_total 4\n")
	assert.Contains(t, stdout, "byline_magazines_total 2\n")
	assert.Contains(t, stdout, `byline_operations_total{operation="add_article",status="success"}`)
}

func TestReport_MetricsDisabled(t *testing.T) {
	t.Setenv("BYLINE_METRICS_ENABLED", "false")

	stdout, _, err := execute(t, "report", "--metrics")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Metrics: disabled\n")
}

func TestTraceFlag(t *testing.T) {
	_, stderr, err := execute(t, "--trace", "demo")
	require.NoError(t, err)

	assert.Contains(t, stderr, `"Name": "catalog.create_author"`)
	assert.Contains(t, stderr, `"Name": "catalog.top_publisher"`)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "byline.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: debug\n  format: json\n"), 0o600))

	_, stderr, err := execute(t, "--config", path, "demo")
	require.NoError(t, err)

	assert.Contains(t, stderr, `"msg":"byline starting"`)
	assert.Contains(t, stderr, `"command":"demo"`)
	assert.Contains(t, stderr, `"operation":"add_article"`)
}

func TestConfigFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "byline.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  format: xml\n"), 0o600))

	_, _, err := execute(t, "--config", path, "demo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestEnvFallbackWarning(t *testing.T) {
	t.Setenv("BYLINE_LOG_LEVEL", "chatty")

	stdout, stderr, err := execute(t, "demo")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Top publisher: Daily Nation")
	assert.Contains(t, stderr, "configuration fallback applied")
	assert.Contains(t, stderr, "BYLINE_LOG_LEVEL")
}

func TestRunE_ShutsDownTracing(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	t.Run("command fails", func(t *testing.T) {
		calls := 0
		a := &app{shutdown: func(context.Context) error { calls++; return nil }}
		seedErr := errors.New("seed failed")

		err := a.runE(func(*cobra.Command, []string) error { return seedErr })(cmd, nil)

		assert.ErrorIs(t, err, seedErr)
		assert.Equal(t, 1, calls)
		require.NoError(t, a.teardown(context.Background()))
		assert.Equal(t, 1, calls, "shutdown must run once")
	})

	t.Run("shutdown fails", func(t *testing.T) {
		a := &app{shutdown: func(context.Context) error { return errors.New("flush failed") }}

		err := a.runE(func(*cobra.Command, []string) error { return nil })(cmd, nil)

		assert.EqualError(t, err, "shutdown tracing: flush failed")
	})
}
