package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/factors/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var timingLine = regexp.MustCompile(`^Time taken: \d+\.\d{3} seconds\.\n$`)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "numbers.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func run(t *testing.T, opts RunOptions) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	opts.Stdout = &stdout
	opts.Stderr = &stderr
	if opts.Config.Output == "" {
		opts.Config = config.Default()
	}
	code := RunFile(context.Background(), opts)
	return code, stdout.String(), stderr.String()
}

func TestRunFile_Results(t *testing.T) {
	code, out, _ := run(t, RunOptions{Path: writeInput(t, "12\n13\n15\n")})

	assert.Equal(t, 0, code)
	require.True(t, strings.HasPrefix(out, "12=2*6\n15=3*5\n"), out)
	assert.Regexp(t, timingLine, strings.TrimPrefix(out, "12=2*6\n15=3*5\n"))
}

func TestRunFile_PrimeOnly(t *testing.T) {
	code, out, _ := run(t, RunOptions{Path: writeInput(t, "17\n")})

	assert.Equal(t, 0, code)
	assert.Regexp(t, timingLine, out)
}

func TestRunFile_MissingFile(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	code, out, _ := run(t, RunOptions{Path: "missing.txt"})

	assert.Equal(t, 1, code)
	assert.Equal(t, "Error: missing.txt does not exist.\n", out)
}

func TestRunFile_MalformedLine(t *testing.T) {
	code, out, errOut := run(t, RunOptions{Path: writeInput(t, "4\nfour\n")})

	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Equal(t, "Error: line 2: \"four\": invalid number\n", errOut)
}

func TestRunFile_CacheUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cfg := config.Default()
	cfg.Cache.Backend = config.CacheRedis
	cfg.Cache.Redis.Addr = addr

	code, out, errOut := run(t, RunOptions{Path: writeInput(t, "4\n"), Config: cfg})

	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.True(t, strings.HasPrefix(errOut, "Error: "), errOut)
	assert.Contains(t, errOut, "unavailable")
}

func TestRunFile_JSON(t *testing.T) {
	cfg := config.Default()
	cfg.Output = config.OutputJSON

	code, out, _ := run(t, RunOptions{Path: writeInput(t, "4\n7\n"), Config: cfg})

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "{\"n\":4,\"factors\":[2,2]}\n")
	assert.Contains(t, out, "\"elapsed_seconds\":")
	assert.NotContains(t, out, "\"n\":7")
}

func TestRunFile_Summary(t *testing.T) {
	code, _, errOut := run(t, RunOptions{Path: writeInput(t, "4\n7\n9\n"), Summary: true})

	assert.Equal(t, 0, code)
	assert.Contains(t, errOut, "Run summary")
	assert.Contains(t, errOut, "Factorized")
}

func TestRunFile_MemoryCache(t *testing.T) {
	cfg := config.Default()
	cfg.Cache.Backend = config.CacheMemory

	code, out, _ := run(t, RunOptions{Path: writeInput(t, "6\n6\n"), Config: cfg})

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "6=2*3\n6=2*3\n")
}

func TestErrorMessage(t *testing.T) {
	_, err := os.Stat("/definitely/not/here")
	assert.Equal(t, "Error: "+err.Error(), ErrorMessage("x", err))
}
