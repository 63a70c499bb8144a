package main

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/pickr/internal/cli"
	"github.com/rshade/pickr/pkg/version"
)

func TestMainComponents(t *testing.T) {
	t.Run("run function exists", func(t *testing.T) {
		_ = run
	})

	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		if assert.NotNil(t, root) {
			assert.NotEmpty(t, root.Use)
		}
	})
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantStderr string
	}{
		{name: "success", err: nil, wantCode: 0},
		{name: "cancelled", err: cli.ErrCancelled, wantCode: exitCancelled},
		{
			name:     "wrapped cancel",
			err:      fmt.Errorf("%w: context canceled", cli.ErrCancelled),
			wantCode: exitCancelled,
		},
		{
			name:       "generic error",
			err:        errors.New("reading input: boom"),
			wantCode:   1,
			wantStderr: "Error: reading input: boom\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer

			code := exitCode(tt.err, &stderr)

			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantStderr, stderr.String())
		})
	}
}
