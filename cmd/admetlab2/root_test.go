package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/metalagman/admetlab2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd(t *testing.T) {
	cmd := newRootCmd()
	require.NotNil(t, cmd)

	assert.Equal(t, "admetlab2", cmd.Name())

	for _, name := range []string{"endpoint", "timeout", "response-schema-file", "config", "env-file", "debug"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag %s", name)
	}

	assert.Equal(t, admetlab2.DefaultEndpoint, cmd.Flags().Lookup("endpoint").DefValue)
	assert.Equal(t, "2m0s", cmd.Flags().Lookup("timeout").DefValue)
}

func TestRequireArgs(t *testing.T) {
	check := requireArgs(2)

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "none", args: nil, wantErr: true},
		{name: "one", args: []string{"CCO"}, wantErr: true},
		{name: "two", args: []string{"CCO", "out.json"}, wantErr: false},
		{name: "extra ignored", args: []string{"CCO", "out.json", "more"}, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := check(nil, tt.args)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, admetlab2.ErrUsage)
			assert.Equal(t, 1, admetlab2.ExitCode(err))
		})
	}
}

func TestExitWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOut  string
	}{
		{
			name:     "nil",
			err:      nil,
			wantCode: -1,
			wantOut:  "",
		},
		{
			name:     "usage",
			err:      admetlab2.UsageError(admetlab2.ErrUsage),
			wantCode: 1,
			wantOut:  "Usage: admetlab2 <smiles_or_input_file> <output_json>\n",
		},
		{
			name:     "empty compound",
			err:      admetlab2.UsageError(admetlab2.ErrEmptyCompound),
			wantCode: 1,
			wantOut:  "Error: input compound is empty\n",
		},
		{
			name:     "service",
			err:      &admetlab2.Error{Kind: admetlab2.KindService, Err: errors.New("connection refused")},
			wantCode: 2,
			wantOut:  "Error calling ADMETLab2 service: connection refused\n",
		},
		{
			name:     "write",
			err:      &admetlab2.Error{Kind: admetlab2.KindWrite, Err: errors.New("permission denied")},
			wantCode: 3,
			wantOut:  "Error writing output file: permission denied\n",
		},
		{
			name:     "untagged",
			err:      errors.New("unknown flag: --nope"),
			wantCode: 1,
			wantOut:  "unknown flag: --nope\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := overrideExit(t)

			var out bytes.Buffer
			exitWithError(&out, tt.err)

			assert.Equal(t, tt.wantCode, *code)
			assert.Equal(t, tt.wantOut, out.String())
		})
	}
}

func TestVersionFlag(t *testing.T) {
	stdout, _, err := executeRoot(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, version)
}
