package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDialect(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr string
	}{
		{name: "default", args: nil, want: "postgres"},
		{name: "long flag", args: []string{"--dialect", "mysql"}, want: "mysql"},
		{name: "equals form", args: []string{"--dialect=sqlite"}, want: "sqlite"},
		{name: "unsupported", args: []string{"--dialect", "oracle"}, wantErr: `unsupported dialect "oracle"`},
		{name: "unknown flag", args: []string{"--driver", "mysql"}, wantErr: "unknown flag: --driver"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDialect(tt.args)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
