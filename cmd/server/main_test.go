package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    options
		wantErr bool
	}{
		{name: "no flags", args: nil, want: options{}},
		{name: "migrate up", args: []string{"-migrate=up"}, want: options{migrate: "up"}},
		{name: "migrate reset", args: []string{"-migrate", "reset"}, want: options{migrate: "reset"}},
		{
			name: "config file",
			args: []string{"-config", "/etc/todo/config.yaml"},
			want: options{configFile: "/etc/todo/config.yaml"},
		},
		{name: "unknown migration command", args: []string{"-migrate=create"}, wantErr: true},
		{name: "unknown flag", args: []string{"-verbose"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFlags(tt.args, io.Discard)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadAppConfig(t *testing.T) {
	t.Setenv("TODO_DATABASE_DRIVER", "sqlite")
	t.Setenv("TODO_DATABASE_URL", ":memory:")

	cfg, err := loadAppConfig("")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, ":memory:", cfg.Database.URL)
}

func TestLoadAppConfig_MissingDatabaseURL(t *testing.T) {
	t.Setenv("TODO_DATABASE_URL", "")

	_, err := loadAppConfig("")
	assert.ErrorContains(t, err, "failed to load configuration")
}
