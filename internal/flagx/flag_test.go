package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "userdeck.yaml", "-a", "http://localhost:8080/api"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"-c", "userdeck.yaml"},
		},
		{
			name:         "long flag with equals",
			args:         []string{"--config=alt.json", "-a", "http://localhost"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=alt.json"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept as-is",
			args:         []string{"-s"},
			allowedFlags: []string{"-s"},
			want:         []string{"-s"},
		},
		{
			name:         "flag followed by another flag",
			args:         []string{"-c", "-notvalue"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "multiple allowed flags kept in order",
			args:         []string{"-a", "http://h:1/api", "-c", "conf.json", "--other", "x", "-t", "5"},
			allowedFlags: []string{"-a", "-c", "-t"},
			want:         []string{"-a", "http://h:1/api", "-c", "conf.json", "-t", "5"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "short", args: []string{"-c", "/etc/userdeck.json"}, want: "/etc/userdeck.json"},
		{name: "long", args: []string{"-config", "/etc/userdeck.yaml"}, want: "/etc/userdeck.yaml"},
		{name: "double dash equals", args: []string{"--config=/tmp/u.yml"}, want: "/tmp/u.yml"},
		{name: "mixed with other flags", args: []string{"-a", "http://x", "-c", "u.json", "-l", "debug"}, want: "u.json"},
		{name: "absent", args: []string{"-a", "http://x"}, want: ""},
		{name: "last wins", args: []string{"-c", "1.json", "-config", "2.json"}, want: "2.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigFileFlag(tt.args))
		})
	}
}
