package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDuration_JSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", in: `"10s"`, want: 10 * time.Second},
		{name: "nanoseconds", in: `1500000000`, want: 1500 * time.Millisecond},
		{name: "null", in: `null`, want: 0},
		{name: "bad string", in: `"ten"`, wantErr: true},
		{name: "bool", in: `true`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.in), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Duration)
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration{Duration: 90 * time.Second})
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}

func TestDuration_YAML(t *testing.T) {
	var cfg struct {
		Timeout Duration `yaml:"timeout"`
		Raw     Duration `yaml:"raw"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("timeout: 2m\nraw: 1000\n"), &cfg))
	assert.Equal(t, 2*time.Minute, cfg.Timeout.Duration)
	assert.Equal(t, time.Microsecond, cfg.Raw.Duration)

	require.Error(t, yaml.Unmarshal([]byte("timeout: soon\n"), &cfg))
}
