package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderStyle_NoColors(t *testing.T) {
	assert.Equal(t, "plain", RenderStyle(StyleRed, "plain", false))
}

func TestShouldUseColors(t *testing.T) {
	tests := []struct {
		name    string
		force   bool
		envVars map[string]string
		want    bool
	}{
		{name: "explicit flag", force: true, want: true},
		{name: "FORCE_COLOR", envVars: map[string]string{"FORCE_COLOR": "1"}, want: true},
		{name: "NO_COLOR", envVars: map[string]string{"NO_COLOR": "1", "GITHUB_ACTIONS": "true"}, want: false},
		{name: "github actions", envVars: map[string]string{"GITHUB_ACTIONS": "true"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("FORCE_COLOR", "")
			t.Setenv("NO_COLOR", "")
			t.Setenv("GITHUB_ACTIONS", "")
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}
			assert.Equal(t, tt.want, ShouldUseColors(tt.force))
		})
	}
}
