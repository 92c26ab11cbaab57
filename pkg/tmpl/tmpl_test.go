package tmpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    string
		data    any
		want    string
		wantErr bool
	}{
		{
			name: "simple substitution",
			tmpl: "hello {{ .Name }}",
			data: map[string]string{"Name": "world"},
			want: "hello world",
		},
		{
			name: "struct data",
			tmpl: "Thanks, {{ .FirstName }}!",
			data: struct{ FirstName string }{FirstName: "Zoë"},
			want: "Thanks, Zoë!",
		},
		{
			name: "no variables",
			tmpl: "static string",
			data: nil,
			want: "static string",
		},
		{
			name: "upper and default",
			tmpl: `{{ .Name | default "friend" | upper }}`,
			data: map[string]string{"Name": ""},
			want: "FRIEND",
		},
		{
			name: "join",
			tmpl: `{{ join .Tags ", " }}`,
			data: map[string][]string{"Tags": {"Go", "TUI"}},
			want: "Go, TUI",
		},
		{
			name:    "missing key errors",
			tmpl:    "{{ .Missing }}",
			data:    map[string]string{"Name": "test"},
			wantErr: true,
		},
		{
			name:    "invalid template syntax",
			tmpl:    "{{ .Name }",
			data:    map[string]string{"Name": "test"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.tmpl, tt.data)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check("{{ .FirstName }}", struct{ FirstName string }{}))
	assert.Error(t, Check("{{ .LastName }}", struct{ FirstName string }{}))
}
