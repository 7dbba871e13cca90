package renderer

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParseOptions(t *testing.T) {
	defaults := DefaultOptions()

	tests := []struct {
		name    string
		json    string
		want    func() Options
		wantErr bool
	}{
		{
			name: "empty object keeps defaults",
			json: `{}`,
			want: func() Options { return defaults },
		},
		{
			name: "every key",
			json: `{"workers": 0, "backfaceCulling": false, "distribution": "tasklist", "seed": 7, "progressInterval": "250ms"}`,
			want: func() Options {
				return Options{
					Workers:          0,
					BackfaceCulling:  false,
					Distribution:     DistributeTaskList,
					Seed:             7,
					ProgressInterval: 250 * time.Millisecond,
				}
			},
		},
		{name: "negative workers", json: `{"workers": -1}`, wantErr: true},
		{name: "workers not a number", json: `{"workers": "four"}`, wantErr: true},
		{name: "culling not a bool", json: `{"backfaceCulling": 1}`, wantErr: true},
		{name: "unknown distribution", json: `{"distribution": "spiral"}`, wantErr: true},
		{name: "bad interval", json: `{"progressInterval": "soon"}`, wantErr: true},
		{name: "invalid JSON", json: `{"workers": `, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOptions([]byte(tt.json))
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want(), got); diff != "" {
				t.Errorf("Options mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAutoWorkerCount(t *testing.T) {
	if got := AutoWorkerCount(); got < 1 {
		t.Errorf("AutoWorkerCount() = %d, want at least 1", got)
	}
}
