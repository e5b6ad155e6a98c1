package main

import (
	"testing"

	"github.com/algo-cancer/algo-cancer.github.io/internal/config"
)

func TestClassifySpliceTarget(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "marker pair present",
			doc:  "head\n" + cfg.MarkerStart + "\nblock\n" + cfg.MarkerEnd + "\ntail",
			want: "markers",
		},
		{
			name: "anchor only",
			doc:  "head\n" + cfg.Anchor + "\ntail",
			want: "anchor",
		},
		{
			name: "markers win over anchor",
			doc:  cfg.MarkerStart + cfg.MarkerEnd + "\n" + cfg.Anchor,
			want: "markers",
		},
		{
			name: "start marker alone is not enough",
			doc:  cfg.MarkerStart + "\nno end in sight",
			want: "",
		},
		{
			name: "nothing to hook onto",
			doc:  "<html><body>plain page</body></html>",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifySpliceTarget(tt.doc, cfg); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
