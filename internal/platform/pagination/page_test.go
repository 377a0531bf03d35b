package pagination

import "testing"

func TestClampPageSize(t *testing.T) {
	cfg := PageSizeConfig{Default: 10, Max: 50}
	tests := []struct {
		value int
		cfg   PageSizeConfig
		want  int
	}{
		{0, cfg, 10},
		{-3, cfg, 10},
		{25, cfg, 25},
		{500, cfg, 50},
		{0, PageSizeConfig{}, 1},
		{7, PageSizeConfig{Default: 5}, 7},
	}
	for _, tt := range tests {
		if got := ClampPageSize(tt.value, tt.cfg); got != tt.want {
			t.Errorf("ClampPageSize(%d, %+v) = %d, want %d", tt.value, tt.cfg, got, tt.want)
		}
	}
}
