package core

import "testing"

func TestColorANSI(t *testing.T) {
	tests := []struct {
		color Color
		want  int
	}{
		{ColorDefault, -1},
		{ColorRed, 1},
		{ColorWhite, 7},
		{ColorBrightRed, 9},
		{ColorBrightWhite, 15},
		{ColorOrange, 208},
		{ColorGray, 245},
		{Color(200), -1},
	}

	for _, tt := range tests {
		if got := tt.color.ANSI(); got != tt.want {
			t.Errorf("Color(%d).ANSI() = %d, want %d", tt.color, got, tt.want)
		}
	}
}
