package palette

import (
	"encoding/json"
	"testing"

	"github.com/jmylchreest/huewheel/internal/colour"
)

func TestViewAllFeatures(t *testing.T) {
	c := NewBuilder().WithStartHue(0).Build()
	_ = c.ToggleLock(2)

	v := c.View()

	if v.Theme != ThemeDark || v.Background != "#121212" || v.Text != "#f1f1f1" {
		t.Errorf("view theme = %s %s %s", v.Theme, v.Background, v.Text)
	}
	if len(v.Swatches) != colour.SwatchCount {
		t.Fatalf("len(Swatches) = %d", len(v.Swatches))
	}

	first := v.Swatches[0]
	if first.Hex != "#d92626" || first.HSL != "hsl(0, 70%, 50%)" {
		t.Errorf("first swatch = %+v", first)
	}
	if !v.Swatches[2].Locked || v.Swatches[1].Locked {
		t.Errorf("lock flags not reflected in view")
	}

	for _, s := range v.Swatches {
		if s.Contrast == nil {
			t.Fatalf("swatch %d has no contrast", s.Index)
		}
		want, _ := colour.Contrast(s.Hex, v.Background)
		if s.Contrast.Ratio != want {
			t.Errorf("swatch %d ratio = %v, want %v", s.Index, s.Contrast.Ratio, want)
		}
		if s.Contrast.Rating != colour.Classify(s.Contrast.Ratio) {
			t.Errorf("swatch %d rating inconsistent with ratio", s.Index)
		}
	}

	if v.Overall == nil {
		t.Fatal("Overall is nil with all features enabled")
	}
	want, _ := colour.Contrast(v.Swatches[0].Hex, v.Swatches[5].Hex)
	if v.Overall.Ratio != want {
		t.Errorf("Overall.Ratio = %v, want %v", v.Overall.Ratio, want)
	}
}

func TestViewFollowsTheme(t *testing.T) {
	c := NewBuilder().WithStartHue(60).Build()
	dark := c.View()
	c.ToggleTheme()
	light := c.View()

	if light.Background != "#ffffff" {
		t.Errorf("light background = %s", light.Background)
	}
	for i := range dark.Swatches {
		if dark.Swatches[i].Hex != light.Swatches[i].Hex {
			t.Errorf("swatch %d colour changed with theme", i)
		}
		want, _ := colour.Contrast(light.Swatches[i].Hex, "#ffffff")
		if light.Swatches[i].Contrast.Ratio != want {
			t.Errorf("swatch %d light ratio = %v, want %v", i, light.Swatches[i].Contrast.Ratio, want)
		}
	}
}

func TestViewFeaturesDisabled(t *testing.T) {
	c := NewBuilder().WithStartHue(0).WithFeatures(Features{}).Build()
	v := c.View()

	for _, s := range v.Swatches {
		if s.Contrast != nil {
			t.Errorf("swatch %d has contrast with contrast disabled", s.Index)
		}
	}
	if v.Overall != nil {
		t.Error("Overall present with overall disabled")
	}
}

func TestViewJSON(t *testing.T) {
	c := NewBuilder().WithStartHue(0).Build()
	data, err := c.View().JSON()
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}

	var decoded struct {
		Theme    string `json:"theme"`
		Swatches []struct {
			Hex      string `json:"hex"`
			Contrast struct {
				Rating string `json:"rating"`
			} `json:"contrast"`
		} `json:"swatches"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Theme != "dark" {
		t.Errorf("theme = %q, want dark", decoded.Theme)
	}
	if decoded.Swatches[0].Hex != "#d92626" {
		t.Errorf("first hex = %q", decoded.Swatches[0].Hex)
	}
	if decoded.Swatches[0].Contrast.Rating == "" {
		t.Error("rating not serialised as text")
	}
}

func TestParseThemeMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ThemeMode
		wantErr bool
	}{
		{in: "dark", want: ThemeDark},
		{in: "LIGHT", want: ThemeLight},
		{in: " light ", want: ThemeLight},
		{in: "auto", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseThemeMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseThemeMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseThemeMode(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
