package iconcss

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testURL = `url("data:image/svg+xml;base64,PHN2Zy8+")`

// ---------------------------------------------------------------------------
// TestSelectMode - Auto detection and explicit modes
// ---------------------------------------------------------------------------

func TestSelectMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mode   Mode
		markup string
		want   Mode
	}{
		{"auto with currentColor", ModeAuto, "<svg><path fill='currentColor'/></svg>", ModeMask},
		{"auto with stroke currentColor", ModeAuto, "<svg><path stroke='currentColor'/></svg>", ModeMask},
		{"auto without currentColor", ModeAuto, "<svg><path fill='#f00'/></svg>", ModeBackgroundImage},
		{"auto is case-sensitive", ModeAuto, "<svg><path fill='currentcolor'/></svg>", ModeBackgroundImage},
		{"explicit mask", ModeMask, "<svg/>", ModeMask},
		{"explicit background", ModeBackgroundImage, "<svg fill='currentColor'/>", ModeBackgroundImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := selectMode(tt.mode, tt.markup); got != tt.want {
				t.Errorf("selectMode(%q) = %q, want %q", tt.mode, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestBuild*Declarations - Fixed property order
// ---------------------------------------------------------------------------

func TestBuildMaskDeclarations(t *testing.T) {
	t.Parallel()

	got := buildMaskDeclarations(testURL, "1.2em", "--un-icon")
	want := Declarations{
		{"--un-icon", testURL},
		{"-webkit-mask", "var(--un-icon) no-repeat"},
		{"-webkit-mask-size", "100% 100%"},
		{"mask", "var(--un-icon) no-repeat"},
		{"mask-size", "100% 100%"},
		{"background-color", "currentColor"},
		{"height", "1.2em"},
		{"width", "1.2em"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("buildMaskDeclarations() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildBackgroundDeclarations(t *testing.T) {
	t.Parallel()

	got := buildBackgroundDeclarations(testURL, "2em")
	want := Declarations{
		{"background", testURL + " no-repeat"},
		{"background-size", "100% 100%"},
		{"background-color", "transparent"},
		{"height", "2em"},
		{"width", "2em"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("buildBackgroundDeclarations() mismatch (-want +got):\n%s", diff)
	}
}

// ---------------------------------------------------------------------------
// TestDeclarations - Accessors and formatting
// ---------------------------------------------------------------------------

func TestDeclarations_Get(t *testing.T) {
	t.Parallel()

	d := Declarations{{"height", "1em"}, {"width", "2em"}, {"height", "3em"}}

	if v, ok := d.Get("height"); !ok || v != "1em" {
		t.Errorf("Get(height) = (%q, %v), want first value 1em", v, ok)
	}
	if _, ok := d.Get("color"); ok {
		t.Error("Get(color) reported a value")
	}
}

func TestDeclarations_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		d    Declarations
		want string
	}{
		{"empty", nil, ""},
		{"single", Declarations{{"width", "1em"}}, "width:1em;"},
		{"ordered", Declarations{{"height", "1em"}, {"width", "1em"}}, "height:1em;width:1em;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.d.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeclarations_Rule(t *testing.T) {
	t.Parallel()

	d := Declarations{{"height", "1em"}, {"width", "1em"}}
	want := ".i-mdi-home {\n  height: 1em;\n  width: 1em;\n}\n"
	if got := d.Rule("i-mdi-home"); got != want {
		t.Errorf("Rule() =\n%s\nwant\n%s", got, want)
	}
}

func TestEscapeClassName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		class string
		want  string
	}{
		{"i-mdi-home", "i-mdi-home"},
		{"i-fa6_solid-x", "i-fa6_solid-x"},
		{"i-mdi-home:hover", `i-mdi-home\:hover`},
		{"i-mdi-1.5x", `i-mdi-1\.5x`},
		{"2xl-icon", `\32 xl-icon`},
		{"i-a/b", `i-a\/b`},
		{"i-émoji", "i-émoji"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			t.Parallel()

			if got := escapeClassName(tt.class); got != tt.want {
				t.Errorf("escapeClassName(%q) = %q, want %q", tt.class, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestMergeExtraProperties - Overrides and sorted appends
// ---------------------------------------------------------------------------

func TestMergeExtraProperties(t *testing.T) {
	t.Parallel()

	base := func() Declarations {
		return Declarations{{"height", "1em"}, {"width", "1em"}}
	}

	tests := []struct {
		name  string
		extra map[string]string
		want  Declarations
	}{
		{
			name:  "nil extra",
			extra: nil,
			want:  base(),
		},
		{
			name:  "appended sorted",
			extra: map[string]string{"vertical-align": "middle", "display": "inline-block"},
			want:  Declarations{{"height", "1em"}, {"width", "1em"}, {"display", "inline-block"}, {"vertical-align", "middle"}},
		},
		{
			name:  "override keeps position",
			extra: map[string]string{"height": "auto"},
			want:  Declarations{{"height", "auto"}, {"width", "1em"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := mergeExtraProperties(base(), tt.extra)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mergeExtraProperties() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
