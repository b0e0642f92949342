package domain

import "testing"

func TestExtractMapURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		snippet string
		want    string
	}{
		{name: "empty", snippet: "", want: ""},
		{name: "blank", snippet: "   ", want: ""},
		{name: "plain text", snippet: "near the station", want: ""},
		{
			name:    "google maps iframe",
			snippet: `<iframe src="https://www.google.com/maps/embed?pb=abc" width="600" height="450" style="border:0;" allowfullscreen="" loading="lazy"></iframe>`,
			want:    "https://www.google.com/maps/embed?pb=abc",
		},
		{
			name:    "iframe wrapped in div",
			snippet: `<div class="map"><iframe width="1" src=" https://maps.example.com/x "></iframe></div>`,
			want:    "https://maps.example.com/x",
		},
		{name: "iframe without src", snippet: `<iframe width="600"></iframe>`, want: ""},
		{name: "iframe with empty src", snippet: `<iframe src=""></iframe>`, want: ""},
		{
			name:    "first iframe wins",
			snippet: `<iframe src="https://a.example"></iframe><iframe src="https://b.example"></iframe>`,
			want:    "https://a.example",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ExtractMapURL(tt.snippet)
			switch {
			case tt.want == "" && got != nil:
				t.Errorf("ExtractMapURL() = %q, want nil", *got)
			case tt.want != "" && got == nil:
				t.Errorf("ExtractMapURL() = nil, want %q", tt.want)
			case tt.want != "" && *got != tt.want:
				t.Errorf("ExtractMapURL() = %q, want %q", *got, tt.want)
			}
		})
	}
}

func TestPost_MapURL(t *testing.T) {
	t.Parallel()

	p := &Post{MapEmbed: `<iframe src="https://maps.example.com/embed"></iframe>`}
	got := p.MapURL()
	if got == nil || *got != "https://maps.example.com/embed" {
		t.Fatalf("MapURL() = %v", got)
	}

	if (&Post{}).MapURL() != nil {
		t.Error("MapURL() on post without embed should be nil")
	}
}
