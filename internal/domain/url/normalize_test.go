package url

import "testing"

func TestLooksLikeURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "empty", input: "", want: false},
		{name: "bare domain", input: "example.com", want: true},
		{name: "domain with path", input: "example.com/path", want: true},
		{name: "subdomain with port", input: "api.example.co.uk:8443/v1", want: true},
		{name: "localhost", input: "localhost", want: true},
		{name: "localhost with port and path", input: "localhost:3000/admin", want: true},
		{name: "ipv4", input: "192.168.1.1", want: true},
		{name: "ipv4 with port", input: "10.0.0.1:8080", want: true},
		{name: "http scheme", input: "http://anything goes", want: true},
		{name: "https scheme", input: "https://example.com", want: true},
		{name: "plain words", input: "quantum gravity", want: false},
		{name: "single word", input: "golang", want: false},
		{name: "one letter tld", input: "example.c", want: false},
		{name: "numeric tld", input: "example.123", want: false},
		{name: "space in host", input: "exam ple.com", want: false},
		{name: "trailing dot", input: "example.", want: false},
		{name: "localhost prefix only", input: "localhostx", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LooksLikeURL(tt.input); got != tt.want {
				t.Errorf("LooksLikeURL(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "http scheme unchanged", input: "http://example.com", want: "http://example.com"},
		{name: "https scheme unchanged", input: "https://example.com", want: "https://example.com"},
		{name: "domain gets https", input: "example.com", want: "https://example.com"},
		{name: "domain with path gets https", input: "example.com/path", want: "https://example.com/path"},
		{name: "localhost gets https", input: "localhost:8080", want: "https://localhost:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "https://www.github.com/bnema", want: "github.com"},
		{input: "reddit.com", want: "reddit.com"},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		if got := ExtractDomain(tt.input); got != tt.want {
			t.Errorf("ExtractDomain(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
