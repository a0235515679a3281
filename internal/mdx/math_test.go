package mdx

import "testing"

func TestEscapeMathBraces(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "inline math",
			input: `The sum $x_{i}$ converges.`,
			want:  `The sum $x_\{i\}$ converges.`,
		},
		{
			name:  "display math",
			input: `$$\frac{a}{b}$$`,
			want:  `$$\frac\{a\}\{b\}$$`,
		},
		{
			name:  "already escaped",
			input: `$x_\{i\}$`,
			want:  `$x_\{i\}$`,
		},
		{
			name:  "braces outside math untouched",
			input: `object {key} and $a_{1}$`,
			want:  `object {key} and $a_\{1\}$`,
		},
		{
			name:  "lone dollar is literal",
			input: `costs $5 today`,
			want:  `costs $5 today`,
		},
		{
			name:  "no math",
			input: "plain {braces} here",
			want:  "plain {braces} here",
		},
		{
			name:  "multiple spans",
			input: `$a_{1}$ text $b_{2}$`,
			want:  `$a_\{1\}$ text $b_\{2\}$`,
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeMathBraces(tt.input); got != tt.want {
				t.Errorf("EscapeMathBraces(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscapeMathBracesIdempotent(t *testing.T) {
	input := `Inline $x_{i}$ and display $$\sum_{k=0}^{n} a_k$$ math.`
	once := EscapeMathBraces(input)
	twice := EscapeMathBraces(once)
	if once != twice {
		t.Errorf("second pass changed output:\nonce:  %q\ntwice: %q", once, twice)
	}
}
