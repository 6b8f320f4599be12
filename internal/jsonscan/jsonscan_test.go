package jsonscan

import "testing"

func TestFirstObject(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{
			name:  "bare object",
			text:  `{"query":null,"year":2023}`,
			want:  `{"query":null,"year":2023}`,
			found: true,
		},
		{
			name:  "markdown fence",
			text:  "```json\n{\"query\": null}\n```",
			want:  `{"query": null}`,
			found: true,
		},
		{
			name:  "surrounding prose",
			text:  `Here is the result: {"a":1} hope that helps!`,
			want:  `{"a":1}`,
			found: true,
		},
		{
			name:  "nested objects",
			text:  `{"outer":{"inner":{"deep":true}}}`,
			want:  `{"outer":{"inner":{"deep":true}}}`,
			found: true,
		},
		{
			name:  "brace inside string literal",
			text:  `{"query":"find {weird} papers"}`,
			want:  `{"query":"find {weird} papers"}`,
			found: true,
		},
		{
			name:  "escaped quote inside string",
			text:  `{"author":"O\"Brien {sic}"}`,
			want:  `{"author":"O\"Brien {sic}"}`,
			found: true,
		},
		{
			name:  "multiple candidates takes first",
			text:  `{"first":1} {"second":2}`,
			want:  `{"first":1}`,
			found: true,
		},
		{
			name:  "stray closing brace before object",
			text:  `} oops {"ok":true}`,
			want:  `{"ok":true}`,
			found: true,
		},
		{
			name:  "no object",
			text:  "the model refused to answer",
			found: false,
		},
		{
			name:  "unbalanced open",
			text:  `{"never":"closed"`,
			found: false,
		},
		{
			name:  "empty input",
			text:  "",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := FirstObject(tt.text)
			if found != tt.found {
				t.Fatalf("found = %v, want %v", found, tt.found)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
