package show

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestFprint(t *testing.T) {
	scope := Scope{
		"x":    7,
		"name": "go",
		"xs":   []int{1, 2, 3},
		"m":    map[string]int{"b": 2, "a": 1, "c": 3},
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single_clause",
			input: "x",
			want:  "x ➤ 7\n",
		},
		{
			name:  "multiple_clauses",
			input: "x; name; x+1",
			want:  "x ➤ 7\nname ➤ go\nx+1 ➤ 8\n",
		},
		{
			name:  "newline_suffix",
			input: "x*2 #",
			want:  "x*2 ➤\n14\n",
		},
		{
			name:  "unpack_slice",
			input: "*xs",
			want:  "*xs ➤ 1 2 3\n",
		},
		{
			name:  "unpack_map_keys_sorted",
			input: "*m",
			want:  "*m ➤ a b c\n",
		},
		{
			name:  "unpack_with_newline_suffix",
			input: "*xs #",
			want:  "*xs ➤\n1 2 3\n",
		},
		{
			name:  "empty_clause_blank_line",
			input: "x; ; name",
			want:  "x ➤ 7\n\nname ➤ go\n",
		},
		{
			name:  "bare_affixes_blank_line",
			input: "*; #",
			want:  "\n\n",
		},
		{
			name:  "whitespace_around_clauses",
			input: "  x ;   name  ",
			want:  "x ➤ 7\nname ➤ go\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Fprint(&buf, scope, tt.input); err != nil {
				t.Fatalf("Fprint(%q) error: %v", tt.input, err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Fprint(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}

	t.Run("error_keeps_earlier_output", func(t *testing.T) {
		var buf bytes.Buffer
		err := Fprint(&buf, scope, "x; zz; name")
		if !errors.Is(err, ErrUndefined) {
			t.Fatalf("error = %v, want ErrUndefined", err)
		}
		if got := buf.String(); got != "x ➤ 7\n" {
			t.Errorf("output = %q, want the first clause only", got)
		}
	})

	t.Run("unpack_non_iterable", func(t *testing.T) {
		var buf bytes.Buffer
		err := Fprint(&buf, scope, "*x")
		if err == nil || !strings.Contains(err.Error(), "cannot unpack") {
			t.Fatalf("error = %v, want cannot unpack", err)
		}
	})
}
