package pipeline

import "testing"

func TestInsertBreaks(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no newline", "a b c", "a b c"},
		{"single newline", "a\nb", "a<br />\nb"},
		{"trailing spaces absorbed", "a  \t\nb", "a<br />\nb"},
		{"already broken", "a<br />\nb", "a<br />\nb"},
		{"space after break", "a<br /> \nb", "a<br /> <br />\nb"},
		{"several newlines collapse", "a\n \n\nb", "a<br />\nb"},
		{"blank line after break", "a<br />\n\nb", "a<br />\n<br />\nb"},
		{"spaces after the last newline kept", "a\n  b", "a<br />\n  b"},
		{"leading newline", "\na", "<br />\na"},
		{"trailing newline", "a\n", "a<br />\n"},
		{"vertical tab counts as space", "a\v\nb", "a<br />\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := insertBreaks(tt.input); got != tt.want {
				t.Errorf("insertBreaks(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
