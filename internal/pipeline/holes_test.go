package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCutPre(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		fragments []string
	}{
		{
			name:  "no pre",
			input: "plain\n",
			want:  "plain\n",
		},
		{
			name:      "single block",
			input:     "a<pre class=\"x\">b\n\nc</pre>d\n",
			want:      "a<pre wp-pre-tag-0></pre>d\n",
			fragments: []string{"<pre class=\"x\">b\n\nc</pre>"},
		},
		{
			name:      "block at the very start",
			input:     "<pre>x</pre>\n",
			want:      "<pre wp-pre-tag-0></pre>\n",
			fragments: []string{"<pre>x</pre>"},
		},
		{
			name:      "sequential indexes",
			input:     "<pre>1</pre><pre>2</pre>\n",
			want:      "<pre wp-pre-tag-0></pre><pre wp-pre-tag-1></pre>\n",
			fragments: []string{"<pre>1</pre>", "<pre>2</pre>"},
		},
		{
			name:      "orphan closer does not take an index",
			input:     "<pre>1</pre>x</pre><pre>2</pre>\n",
			want:      "<pre wp-pre-tag-0></pre>x<pre wp-pre-tag-1></pre>\n",
			fragments: []string{"<pre>1</pre>", "<pre>2</pre>"},
		},
		{
			name:      "nested opener pairs with the first one",
			input:     "<pre>a<pre>b</pre>c\n",
			want:      "<pre wp-pre-tag-0></pre>c\n",
			fragments: []string{"<pre>a<pre>b</pre>"},
		},
		{
			name:  "opener without closer is left alone",
			input: "<pre>never closed\n",
			want:  "<pre>never closed\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, saved := cutPre(tt.input)
			assert.Equal(t, tt.want, got)

			require.Len(t, saved, len(tt.fragments))
			for i, f := range tt.fragments {
				assert.Equal(t, f, saved[i].fragment)
			}
		})
	}
}

func TestHolesFill(t *testing.T) {
	in := "x<pre>$1 \\1 keep</pre>y<pre>two</pre>\n"
	cut, saved := cutPre(in)
	require.Len(t, saved, 2)
	assert.Equal(t, in, saved.fill(cut))

	var none holes
	assert.Equal(t, "unchanged", none.fill("unchanged"))
}
