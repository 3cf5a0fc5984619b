package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramkit/pkg/sanitizer"
)

func TestPolicyByName(t *testing.T) {
	input := `<script>alert("x")</script><b>`

	tests := []struct {
		name     string
		expected string
	}{
		{"", "&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;&lt;b&gt;"},
		{"html", "&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;&lt;b&gt;"},
		{" HTML ", "&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;&lt;b&gt;"},
		{"tags", `&lt;script&gt;alert("x")&lt;/script&gt;&lt;b&gt;`},
		{"strict", "&lt;b&gt;"},
		{"none", input},
	}

	for _, tt := range tests {
		t.Run("policy "+tt.name, func(t *testing.T) {
			escape, err := sanitizer.PolicyByName(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, escape(input))
		})
	}

	t.Run("unknown policy", func(t *testing.T) {
		escape, err := sanitizer.PolicyByName("bogus")
		assert.Nil(t, escape)
		assert.ErrorIs(t, err, sanitizer.ErrUnknownPolicy)
	})
}
