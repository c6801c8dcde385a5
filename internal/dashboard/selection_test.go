package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionToggle(t *testing.T) {
	s := Selection{"a"}

	added := s.Toggle("b")
	assert.Equal(t, []string{"a", "b"}, added.IDs())
	assert.Equal(t, []string{"a"}, s.IDs(), "receiver unchanged")

	assert.Equal(t, s.IDs(), added.Toggle("b").IDs())
	assert.False(t, added.Toggle("a").Contains("a"))
}

func TestSelectionRemove(t *testing.T) {
	s := Selection{"a", "b"}
	assert.Equal(t, []string{"b"}, s.Remove("a").IDs())
	assert.Equal(t, []string{"a", "b"}, s.Remove("zz").IDs())
}

func TestSelectionToggleAll(t *testing.T) {
	tcs := map[string]struct {
		cur     Selection
		visible []string
		want    []string
	}{
		"none selected":       {cur: Selection{}, visible: []string{"a", "b"}, want: []string{"a", "b"}},
		"partly selected":     {cur: Selection{"b"}, visible: []string{"a", "b"}, want: []string{"a", "b"}},
		"all selected clears": {cur: Selection{"a", "b"}, visible: []string{"a", "b"}, want: []string{}},
		"hidden ids dropped":  {cur: Selection{"x"}, visible: []string{"a"}, want: []string{"a"}},
		"superset clears":     {cur: Selection{"x", "a"}, visible: []string{"a"}, want: []string{}},
		"empty visible":       {cur: Selection{"x"}, visible: nil, want: []string{}},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.cur.ToggleAll(tc.visible).IDs())
		})
	}
}

func TestSelectionClear(t *testing.T) {
	var s Selection
	assert.NotNil(t, s.IDs())
	assert.Empty(t, Selection{"a"}.Clear().IDs())
}
