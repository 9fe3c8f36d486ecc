package recency

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type entry struct {
	id    string
	label string
}

func (e entry) RecencyKey() string { return e.id }

func keys(list []entry) []string {
	result := make([]string, 0, len(list))
	for _, e := range list {
		result = append(result, e.id)
	}
	return result
}

func TestPush(t *testing.T) {
	t.Run("Adds to an empty list", func(t *testing.T) {
		got := Push(nil, entry{id: "a"}, 10)
		assert.Equal(t, []string{"a"}, keys(got))
	})

	t.Run("Puts the newest item first", func(t *testing.T) {
		list := []entry{{id: "a"}, {id: "b"}}
		got := Push(list, entry{id: "c"}, 10)
		assert.Equal(t, []string{"c", "a", "b"}, keys(got))
	})

	t.Run("Moves an existing item to the front and keeps the new value", func(t *testing.T) {
		list := []entry{{id: "a"}, {id: "b", label: "old"}, {id: "c"}}
		got := Push(list, entry{id: "b", label: "new"}, 10)
		assert.Equal(t, []string{"b", "a", "c"}, keys(got))
		assert.Equal(t, "new", got[0].label, "the pushed record should replace the stale one")
	})

	t.Run("Caps the list at capacity", func(t *testing.T) {
		var list []entry
		for i := 0; i < 15; i++ {
			list = Push(list, entry{id: fmt.Sprintf("id-%d", i)}, 10)
		}
		assert.Len(t, list, 10)
		assert.Equal(t, "id-14", list[0].id)
		assert.Equal(t, "id-5", list[9].id)
	})

	t.Run("Does not modify the input slice", func(t *testing.T) {
		list := []entry{{id: "a"}, {id: "b"}}
		_ = Push(list, entry{id: "b"}, 10)
		assert.Equal(t, []string{"a", "b"}, keys(list))
	})

	t.Run("Zero capacity yields an empty list", func(t *testing.T) {
		got := Push([]entry{{id: "a"}}, entry{id: "b"}, 0)
		assert.Empty(t, got)
	})

	t.Run("Keeps keys unique after repeated pushes", func(t *testing.T) {
		var list []entry
		for _, id := range []string{"a", "b", "a", "c", "b", "a"} {
			list = Push(list, entry{id: id}, 10)
		}
		assert.Equal(t, []string{"a", "b", "c"}, keys(list))
	})
}
