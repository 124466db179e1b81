package hashtable

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimplePutGetRemove(t *testing.T) {
	table := NewSimpleHashTable()
	table.Put("key1", []byte("element1"))
	table.Put("key2", []byte("element2"))
	assert.Equal(t, 2, table.Size())

	value, ok := table.Get("key1")
	require.True(t, ok)
	assert.Equal(t, []byte("element1"), value)
	assert.True(t, table.HasKey("key2"))
	assert.False(t, table.HasKey("key3"))

	value, ok = table.Remove("key1")
	require.True(t, ok)
	assert.Equal(t, []byte("element1"), value)
	assert.Equal(t, 1, table.Size())

	_, ok = table.Remove("key1")
	assert.False(t, ok)
}

func TestSimpleKeys(t *testing.T) {
	table := NewSimpleHashTable()
	assert.Nil(t, table.Keys())
	table.Put("a", nil)
	table.Put("b", nil)
	assert.ElementsMatch(t, []string{"a", "b"}, table.Keys())
}

func TestSimpleRelease(t *testing.T) {
	table := NewSimpleHashTable()
	table.Put("key", []byte("element"))
	table.Release()
	assert.Panics(t, func() { table.Get("key") })
}

// 两种实现对同一串操作应当表现一致
func TestImplementationParity(t *testing.T) {
	implementations := map[string]HashTable{
		"chained": NewChainedHashTable(16, false),
		"simple":  NewSimpleHashTable(),
	}
	for name, table := range implementations {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 20; i++ {
				table.Put(fmt.Sprintf("key%d", i), []byte(fmt.Sprintf("element%d", i)))
			}
			assert.Equal(t, 20, table.Size())

			value, ok := table.Get("key7")
			require.True(t, ok)
			assert.Equal(t, []byte("element7"), value)

			value, ok = table.Remove("key7")
			require.True(t, ok)
			assert.Equal(t, []byte("element7"), value)
			assert.Equal(t, 19, table.Size())
			assert.False(t, table.HasKey("key7"))

			visited := 0
			table.ForEach(func(string, []byte) bool {
				visited++
				return true
			})
			assert.Equal(t, 19, visited)
			assert.Len(t, table.Keys(), 19)

			table.Release()
		})
	}
}
