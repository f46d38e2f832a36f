package content

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_Replace(t *testing.T) {
	first := Default()
	store := NewStore(first)
	assert.Same(t, first, store.Current())
	assert.Equal(t, uint64(1), store.Version())

	second := Default()
	second.Title = "Updated"
	store.Replace(second)

	assert.Same(t, second, store.Current())
	assert.Equal(t, uint64(2), store.Version())
	assert.Equal(t, "Devansh Purohit - Development Portfolio", first.Title)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := NewStore(Default())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			store.Replace(Default())
		}()
		go func() {
			defer wg.Done()
			assert.NotNil(t, store.Current())
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(9), store.Version())
}
