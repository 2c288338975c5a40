package memory

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/phonebook-cli/internal/core/ports/driven"
)

func TestSynchronized_DelegatesContract(t *testing.T) {
	book := Synchronized(NewScanningPhoneBook())

	assert.True(t, book.Add(1, "Ann"))
	assert.False(t, book.Add(1, "Bob"))

	got, ok := book.Search(1)
	require.True(t, ok)
	assert.Equal(t, "Ann", got)

	previous, ok := book.Update(1, "Cid")
	assert.True(t, ok)
	assert.Equal(t, "Ann", previous)

	removed, ok := book.Remove(1)
	assert.True(t, ok)
	assert.Equal(t, "Cid", removed)
	assert.Equal(t, 0, book.Len())
}

func TestSynchronized_WrapTwice(t *testing.T) {
	inner := NewIndexedPhoneBook()
	once := Synchronized(inner)
	twice := Synchronized(once)

	assert.Same(t, once, twice)
	assert.Same(t, inner, once.Unwrap())
}

func TestSynchronized_LenUnknown(t *testing.T) {
	// Embedding only the interface hides the concrete Len method.
	bare := struct{ driven.PhoneBook }{NewIndexedPhoneBook()}
	book := Synchronized(bare)

	book.Add(1, "Ann")
	assert.Equal(t, -1, book.Len())
}

func TestSynchronized_ConcurrentAddSingleWinner(t *testing.T) {
	for name, newBook := range implementations() {
		t.Run(name, func(t *testing.T) {
			book := Synchronized(newBook())

			var wins atomic.Int32
			var wg sync.WaitGroup
			numGoroutines := 50

			wg.Add(numGoroutines)
			for i := 0; i < numGoroutines; i++ {
				go func() {
					defer wg.Done()
					if book.Add(555, "caller") {
						wins.Add(1)
					}
				}()
			}
			wg.Wait()

			assert.Equal(t, int32(1), wins.Load())
			assert.Equal(t, 1, book.Len())
		})
	}
}

func TestSynchronized_ConcurrentMixedOperations(t *testing.T) {
	book := Synchronized(NewScanningPhoneBook())

	var wg sync.WaitGroup
	numOperations := 200

	wg.Add(numOperations)
	for i := 0; i < numOperations; i++ {
		go func(id int) {
			defer wg.Done()
			n := id % 10
			switch id % 4 {
			case 0:
				book.Add(n, "add")
			case 1:
				book.Update(n, "update")
			case 2:
				book.Remove(n)
			case 3:
				book.Search(n)
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, book.Len(), 10)
	scanning := book.Unwrap().(*ScanningPhoneBook)
	assertUnique(t, scanning.Contacts())
}
