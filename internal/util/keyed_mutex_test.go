package util

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	m := NewKeyedMutex()

	const iterations = 200

	var counter int
	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range iterations {
				m.Lock("employee-a")
				counter++
				m.Unlock("employee-a")
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 4*iterations, counter)
}

func TestKeyedMutex_DistinctKeysDoNotBlock(t *testing.T) {
	m := NewKeyedMutex()

	m.Lock("employee-a")

	done := make(chan struct{})
	go func() {
		m.Lock("employee-b")
		m.Unlock("employee-b")
		close(done)
	}()

	<-done
	m.Unlock("employee-a")
}

func TestKeyedMutex_DropsIdleEntries(t *testing.T) {
	m := NewKeyedMutex()

	m.Lock("employee-a")
	m.Unlock("employee-a")

	m.mu.Lock()
	defer m.mu.Unlock()
	assert.Empty(t, m.locks)
}
