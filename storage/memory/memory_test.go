package memory

import (
	"sync"
	"testing"

	"github.com/dchernov/campuskit/storage/storetest"
)

func TestMemoryStore(t *testing.T) {
	storetest.Run(t, NewStore())
}

func TestConcurrentAccess(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Set("shared", "value")
				s.Get("shared")
				s.Delete("other")
			}
		}()
	}
	wg.Wait()
}
