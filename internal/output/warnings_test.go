package output

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarnings_FlushInOrder(t *testing.T) {
	var buf bytes.Buffer
	SetupLogging(&buf, LogConfig{})

	w := NewWarnings()
	w.Add("first")
	w.Add("overwriting %s", "a.txt")
	assert.Equal(t, 2, w.Len())

	w.Flush()
	out := buf.String()
	assert.Contains(t, out, "overwriting a.txt")
	assert.Less(t, strings.Index(out, "first"), strings.Index(out, "overwriting a.txt"))
}

func TestWarnings_NilIsSafe(t *testing.T) {
	var w *Warnings
	w.Add("ignored")
	w.Flush()

	assert.Equal(t, 0, w.Len())
}

func TestWarnings_ConcurrentAdd(t *testing.T) {
	w := NewWarnings()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w.Add("warning %d", i)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, w.Len())
}

func TestWarnings_Flush(t *testing.T) {
	var buf bytes.Buffer
	SetupLogging(&buf, LogConfig{})

	w := NewWarnings()
	w.Add("blueprint store missing")
	w.Flush()

	assert.Contains(t, buf.String(), "blueprint store missing")
	assert.Equal(t, 0, w.Len())
}
