package transport

import (
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryCallSettlesOnce(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	ch := r.Register("__jp1")
	assert.Equal(t, 1, r.Pending())

	assert.True(t, r.Call("__jp1", json.RawMessage(`[1]`)))
	assert.False(t, r.Call("__jp1", json.RawMessage(`[2]`)))
	assert.False(t, r.Expire("__jp1"))
	assert.Zero(t, r.Pending())

	d := <-ch
	require.NoError(t, d.Err)
	assert.JSONEq(t, `[1]`, string(d.Payload))
}

func TestRegistryExpireThenLateCall(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	ch := r.Register("__jp2")
	assert.True(t, r.Expire("__jp2"))
	assert.False(t, r.Call("__jp2", json.RawMessage(`{}`)))

	select {
	case <-ch:
		t.Fatal("expired callback must not deliver")
	default:
	}
}

func TestRegistryFail(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	ch := r.Register("__jp3")
	boom := stdErrors.New("load failed")
	assert.True(t, r.Fail("__jp3", boom))

	d := <-ch
	assert.ErrorIs(t, d.Err, boom)
}

func TestRegistryConcurrentNoCrossTalk(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	const n = 50

	channels := make([]<-chan Delivery, n)
	for i := range n {
		channels[i] = r.Register(fmt.Sprintf("cb%d", i))
	}

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Call(fmt.Sprintf("cb%d", i), json.RawMessage(fmt.Sprintf(`%d`, i)))
		}(i)
	}
	wg.Wait()

	for i, ch := range channels {
		d := <-ch
		assert.Equal(t, fmt.Sprintf(`%d`, i), string(d.Payload))
	}
	assert.Zero(t, r.Pending())
}

func TestNextCallbackUnique(t *testing.T) {
	t.Parallel()

	a := nextCallback(DefaultCallbackPrefix)
	b := nextCallback(DefaultCallbackPrefix)
	assert.NotEqual(t, a, b)
	assert.Contains(t, a, "__jp")
}
