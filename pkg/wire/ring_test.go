package wire

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRingOrder(t *testing.T) {
	var r Ring
	for i := 0; i < 10; i++ {
		require.True(t, r.Push(byte('a'+i)))
	}
	for i := 0; i < 10; i++ {
		b, ok := r.Pop()
		require.True(t, ok)
		require.Equal(t, byte('a'+i), b)
	}
	_, ok := r.Pop()
	require.False(t, ok)
	require.True(t, r.Empty())
}

func TestRingFullDrops(t *testing.T) {
	var r Ring
	for i := 0; i < RingSize-1; i++ {
		require.True(t, r.Push(byte(i)))
	}
	require.False(t, r.Push(0xff))
	b, ok := r.Pop()
	require.True(t, ok)
	require.Equal(t, byte(0), b)
	// one slot freed
	require.True(t, r.Push(0xfe))
	require.False(t, r.Push(0xff))
}

func TestRingWrapAround(t *testing.T) {
	var r Ring
	for i := 0; i < RingSize*3; i++ {
		require.True(t, r.Push(byte(i)))
		b, ok := r.Pop()
		require.True(t, ok)
		require.Equal(t, byte(i), b)
	}
	require.True(t, r.Empty())
}

func TestRingSingleProducerSingleConsumer(t *testing.T) {
	var r Ring
	const total = 10000
	done := make(chan []byte)
	go func() {
		got := make([]byte, 0, total)
		for len(got) < total {
			if b, ok := r.Pop(); ok {
				got = append(got, b)
			}
		}
		done <- got
	}()
	for i := 0; i < total; i++ {
		for !r.Push(byte(i)) {
		}
	}
	select {
	case got := <-done:
		for i, b := range got {
			require.Equalf(t, byte(i), b, "byte %d out of order", i)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("consumer timeout")
	}
}
