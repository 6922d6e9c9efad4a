package rcarena

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	a int64
	b int32
	c int16
	d int8
}

func TestAllocZero(t *testing.T) {
	a := New[testStruct](4)
	defer a.Release()

	r := a.AllocZero()
	assert.Equal(t, testStruct{}, r.Get())
	assert.Equal(t, 1, a.Len())
}

func TestAllocMany(t *testing.T) {
	a := New[string](2)
	defer a.Release()

	assert.Nil(t, a.AllocMany())

	refs := a.AllocMany("x", "y", "z")
	require.Len(t, refs, 3)
	assert.Equal(t, 2, a.NumSegments())
	for i, want := range []string{"x", "y", "z"} {
		assert.Equal(t, want, refs[i].Get())
	}
}

func TestAllocFunc(t *testing.T) {
	a := New[testStruct](8)
	defer a.Release()

	assert.Nil(t, a.AllocFunc(0, nil))
	assert.Nil(t, a.AllocFunc(-1, nil))

	refs := a.AllocFunc(20, func(i int) testStruct {
		return testStruct{a: int64(i), d: int8(i)}
	})
	require.Len(t, refs, 20)
	assert.Equal(t, 3, a.NumSegments())
	for i, r := range refs {
		v := r.Get()
		assert.Equal(t, int64(i), v.a)
		assert.Equal(t, int8(i), v.d)
	}
}

func BenchmarkArenaAlloc(b *testing.B) {
	for _, size := range []int{8, 64, 1024} {
		b.Run(fmt.Sprintf("segment-%d", size), func(b *testing.B) {
			a := New[testStruct](size)
			defer a.Release()
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				a.Alloc(testStruct{a: int64(i)})
			}
		})
	}
}

func BenchmarkRefTryGet(b *testing.B) {
	a := New[testStruct](64)
	defer a.Release()
	r := a.Alloc(testStruct{a: 1})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := r.TryGet(); !ok {
			b.Fatal("arena dead")
		}
	}
}
