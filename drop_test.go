package rcarena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tracked struct {
	id  int
	log *[]int
}

func (v *tracked) Drop() {
	*v.log = append(*v.log, v.id)
}

type valueDropper struct {
	count *int
}

func (v valueDropper) Drop() {
	*v.count++
}

func TestDropExactlyOnceInOrder(t *testing.T) {
	var dropped []int
	a := New[tracked](3)
	for i := 0; i < 10; i++ {
		a.Alloc(tracked{id: i, log: &dropped})
	}
	b := a.Clone()

	a.Release()
	require.Empty(t, dropped, "values dropped while a handle was still live")

	b.Release()
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, dropped)

	b.Release()
	a.Release()
	assert.Len(t, dropped, 10)
}

func TestDropValueReceiver(t *testing.T) {
	count := 0
	a := New[valueDropper](2)
	a.AllocFunc(5, func(int) valueDropper { return valueDropper{count: &count} })
	a.Release()
	assert.Equal(t, 5, count)
}

func TestDropPointerElements(t *testing.T) {
	var dropped []int
	a := New[*tracked](4)
	a.Alloc(&tracked{id: 1, log: &dropped})
	a.Alloc(&tracked{id: 2, log: &dropped})
	a.Release()
	assert.Equal(t, []int{1, 2}, dropped)
}

func TestDropFunc(t *testing.T) {
	var (
		seen      []string
		selfDrops []int
		refs      []Ref[string]
	)
	a, err := NewWithConfig[string](Config{SegmentSize: 2}, WithDropFunc(func(s *string) {
		seen = append(seen, *s)
		// the arena is already dead while values are dropped
		for _, r := range refs {
			if r.Alive() {
				selfDrops = append(selfDrops, 1)
			}
		}
	}))
	require.NoError(t, err)

	refs = a.AllocMany("a", "b", "c")
	a.Release()

	assert.Equal(t, []string{"a", "b", "c"}, seen)
	assert.Empty(t, selfDrops)
}

func TestDropRunsBothHooks(t *testing.T) {
	var (
		dropped []int
		hooked  []int
	)
	a, err := NewWithConfig[tracked](Config{SegmentSize: 4}, WithDropFunc(func(v *tracked) {
		hooked = append(hooked, v.id)
	}))
	require.NoError(t, err)

	a.Alloc(tracked{id: 7, log: &dropped})
	a.Release()

	assert.Equal(t, []int{7}, dropped)
	assert.Equal(t, []int{7}, hooked)
}
