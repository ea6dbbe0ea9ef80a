package collection

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LoveWonYoung/nixnet/status"
)

type item struct {
	index int
	name  string
}

// listSource is a native list that can be changed behind the collection.
type listSource struct {
	names      []string
	lenCalls   int
	namesCalls int
	deleted    []string
	failCreate error
}

func (s *listSource) Len() (int, error) {
	s.lenCalls++
	return len(s.names), nil
}

func (s *listSource) Names() ([]string, error) {
	s.namesCalls++
	return append([]string(nil), s.names...), nil
}

func (s *listSource) Resolve(i int, name string) (item, error) {
	return item{index: i, name: name}, nil
}

func (s *listSource) Create(name string) error {
	if s.failCreate != nil {
		return s.failCreate
	}
	s.names = append(s.names, name)
	return nil
}

func (s *listSource) Delete(name string) error {
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			s.deleted = append(s.deleted, name)
			return nil
		}
	}
	return status.ErrNotFound
}

func TestLazyNameCache(t *testing.T) {
	src := &listSource{names: []string{"A", "B", "C"}}
	c := New[item](src)
	require.Equal(t, 0, src.namesCalls)

	got, err := c.Get(1)
	require.NoError(t, err)
	require.Equal(t, item{index: 1, name: "B"}, got)

	got, err = c.GetByName("C")
	require.NoError(t, err)
	require.Equal(t, 2, got.index)

	ok, err := c.Contains("A")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, src.namesCalls)

	n, err := c.Len()
	require.NoError(t, err)
	require.Equal(t, 3, n)
	_, _ = c.Len()
	require.Equal(t, 2, src.lenCalls)
}

func TestLookupErrors(t *testing.T) {
	c := New[item](&listSource{names: []string{"A"}})

	_, err := c.Get(1)
	require.ErrorIs(t, err, status.ErrIndexOutOfRange)
	_, err = c.Get(-1)
	require.ErrorIs(t, err, status.ErrIndexOutOfRange)

	_, err = c.GetByName("missing")
	require.ErrorIs(t, err, status.ErrNotFound)
}

func TestStaleCache(t *testing.T) {
	src := &listSource{names: []string{"A", "B", "C"}}
	c := New[item](src)

	_, err := c.GetByName("B")
	require.NoError(t, err)

	// Removed through another path.
	src.names = []string{"A", "C"}

	n, err := c.Len()
	require.NoError(t, err)
	require.Equal(t, 2, n)

	// The cache still answers for the removed name.
	got, err := c.GetByName("B")
	require.NoError(t, err)
	require.Equal(t, "B", got.name)

	// Items notices the length mismatch and refetches.
	items, err := c.Items()
	require.NoError(t, err)
	require.Equal(t, []item{{0, "A"}, {1, "C"}}, items)
	require.Equal(t, 2, src.namesCalls)

	_, err = c.GetByName("B")
	require.ErrorIs(t, err, status.ErrNotFound)
}

func TestMutationsInvalidate(t *testing.T) {
	src := &listSource{names: []string{"A"}}
	c := NewMutable[item](src, src)

	_, err := c.Names()
	require.NoError(t, err)

	added, err := c.Add("B")
	require.NoError(t, err)
	require.Equal(t, item{index: 1, name: "B"}, added)

	names, err := c.Names()
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, names)

	require.NoError(t, c.RemoveAt(0))
	require.Equal(t, []string{"A"}, src.deleted)
	names, err = c.Names()
	require.NoError(t, err)
	require.Equal(t, []string{"B"}, names)

	require.NoError(t, c.Remove("B"))
	ok, err := c.Contains("B")
	require.NoError(t, err)
	require.False(t, ok)

	require.ErrorIs(t, c.RemoveAt(0), status.ErrIndexOutOfRange)
}

func TestFailedAddKeepsCache(t *testing.T) {
	boom := errors.New("duplicate")
	src := &listSource{names: []string{"A"}, failCreate: boom}
	c := NewMutable[item](src, src)
	_, _ = c.Names()

	_, err := c.Add("A")
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, src.namesCalls)
}

func TestReadOnly(t *testing.T) {
	c := New[item](&listSource{})
	_, err := c.Add("x")
	require.ErrorIs(t, err, status.ErrInvalidArgument)
	require.ErrorIs(t, c.Remove("x"), status.ErrInvalidArgument)
}

func TestNamesIsACopy(t *testing.T) {
	c := New[item](&listSource{names: strings.Split("A,B", ",")})
	names, err := c.Names()
	require.NoError(t, err)
	names[0] = "Z"
	again, _ := c.Names()
	require.Equal(t, "A", again[0])
}
