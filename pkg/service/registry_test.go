package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panekit/panekit/internal/errors"
)

func testSource() Source {
	return NewFSSource(fstest.MapFS{
		"js/Render.ContentPane.js": {Data: []byte("// content pane")},
		"js/Render.Row.js":         {Data: []byte("// row")},
	})
}

func TestRegistryAddAndGet(t *testing.T) {
	reg := NewRegistry()
	svc := ForResource("Echo.ContentPane", "js/Render.ContentPane.js", testSource())

	require.NoError(t, reg.Add(svc))

	got, ok := reg.Get("Echo.ContentPane")
	require.True(t, ok)
	assert.Same(t, svc, got)
	assert.True(t, reg.Has("Echo.ContentPane"))
	assert.Equal(t, 1, reg.Len())
}

func TestRegistryAddIdempotent(t *testing.T) {
	reg := NewRegistry()
	src := testSource()

	require.NoError(t, reg.Add(ForResource("Echo.Row", "js/Render.Row.js", src)))
	require.NoError(t, reg.Add(ForResource("Echo.Row", "js/Render.Row.js", src)))

	assert.Equal(t, 1, reg.Len())
	assert.Equal(t, []string{"Echo.Row"}, reg.IDs())
}

func TestRegistryRejectsConflictingResource(t *testing.T) {
	reg := NewRegistry()
	original := ForResource("Echo.Row", "js/Render.Row.js", testSource())
	require.NoError(t, reg.Add(original))

	err := reg.Add(ForResource("Echo.Row", "js/Other.js", testSource()))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, "E100"), "got %v", err)

	got, _ := reg.Get("Echo.Row")
	assert.Same(t, original, got, "conflicting add must keep the original")
	assert.Equal(t, 1, reg.Len())
}

func TestRegistryRejectsSameLocationFromOtherSource(t *testing.T) {
	reg := NewRegistry()
	bundled := NewFSSource(fstest.MapFS{"lib.js": {Data: []byte("// bundled")}})
	hosted := NewFSSource(fstest.MapFS{"lib.js": {Data: []byte("// hosted")}})

	original := ForResource("Vendor.Lib", "lib.js", bundled)
	require.NoError(t, reg.Add(original))

	err := reg.Add(ForResource("Vendor.Lib", "lib.js", hosted))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, "E100"), "got %v", err)

	got, _ := reg.Get("Vendor.Lib")
	require.Same(t, original, got)
	data, err := got.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "// bundled", string(data))
}

func TestRegistryRejectsInvalidService(t *testing.T) {
	reg := NewRegistry()

	assert.True(t, errors.IsCode(reg.Add(nil), "E105"))
	assert.True(t, errors.IsCode(reg.Add(ForResource("", "a.js", nil)), "E105"))
	assert.True(t, errors.IsCode(reg.Add(ForResource("A", "", nil)), "E105"))
	assert.Equal(t, 0, reg.Len())
}

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Add(ForResource("Echo.Row", "js/Render.Row.js", testSource())))

	svc, err := reg.Lookup("Echo.Row")
	require.NoError(t, err)
	assert.Equal(t, "Echo.Row", svc.ID())

	_, err = reg.Lookup("Echo.Missing")
	assert.True(t, errors.IsCode(err, "E103"))
}

func TestRegistryOrderAndClose(t *testing.T) {
	reg := NewRegistry()
	src := testSource()
	for _, id := range []string{"B", "A", "C"} {
		require.NoError(t, reg.Add(ForResource(id, id+".js", src)))
	}
	assert.Equal(t, []string{"B", "A", "C"}, reg.IDs())

	reg.Close()
	assert.Equal(t, 0, reg.Len())
	assert.Empty(t, reg.IDs())
}

func TestRegistryOnAdd(t *testing.T) {
	var added []string
	reg := NewRegistry(WithOnAdd(func(s Service) {
		added = append(added, s.ID())
	}))
	src := testSource()

	require.NoError(t, reg.Add(ForResource("Echo.Row", "js/Render.Row.js", src)))
	require.NoError(t, reg.Add(ForResource("Echo.Row", "js/Render.Row.js", src)))

	assert.Equal(t, []string{"Echo.Row"}, added, "no-op re-registration must not fire OnAdd")
}

func TestRegistryConcurrentAccess(t *testing.T) {
	reg := NewRegistry()
	src := testSource()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("Lib.%d", i%5)
			assert.NoError(t, reg.Add(ForResource(id, id+".js", src)))
		}(i)
		go func(i int) {
			defer wg.Done()
			reg.Get(fmt.Sprintf("Lib.%d", i%5))
			reg.IDs()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 5, reg.Len())
	assert.Len(t, reg.IDs(), 5)
}

func TestJavaScriptServiceLoad(t *testing.T) {
	svc := ForResource("Echo.Row", "/js/Render.Row.js", testSource())

	data, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "// row", string(data))
	assert.Equal(t, ContentTypeJavaScript, svc.ContentType())

	missing := ForResource("Echo.Gone", "js/Gone.js", testSource())
	_, err = missing.Load(context.Background())
	assert.True(t, errors.IsCode(err, "E104"))

	_, err = ForResource("Echo.NoSource", "x.js", nil).Load(context.Background())
	assert.True(t, errors.IsCode(err, "E104"))
}
