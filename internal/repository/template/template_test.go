package template

import (
	"testing"

	"watermark-studio/internal/domain"

	"github.com/stretchr/testify/require"
)

func testDocument(name string) *Document {
	spec := domain.DefaultSpec()
	spec.Text.Content = "© studio"
	spec.Anchor = domain.AnchorTopLeft
	spec.Offset = domain.PixelOffset{DX: 12, DY: -4}

	return &Document{
		Name:   name,
		Spec:   spec,
		Offset: domain.RatioOffset{RX: 0.013, RY: -0.005},
		Export: domain.DefaultExportSettings("/tmp/out"),
	}
}

func TestStoreRoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())
	doc := testDocument("default")

	require.NoError(t, s.Save(doc))

	loaded, err := s.Load("default")
	require.NoError(t, err)
	require.Equal(t, doc.Spec, loaded.Spec)
	require.Equal(t, doc.Offset, loaded.Offset)
	require.Equal(t, doc.Export, loaded.Export)
	require.False(t, loaded.SavedAt.IsZero())
}

func TestStoreList(t *testing.T) {
	s := NewStore(t.TempDir())

	names, err := s.List()
	require.NoError(t, err)
	require.Empty(t, names)

	require.NoError(t, s.Save(testDocument("beta")))
	require.NoError(t, s.Save(testDocument("alpha")))

	names, err = s.List()
	require.NoError(t, err)
	require.Equal(t, []string{"alpha", "beta"}, names)
}

func TestStoreDelete(t *testing.T) {
	s := NewStore(t.TempDir())
	require.NoError(t, s.Save(testDocument("gone")))

	require.NoError(t, s.Delete("gone"))

	_, err := s.Load("gone")
	require.ErrorIs(t, err, ErrTemplateNotFound)
	require.ErrorIs(t, s.Delete("gone"), ErrTemplateNotFound)
}

func TestStoreSaveEmptyName(t *testing.T) {
	s := NewStore(t.TempDir())
	require.ErrorIs(t, s.Save(testDocument("")), ErrEmptyTemplateName)
}
