package scenegraph

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boundMaterial(t *testing.T, handles ...*StandardMaterial) (*Material, *DocumentDef, *int) {
	t.Helper()
	set := MakeCorrelatedSet()
	for _, h := range handles {
		set.Add(h)
	}
	doc := &DocumentDef{}
	notify, count := countingNotify()
	mat := NewMaterial(notify, doc, &MaterialDef{}, set, nil)
	require.True(t, mat.Bound())
	return mat, doc, count
}

func TestTextureSlotSetTextureAttachesEverywhere(t *testing.T) {
	a := NewStandardMaterial()
	b := NewStandardMaterial()
	mat, doc, count := boundMaterial(t, a, b)

	tex := NewStandardTexture("normals")
	slot := mat.NormalTexture()
	slot.SetTexture(tex)

	assert.Equal(t, tex, a.Texture(TextureUsageNormal))
	assert.Equal(t, tex, b.Texture(TextureUsageNormal))
	assert.True(t, slot.Bound())
	assert.Equal(t, tex, slot.Texture())

	// The document gained a texture entry and the reference points at it.
	require.Len(t, doc.Textures, 1)
	assert.Equal(t, "normals", doc.Textures[0].Name)
	assert.Equal(t, 0, slot.TextureInfo().Index)

	assert.Equal(t, 1, *count)
}

func TestTextureSlotSetTextureNilDetaches(t *testing.T) {
	h := NewStandardMaterial()
	mat, _, count := boundMaterial(t, h)

	slot := mat.EmissiveTexture()
	slot.SetTexture(NewStandardTexture("glow"))
	slot.SetTexture(nil)

	assert.Nil(t, h.Texture(TextureUsageEmissive))
	assert.Nil(t, slot.Texture())
	assert.False(t, slot.Bound())
	assert.Equal(t, SentinelIndex, slot.TextureInfo().Index)
	assert.Equal(t, 2, *count)
}

func TestTextureSlotSetTextureReusesDocumentEntry(t *testing.T) {
	h := NewStandardMaterial()
	mat, doc, _ := boundMaterial(t, h)

	mat.NormalTexture().SetTexture(NewStandardTexture("shared"))
	mat.OcclusionTexture().SetTexture(NewStandardTexture("shared"))

	assert.Len(t, doc.Textures, 1)
	assert.Equal(t, 0, mat.NormalTexture().TextureInfo().Index)
	assert.Equal(t, 0, mat.OcclusionTexture().TextureInfo().Index)
}

func TestTextureSlotTransformDefaultsToIdentity(t *testing.T) {
	h := NewStandardMaterial()
	mat, _, _ := boundMaterial(t, h)

	got := mat.NormalTexture().Transform()
	assert.Equal(t, mgl32.Vec2{}, got.Offset)
	assert.Equal(t, float32(0), got.Rotation)
	assert.Equal(t, mgl32.Vec2{1, 1}, got.Scale)
}

func TestTextureSlotSetTransformWritesTextureAndDocument(t *testing.T) {
	h := NewStandardMaterial()
	mat, _, count := boundMaterial(t, h)

	tex := NewStandardTexture("normals")
	slot := mat.NormalTexture()
	slot.SetTexture(tex)

	transform := TextureTransformDef{
		Offset:   mgl32.Vec2{0.5, 0.25},
		Rotation: 1.5,
		Scale:    mgl32.Vec2{2, 2},
	}
	slot.SetTransform(transform)

	assert.Equal(t, transform, tex.Transform())
	require.NotNil(t, slot.TextureInfo().Transform)
	assert.Equal(t, transform, *slot.TextureInfo().Transform)
	assert.Equal(t, transform, slot.Transform())
	assert.Equal(t, 2, *count)
}

func TestTextureSlotSetTransformOnUnboundSlotUpdatesDocumentOnly(t *testing.T) {
	h := NewStandardMaterial()
	mat, _, count := boundMaterial(t, h)

	slot := mat.OcclusionTexture()
	transform := TextureTransformDef{Scale: mgl32.Vec2{4, 4}}
	slot.SetTransform(transform)

	assert.Equal(t, transform, slot.Transform())
	assert.Equal(t, 1, *count)
}
