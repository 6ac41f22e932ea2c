package scenegraph

import (
	"github.com/go-gl/mathgl/mgl32"
)

// PBRMetallicRoughness is the facade over the metallic-roughness block of
// one material: two texture slots (base color, metallic-roughness) and
// three factors. Reads come from the document subtree; writes land on
// every correlated engine material and in the document, then notify.
type PBRMetallicRoughness struct {
	element
	def                      *PBRMetallicRoughnessDef
	baseColorTexture         *TextureSlot
	metallicRoughnessTexture *TextureSlot
}

// newPBRMetallicRoughness normalizes the subtree (injecting the schema
// defaults for any absent factor), resolves both texture slots against
// the representative engine material, and cross-checks the rest of the
// correlated set. Construction never fails; re-running it over an already
// normalized subtree is a no-op. The correlated set must be non-empty.
func newPBRMetallicRoughness(onUpdate func(), doc *DocumentDef, def *PBRMetallicRoughnessDef, correlated *CorrelatedSet, logger Logger) *PBRMetallicRoughness {
	pbr := &PBRMetallicRoughness{
		element: makeElement(onUpdate, correlated, logger),
		def:     def,
	}

	if def.BaseColorFactor == nil {
		factor := mgl32.Vec4{1, 1, 1, 1}
		def.BaseColorFactor = &factor
	}
	if def.RoughnessFactor == nil {
		factor := float32(1)
		def.RoughnessFactor = &factor
	}
	if def.MetallicFactor == nil {
		factor := float32(1)
		def.MetallicFactor = &factor
	}

	if def.BaseColorTexture == nil {
		def.BaseColorTexture = &TextureInfoDef{Index: SentinelIndex}
	}
	if def.MetallicRoughnessTexture == nil {
		def.MetallicRoughnessTexture = &TextureInfoDef{Index: SentinelIndex}
	}

	baseColor := pbr.resolveSlot(def.BaseColorTexture, TextureUsageBaseColor)
	metallicRoughness := pbr.resolveSlot(def.MetallicRoughnessTexture, TextureUsageMetallicRoughness)

	pbr.baseColorTexture = newTextureSlot(pbr.element, doc, TextureUsageBaseColor, def.BaseColorTexture, baseColor)
	pbr.metallicRoughnessTexture = newTextureSlot(pbr.element, doc, TextureUsageMetallicRoughness, def.MetallicRoughnessTexture, metallicRoughness)

	return pbr
}

func (pbr *PBRMetallicRoughness) BaseColorFactor() mgl32.Vec4 {
	return *pbr.def.BaseColorFactor
}

func (pbr *PBRMetallicRoughness) MetallicFactor() float32 {
	return *pbr.def.MetallicFactor
}

func (pbr *PBRMetallicRoughness) RoughnessFactor() float32 {
	return *pbr.def.RoughnessFactor
}

func (pbr *PBRMetallicRoughness) BaseColorTexture() *TextureSlot {
	return pbr.baseColorTexture
}

func (pbr *PBRMetallicRoughness) MetallicRoughnessTexture() *TextureSlot {
	return pbr.metallicRoughnessTexture
}

// SetBaseColorFactor writes the first three components as the color and
// the fourth as the opacity of every correlated material, records rgba
// verbatim in the document, and notifies. Values are passed through
// unclamped.
func (pbr *PBRMetallicRoughness) SetBaseColorFactor(rgba mgl32.Vec4) {
	pbr.eachHandle(func(h MaterialHandle) {
		h.SetColor(rgba.Vec3())
		h.SetOpacity(rgba.W())
	})
	*pbr.def.BaseColorFactor = rgba
	pbr.notify()
}

func (pbr *PBRMetallicRoughness) SetMetallicFactor(v float32) {
	pbr.eachHandle(func(h MaterialHandle) {
		h.SetMetalness(v)
	})
	*pbr.def.MetallicFactor = v
	pbr.notify()
}

func (pbr *PBRMetallicRoughness) SetRoughnessFactor(v float32) {
	pbr.eachHandle(func(h MaterialHandle) {
		h.SetRoughness(v)
	})
	*pbr.def.RoughnessFactor = v
	pbr.notify()
}
