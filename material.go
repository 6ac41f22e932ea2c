package scenegraph

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Material is the top-level facade over one document material entry and
// the set of engine materials correlated to it. It owns the
// metallic-roughness block facade and the normal, occlusion and emissive
// texture slots.
//
// A Material constructed without correlated engine materials is detached:
// only the base state is set, no sub-facades exist, and the typed
// accessors below must not be used. The detached/bound state is fixed for
// the facade's lifetime.
type Material struct {
	element
	doc              *DocumentDef
	def              *MaterialDef
	pbr              *PBRMetallicRoughness
	normalTexture    *TextureSlot
	occlusionTexture *TextureSlot
	emissiveTexture  *TextureSlot
}

// NewMaterial builds the facade for def. The correlated set (which may be
// nil or empty) is supplied by the scene-graph layer that decided which
// engine materials back this document entry; the facade never creates or
// destroys its members. onUpdate fires once after every completed write.
// Construction never fails.
func NewMaterial(onUpdate func(), doc *DocumentDef, def *MaterialDef, correlated *CorrelatedSet, logger Logger) *Material {
	mat := &Material{
		element: makeElement(onUpdate, correlated, logger),
		doc:     doc,
		def:     def,
	}

	if !mat.bound() {
		return mat
	}

	if def.PBRMetallicRoughness == nil {
		def.PBRMetallicRoughness = &PBRMetallicRoughnessDef{}
	}
	mat.pbr = newPBRMetallicRoughness(onUpdate, doc, def.PBRMetallicRoughness, correlated, logger)

	if def.EmissiveFactor == nil {
		factor := mgl32.Vec3{0, 0, 0}
		def.EmissiveFactor = &factor
	}

	if def.NormalTexture == nil {
		def.NormalTexture = &TextureInfoDef{Index: SentinelIndex}
	}
	if def.OcclusionTexture == nil {
		def.OcclusionTexture = &TextureInfoDef{Index: SentinelIndex}
	}
	if def.EmissiveTexture == nil {
		def.EmissiveTexture = &TextureInfoDef{Index: SentinelIndex}
	}

	normal := mat.resolveSlot(def.NormalTexture, TextureUsageNormal)
	occlusion := mat.resolveSlot(def.OcclusionTexture, TextureUsageOcclusion)
	emissive := mat.resolveSlot(def.EmissiveTexture, TextureUsageEmissive)

	mat.normalTexture = newTextureSlot(mat.element, doc, TextureUsageNormal, def.NormalTexture, normal)
	mat.occlusionTexture = newTextureSlot(mat.element, doc, TextureUsageOcclusion, def.OcclusionTexture, occlusion)
	mat.emissiveTexture = newTextureSlot(mat.element, doc, TextureUsageEmissive, def.EmissiveTexture, emissive)

	return mat
}

// Bound reports whether the material has correlated engine materials.
func (mat *Material) Bound() bool {
	return mat.bound()
}

// Name is read-only; there is no default injection for it.
func (mat *Material) Name() string {
	return mat.def.Name
}

func (mat *Material) PBRMetallicRoughness() *PBRMetallicRoughness {
	return mat.pbr
}

func (mat *Material) NormalTexture() *TextureSlot {
	return mat.normalTexture
}

func (mat *Material) OcclusionTexture() *TextureSlot {
	return mat.occlusionTexture
}

func (mat *Material) EmissiveTexture() *TextureSlot {
	return mat.emissiveTexture
}

func (mat *Material) EmissiveFactor() mgl32.Vec3 {
	return *mat.def.EmissiveFactor
}

// SetEmissiveFactor writes rgb onto every correlated material and into
// the document, then notifies.
func (mat *Material) SetEmissiveFactor(rgb mgl32.Vec3) {
	mat.eachHandle(func(h MaterialHandle) {
		h.SetEmissive(rgb)
	})
	*mat.def.EmissiveFactor = rgb
	mat.notify()
}
