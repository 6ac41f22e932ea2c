package scenegraph

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// HandleId identifies a standard handle instance.
type HandleId string

func makeHandleId() HandleId {
	return HandleId(uuid.NewString())
}

// StandardTexture is a plain attribute-holder implementation of
// TextureHandle for embedders without a full engine, and for tests.
type StandardTexture struct {
	id        HandleId
	name      string
	transform TextureTransformDef
}

func NewStandardTexture(name string) *StandardTexture {
	return &StandardTexture{
		id:        makeHandleId(),
		name:      name,
		transform: IdentityTextureTransform(),
	}
}

func (t *StandardTexture) Id() HandleId {
	return t.id
}

func (t *StandardTexture) Name() string {
	return t.name
}

func (t *StandardTexture) Transform() TextureTransformDef {
	return t.transform
}

func (t *StandardTexture) SetTransform(transform TextureTransformDef) {
	t.transform = transform
}

// StandardMaterial is a plain attribute-holder implementation of
// MaterialHandle, mirroring the attribute defaults of a standard
// physically-based engine material.
type StandardMaterial struct {
	id        HandleId
	color     mgl32.Vec3
	opacity   float32
	metalness float32
	roughness float32
	emissive  mgl32.Vec3
	textures  map[TextureUsage]TextureHandle
}

func NewStandardMaterial() *StandardMaterial {
	return &StandardMaterial{
		id:        makeHandleId(),
		color:     mgl32.Vec3{1, 1, 1},
		opacity:   1,
		metalness: 1,
		roughness: 1,
		textures:  make(map[TextureUsage]TextureHandle),
	}
}

func (m *StandardMaterial) Id() HandleId {
	return m.id
}

func (m *StandardMaterial) Color() mgl32.Vec3 {
	return m.color
}

func (m *StandardMaterial) SetColor(c mgl32.Vec3) {
	m.color = c
}

func (m *StandardMaterial) Opacity() float32 {
	return m.opacity
}

func (m *StandardMaterial) SetOpacity(o float32) {
	m.opacity = o
}

func (m *StandardMaterial) Metalness() float32 {
	return m.metalness
}

func (m *StandardMaterial) SetMetalness(v float32) {
	m.metalness = v
}

func (m *StandardMaterial) Roughness() float32 {
	return m.roughness
}

func (m *StandardMaterial) SetRoughness(v float32) {
	m.roughness = v
}

func (m *StandardMaterial) Emissive() mgl32.Vec3 {
	return m.emissive
}

func (m *StandardMaterial) SetEmissive(e mgl32.Vec3) {
	m.emissive = e
}

func (m *StandardMaterial) Texture(usage TextureUsage) TextureHandle {
	return m.textures[usage]
}

func (m *StandardMaterial) SetTexture(usage TextureUsage, tex TextureHandle) {
	if tex == nil {
		delete(m.textures, usage)
		return
	}
	m.textures[usage] = tex
}
