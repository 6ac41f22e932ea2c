package scenegraph

import (
	"github.com/go-gl/mathgl/mgl32"
)

// TextureUsage names a texture attachment point on a material.
type TextureUsage uint32

const (
	TextureUsageBaseColor         TextureUsage = 0
	TextureUsageMetallicRoughness TextureUsage = 1
	TextureUsageNormal            TextureUsage = 2
	TextureUsageOcclusion         TextureUsage = 3
	TextureUsageEmissive          TextureUsage = 4
)

func (u TextureUsage) String() string {
	switch u {
	case TextureUsageBaseColor:
		return "base color"
	case TextureUsageMetallicRoughness:
		return "metallic-roughness"
	case TextureUsageNormal:
		return "normal"
	case TextureUsageOcclusion:
		return "occlusion"
	case TextureUsageEmissive:
		return "emissive"
	}
	return "unknown"
}

// TextureHandle is a live engine texture. The facade never creates or
// disposes handles; it only reads identity and reads/writes the transform.
type TextureHandle interface {
	Name() string
	Transform() TextureTransformDef
	SetTransform(t TextureTransformDef)
}

// MaterialHandle is a live engine material. Multiple handles may be
// correlated to one document material when the engine instances geometry;
// the facade keeps them all in agreement.
type MaterialHandle interface {
	Color() mgl32.Vec3
	SetColor(c mgl32.Vec3)
	Opacity() float32
	SetOpacity(o float32)
	Metalness() float32
	SetMetalness(m float32)
	Roughness() float32
	SetRoughness(r float32)
	Emissive() mgl32.Vec3
	SetEmissive(e mgl32.Vec3)
	Texture(usage TextureUsage) TextureHandle
	SetTexture(usage TextureUsage, tex TextureHandle)
}

// CorrelatedSet is the set of engine materials backing one document
// material. Membership is unique; the representative is the first member
// added, which keeps discovery deterministic within one construction.
type CorrelatedSet struct {
	members []MaterialHandle
	seen    map[MaterialHandle]struct{}
}

func MakeCorrelatedSet(handles ...MaterialHandle) *CorrelatedSet {
	set := &CorrelatedSet{
		seen: make(map[MaterialHandle]struct{}),
	}
	for _, h := range handles {
		set.Add(h)
	}
	return set
}

// Add inserts a handle, returning false if it was already a member.
func (set *CorrelatedSet) Add(h MaterialHandle) bool {
	if _, ok := set.seen[h]; ok {
		return false
	}
	set.seen[h] = struct{}{}
	set.members = append(set.members, h)
	return true
}

func (set *CorrelatedSet) Len() int {
	return len(set.members)
}

// Representative returns the deterministic member used for texture
// discovery, or nil for an empty set.
func (set *CorrelatedSet) Representative() MaterialHandle {
	if len(set.members) == 0 {
		return nil
	}
	return set.members[0]
}

// Each visits every member in insertion order.
func (set *CorrelatedSet) Each(fn func(h MaterialHandle)) {
	for _, h := range set.members {
		fn(h)
	}
}
