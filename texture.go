package scenegraph

// TextureSlot binds one named texture attachment point of a material: the
// document texture reference on one side, the live engine texture shared
// by every correlated material on the other. The reference record is
// always present after construction; Index == SentinelIndex means the
// slot is unbound and no live texture is held.
type TextureSlot struct {
	element
	usage   TextureUsage
	doc     *DocumentDef
	info    *TextureInfoDef
	texture TextureHandle
}

func newTextureSlot(base element, doc *DocumentDef, usage TextureUsage, info *TextureInfoDef, texture TextureHandle) *TextureSlot {
	return &TextureSlot{
		element: base,
		usage:   usage,
		doc:     doc,
		info:    info,
		texture: texture,
	}
}

func (s *TextureSlot) Usage() TextureUsage {
	return s.usage
}

// TextureInfo exposes the document reference record the slot mutates.
func (s *TextureSlot) TextureInfo() *TextureInfoDef {
	return s.info
}

// Texture returns the live engine texture, or nil when unbound.
func (s *TextureSlot) Texture() TextureHandle {
	return s.texture
}

// Bound reports whether a live texture is attached to this slot.
func (s *TextureSlot) Bound() bool {
	return s.info.Index != SentinelIndex
}

// SetTexture attaches tex to this slot on every correlated material and
// in the document, then notifies. A nil tex detaches the slot and resets
// the document reference to the sentinel. Textures the document has not
// seen before are appended to its texture list.
func (s *TextureSlot) SetTexture(tex TextureHandle) {
	s.eachHandle(func(h MaterialHandle) {
		h.SetTexture(s.usage, tex)
	})

	s.texture = tex
	if tex == nil {
		s.info.Index = SentinelIndex
	} else {
		s.info.Index = s.doc.EnsureTexture(tex.Name())
	}

	s.notify()
}

// Transform returns the document UV transform for this slot, or the
// identity transform when none is recorded.
func (s *TextureSlot) Transform() TextureTransformDef {
	if s.info.Transform == nil {
		return IdentityTextureTransform()
	}
	return *s.info.Transform
}

// SetTransform writes the UV transform onto the live texture and into the
// document reference, then notifies.
func (s *TextureSlot) SetTransform(t TextureTransformDef) {
	if s.texture != nil {
		s.texture.SetTransform(t)
	}

	if s.info.Transform == nil {
		s.info.Transform = &TextureTransformDef{}
	}
	*s.info.Transform = t

	s.notify()
}
