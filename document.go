package scenegraph

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
)

// SentinelIndex is the document encoding for "no texture bound" at a slot.
const SentinelIndex = -1

// TextureTransformDef is the UV transform carried by a texture reference.
type TextureTransformDef struct {
	Offset   mgl32.Vec2 `json:"offset"`
	Rotation float32    `json:"rotation"`
	Scale    mgl32.Vec2 `json:"scale"`
}

// IdentityTextureTransform returns the transform that leaves UVs untouched.
func IdentityTextureTransform() TextureTransformDef {
	return TextureTransformDef{Scale: mgl32.Vec2{1, 1}}
}

// TextureInfoDef is a document texture reference: an index into the
// document texture list, or SentinelIndex when the slot is unbound.
type TextureInfoDef struct {
	Index     int                  `json:"index"`
	TexCoord  int                  `json:"texCoord,omitempty"`
	Transform *TextureTransformDef `json:"transform,omitempty"`
}

// PBRMetallicRoughnessDef is the metallic-roughness block of a material.
// Optional fields are pointers so that an absent field is distinguishable
// from a zero value until defaults are injected at facade construction.
type PBRMetallicRoughnessDef struct {
	BaseColorFactor          *mgl32.Vec4     `json:"baseColorFactor,omitempty"`
	MetallicFactor           *float32        `json:"metallicFactor,omitempty"`
	RoughnessFactor          *float32        `json:"roughnessFactor,omitempty"`
	BaseColorTexture         *TextureInfoDef `json:"baseColorTexture,omitempty"`
	MetallicRoughnessTexture *TextureInfoDef `json:"metallicRoughnessTexture,omitempty"`
}

// MaterialDef is one material entry of the document.
type MaterialDef struct {
	Name                 string                   `json:"name,omitempty"`
	PBRMetallicRoughness *PBRMetallicRoughnessDef `json:"pbrMetallicRoughness,omitempty"`
	NormalTexture        *TextureInfoDef          `json:"normalTexture,omitempty"`
	OcclusionTexture     *TextureInfoDef          `json:"occlusionTexture,omitempty"`
	EmissiveTexture      *TextureInfoDef          `json:"emissiveTexture,omitempty"`
	EmissiveFactor       *mgl32.Vec3              `json:"emissiveFactor,omitempty"`
}

// TextureDef is one entry of the document texture list.
type TextureDef struct {
	Name   string `json:"name,omitempty"`
	Source string `json:"source,omitempty"`
}

// DocumentDef is the serializable scene description the facades mutate.
// The document owns every subtree; facades hold non-owning pointers into
// it and never replace or delete a subtree.
type DocumentDef struct {
	Materials []*MaterialDef `json:"materials,omitempty"`
	Textures  []TextureDef   `json:"textures,omitempty"`
}

// EnsureTexture returns the index of the texture named name, appending a
// new entry when the document does not list it yet.
func (doc *DocumentDef) EnsureTexture(name string) int {
	for i, tex := range doc.Textures {
		if tex.Name == name {
			return i
		}
	}
	doc.Textures = append(doc.Textures, TextureDef{Name: name})
	return len(doc.Textures) - 1
}

// SaveDocument serializes the document to filename as indented JSON.
func SaveDocument(doc *DocumentDef, filename string) error {
	bytes, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}
	if err := os.WriteFile(filename, bytes, 0644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

// LoadDocument reads a document previously written by SaveDocument.
func LoadDocument(filename string) (*DocumentDef, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	var doc DocumentDef
	if err := json.Unmarshal(bytes, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return &doc, nil
}
