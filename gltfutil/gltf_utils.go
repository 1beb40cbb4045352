package gltfutil

import (
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

func Load(path string) (*gltf.Document, error) {
	return gltf.Open(path)
}

// FindSkin returns the skin with the given name, or the first skin if
// name is empty. Returns nil if the document has no matching skin.
func FindSkin(doc *gltf.Document, name string) *gltf.Skin {
	for _, skin := range doc.Skins {
		if name == "" || skin.Name == name {
			return skin
		}
	}
	return nil
}

func readAccessor(doc *gltf.Document, index *uint32) (interface{}, error) {
	if index == nil {
		return nil, errors.New("missing accessor reference")
	}
	if int(*index) >= len(doc.Accessors) {
		return nil, errors.Errorf("accessor index %d out of range", *index)
	}
	return modeler.ReadAccessor(doc, doc.Accessors[*index], nil)
}

// ReadSamplerInput returns an animation sampler's keyframe timestamps
// in seconds.
func ReadSamplerInput(doc *gltf.Document, sampler *gltf.AnimationSampler) ([]float32, error) {
	data, err := readAccessor(doc, sampler.Input)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read sampler input")
	}
	times, ok := data.([]float32)
	if !ok {
		return nil, errors.Errorf("sampler input is not a float scalar array: %T", data)
	}
	return times, nil
}

// ReadSamplerRotations returns a sampler's output as quaternions.
func ReadSamplerRotations(doc *gltf.Document, sampler *gltf.AnimationSampler) ([][4]float32, error) {
	data, err := readAccessor(doc, sampler.Output)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read sampler output")
	}
	rotations, ok := data.([][4]float32)
	if !ok {
		return nil, errors.Errorf("sampler output is not a vec4 array: %T", data)
	}
	return rotations, nil
}

// ReadSamplerTranslations returns a sampler's output as vectors.
func ReadSamplerTranslations(doc *gltf.Document, sampler *gltf.AnimationSampler) ([][3]float32, error) {
	data, err := readAccessor(doc, sampler.Output)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read sampler output")
	}
	translations, ok := data.([][3]float32)
	if !ok {
		return nil, errors.Errorf("sampler output is not a vec3 array: %T", data)
	}
	return translations, nil
}

// ReadInverseBindMatrices returns one column-major 4x4 matrix per
// joint of the skin.
func ReadInverseBindMatrices(doc *gltf.Document, skin *gltf.Skin) ([][4][4]float32, error) {
	data, err := readAccessor(doc, skin.InverseBindMatrices)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read inverse bind matrices of skin %q", skin.Name)
	}
	matrices, ok := data.([][4][4]float32)
	if !ok {
		return nil, errors.Errorf("inverse bind matrices accessor is not a mat4 array: %T", data)
	}
	return matrices, nil
}
