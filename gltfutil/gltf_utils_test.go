package gltfutil

import (
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

func TestFindSkin(t *testing.T) {
	doc := gltf.NewDocument()
	doc.Skins = append(doc.Skins, &gltf.Skin{Name: "body"}, &gltf.Skin{Name: "cape"})

	if skin := FindSkin(doc, ""); skin == nil || skin.Name != "body" {
		t.Error("expected first skin for empty name")
	}
	if skin := FindSkin(doc, "cape"); skin == nil || skin.Name != "cape" {
		t.Error("expected skin by name")
	}
	if skin := FindSkin(doc, "missing"); skin != nil {
		t.Error("expected nil for unknown name: ", skin.Name)
	}
}

func TestReadSamplerData(t *testing.T) {
	doc := gltf.NewDocument()
	input := modeler.WriteAccessor(doc, gltf.TargetNone, []float32{0, 0.5, 1})
	output := modeler.WriteAccessor(doc, gltf.TargetNone, [][4]float32{{0, 0, 0, 1}, {1, 0, 0, 0}, {0, 1, 0, 0}})
	sampler := &gltf.AnimationSampler{Input: gltf.Index(input), Output: gltf.Index(output)}

	times, err := ReadSamplerInput(doc, sampler)
	if err != nil {
		t.Fatal(err)
	}
	if len(times) != 3 || times[1] != 0.5 {
		t.Error("unexpected input data: ", times)
	}

	rotations, err := ReadSamplerRotations(doc, sampler)
	if err != nil {
		t.Fatal(err)
	}
	if len(rotations) != 3 || rotations[1] != [4]float32{1, 0, 0, 0} {
		t.Error("unexpected output data: ", rotations)
	}

	// vec4 output read as translations must fail
	if _, err := ReadSamplerTranslations(doc, sampler); err == nil {
		t.Error("expected a type mismatch error")
	}
}

func TestReadSamplerMissingAccessor(t *testing.T) {
	doc := gltf.NewDocument()
	if _, err := ReadSamplerInput(doc, &gltf.AnimationSampler{}); err == nil {
		t.Error("expected an error for a missing input accessor")
	}
}

func TestReadInverseBindMatricesMissing(t *testing.T) {
	doc := gltf.NewDocument()
	if _, err := ReadInverseBindMatrices(doc, &gltf.Skin{Name: "body"}); err == nil {
		t.Error("expected an error for a skin without matrices")
	}
}
