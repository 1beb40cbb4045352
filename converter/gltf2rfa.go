package converter

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"

	"github.com/rf-modding/vmeshconv/gltfutil"
	"github.com/rf-modding/vmeshconv/rfa"
)

type GLTFToRFAOption struct {
}

type gltfToRfa struct {
	options *GLTFToRFAOption
}

func NewGLTFToRFAConverter(options *GLTFToRFAOption) *gltfToRfa {
	if options == nil {
		options = &GLTFToRFAOption{}
	}
	return &gltfToRfa{
		options: options,
	}
}

// AnimationName returns the animation's declared name or a stable
// fallback derived from its index in the document. The name is also
// used as the output file's base name.
func AnimationName(anim *gltf.Animation, index int) string {
	if anim.Name != "" {
		return anim.Name
	}
	return fmt.Sprintf("anim_%d", index)
}

// nodeChannel finds the animation channel targeting the given node and
// path. The first match wins; multiple channels for the same node and
// path are malformed content and the rest are ignored.
func nodeChannel(anim *gltf.Animation, node uint32, path gltf.TRSProperty) *gltf.Channel {
	for _, ch := range anim.Channels {
		if ch.Sampler != nil && ch.Target.Node != nil && *ch.Target.Node == node && ch.Target.Path == path {
			return ch
		}
	}
	return nil
}

func (c *gltfToRfa) convertRotationKeys(doc *gltf.Document, anim *gltf.Animation, node uint32) ([]*rfa.RotationKey, error) {
	ch := nodeChannel(anim, node, gltf.TRSRotation)
	if ch == nil {
		// static joint
		return nil, nil
	}
	sampler := anim.Samplers[*ch.Sampler]
	times, err := gltfutil.ReadSamplerInput(doc, sampler)
	if err != nil {
		return nil, err
	}
	rotations, err := gltfutil.ReadSamplerRotations(doc, sampler)
	if err != nil {
		return nil, err
	}

	quantized := make([][4]int16, len(rotations))
	for i, r := range rotations {
		quantized[i] = makeShortQuat(gltfToRFQuat(r))
	}
	if sampler.Interpolation == gltf.InterpolationCubicSpline {
		// cubic spline samples come as (in-tangent, value, out-tangent)
		// triplets per timestamp; keep the value and drop the tangents.
		// The engine's ease values have different semantics, so EaseIn
		// and EaseOut stay zero.
		values := make([][4]int16, 0, len(quantized)/3)
		for i := 0; i+2 < len(quantized); i += 3 {
			values = append(values, quantized[i+1])
		}
		quantized = values
	}

	n := len(times)
	if len(quantized) < n {
		n = len(quantized)
	}
	keys := make([]*rfa.RotationKey, 0, n)
	for i := 0; i < n; i++ {
		keys = append(keys, &rfa.RotationKey{
			Time:     gltfTimeToTicks(times[i]),
			Rotation: quantized[i],
		})
	}
	return keys, nil
}

func (c *gltfToRfa) convertTranslationKeys(doc *gltf.Document, anim *gltf.Animation, node uint32) ([]*rfa.TranslationKey, error) {
	ch := nodeChannel(anim, node, gltf.TRSTranslation)
	if ch == nil {
		return nil, nil
	}
	sampler := anim.Samplers[*ch.Sampler]
	times, err := gltfutil.ReadSamplerInput(doc, sampler)
	if err != nil {
		return nil, err
	}
	translations, err := gltfutil.ReadSamplerTranslations(doc, sampler)
	if err != nil {
		return nil, err
	}

	converted := make([][3]float32, len(translations))
	for i, t := range translations {
		converted[i] = gltfToRFVec(t)
	}

	type triplet struct {
		in, value, out [3]float32
	}
	var triplets []triplet
	if sampler.Interpolation == gltf.InterpolationCubicSpline {
		for i := 0; i+2 < len(converted); i += 3 {
			triplets = append(triplets, triplet{converted[i], converted[i+1], converted[i+2]})
		}
	} else {
		// no explicit tangents; flatten them to the value itself
		for _, t := range converted {
			triplets = append(triplets, triplet{t, t, t})
		}
	}

	n := len(times)
	if len(triplets) < n {
		n = len(triplets)
	}
	keys := make([]*rfa.TranslationKey, 0, n)
	for i := 0; i < n; i++ {
		keys = append(keys, &rfa.TranslationKey{
			Time:        gltfTimeToTicks(times[i]),
			InTangent:   triplets[i].in,
			Translation: triplets[i].value,
			OutTangent:  triplets[i].out,
		})
	}
	return keys, nil
}

// determineAnimTimeRange scans every key of every bone and returns the
// (min, max) tick pair, or (0, 0) when the animation has no keys.
func determineAnimTimeRange(bones []*rfa.Bone) (int32, int32) {
	var startTime, endTime int32
	first := true
	visit := func(t int32) {
		if first {
			startTime, endTime = t, t
			first = false
			return
		}
		if t < startTime {
			startTime = t
		}
		if t > endTime {
			endTime = t
		}
	}
	for _, b := range bones {
		for _, k := range b.RotationKeys {
			visit(k.Time)
		}
		for _, k := range b.TranslationKeys {
			visit(k.Time)
		}
	}
	if first {
		return 0, 0
	}
	return startTime, endTime
}

// Convert assembles the animation file for one (animation, skin) pair.
// Bones follow the skin's joint order so bone indices agree with the
// mesh file's bone list.
func (c *gltfToRfa) Convert(doc *gltf.Document, anim *gltf.Animation, skin *gltf.Skin) (*rfa.File, error) {
	bones := make([]*rfa.Bone, 0, len(skin.Joints))
	for _, joint := range skin.Joints {
		rotationKeys, err := c.convertRotationKeys(doc, anim, joint)
		if err != nil {
			return nil, errors.Wrapf(err, "rotation keys of joint %d", joint)
		}
		translationKeys, err := c.convertTranslationKeys(doc, anim, joint)
		if err != nil {
			return nil, errors.Wrapf(err, "translation keys of joint %d", joint)
		}
		bones = append(bones, &rfa.Bone{
			Weight:          1.0,
			RotationKeys:    rotationKeys,
			TranslationKeys: translationKeys,
		})
	}
	startTime, endTime := determineAnimTimeRange(bones)
	return &rfa.File{
		Header: rfa.FileHeader{
			NumBones:         int32(len(bones)),
			StartTime:        startTime,
			EndTime:          endTime,
			RampInTime:       rampTime,
			RampOutTime:      rampTime,
			TotalRotation:    [4]float32{0, 0, 0, 1},
			TotalTranslation: [3]float32{},
		},
		Bones: bones,
	}, nil
}

// ConvertToFile writes the animation as <name>.rfa into outputDir.
// The record is written to a temporary path and renamed on success so
// a failed conversion never leaves a truncated file behind.
func (c *gltfToRfa) ConvertToFile(doc *gltf.Document, anim *gltf.Animation, index int, skin *gltf.Skin, outputDir string) error {
	name := AnimationName(anim, index)
	log.Print("Processing animation ", name)
	file, err := c.Convert(doc, anim, skin)
	if err != nil {
		return errors.Wrapf(err, "failed to convert animation %q", name)
	}
	path := filepath.Join(outputDir, name+".rfa")
	tmp := path + ".tmp"
	w, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := file.Write(w); err != nil {
		w.Close()
		os.Remove(tmp)
		return err
	}
	if err := w.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
