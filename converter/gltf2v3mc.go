package converter

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"

	"github.com/rf-modding/vmeshconv/gltfutil"
	"github.com/rf-modding/vmeshconv/v3mc"
)

// bindScaleTolerance is the allowed per-axis deviation from unit scale
// in a decomposed inverse bind matrix. The mesh format has no per-bone
// scale, so anything beyond float noise cannot be represented.
const bindScaleTolerance = 0.01

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}

// findJointParent returns the skeleton-order index of the joint whose
// children include node, or -1. Only the skin's own joints are
// candidates; a parent node outside the skin makes the joint a root.
func findJointParent(doc *gltf.Document, skin *gltf.Skin, node uint32) int32 {
	for i, candidate := range skin.Joints {
		for _, child := range doc.Nodes[candidate].Children {
			if child == node {
				return int32(i)
			}
		}
	}
	return -1
}

func convertBone(doc *gltf.Document, skin *gltf.Skin, joint uint32, matrix [4][4]float32, index int) (*v3mc.Bone, error) {
	node := doc.Nodes[joint]
	name := node.Name
	if name == "" {
		name = fmt.Sprintf("bone_%d", index)
	}

	// glTF matrices are column-major: matrix[c] is column c.
	cols := [3]mgl32.Vec3{
		{matrix[0][0], matrix[0][1], matrix[0][2]},
		{matrix[1][0], matrix[1][1], matrix[1][2]},
		{matrix[2][0], matrix[2][1], matrix[2][2]},
	}
	scale := mgl32.Vec3{cols[0].Len(), cols[1].Len(), cols[2].Len()}
	for i := 0; i < 3; i++ {
		if abs32(scale[i]-1) > bindScaleTolerance {
			return nil, errors.Wrapf(ErrUnsupportedTransform,
				"bone %q has bind scale %v", name, scale)
		}
	}

	rotation := mgl32.Mat4ToQuat(mgl32.Mat4FromCols(
		cols[0].Mul(1/scale[0]).Vec4(0),
		cols[1].Mul(1/scale[1]).Vec4(0),
		cols[2].Mul(1/scale[2]).Vec4(0),
		mgl32.Vec4{0, 0, 0, 1},
	))
	translation := [3]float32{matrix[3][0], matrix[3][1], matrix[3][2]}

	return &v3mc.Bone{
		Name:            name,
		BaseRotation:    gltfToRFQuat([4]float32{rotation.X(), rotation.Y(), rotation.Z(), rotation.W}),
		BaseTranslation: gltfToRFVec(translation),
		ParentIndex:     findJointParent(doc, skin, joint),
	}, nil
}

// ConvertBones produces the mesh-file skeleton for a skin, in skin
// joint order so bone indices agree with the animation files. It fails
// outright on skeletons the format cannot represent; no partial bone
// list is ever returned.
func ConvertBones(doc *gltf.Document, skin *gltf.Skin) ([]*v3mc.Bone, error) {
	numJoints := len(skin.Joints)
	if numJoints > v3mc.MaxBones {
		return nil, errors.Wrapf(ErrTooManyBones,
			"found %d but only %d are supported", numJoints, v3mc.MaxBones)
	}

	matrices, err := gltfutil.ReadInverseBindMatrices(doc, skin)
	if err != nil {
		return nil, errors.Wrapf(ErrDataMismatch, "%v", err)
	}
	if len(matrices) != numJoints {
		return nil, errors.Wrapf(ErrDataMismatch,
			"invalid number of inverse bind matrices: expected %d, got %d", numJoints, len(matrices))
	}

	bones := make([]*v3mc.Bone, 0, numJoints)
	for i, joint := range skin.Joints {
		bone, err := convertBone(doc, skin, joint, matrices[i], i)
		if err != nil {
			return nil, err
		}
		bones = append(bones, bone)
	}
	return bones, nil
}
