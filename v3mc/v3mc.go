package v3mc

// MaxBones is the hard bone limit of the mesh format. Skeletons above
// this limit cannot be represented and must be rejected outright.
const MaxBones = 50

// BoneNameLen is the fixed width of a bone name record. Longer names
// are truncated, shorter ones zero padded.
const BoneNameLen = 24

// Bone is one skeleton entry of the mesh file. BaseRotation and
// BaseTranslation come from the decomposed inverse bind matrix,
// already converted to the engine coordinate system. ParentIndex is
// the parent's position in the skeleton's bone order, -1 for a root.
type Bone struct {
	Name            string
	BaseRotation    [4]float32
	BaseTranslation [3]float32
	ParentIndex     int32
}
