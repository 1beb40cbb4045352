package rfa

// File format constants for .rfa character animation files.
const (
	Magic   = 0x46564D56 // "VMVF"
	Version = 8
)

// RotationKey is a quantized rotation keyframe. Rotation components are
// fixed-point: unit quaternion components scaled by 16383. Ease values
// are reserved by the format and always written as zero.
type RotationKey struct {
	Time     int32
	Rotation [4]int16
	EaseIn   int8
	EaseOut  int8
}

// TranslationKey keeps translations in floating point. For non-spline
// source interpolation the tangents equal the translation itself.
type TranslationKey struct {
	Time        int32
	InTangent   [3]float32
	Translation [3]float32
	OutTangent  [3]float32
}

// Bone holds the key sequences for one bone. Bones appear in skeleton
// joint order, so the slice index doubles as the bone index.
type Bone struct {
	Weight          float32
	RotationKeys    []*RotationKey
	TranslationKeys []*TranslationKey
}

// FileHeader mirrors the on-disk header. Morph fields and the
// reduction hints are placeholders kept at zero; TotalRotation and
// TotalTranslation are root-motion placeholders (identity).
type FileHeader struct {
	PosReduction      float32
	RotReduction      float32
	StartTime         int32
	EndTime           int32
	NumBones          int32
	NumMorphVertices  int32
	NumMorphKeyframes int32
	RampInTime        int32
	RampOutTime       int32
	TotalRotation     [4]float32
	TotalTranslation  [3]float32
}

type File struct {
	Header FileHeader
	Bones  []*Bone
}
