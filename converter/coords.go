package converter

// Engine time base: 30 frames of 160 ticks each per second.
const (
	ticksPerSecond = 30 * 160
	rampTime       = 480
)

// gltfTimeToTicks converts a seconds timestamp to engine ticks.
// Truncation toward zero is a format contract: existing assets were
// produced this way and rounding would shift keys by one tick.
func gltfTimeToTicks(timeSec float32) int32 {
	return int32(timeSec * ticksPerSecond)
}

// makeShortQuat quantizes a unit quaternion to 16-bit fixed point.
// Components must be in [-1, 1]; 16383*1.0 still fits in int16 so no
// clamping is needed.
func makeShortQuat(q [4]float32) [4]int16 {
	return [4]int16{
		int16(q[0] * 16383),
		int16(q[1] * 16383),
		int16(q[2] * 16383),
		int16(q[3] * 16383),
	}
}

// gltfToRFVec converts from glTF's Y-up right-handed coordinates to
// the engine's Z-up convention by swapping Y and Z.
func gltfToRFVec(v [3]float32) [3]float32 {
	return [3]float32{v[0], v[2], v[1]}
}

// gltfToRFQuat applies the same axis swap to a rotation. Swapping two
// axes flips handedness, so the vector part is negated.
func gltfToRFQuat(q [4]float32) [4]float32 {
	return [4]float32{-q[0], -q[2], -q[1], q[3]}
}
