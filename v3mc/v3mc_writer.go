package v3mc

import (
	"bufio"
	"encoding/binary"
	"io"
)

func writeFixedString(w io.Writer, s string, n int) {
	buf := make([]byte, n)
	copy(buf, s)
	buf[n-1] = 0
	binary.Write(w, binary.LittleEndian, buf)
}

// WriteBones serializes the skeleton section of a mesh file: a bone
// count followed by one fixed-size record per bone, little-endian.
// The section is embedded as-is by the mesh writer.
func WriteBones(bones []*Bone, ww io.Writer) error {
	w := bufio.NewWriter(ww)
	count := int32(len(bones))
	binary.Write(w, binary.LittleEndian, &count)
	for _, b := range bones {
		writeFixedString(w, b.Name, BoneNameLen)
		binary.Write(w, binary.LittleEndian, &b.BaseRotation)
		binary.Write(w, binary.LittleEndian, &b.BaseTranslation)
		binary.Write(w, binary.LittleEndian, &b.ParentIndex)
	}
	return w.Flush()
}
