package v3mc

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestWriteBones(t *testing.T) {
	bones := []*Bone{
		{Name: "root", BaseRotation: [4]float32{0, 0, 0, 1}, ParentIndex: -1},
		{Name: "spine", BaseRotation: [4]float32{0, 0, 0, 1}, BaseTranslation: [3]float32{0, 0, 1}, ParentIndex: 0},
	}

	var buf bytes.Buffer
	if err := WriteBones(bones, &buf); err != nil {
		t.Fatal(err)
	}

	const recordSize = BoneNameLen + 16 + 12 + 4
	if buf.Len() != 4+2*recordSize {
		t.Error("unexpected section size: ", buf.Len())
	}

	data := buf.Bytes()
	if got := int32(binary.LittleEndian.Uint32(data[0:4])); got != 2 {
		t.Error("unexpected bone count: ", got)
	}
	name := data[4 : 4+BoneNameLen]
	if string(name[:4]) != "root" || name[4] != 0 {
		t.Error("unexpected name encoding: ", name)
	}
	parent := int32(binary.LittleEndian.Uint32(data[4+recordSize-4 : 4+recordSize]))
	if parent != -1 {
		t.Error("unexpected parent index: ", parent)
	}
}

func TestWriteBonesLongName(t *testing.T) {
	long := "a_bone_name_that_exceeds_the_record_width"
	var buf bytes.Buffer
	if err := WriteBones([]*Bone{{Name: long, ParentIndex: -1}}, &buf); err != nil {
		t.Fatal(err)
	}
	name := buf.Bytes()[4 : 4+BoneNameLen]
	if name[BoneNameLen-1] != 0 {
		t.Error("name record must stay zero terminated")
	}
	if string(name[:BoneNameLen-1]) != long[:BoneNameLen-1] {
		t.Error("unexpected truncation: ", string(name))
	}
}
