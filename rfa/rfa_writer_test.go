package rfa

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestWriteFile(t *testing.T) {
	f := &File{
		Header: FileHeader{
			NumBones:      1,
			StartTime:     0,
			EndTime:       4800,
			RampInTime:    480,
			RampOutTime:   480,
			TotalRotation: [4]float32{0, 0, 0, 1},
		},
		Bones: []*Bone{
			{
				Weight: 1,
				RotationKeys: []*RotationKey{
					{Time: 0, Rotation: [4]int16{0, 0, 0, 16383}},
				},
				TranslationKeys: []*TranslationKey{
					{Time: 4800, Translation: [3]float32{1, 2, 3}},
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatal(err)
	}

	// header 72 bytes, bone block 8, rotation key 16, translation key 40
	if buf.Len() != 72+8+16+40 {
		t.Error("unexpected file size: ", buf.Len())
	}

	data := buf.Bytes()
	if got := binary.LittleEndian.Uint32(data[0:4]); got != Magic {
		t.Errorf("unexpected magic: 0x%08X", got)
	}
	if got := binary.LittleEndian.Uint32(data[4:8]); got != Version {
		t.Error("unexpected version: ", got)
	}
	if got := int32(binary.LittleEndian.Uint32(data[24:28])); got != 1 {
		t.Error("unexpected bone count: ", got)
	}
	if got := int32(binary.LittleEndian.Uint32(data[20:24])); got != 4800 {
		t.Error("unexpected end time: ", got)
	}
}

func TestWriteEmptyBones(t *testing.T) {
	f := &File{Header: FileHeader{TotalRotation: [4]float32{0, 0, 0, 1}}}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 72 {
		t.Error("unexpected header size: ", buf.Len())
	}
}
