package rfa

import (
	"bufio"
	"encoding/binary"
	"io"
)

type baseWriter struct {
	w io.Writer
}

func (p *baseWriter) write(v interface{}) error {
	return binary.Write(p.w, binary.LittleEndian, v)
}

func (p *baseWriter) writeInt(v int) {
	vv := int32(v)
	binary.Write(p.w, binary.LittleEndian, &vv)
}

func (p *baseWriter) writeInt16(v int16) {
	binary.Write(p.w, binary.LittleEndian, &v)
}

func (p *baseWriter) writeFloat(v float32) {
	binary.Write(p.w, binary.LittleEndian, &v)
}

// FileWriter serializes a File to the .rfa on-disk layout.
type FileWriter struct {
	baseWriter
}

func (w *FileWriter) writeHeader(h *FileHeader) {
	w.writeInt(Magic)
	w.writeInt(Version)
	w.writeFloat(h.PosReduction)
	w.writeFloat(h.RotReduction)
	w.write(&h.StartTime)
	w.write(&h.EndTime)
	w.write(&h.NumBones)
	w.write(&h.NumMorphVertices)
	w.write(&h.NumMorphKeyframes)
	w.write(&h.RampInTime)
	w.write(&h.RampOutTime)
	w.write(&h.TotalRotation)
	w.write(&h.TotalTranslation)
}

func (w *FileWriter) writeBone(b *Bone) {
	w.writeFloat(b.Weight)
	w.writeInt16(int16(len(b.RotationKeys)))
	w.writeInt16(int16(len(b.TranslationKeys)))
	for _, k := range b.RotationKeys {
		w.write(&k.Time)
		w.write(&k.Rotation)
		w.write(&k.EaseIn)
		w.write(&k.EaseOut)
		w.writeInt16(0) // pad to 4-byte key alignment
	}
	for _, k := range b.TranslationKeys {
		w.write(&k.Time)
		w.write(&k.InTangent)
		w.write(&k.Translation)
		w.write(&k.OutTangent)
	}
}

func (w *FileWriter) writeFile(f *File) error {
	w.writeHeader(&f.Header)
	for _, b := range f.Bones {
		w.writeBone(b)
	}
	return nil
}

// Write serializes the animation to w. The header's NumBones must
// already agree with len(f.Bones).
func (f *File) Write(ww io.Writer) error {
	w := bufio.NewWriter(ww)
	if err := (&FileWriter{baseWriter{w}}).writeFile(f); err != nil {
		return err
	}
	return w.Flush()
}
