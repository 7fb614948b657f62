package gasmvm

import "io"

type Output interface {
	PutByte(b byte) error
	PutText(s string) error
}

type WriterOutput struct {
	w io.Writer
}

var _ Output = WriterOutput{}

func NewWriterOutput(w io.Writer) WriterOutput {
	return WriterOutput{
		w: w,
	}
}

func (o WriterOutput) PutByte(b byte) error {
	_, err := o.w.Write([]byte{b})
	return err
}

func (o WriterOutput) PutText(s string) error {
	_, err := io.WriteString(o.w, s)
	return err
}
