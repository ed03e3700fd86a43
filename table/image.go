package table

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"io"

	"github.com/pkg/errors"
)

// Hash is the opaque content identifier of a sprite. Its bytes are never
// interpreted numerically.
type Hash [8]byte

// String returns the hash as 16 lowercase hex digits.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// MarshalText implements encoding.TextMarshaler, using the same form as
// String.
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts exactly 16
// hex digits.
func (h *Hash) UnmarshalText(text []byte) error {
	if len(text) != 2*len(h) {
		return errors.Errorf("table: invalid hash %q: got %d characters, want %d", text, len(text), 2*len(h))
	}
	var dec Hash
	if _, err := hex.Decode(dec[:], text); err != nil {
		return errors.Wrapf(err, "table: invalid hash %q", text)
	}
	*h = dec
	return nil
}

// Image describes a single sprite in the table.
//
// Field order matches the on-disk record, which allows the record to be
// transferred with encoding/binary directly.
type Image struct {
	Hash    Hash   `json:"hash"`
	ID      uint16 `json:"id"`
	XOffset uint16 `json:"x_offset"`
	Width   uint16 `json:"width"`
	Height  uint16 `json:"height"`
}

// DecodeImage reads one image record from r.
//
// Either all ImageSize bytes are consumed and the image is returned, or an
// error is returned. The error's cause is io.EOF if r had no data at all,
// io.ErrUnexpectedEOF if it ran out partway through the record, or whatever
// r itself returned.
func DecodeImage(r io.Reader) (Image, error) {
	var img Image
	if err := binary.Read(r, binary.BigEndian, &img); err != nil {
		return Image{}, errors.Wrap(err, "table: could not read image record")
	}
	return img, nil
}

// Encode writes the image record to w.
func (img Image) Encode(w io.Writer) error {
	if err := binary.Write(w, binary.BigEndian, &img); err != nil {
		return errors.Wrap(err, "table: could not write image record")
	}
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The result is always
// ImageSize bytes long.
func (img Image) MarshalBinary() ([]byte, error) {
	buf := bytes.Buffer{}
	buf.Grow(ImageSize)
	if err := img.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Only the first
// ImageSize bytes of data are used. The image is not modified on error.
func (img *Image) UnmarshalBinary(data []byte) error {
	dec, err := DecodeImage(bytes.NewReader(data))
	if err != nil {
		return err
	}
	*img = dec
	return nil
}

// FileName returns the name under which the sprite's picture is stored: the
// hex-encoded hash followed by FileExtension, for example
// "d4059da8a8fb5463.png".
//
// Only the hash takes part; two images sharing a hash share a file.
func (img Image) FileName() string {
	return img.Hash.String() + FileExtension
}
