package table

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Magic is the 4-byte tag a table starts with.
type Magic [4]byte

// printable reports whether every byte of the tag is printable ASCII.
func (m Magic) printable() bool {
	for _, b := range m {
		if b < 0x20 || b > 0x7e {
			return false
		}
	}
	return true
}

// String returns the tag as text, quoted if any of its bytes is not
// printable ASCII.
func (m Magic) String() string {
	if !m.printable() {
		return fmt.Sprintf("%q", string(m[:]))
	}
	return string(m[:])
}

// MarshalText implements encoding.TextMarshaler. A printable tag is
// returned as is; any other tag as "0x" followed by 8 hex digits, for
// example "0x00ff7879".
func (m Magic) MarshalText() ([]byte, error) {
	if !m.printable() {
		return []byte("0x" + hex.EncodeToString(m[:])), nil
	}
	return append([]byte(nil), m[:]...), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts either of
// the forms produced by MarshalText.
func (m *Magic) UnmarshalText(text []byte) error {
	switch {
	case len(text) == len(m):
		copy(m[:], text)
	case len(text) == 2+2*len(m) && text[0] == '0' && (text[1] == 'x' || text[1] == 'X'):
		var dec Magic
		if _, err := hex.Decode(dec[:], text[2:]); err != nil {
			return errors.Wrapf(err, "table: invalid magic %q", text)
		}
		*m = dec
	default:
		return errors.Errorf("table: invalid magic %q: got %d bytes, want %d or 0x and %d hex digits", text, len(text), len(m), 2*len(m))
	}
	return nil
}

// Table is an ordered list of images, together with the format tag and
// version it was stored with.
//
// The image count is not stored separately; it is always len(Images).
type Table struct {
	Magic   Magic   `json:"magic"`
	Version uint16  `json:"version"`
	Images  []Image `json:"images"`
}

type header struct {
	Magic      Magic
	Version    uint16
	ImageCount uint16
}

// New returns a table in the default format holding the passed images.
func New(images ...Image) *Table {
	if images == nil {
		images = []Image{}
	}
	return &Table{
		Magic:   DefaultMagic,
		Version: DefaultVersion,
		Images:  images,
	}
}

// Decode reads a table from r.
//
// The header is read first, and then exactly as many image records as the
// header claims. Anything following the last record is left unread. If r
// runs out before that, the error's cause is io.EOF or io.ErrUnexpectedEOF;
// no partial table is ever returned.
//
// The magic and version are returned as found.
func Decode(r io.Reader) (*Table, error) {
	var h header
	if err := binary.Read(r, binary.BigEndian, &h); err != nil {
		return nil, errors.Wrap(err, "table: could not read header")
	}
	glog.V(3).Infof("table: magic %s, version %d, %d images", h.Magic, h.Version, h.ImageCount)

	t := &Table{
		Magic:   h.Magic,
		Version: h.Version,
		Images:  make([]Image, 0, h.ImageCount),
	}
	for i := 0; i < int(h.ImageCount); i++ {
		img, err := DecodeImage(r)
		if err != nil {
			return nil, errors.Wrapf(err, "table: image %d of %d", i, h.ImageCount)
		}
		t.Images = append(t.Images, img)
	}
	return t, nil
}

// Encode writes the table to w.
//
// The stored image count is len(t.Images) truncated to 16 bits; every image
// is written regardless. See MaxImageCount.
func (t *Table) Encode(w io.Writer) error {
	h := header{
		Magic:      t.Magic,
		Version:    t.Version,
		ImageCount: uint16(len(t.Images)),
	}
	if err := binary.Write(w, binary.BigEndian, &h); err != nil {
		return errors.Wrap(err, "table: could not write header")
	}
	for i, img := range t.Images {
		if err := img.Encode(w); err != nil {
			return errors.Wrapf(err, "table: image %d of %d", i, len(t.Images))
		}
	}
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The result is
// Size(t.Len()) bytes long.
func (t *Table) MarshalBinary() ([]byte, error) {
	buf := bytes.Buffer{}
	buf.Grow(Size(len(t.Images)))
	if err := t.Encode(&buf); err != nil {
		return nil, err
	}
	glog.V(3).Infof("table: encoded %d bytes: % x", buf.Len(), buf.Bytes())
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The table is not
// modified on error.
func (t *Table) UnmarshalBinary(data []byte) error {
	dec, err := Decode(bytes.NewReader(data))
	if err != nil {
		return err
	}
	*t = *dec
	return nil
}

// Len returns the number of images in the table.
func (t *Table) Len() int {
	return len(t.Images)
}

// Append adds images to the end of the table.
func (t *Table) Append(images ...Image) {
	t.Images = append(t.Images, images...)
}

// IndexByID returns the position of the first image with the passed ID.
func (t *Table) IndexByID(id uint16) (int, error) {
	for i := range t.Images {
		if t.Images[i].ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("image not found with id: %d", id)
}

// ImageByID returns the first image with the passed ID.
func (t *Table) ImageByID(id uint16) (*Image, error) {
	i, err := t.IndexByID(id)
	if err != nil {
		return nil, err
	}
	return &t.Images[i], nil
}

// IsDefaultFormat reports whether the table carries DefaultMagic and
// DefaultVersion. Decode does not care either way.
func (t *Table) IsDefaultFormat() bool {
	return t.Magic == DefaultMagic && t.Version == DefaultVersion
}
