package table

// Sizes of the on-disk structures, in bytes.
const (
	ImageSize  = 16        // hash[8], id, x offset, width, height
	HeaderSize = 4 + 2 + 2 // magic, version, image count
)

// MaxImageCount is the largest image count the header can express. Tables
// holding more images still encode every record, but the stored count wraps
// around, so such a table will not decode back to the same image list.
const MaxImageCount = 0xFFFF

// FileExtension is appended to the hex-encoded hash to form an image's file
// name.
const FileExtension = ".png"

// DefaultMagic and DefaultVersion are the format tables created with New
// are stored in.
var DefaultMagic = Magic{'E', '2', 'G', 'T'}

const DefaultVersion uint16 = 1

// Size returns the encoded size of a table holding n images.
func Size(n int) int {
	return HeaderSize + ImageSize*n
}
