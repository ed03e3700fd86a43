// Package table implements a reader and writer for sprite image tables.
//
// An image table is a small big-endian file starting with a 4-byte magic tag
// (normally "E2GT"), a version and an image count, followed by one fixed-size
// record per image. Each record carries the 8-byte content hash of the sprite
// it describes, which also names the sprite's PNG file (see Image.FileName),
// along with the sprite's ID, horizontal offset and dimensions.
//
// Neither the magic nor the version are checked while decoding; callers that
// care can consult Table.IsDefaultFormat.
package table
