package optimizer

import (
	"bytes"

	exif "github.com/dsoprea/go-exif/v3"
)

// countExifTags reports how many flat EXIF tags a file carries. Re-encoding
// through the pixel pipeline discards them all, so this is the number of
// tags the rewrite drops. Best effort: an unreadable or absent EXIF block
// counts as zero.
func countExifTags(data []byte) int {
	rs := bytes.NewReader(data)
	tags, _, err := exif.GetFlatExifDataUniversalSearchWithReadSeeker(rs, nil, true)
	if err != nil {
		return 0
	}
	return len(tags)
}
