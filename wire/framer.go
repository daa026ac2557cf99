package wire

import "bytes"

var headerEnd = []byte(HeaderEnd)

// IndexHeaderEnd scans buf for the header terminator and returns the index
// where it starts, or -1 when not yet present.
//
// scanned is the number of bytes of buf that were already examined by a
// previous call; the scan resumes three bytes before that point so a
// terminator straddling two reads is still found. Pass 0 for a full scan.
func IndexHeaderEnd(buf []byte, scanned int) int {
	from := scanned - (len(headerEnd) - 1)
	if from < 0 {
		from = 0
	}
	i := bytes.Index(buf[from:], headerEnd)
	if i < 0 {
		return -1
	}
	return from + i
}
