package export

import (
	"bytes"

	"github.com/ledongthuc/pdf"
)

// pageCount parses a generated PDF to report its page count for logging.
// Best effort: a parse failure reports zero pages rather than failing an
// otherwise valid export.
func pageCount(buf []byte) (n int) {
	defer func() {
		// The parser panics on some malformed cross-reference tables.
		if recover() != nil {
			n = 0
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(buf), int64(len(buf)))
	if err != nil {
		return 0
	}
	return reader.NumPage()
}
