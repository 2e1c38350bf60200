package pseudo

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// FileRead opens name and parses it as a GTH pseudopotential database.
// Files compressed with zstd or gzip are decompressed on the fly, picked by
// the .zst / .gz extension. See Read for the lenient flag and the returns.
func FileRead(name string, lenient bool) (*Database, []error, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, Error{UnableToOpen + ": " + err.Error(), KindIO, "", []string{"FileRead"}, true}
	}
	defer f.Close()
	var r io.Reader = bufio.NewReader(f)
	switch {
	case strings.HasSuffix(name, ".zst"):
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, Error{err.Error(), KindIO, "", []string{"FileRead"}, true}
		}
		defer zr.Close()
		r = zr
	case strings.HasSuffix(name, ".gz"):
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, Error{err.Error(), KindIO, "", []string{"FileRead"}, true}
		}
		defer gr.Close()
		r = gr
	}
	D, diags, err := Read(r, lenient)
	if err != nil {
		return nil, nil, errDecorate(err, "FileRead")
	}
	return D, diags, nil
}
