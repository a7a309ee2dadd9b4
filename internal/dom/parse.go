package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"github.com/mrjoshuak/untable/internal/errs"
)

// defaultEncoding is what charset falls back to when a document declares nothing.
const defaultEncoding = "windows-1252"

// Parse parses an HTML string into a tree.
func Parse(src string) (*html.Node, error) {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, errs.WrapParseError(err, "Parse", "failed to parse HTML")
	}
	return doc, nil
}

// ParseReader reads at most maxBytes from r (no limit when maxBytes <= 0)
// and parses the result. Input that is not valid UTF-8 is decoded using the
// document's own declaration, or a detected charset when it has none.
func ParseReader(r io.Reader, maxBytes int) (*html.Node, error) {
	if maxBytes > 0 {
		r = io.LimitReader(r, int64(maxBytes)+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errs.WrapParseError(err, "ParseReader", "failed to read input")
	}
	if maxBytes > 0 && len(data) > maxBytes {
		return nil, errs.WrapParseError(
			fmt.Errorf("%w: exceeds limit of %d bytes", errs.ErrDocumentTooLarge, maxBytes), "ParseReader", "")
	}

	doc, err := html.Parse(decode(data))
	if err != nil {
		return nil, errs.WrapParseError(err, "ParseReader", "failed to parse HTML")
	}
	return doc, nil
}

// decode returns a UTF-8 reader over data.
func decode(data []byte) io.Reader {
	if utf8.Valid(data) {
		return bytes.NewReader(data)
	}

	contentType := ""
	if _, name, certain := charset.DetermineEncoding(data, ""); !certain && name == defaultEncoding {
		if cs := DetectCharset(data); cs != "" {
			contentType = "text/html; charset=" + cs
		}
	}

	r, err := charset.NewReader(bytes.NewReader(data), contentType)
	if err != nil {
		return bytes.NewReader(data)
	}
	return r
}

// DetectCharset guesses the charset of HTML bytes. It returns "" when
// nothing sensible was found.
func DetectCharset(data []byte) string {
	detector := chardet.NewHtmlDetector()
	result, err := detector.DetectBest(data)
	if err != nil || result == nil {
		return ""
	}
	return strings.ToLower(result.Charset)
}
