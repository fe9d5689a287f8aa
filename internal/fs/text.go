package fs

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

const (
	textDetectionSampleSize      = 4096
	nonPrintableThresholdPercent = 30

	// MaxViewBytes caps how much of a file ReadLines loads.
	MaxViewBytes int64 = 16 << 20
)

// ErrBinaryFile is returned by ReadLines for content that is not text.
var ErrBinaryFile = errors.New("binary file")

type unicodeEncoding int

const (
	encodingUnknown unicodeEncoding = iota
	encodingUTF8BOM
	encodingUTF16LE
	encodingUTF16BE
)

var binaryExtensions = map[string]struct{}{
	".7z": {}, ".bin": {}, ".bmp": {}, ".bz2": {}, ".class": {}, ".dll": {},
	".dylib": {}, ".exe": {}, ".gif": {}, ".gz": {}, ".ico": {}, ".iso": {},
	".jar": {}, ".jpeg": {}, ".jpg": {}, ".mp3": {}, ".mp4": {}, ".o": {},
	".pdf": {}, ".png": {}, ".so": {}, ".tar": {}, ".tgz": {}, ".wasm": {},
	".xz": {}, ".zip": {},
}

// ReadLines loads path as text and splits it into lines with line endings
// stripped. Content beyond MaxViewBytes is dropped; truncated reports that.
func ReadLines(path string) (lines []string, truncated bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false, fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	content, err := io.ReadAll(io.LimitReader(f, MaxViewBytes+1))
	if err != nil {
		return nil, false, fmt.Errorf("cannot read %s: %w", path, err)
	}
	if int64(len(content)) > MaxViewBytes {
		content = content[:MaxViewBytes]
		truncated = true
	}
	if !IsTextFile(path, content) {
		return nil, truncated, fmt.Errorf("%s: %w", filepath.Base(path), ErrBinaryFile)
	}

	scanner := bufio.NewScanner(strings.NewReader(NormalizeTextContent(content)))
	scanner.Buffer(make([]byte, 0, 64*1024), int(MaxViewBytes))
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, truncated, fmt.Errorf("cannot split %s: %w", path, err)
	}
	return lines, truncated, nil
}

// IsTextFile determines if content is text or binary.
// The path (if provided) is used to short-circuit obvious binary extensions before sniffing.
func IsTextFile(path string, content []byte) bool {
	if looksBinaryByExtension(path) {
		return false
	}
	if len(content) == 0 {
		return true
	}

	sample := content
	if len(sample) > textDetectionSampleSize {
		sample = sample[:textDetectionSampleSize]
	}

	if detectUnicodeEncoding(sample) != encodingUnknown {
		return true
	}
	if bytes.IndexByte(sample, 0x00) != -1 {
		return false
	}
	if utf8.Valid(sample) {
		return true
	}

	nonPrintable := 0
	for _, b := range sample {
		if !isCommonTextByte(b) {
			nonPrintable++
		}
	}
	return nonPrintable*100/len(sample) < nonPrintableThresholdPercent
}

func looksBinaryByExtension(path string) bool {
	if path == "" {
		return false
	}
	_, ok := binaryExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

func isCommonTextByte(b byte) bool {
	switch {
	case b == 0x09 || b == 0x0A || b == 0x0D || b == 0x1B:
		return true
	case b >= 0x20 && b <= 0x7E:
		return true
	default:
		return b >= 0x80
	}
}

func detectUnicodeEncoding(sample []byte) unicodeEncoding {
	if len(sample) >= 3 && sample[0] == 0xEF && sample[1] == 0xBB && sample[2] == 0xBF {
		return encodingUTF8BOM
	}
	if len(sample) >= 2 {
		switch {
		case sample[0] == 0xFF && sample[1] == 0xFE:
			return encodingUTF16LE
		case sample[0] == 0xFE && sample[1] == 0xFF:
			return encodingUTF16BE
		}
	}
	return encodingUnknown
}

// NormalizeTextContent converts known Unicode BOM-encoded content into UTF-8 strings.
func NormalizeTextContent(content []byte) string {
	switch detectUnicodeEncoding(content) {
	case encodingUTF8BOM:
		return string(content[3:])
	case encodingUTF16LE:
		return decodeUTF16(content, unicode.LittleEndian)
	case encodingUTF16BE:
		return decodeUTF16(content, unicode.BigEndian)
	default:
		return string(content)
	}
}

func decodeUTF16(content []byte, endian unicode.Endianness) string {
	decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, err := decoder.Bytes(content)
	if err != nil {
		return string(content)
	}
	return string(out)
}
