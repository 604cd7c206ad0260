package parser

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/aoliong/jekyll/parser/metadecoders"
)

// ContentFrontMatter holds the parts of a content file split into its
// front matter block and the remaining content.
type ContentFrontMatter struct {
	Content           []byte
	FrontMatter       map[string]any
	FrontMatterFormat metadecoders.Format
}

var (
	delimYAML = []byte("---")
	delimTOML = []byte("+++")
)

// ParseFrontMatterAndContent splits r into front matter and content.
// A front matter block is fenced by "---" (YAML) or "+++" (TOML) lines at
// the very start of the file. Files without a fence are all content.
func ParseFrontMatterAndContent(r io.Reader) (ContentFrontMatter, error) {
	var cf ContentFrontMatter

	input, err := io.ReadAll(r)
	if err != nil {
		return cf, fmt.Errorf("failed to read content: %w", err)
	}

	delim, format := detectFrontMatter(input)
	if format == "" {
		cf.Content = input
		return cf, nil
	}
	cf.FrontMatterFormat = format

	scanner := bufio.NewScanner(bytes.NewReader(input))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	// Consume the opening fence.
	scanner.Scan()

	var fm bytes.Buffer
	closed := false
	for scanner.Scan() {
		line := scanner.Bytes()
		if bytes.Equal(bytes.TrimRight(line, "\r"), delim) {
			closed = true
			break
		}
		fm.Write(line)
		fm.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return cf, err
	}
	if !closed {
		// No closing fence. Treat the whole input as content.
		cf.FrontMatterFormat = ""
		cf.Content = input
		return cf, nil
	}

	var content bytes.Buffer
	for scanner.Scan() {
		content.Write(scanner.Bytes())
		content.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return cf, err
	}

	cf.FrontMatter, err = metadecoders.Default.UnmarshalToMap(fm.Bytes(), format)
	if err != nil {
		return cf, fmt.Errorf("failed to parse front matter: %w", err)
	}
	cf.Content = content.Bytes()

	return cf, nil
}

// detectFrontMatter reports the fence delimiter and format of any front
// matter block opening input.
func detectFrontMatter(input []byte) ([]byte, metadecoders.Format) {
	for _, delim := range [][]byte{delimYAML, delimTOML} {
		if !bytes.HasPrefix(input, delim) {
			continue
		}
		rest := input[len(delim):]
		i := 0
		for i < len(rest) && (rest[i] == ' ' || rest[i] == '\r') {
			i++
		}
		if i == len(rest) || rest[i] == '\n' {
			return delim, metadecoders.FormatFromFrontMatterType(rune(delim[0]))
		}
	}
	return nil, ""
}
