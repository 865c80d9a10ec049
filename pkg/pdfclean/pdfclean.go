package pdfclean

import (
	"bytes"
	"encoding/json"
	"os"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/mcpbench/docgen/pkg/utils"
)

// escapeReplacer undoes JSON escapes left behind by the PDF extractor.
var escapeReplacer = strings.NewReplacer(
	`\n`, "\n",
	`\t`, "\t",
	`\"`, `"`,
	`\u0000`, "",
	`\u2013`, "–",
)

type rule struct {
	pattern *regexp.Regexp
	repl    string
}

// rules run in order; later rules see the output of earlier ones.
var rules = []rule{
	// "P a g e" -> "Page"
	{regexp.MustCompile(`([A-Za-z])\s+([A-Za-z])`), "$1$2"},
	// "6 6 F 9" -> "66F9"
	{regexp.MustCompile(`(\d)\s+(\d)`), "$1$2"},
	{regexp.MustCompile(`([A-Za-z])\s+(\d)`), "$1$2"},
	{regexp.MustCompile(`(\d)\s+([A-Za-z])`), "$1$2"},
	{regexp.MustCompile(`(\$)\s+(\d)`), "$1$2"},
	// keep one space before a currency code
	{regexp.MustCompile(`(\d)\s+([A-Z]{3})`), "$1 $2"},
	{regexp.MustCompile(`([A-Za-z]{3})\s+(\d{1,2})\s+,\s+(\d{4})`), "$1 $2, $3"},
	{regexp.MustCompile(`([a-zA-Z0-9._%+-]+)\s+@\s+([a-zA-Z0-9.-]+)\s+\.\s+([a-zA-Z]{2,})`), "$1@$2.$3"},
	{regexp.MustCompile(`([A-Za-z])\s+([A-Za-z])\s+([A-Za-z])`), "$1$2$3"},
	{regexp.MustCompile(`\n\s*\n\s*\n`), "\n\n"},
}

// CleanText repairs text extracted from a PDF: stray escapes, letters and
// digits spread apart by spaces, broken dates and e-mail addresses, runs of
// blank lines and padded lines.
func CleanText(text string) string {
	if text == "" {
		return text
	}
	text = escapeReplacer.Replace(text)
	text = norm.NFKC.String(text)
	for _, r := range rules {
		text = r.pattern.ReplaceAllString(text, r.repl)
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}

// CleanJSON cleans the "text" field of a JSON object, or a JSON string, and
// re-encodes the value indented by two spaces with non-ASCII kept as is.
// Other JSON values are only re-indented; input that is not JSON is cleaned
// as text.
func CleanJSON(src string) string {
	trimmed := strings.TrimSpace(src)
	if !json.Valid([]byte(trimmed)) {
		return CleanText(src)
	}

	var out []byte
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal([]byte(trimmed), &s); err != nil {
			return CleanText(src)
		}
		out = encodeString(CleanText(s))
	case '{':
		obj, err := cleanObject(trimmed)
		if err != nil {
			return CleanText(src)
		}
		out = obj
	default:
		out = []byte(trimmed)
	}

	var compact, indented bytes.Buffer
	if err := json.Compact(&compact, out); err != nil {
		return CleanText(src)
	}
	if err := json.Indent(&indented, compact.Bytes(), "", "  "); err != nil {
		return CleanText(src)
	}
	return indented.String()
}

// cleanObject rewrites the top-level "text" string of an object, keeping the
// order and raw encoding of every other member.
func cleanObject(src string) ([]byte, error) {
	dec := json.NewDecoder(strings.NewReader(src))
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i := 0; dec.More(); i++ {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		if key == "text" {
			var s string
			if json.Unmarshal(value, &s) == nil {
				value = encodeString(CleanText(s))
			}
		}
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(encodeString(key))
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeString(s string) []byte {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return bytes.TrimRight(buf.Bytes(), "\n")
}

var (
	jsonBlock = regexp.MustCompile("(?s)```json( [^\n`]*)?\n(.*?)\n```")
	textBlock = regexp.MustCompile("(?s)```text( [^\n`]*)?\n(.*?)\n```")
)

// CleanMDX cleans the bodies of json and text fenced blocks in an MDX page.
// A label after the language tag ("```json output_result") is kept.
func CleanMDX(content string) string {
	content = replaceBlocks(jsonBlock, content, "json", CleanJSON)
	return replaceBlocks(textBlock, content, "text", CleanText)
}

func replaceBlocks(re *regexp.Regexp, content, lang string, clean func(string) string) string {
	return re.ReplaceAllStringFunc(content, func(block string) string {
		m := re.FindStringSubmatch(block)
		return "```" + lang + m[1] + "\n" + clean(m[2]) + "\n```"
	})
}

// CleanFile cleans the page at path in place. With backup set, the original
// is first copied next to it and the backup path is returned.
func CleanFile(path string, backup bool) (string, error) {
	var backupPath string
	if backup {
		var err error
		if backupPath, err = utils.CreateBackup(path); err != nil {
			return "", err
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", utils.NewFileSystemError("read", path, err)
	}
	if err := os.WriteFile(path, []byte(CleanMDX(string(data))), 0644); err != nil {
		return "", utils.NewFileSystemError("write", path, err)
	}
	return backupPath, nil
}
