// Package reader converts uploaded documents (PDF, DOCX, HTML, plain text)
// to the plain text the extractors operate on.
package reader

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// supportedExtensions maps a lowercase extension to its extraction function.
var supportedExtensions = map[string]func([]byte) (string, error){
	".pdf":  extractPDF,
	".docx": extractDocx,
	".html": extractHTML,
	".htm":  extractHTML,
	".txt":  extractPlain,
}

// Supported reports whether the filename's extension is one the reader can
// convert.
func Supported(filename string) bool {
	_, ok := supportedExtensions[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// SupportedTypes returns the accepted extensions without the leading dot,
// for error messages.
func SupportedTypes() []string {
	return []string{"pdf", "docx", "html", "htm", "txt"}
}

// ExtractText converts the document bytes to plain text based on the
// filename's extension.
func ExtractText(filename string, data []byte) (string, error) {
	extract, ok := supportedExtensions[strings.ToLower(filepath.Ext(filename))]
	if !ok {
		return "", &UnsupportedTypeError{Filename: filename}
	}
	return extract(data)
}

// ExtractFile reads the file at path and converts it to plain text based on
// its extension.
func ExtractFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractionError{Message: "could not read file", Cause: err}
	}
	return ExtractText(filepath.Base(path), data)
}

func extractPDF(data []byte) (string, error) {
	pdfReader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Message: "could not open pdf", Cause: err}
	}

	var builder strings.Builder
	for i := 1; i <= pdfReader.NumPage(); i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", &ExtractionError{Message: "could not read pdf page", Cause: err}
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}
	return builder.String(), nil
}

var docxTags = regexp.MustCompile(`<[^>]+>`)

func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Message: "could not open docx", Cause: err}
	}
	defer doc.Close()

	// The editable content is the raw document XML; paragraph closers become
	// newlines before the remaining tags are stripped.
	content := doc.Editable().GetContent()
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = strings.ReplaceAll(content, "<w:tab/>", "\t")
	return docxTags.ReplaceAllString(content, " "), nil
}

func extractHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", &ExtractionError{Message: "could not parse html", Cause: err}
	}
	doc.Find("script, style, noscript").Remove()

	var builder strings.Builder
	doc.Find("body").Each(func(_ int, sel *goquery.Selection) {
		builder.WriteString(sel.Text())
	})
	if builder.Len() == 0 {
		return doc.Text(), nil
	}
	return builder.String(), nil
}

func extractPlain(data []byte) (string, error) {
	return string(data), nil
}
