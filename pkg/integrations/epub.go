package integrations

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-shiori/go-epub"
	"github.com/h2non/filetype"
)

// Book describes the EPUB being written.
type Book struct {
	Title       string
	Author      string
	Description string
	Language    string
}

// Page is a single comic image, one section of the book.
type Page struct {
	Index   int
	Title   string // alt text of the image, "<series> #N"
	Label   string // section title, "#N"
	Content []byte
	Ext     string // file extension without dot, detected when empty
}

type EPubBuilder struct {
	outputDir string
}

func NewEPubBuilder(outputDir string) *EPubBuilder {
	if outputDir == "" {
		outputDir, _ = os.MkdirTemp("", "comics-epub-*")
	}
	return &EPubBuilder{outputDir: outputDir}
}

// CreateEPub writes all pages, ordered by index, into a single EPUB file and
// returns its path.
func (p *EPubBuilder) CreateEPub(book Book, pages []Page) (string, error) {
	if len(pages) == 0 {
		return "", fmt.Errorf("no pages to compile")
	}

	if err := os.MkdirAll(p.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	// go-epub copies images from files, stage pages on disk first
	stage, err := os.MkdirTemp("", "comics-pages-*")
	if err != nil {
		return "", fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer os.RemoveAll(stage)

	sorted := make([]Page, len(pages))
	copy(sorted, pages)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Index < sorted[j].Index
	})

	e, err := epub.NewEpub(book.Title)
	if err != nil {
		return "", fmt.Errorf("failed to create EPub: %w", err)
	}
	if book.Author != "" {
		e.SetAuthor(book.Author)
	}
	if book.Description != "" {
		e.SetDescription(book.Description)
	}
	if book.Language != "" {
		e.SetLang(book.Language)
	}

	for _, page := range sorted {
		if err := p.addPage(e, stage, page); err != nil {
			return "", fmt.Errorf("failed to add comic %d: %w", page.Index, err)
		}
	}

	outputPath := filepath.Join(p.outputDir, sanitizeFilename(book.Title)+".epub")
	if err := e.Write(outputPath); err != nil {
		return "", fmt.Errorf("failed to write EPub: %w", err)
	}

	return outputPath, nil
}

func (p *EPubBuilder) addPage(e *epub.Epub, stage string, page Page) error {
	ext := page.Ext
	if ext == "" {
		ext = detectExt(page.Content)
	}

	name := fmt.Sprintf("%03d.%s", page.Index, ext)
	imgPath := filepath.Join(stage, name)
	if err := os.WriteFile(imgPath, page.Content, 0644); err != nil {
		return fmt.Errorf("failed to stage image: %w", err)
	}

	internalPath, err := e.AddImage(imgPath, name)
	if err != nil {
		return fmt.Errorf("failed to add image %s: %w", name, err)
	}

	label := page.Label
	if label == "" {
		label = fmt.Sprintf("#%d", page.Index)
	}

	// sections are XHTML, user text must be escaped
	var body strings.Builder
	body.WriteString(fmt.Sprintf("<h1>%s</h1>\n", html.EscapeString(label)))
	body.WriteString(fmt.Sprintf(
		`<div class="page"><img src="%s" alt="%s" style="width:100%%;height:auto;"/></div>%s`,
		html.EscapeString(internalPath), html.EscapeString(page.Title), "\n",
	))

	if _, err := e.AddSection(body.String(), label, "", ""); err != nil {
		return fmt.Errorf("failed to add section: %w", err)
	}
	return nil
}

func detectExt(content []byte) string {
	kind, err := filetype.Match(content)
	if err != nil || kind == filetype.Unknown {
		return "png"
	}
	return kind.Extension
}

// sanitizeFilename removes characters that are invalid in filenames
func sanitizeFilename(name string) string {
	invalid := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}
	result := name
	for _, char := range invalid {
		result = strings.ReplaceAll(result, char, "_")
	}
	result = strings.TrimSpace(result)
	result = strings.Trim(result, ".")
	if result == "" {
		result = "comics"
	}
	return result
}
