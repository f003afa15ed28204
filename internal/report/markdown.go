package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/nao1215/markdown"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nao1215/wfkit/internal/model"
)

// maxTableRows caps the repository table so catalogs with thousands of
// entries still render a readable document. The JSON output remains the
// complete record.
const maxTableRows = 50

// MarkdownWriter outputs a human-oriented catalog summary document.
//
// Design decision: We use the nao1215/markdown library for fluent
// markdown generation which provides:
//  1. Type-safe markdown generation
//  2. Support for tables, lists, and code blocks
//  3. GitHub-flavored markdown output
type MarkdownWriter struct {
	baseWriter

	// caser title-cases language names for the table ("objective-c"
	// arrives lowercased from some API results).
	caser cases.Caser
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given
// writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
		caser:      cases.Title(language.English),
	}
}

// Write outputs the catalog summary in Markdown format.
func (w *MarkdownWriter) Write(result *model.FetchResult) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, result)
	w.writeRepoTable(md, result)

	return len(md.String()), md.Build()
}

// writeHeader writes the document title and fetch metadata.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, result *model.FetchResult) {
	md.H1("Workflow Catalog")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Topic", "`" + result.Topic + "`"},
			{"Repositories", strconv.Itoa(len(result.Repos))},
			{"Reported Total", strconv.Itoa(result.TotalCount)},
			{"Pages Fetched", strconv.Itoa(result.Pages)},
			{"Fetched At", result.FetchedAt.Format("2006-01-02 15:04:05 MST")},
		},
	})
	md.PlainText("")
}

// writeRepoTable writes the repository table sorted by stars descending.
func (w *MarkdownWriter) writeRepoTable(md *markdown.Markdown, result *model.FetchResult) {
	md.H2("Repositories by Stars")
	md.PlainText("")

	if len(result.Repos) == 0 {
		md.PlainText("No repositories found.")
		return
	}

	repos := make([]model.Repo, len(result.Repos))
	copy(repos, result.Repos)
	sort.SliceStable(repos, func(i, j int) bool {
		return repos[i].Stars > repos[j].Stars
	})

	shown := repos
	truncated := false
	if len(shown) > maxTableRows {
		shown = shown[:maxTableRows]
		truncated = true
	}

	rows := make([][]string, 0, len(shown))
	for i := range shown {
		repo := &shown[i]
		rows = append(rows, []string{
			"[" + repo.FullName() + "](" + repo.URL + ")",
			strconv.FormatInt(repo.Stars, 10),
			w.langName(repo.Lang),
			repo.Description,
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Repository", "Stars", "Language", "Description"},
		Rows:   rows,
	})

	if truncated {
		md.PlainText("")
		md.PlainText(fmt.Sprintf("Showing top %d of %d repositories.", maxTableRows, len(repos)))
	}
}

// langName returns a display name for a primary language.
func (w *MarkdownWriter) langName(lang string) string {
	if lang == "" {
		return "-"
	}
	return w.caser.String(lang)
}
