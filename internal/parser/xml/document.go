package xml

import (
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	dec "github.com/rezonia/nip24-client/internal/decimal"
	"github.com/rezonia/nip24-client/internal/model"
)

const (
	errorCodePath        = "/result/error/code"
	errorDescriptionPath = "/result/error/description"
)

// Entities left in element text are decoded once more, ampersand last.
var unescaper = strings.NewReplacer(
	"&quot;", `"`,
	"&apos;", "'",
	"&lt;", "<",
	"&gt;", ">",
	"&amp;", "&",
)

// Document is a parsed service response
type Document struct {
	Node
	doc *etree.Document
}

// Parse parses a response body into a Document
func Parse(content []byte) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(content); err != nil {
		return nil, model.ErrResponse(err)
	}
	if doc.Root() == nil {
		return nil, model.ErrResponse(nil)
	}

	return &Document{
		Node: Node{elem: &doc.Element},
		doc:  doc,
	}, nil
}

// RootTag returns the tag of the first element under the document root
// (firm, vat, account, ...) or "" when there is none
func (d *Document) RootTag() string {
	children := d.doc.Root().ChildElements()
	if len(children) == 0 {
		return ""
	}
	return children[0].Tag
}

// Err returns the service error carried by the document, if any
func (d *Document) Err() error {
	code := d.String(errorCodePath, "")
	if code == "" {
		return nil
	}
	return model.NewServiceError(d.Int(errorCodePath, 0), d.String(errorDescriptionPath, ""))
}

// ErrorCode returns the raw text of the service error code, or "" when
// the answer carries no error
func (d *Document) ErrorCode() string {
	return d.String(errorCodePath, "")
}

// Node is a view of the tree rooted at one element. Paths starting with
// '/' resolve from the document root, other paths from the node itself.
type Node struct {
	elem *etree.Element
}

func (n Node) text(path string) string {
	if n.elem == nil {
		return ""
	}
	e := n.elem.FindElement(path)
	if e == nil {
		return ""
	}
	return e.Text()
}

// Exists reports whether path selects an element
func (n Node) Exists(path string) bool {
	return n.elem != nil && n.elem.FindElement(path) != nil
}

// String returns the text at path, or def when it is absent or empty
func (n Node) String(path, def string) string {
	s := n.text(path)
	if s == "" {
		return def
	}
	return unescaper.Replace(s)
}

// Int returns the leading integer of the text at path, or def
func (n Node) Int(path string, def int) int {
	prefix := dec.NumericPrefix(n.String(path, ""), false)
	if prefix == "" {
		return def
	}
	v, err := strconv.Atoi(prefix)
	if err != nil {
		return def
	}
	return v
}

// Float returns the leading floating point number of the text at path, or def
func (n Node) Float(path string, def float64) float64 {
	prefix := dec.NumericPrefix(n.String(path, ""), true)
	if prefix == "" {
		return def
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return def
	}
	return v
}

// Decimal returns the leading number of the text at path as a decimal, or def
func (n Node) Decimal(path string, def decimal.Decimal) decimal.Decimal {
	return dec.Lenient(n.String(path, ""), def)
}

// Bool returns true only for the exact text "true"; def when absent or empty
func (n Node) Bool(path string, def bool) bool {
	s := n.String(path, "")
	if s == "" {
		return def
	}
	return s == "true"
}

// DateTime parses a YYYY-MM-DDTHH:MM:SS prefix as UTC. Anything else
// yields the zero time.
func (n Node) DateTime(path string) time.Time {
	return parsePrefix(n.String(path, ""), "2006-01-02T15:04:05")
}

// Date parses a YYYY-MM-DD prefix as UTC. Anything else yields the zero time.
func (n Node) Date(path string) time.Time {
	return parsePrefix(n.String(path, ""), "2006-01-02")
}

// Sequence returns the child elements of parent in document order,
// stopping at the first one whose discriminator text is absent or empty
func (n Node) Sequence(parent, child, discriminator string) []Node {
	if n.elem == nil {
		return nil
	}
	p := n.elem.FindElement(parent)
	if p == nil {
		return nil
	}

	var items []Node
	for _, e := range p.SelectElements(child) {
		item := Node{elem: e}
		if item.String(discriminator, "") == "" {
			break
		}
		items = append(items, item)
	}
	return items
}

// Strings returns the text of each child element of parent, stopping at
// the first empty one
func (n Node) Strings(parent, child string) []string {
	if n.elem == nil {
		return nil
	}
	p := n.elem.FindElement(parent)
	if p == nil {
		return nil
	}

	var values []string
	for _, e := range p.SelectElements(child) {
		if e.Text() == "" {
			break
		}
		values = append(values, unescaper.Replace(e.Text()))
	}
	return values
}

func parsePrefix(s, layout string) time.Time {
	if len(s) < len(layout) {
		return time.Time{}
	}
	t, err := time.ParseInLocation(layout, s[:len(layout)], time.UTC)
	if err != nil {
		return time.Time{}
	}
	return t
}
