package feed

import (
	"encoding/xml"
	"fmt"
	"io"
)

// googleNamespace is the extension-schema URI bound to the g: prefix
const googleNamespace = "http://base.google.com/ns/1.0"

// Fixed channel metadata required by the schema
const (
	channelTitle       = "Google Base feed"
	channelLink        = "http://base.google.com/base/"
	channelDescription = "Information about products"
)

// Writer streams mapped items into a single well-formed RSS 2.0
// document. Items are written one at a time; the whole item set is
// never buffered. Close must be called on every exit path so all open
// elements are closed before the sink sees the final flush.
type Writer struct {
	enc    *xml.Encoder
	closed bool
}

// cdata wraps a string in a CDATA section
type cdata struct {
	Value string `xml:",cdata"`
}

// xmlItem is the wire shape of one feed item. Prefixed names are
// emitted literally; the g prefix is declared on the rss element.
type xmlItem struct {
	XMLName               xml.Name `xml:"item"`
	ID                    string   `xml:"g:id"`
	Title                 cdata    `xml:"title"`
	Description           cdata    `xml:"description"`
	GoogleProductCategory cdata    `xml:"g:google_product_category"`
	ProductType           *cdata   `xml:"g:product_type,omitempty"`
	Link                  string   `xml:"link"`
	ImageLink             string   `xml:"g:image_link"`
	AdditionalImageLinks  []string `xml:"g:additional_image_link,omitempty"`
	Condition             string   `xml:"g:condition"`
	ExpirationDate        string   `xml:"g:expiration_date"`
	Availability          string   `xml:"g:availability"`
	Price                 string   `xml:"g:price"`
	Brand                 *cdata   `xml:"g:brand,omitempty"`
	IdentifierExists      string   `xml:"g:identifier_exists,omitempty"`
}

// NewWriter writes the document prolog, the rss/channel envelope and
// the fixed channel metadata, leaving the writer positioned for items
func NewWriter(w io.Writer) (*Writer, error) {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	if err := enc.EncodeToken(xml.ProcInst{Target: "xml", Inst: []byte(`version="1.0" encoding="utf-8"`)}); err != nil {
		return nil, fmt.Errorf("write xml prolog: %w", err)
	}
	rss := xml.StartElement{
		Name: xml.Name{Local: "rss"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "version"}, Value: "2.0"},
			{Name: xml.Name{Local: "xmlns:g"}, Value: googleNamespace},
		},
	}
	if err := enc.EncodeToken(rss); err != nil {
		return nil, fmt.Errorf("open rss element: %w", err)
	}
	if err := enc.EncodeToken(xml.StartElement{Name: xml.Name{Local: "channel"}}); err != nil {
		return nil, fmt.Errorf("open channel element: %w", err)
	}

	meta := []struct{ name, value string }{
		{"title", channelTitle},
		{"link", channelLink},
		{"description", channelDescription},
	}
	for _, el := range meta {
		start := xml.StartElement{Name: xml.Name{Local: el.name}}
		if err := enc.EncodeElement(el.value, start); err != nil {
			return nil, fmt.Errorf("write channel %s: %w", el.name, err)
		}
	}
	if err := enc.Flush(); err != nil {
		return nil, fmt.Errorf("flush feed envelope: %w", err)
	}

	return &Writer{enc: enc}, nil
}

// WriteItem serializes one mapped item
func (w *Writer) WriteItem(item *MappedItem) error {
	if w.closed {
		return ErrWriterClosed
	}

	out := xmlItem{
		ID:                    item.ID,
		Title:                 cdata{item.Title},
		Description:           cdata{item.Description},
		GoogleProductCategory: cdata{item.Taxonomy},
		Link:                  item.Link,
		ImageLink:             item.ImageURL,
		AdditionalImageLinks:  item.AdditionalImageURLs,
		Condition:             "new",
		ExpirationDate:        item.ExpirationDate,
		Availability:          string(item.Availability),
		Price:                 item.Price,
	}
	if item.ProductType != "" {
		out.ProductType = &cdata{item.ProductType}
	}
	if item.Brand != "" {
		out.Brand = &cdata{item.Brand}
	}
	if item.CustomGoods {
		out.IdentifierExists = "FALSE"
	}

	if err := w.enc.Encode(out); err != nil {
		return fmt.Errorf("write feed item %s: %w", item.ID, err)
	}
	return nil
}

// Close ends the channel and rss elements and flushes the encoder.
// It is idempotent and must run on both success and error paths.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if err := w.enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: "channel"}}); err != nil {
		return fmt.Errorf("close channel element: %w", err)
	}
	if err := w.enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: "rss"}}); err != nil {
		return fmt.Errorf("close rss element: %w", err)
	}
	if err := w.enc.Flush(); err != nil {
		return fmt.Errorf("flush feed document: %w", err)
	}
	return nil
}
