// Package artoc extracts a table of contents and structural metadata from
// article HTML. It finds the document title, the lead paragraph (perex),
// and all section headings; assigns each heading a stable URL-safe
// identifier; and produces a copy of the HTML with anchor elements
// injected before each heading so TOC links have scroll targets.
//
// This package contains domain types, interfaces, and the core transformer
// following Ben Johnson's Standard Package Layout. Implementations of the
// peripheral interfaces live in subdirectories named after their primary
// dependency (e.g., sqlite/, goquery/, etree/).
package artoc
