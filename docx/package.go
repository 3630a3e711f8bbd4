package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	fixzip "github.com/hidez8891/zip"

	"github.com/Shane32/BookConverter/misc"
)

// OPC package assembly. Every part is an XML document written into the final
// zip container.

const (
	ctDocument = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	ctStyles   = "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"
	ctSettings = "application/vnd.openxmlformats-officedocument.wordprocessingml.settings+xml"
	ctHeader   = "application/vnd.openxmlformats-officedocument.wordprocessingml.header+xml"
	ctCore     = "application/vnd.openxmlformats-package.core-properties+xml"
	ctApp      = "application/vnd.openxmlformats-officedocument.extended-properties+xml"

	relStyles   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relSettings = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/settings"
	relHeader   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/header"
	relOffice   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relCore     = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relApp      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
)

// headerParts assigns part names and relationship ids to headers as section
// properties are serialized. Document level relationships rId1 and rId2 are
// taken by styles and settings.
type headerParts struct {
	headers []*Header
	relIDs  []string
}

func (hp *headerParts) add(h *Header) string {
	hp.headers = append(hp.headers, h)
	id := fmt.Sprintf("rId%d", len(hp.headers)+2)
	hp.relIDs = append(hp.relIDs, id)
	return id
}

func (hp *headerParts) name(i int) string {
	return fmt.Sprintf("header%d.xml", i+1)
}

// Save serializes the document into a docx package at path. When fixZip is
// set the archive is rewritten without streamed entry data descriptors, some
// document consumers refuse those.
func (d *Document) Save(path string, fixZip bool) error {

	hdrs := &headerParts{}
	docXML := d.buildDocument(hdrs)

	tmp, err := os.CreateTemp(filepath.Dir(path), ".bkc-*.docx")
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)
	defer tmp.Close()

	zw := zip.NewWriter(tmp)
	defer zw.Close()

	parts := []struct {
		name string
		doc  *etree.Document
	}{
		{"[Content_Types].xml", d.buildContentTypes(hdrs)},
		{"_rels/.rels", buildPackageRels()},
		{"word/document.xml", docXML},
		{"word/_rels/document.xml.rels", buildDocumentRels(hdrs)},
		{"word/styles.xml", buildStyles(d.styles, d.lang)},
		{"word/settings.xml", d.buildSettings()},
		{"docProps/core.xml", d.buildCoreProps()},
		{"docProps/app.xml", buildAppProps()},
	}
	for i, h := range hdrs.headers {
		parts = append(parts, struct {
			name string
			doc  *etree.Document
		}{"word/" + hdrs.name(i), buildHeaderPart(h)})
	}

	for _, part := range parts {
		if err := writeXMLToZip(zw, part.name, part.doc); err != nil {
			return fmt.Errorf("unable to write %s: %w", part.name, err)
		}
	}

	// make sure buffers are flushed before continuing
	if err := zw.Close(); err != nil {
		return fmt.Errorf("unable to close output archive: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("unable to finalize output file: %w", err)
	}

	if fixZip {
		return copyZipWithoutDataDescriptors(tmpName, path)
	}
	return copyFile(tmpName, path)
}

func (d *Document) buildDocument(hdrs *headerParts) *etree.Document {

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	root := doc.CreateElement("w:document")
	root.CreateAttr("xmlns:w", nsW)
	root.CreateAttr("xmlns:r", nsR)

	body := root.CreateElement("w:body")
	for i, s := range d.sections {
		for _, p := range s.paras {
			body.AddChild(p.p)
		}
		sp := s.buildSectPr(d, hdrs)
		if i < len(d.sections)-1 {
			// a non-final section is closed by a paragraph carrying its
			// properties
			p := body.CreateElement("w:p")
			p.CreateElement("w:pPr").AddChild(sp)
		} else {
			body.AddChild(sp)
		}
	}
	return doc
}

func buildHeaderPart(h *Header) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	root := doc.CreateElement("w:hdr")
	root.CreateAttr("xmlns:w", nsW)
	root.CreateAttr("xmlns:r", nsR)
	for _, p := range h.paras {
		root.AddChild(p.p)
	}
	return doc
}

func (d *Document) buildSettings() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	root := doc.CreateElement("w:settings")
	root.CreateAttr("xmlns:w", nsW)
	root.CreateAttr("xmlns:w15", nsW15)
	root.CreateAttr("xmlns:mc", nsMC)
	root.CreateAttr("mc:Ignorable", "w15")

	if d.page.MirrorMargins {
		root.CreateElement("w:mirrorMargins")
	}
	// distinct recto/verso headers are a document level switch, not a
	// section property
	root.CreateElement("w:evenAndOddHeaders")

	docID := root.CreateElement("w15:docId")
	docID.CreateAttr("w15:val", "{"+strings.ToUpper(uuid.NewString())+"}")

	return doc
}

func (d *Document) buildCoreProps() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	now := time.Now().UTC().Format(time.RFC3339)

	root := doc.CreateElement("cp:coreProperties")
	root.CreateAttr("xmlns:cp", "http://schemas.openxmlformats.org/package/2006/metadata/core-properties")
	root.CreateAttr("xmlns:dc", "http://purl.org/dc/elements/1.1/")
	root.CreateAttr("xmlns:dcterms", "http://purl.org/dc/terms/")
	root.CreateAttr("xmlns:xsi", "http://www.w3.org/2001/XMLSchema-instance")

	root.CreateElement("dc:title").SetText(d.title)
	root.CreateElement("dc:creator").SetText(d.creator)
	created := root.CreateElement("dcterms:created")
	created.CreateAttr("xsi:type", "dcterms:W3CDTF")
	created.SetText(now)
	modified := root.CreateElement("dcterms:modified")
	modified.CreateAttr("xsi:type", "dcterms:W3CDTF")
	modified.SetText(now)

	return doc
}

func buildAppProps() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	root := doc.CreateElement("Properties")
	root.CreateAttr("xmlns", "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties")
	root.CreateElement("Application").SetText(misc.GetAppName() + " " + misc.GetVersion())

	return doc
}

func (d *Document) buildContentTypes(hdrs *headerParts) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	root := doc.CreateElement("Types")
	root.CreateAttr("xmlns", "http://schemas.openxmlformats.org/package/2006/content-types")

	def := root.CreateElement("Default")
	def.CreateAttr("Extension", "rels")
	def.CreateAttr("ContentType", "application/vnd.openxmlformats-package.relationships+xml")
	def = root.CreateElement("Default")
	def.CreateAttr("Extension", "xml")
	def.CreateAttr("ContentType", "application/xml")

	override := func(name, ct string) {
		o := root.CreateElement("Override")
		o.CreateAttr("PartName", name)
		o.CreateAttr("ContentType", ct)
	}
	override("/word/document.xml", ctDocument)
	override("/word/styles.xml", ctStyles)
	override("/word/settings.xml", ctSettings)
	for i := range hdrs.headers {
		override("/word/"+hdrs.name(i), ctHeader)
	}
	override("/docProps/core.xml", ctCore)
	override("/docProps/app.xml", ctApp)

	return doc
}

func buildPackageRels() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	root := doc.CreateElement("Relationships")
	root.CreateAttr("xmlns", "http://schemas.openxmlformats.org/package/2006/relationships")

	addRel(root, "rId1", relOffice, "word/document.xml")
	addRel(root, "rId2", relCore, "docProps/core.xml")
	addRel(root, "rId3", relApp, "docProps/app.xml")

	return doc
}

func buildDocumentRels(hdrs *headerParts) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	root := doc.CreateElement("Relationships")
	root.CreateAttr("xmlns", "http://schemas.openxmlformats.org/package/2006/relationships")

	addRel(root, "rId1", relStyles, "styles.xml")
	addRel(root, "rId2", relSettings, "settings.xml")
	for i, id := range hdrs.relIDs {
		addRel(root, id, relHeader, hdrs.name(i))
	}

	return doc
}

func addRel(root *etree.Element, id, relType, target string) {
	rel := root.CreateElement("Relationship")
	rel.CreateAttr("Id", id)
	rel.CreateAttr("Type", relType)
	rel.CreateAttr("Target", target)
}

func writeXMLToZip(zw *zip.Writer, name string, doc *etree.Document) error {
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return err
	}
	w, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}

func copyZipWithoutDataDescriptors(from, to string) error {

	out, err := os.Create(to)
	if err != nil {
		return fmt.Errorf("unable to create target file (%s): %w", to, err)
	}
	defer out.Close()

	r, err := fixzip.OpenReader(from)
	if err != nil {
		return fmt.Errorf("unable to read archive file (%s): %w", from, err)
	}
	defer r.Close()

	w := fixzip.NewWriter(out)
	defer w.Close()

	for _, file := range r.File {
		// unset data descriptor flag.
		file.Flags &= ^fixzip.FlagDataDescriptor

		// copy zip entry
		if err := w.CopyFile(file); err != nil {
			return fmt.Errorf("unable to write target file (%s): %w", to, err)
		}
	}
	return nil
}

func copyFile(src, dst string) error {

	sourceFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer sourceFile.Close()

	destinationFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}
	defer destinationFile.Close()

	if _, err = io.Copy(destinationFile, sourceFile); err != nil {
		return fmt.Errorf("failed to copy file contents: %w", err)
	}

	if err = destinationFile.Close(); err != nil {
		return fmt.Errorf("failed to close destination file: %w", err)
	}
	return nil
}
