package fs

import (
	"encoding/json"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/patdoc"
	"gopkg.in/yaml.v3"
)

// FormatForPath derives the record format from a file extension.
func FormatForPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".json":
		return FormatJSON, true
	case ".xml":
		return FormatXML, true
	default:
		return "", false
	}
}

// EncodeRecord serializes a patent document in the given format.
func EncodeRecord(doc *patdoc.PatentDocument, format Format) ([]byte, error) {
	switch format {
	case FormatYAML, "":
		return yaml.Marshal(doc)
	case FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	case FormatXML:
		return encodeXML(doc)
	default:
		return nil, patdoc.Errorf(patdoc.EINVALID, "unknown record format %q", format)
	}
}

// DecodeRecord parses a serialized patent document.
func DecodeRecord(data []byte, format Format) (*patdoc.PatentDocument, error) {
	switch format {
	case FormatYAML, "":
		var doc patdoc.PatentDocument
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, patdoc.Errorf(patdoc.EINVALID, "parsing yaml record: %v", err)
		}
		return &doc, nil
	case FormatJSON:
		var doc patdoc.PatentDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, patdoc.Errorf(patdoc.EINVALID, "parsing json record: %v", err)
		}
		return &doc, nil
	case FormatXML:
		return decodeXML(data)
	default:
		return nil, patdoc.Errorf(patdoc.EINVALID, "unknown record format %q", format)
	}
}

func encodeXML(doc *patdoc.PatentDocument) ([]byte, error) {
	x := etree.NewDocument()
	x.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := x.CreateElement("patent")
	root.CreateAttr("number", doc.Identifier)
	root.CreateElement("title").SetText(doc.Title)

	if len(doc.AssigneeNames) > 0 {
		assignees := root.CreateElement("assignees")
		for _, name := range doc.AssigneeNames {
			assignees.CreateElement("assignee").SetText(name)
		}
	}
	if len(doc.InventorNames) > 0 {
		inventors := root.CreateElement("inventors")
		for _, name := range doc.InventorNames {
			inventors.CreateElement("inventor").SetText(name)
		}
	}

	dates := root.CreateElement("dates")
	setDateAttr(dates, "priority", doc.PriorityDate)
	setDateAttr(dates, "filing", doc.FilingDate)
	setDateAttr(dates, "publication", doc.PublicationDate)
	setDateAttr(dates, "grant", doc.GrantDate)

	if doc.AbstractText != "" {
		root.CreateElement("abstract").SetText(doc.AbstractText)
	}
	if doc.DescriptionText != "" {
		root.CreateElement("description").SetText(doc.DescriptionText)
	}

	if len(doc.Claims) > 0 {
		claims := root.CreateElement("claims")
		for _, c := range doc.Claims {
			claim := claims.CreateElement("claim")
			claim.CreateAttr("num", strconv.Itoa(c.Number))
			if c.DependsOn != 0 {
				claim.CreateAttr("depends", strconv.Itoa(c.DependsOn))
			}
			claim.SetText(c.Text)
		}
	}

	if len(doc.CitedBy) > 0 {
		cited := root.CreateElement("citedBy")
		for _, pub := range doc.CitedBy {
			cited.CreateElement("publication").SetText(pub)
		}
	}

	x.Indent(2)
	return x.WriteToBytes()
}

func setDateAttr(el *etree.Element, name, value string) {
	if value != "" {
		el.CreateAttr(name, value)
	}
}

func decodeXML(data []byte) (*patdoc.PatentDocument, error) {
	x := etree.NewDocument()
	if err := x.ReadFromBytes(data); err != nil {
		return nil, patdoc.Errorf(patdoc.EINVALID, "parsing xml record: %v", err)
	}
	root := x.Root()
	if root == nil || root.Tag != "patent" {
		return nil, patdoc.Errorf(patdoc.EINVALID, "xml record missing patent root element")
	}

	doc := &patdoc.PatentDocument{
		Identifier: root.SelectAttrValue("number", ""),
	}
	if title := root.SelectElement("title"); title != nil {
		doc.Title = title.Text()
	}
	if assignees := root.SelectElement("assignees"); assignees != nil {
		for _, el := range assignees.SelectElements("assignee") {
			doc.AssigneeNames = append(doc.AssigneeNames, el.Text())
		}
	}
	if inventors := root.SelectElement("inventors"); inventors != nil {
		for _, el := range inventors.SelectElements("inventor") {
			doc.InventorNames = append(doc.InventorNames, el.Text())
		}
	}
	if dates := root.SelectElement("dates"); dates != nil {
		doc.PriorityDate = dates.SelectAttrValue("priority", "")
		doc.FilingDate = dates.SelectAttrValue("filing", "")
		doc.PublicationDate = dates.SelectAttrValue("publication", "")
		doc.GrantDate = dates.SelectAttrValue("grant", "")
	}
	if abstract := root.SelectElement("abstract"); abstract != nil {
		doc.AbstractText = abstract.Text()
	}
	if description := root.SelectElement("description"); description != nil {
		doc.DescriptionText = description.Text()
	}
	if claims := root.SelectElement("claims"); claims != nil {
		for _, el := range claims.SelectElements("claim") {
			num, err := strconv.Atoi(el.SelectAttrValue("num", "0"))
			if err != nil {
				return nil, patdoc.Errorf(patdoc.EINVALID, "claim num attribute %q is not a number", el.SelectAttrValue("num", ""))
			}
			depends, _ := strconv.Atoi(el.SelectAttrValue("depends", "0"))
			doc.Claims = append(doc.Claims, patdoc.Claim{Number: num, Text: el.Text(), DependsOn: depends})
		}
	}
	if cited := root.SelectElement("citedBy"); cited != nil {
		for _, el := range cited.SelectElements("publication") {
			doc.CitedBy = append(doc.CitedBy, el.Text())
		}
	}
	return doc, nil
}
