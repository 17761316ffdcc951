package patdoc

// PatentDocument is the structured record produced by one extraction pass
// over one patent page. Field values are best-effort: source markup is
// inconsistent across publication formats, so absent data is represented as
// an empty string or empty slice, never as an error. An empty Identifier is
// the extraction-failure signal; every other field may legitimately be empty.
//
// Date fields are opaque strings passed through verbatim because source
// documents carry dates in heterogeneous formats.
//
// A PatentDocument and its Claims are immutable value records owned by the
// caller once returned; extractions of different documents share no state.
type PatentDocument struct {
	Identifier      string   `json:"identifier" yaml:"identifier"`
	Title           string   `json:"title" yaml:"title"`
	AssigneeNames   []string `json:"assigneeNames,omitempty" yaml:"assignee_names,omitempty"`
	InventorNames   []string `json:"inventorNames,omitempty" yaml:"inventor_names,omitempty"`
	PriorityDate    string   `json:"priorityDate,omitempty" yaml:"priority_date,omitempty"`
	FilingDate      string   `json:"filingDate,omitempty" yaml:"filing_date,omitempty"`
	PublicationDate string   `json:"publicationDate,omitempty" yaml:"publication_date,omitempty"`
	GrantDate       string   `json:"grantDate,omitempty" yaml:"grant_date,omitempty"`
	AbstractText    string   `json:"abstractText,omitempty" yaml:"abstract_text,omitempty"`
	DescriptionText string   `json:"descriptionText,omitempty" yaml:"description_text,omitempty"`
	Claims          []Claim  `json:"claims,omitempty" yaml:"claims,omitempty"`
	CitedBy         []string `json:"citedBy,omitempty" yaml:"cited_by,omitempty"`
}

// Validate returns an error if the document cannot be persisted.
// Only persistence paths call this; extraction itself never fails on
// missing fields.
func (d *PatentDocument) Validate() error {
	if d.Identifier == "" {
		return Errorf(EINVALID, "document identifier required")
	}
	for i := range d.Claims {
		if err := d.Claims[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Claim is one numbered claim within a patent document. Claims are stored
// sorted ascending by Number. DependsOn of zero means the claim is
// independent; when set it references a strictly smaller Number, so the
// dependency relation over one document forms a forest and can never cycle.
type Claim struct {
	Number    int    `json:"number" yaml:"number"`
	Text      string `json:"text" yaml:"text"`
	DependsOn int    `json:"dependentOn,omitempty" yaml:"dependent_on,omitempty"`
}

// Dependent reports whether the claim narrows an earlier claim.
func (c *Claim) Dependent() bool { return c.DependsOn != 0 }

// Validate returns an error if the claim violates the numbering invariants.
func (c *Claim) Validate() error {
	if c.Number <= 0 {
		return Errorf(EINVALID, "claim number must be positive")
	}
	if c.DependsOn < 0 {
		return Errorf(EINVALID, "claim %d dependency must be positive", c.Number)
	}
	if c.DependsOn != 0 && c.DependsOn >= c.Number {
		return Errorf(EINVALID, "claim %d cannot depend on claim %d", c.Number, c.DependsOn)
	}
	return nil
}
