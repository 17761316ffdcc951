package patdoc

// Outcome records the result of processing one source in a batch.
type Outcome struct {
	// Source is the URL or local path that was processed.
	Source string

	// Identifier is the extracted document number. For skipped sources it
	// is the provisional identifier derived from the source location.
	Identifier string

	// Title of the document, when extraction got that far.
	Title string

	// Skipped reports that existing output satisfied the source without a
	// network call.
	Skipped bool

	// Err is the failure reason; nil means success.
	Err error
}

// Succeeded reports whether the outcome counts toward the success tally.
func (o *Outcome) Succeeded() bool { return o.Err == nil }

// Summary tallies a completed batch.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
}

// Summarize tallies outcomes. The result depends only on the outcome set,
// never on completion order.
func Summarize(outcomes []Outcome) Summary {
	s := Summary{Total: len(outcomes)}
	for i := range outcomes {
		if outcomes[i].Succeeded() {
			s.Succeeded++
		} else {
			s.Failed++
		}
	}
	return s
}

// FetchProgress reports progress during batch processing.
type FetchProgress struct {
	Source    string
	Completed int
	Total     int
	Error     error
}

// ProgressFunc is called as sources complete processing.
type ProgressFunc func(FetchProgress)
