// Package patdoc extracts structured bibliographic and legal data from
// patent-document HTML and retrieves that HTML in bounded-concurrency
// batches. One Google Patents style page becomes one PatentDocument record
// (identifier, title, parties, dates, abstract, description, numbered claims
// with dependency links); batch runs skip sources whose output already
// exists, record per-item outcomes, and never let one failure abort the run.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, rod/).
package patdoc
