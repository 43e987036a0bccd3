package model

// Entry is a single record from the upstream data source.
// The upstream API uses capitalized JSON field names; API acts as the
// opaque identifier and Category as the filter key. Entries are treated
// as immutable for the lifetime of a request.
type Entry struct {
	API         string `json:"API"`
	Description string `json:"Description"`
	Auth        string `json:"Auth"`
	HTTPS       bool   `json:"HTTPS"`
	Cors        string `json:"Cors"`
	Link        string `json:"Link"`
	Category    string `json:"Category"`
}

// EntriesEnvelope is the upstream response wrapper around the collection.
type EntriesEnvelope struct {
	Count   int     `json:"count"`
	Entries []Entry `json:"entries"`
}
