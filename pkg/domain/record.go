package domain

// Record represents one stored entity. Field sets are caller defined.
type Record map[string]interface{}

// Reserved record fields assigned by the store on creation.
const (
	FieldID          = "id"
	FieldCreatedDate = "created_date"
)

// ID returns the record id, or "" if it has none.
func (r Record) ID() string {
	id, _ := r[FieldID].(string)
	return id
}

// HasID reports whether the record's id is the string id. A missing or
// non-string id never matches, not even "".
func (r Record) HasID(id string) bool {
	stored, ok := r[FieldID].(string)
	return ok && stored == id
}

// CreatedDate returns the raw created_date value, or "" if it has none.
func (r Record) CreatedDate() string {
	created, _ := r[FieldCreatedDate].(string)
	return created
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// DeleteResult is returned by collection deletes.
type DeleteResult struct {
	Success bool `json:"success"`
}
