package domain

// RawRow is one row of cell values as returned by a tabular data source.
// Cells are in sheet column order; trailing empty cells may be omitted.
type RawRow []any

// SubmissionRow is a validated form submission ready to be merged.
// All fields are non-empty. Timestamp is the row's identity key.
type SubmissionRow struct {
	// Timestamp is the submission time normalised to RFC 3339 in UTC.
	Timestamp string

	// TeacherName is the teacher being praised.
	TeacherName string

	// Praise is the submitted message with line breaks collapsed to spaces.
	Praise string

	// FromName is the name of the person who submitted the form.
	FromName string
}

// FormLayout maps raw row cells to SubmissionRow fields.
// It is the only place that knows the form sheet's column order.
type FormLayout struct {
	Timestamp   int
	FromName    int
	TeacherName int
	Praise      int
}

// DefaultFormLayout returns the column order written by the praise form:
// Timestamp, From, Teacher name, Teacher email, Praise.
func DefaultFormLayout() FormLayout {
	return FormLayout{
		Timestamp:   0,
		FromName:    1,
		TeacherName: 2,
		Praise:      4,
	}
}

// IsValid returns true if every column index is non-negative.
func (l FormLayout) IsValid() bool {
	return l.Timestamp >= 0 && l.FromName >= 0 && l.TeacherName >= 0 && l.Praise >= 0
}

// Placeholders are the literal tokens replaced on the template slide.
type Placeholders struct {
	TeacherName string
	Praise      string
	FromName    string
}

// DefaultPlaceholders returns the tokens used by the stock template.
func DefaultPlaceholders() Placeholders {
	return Placeholders{
		TeacherName: "{{teacherName}}",
		Praise:      "{{praise}}",
		FromName:    "{{fromName}}",
	}
}

// Replacements pairs each placeholder with the row's value, in a fixed order.
// Placeholders left empty are dropped.
func (p Placeholders) Replacements(row SubmissionRow) []Replacement {
	pairs := []Replacement{
		{Placeholder: p.TeacherName, Value: row.TeacherName},
		{Placeholder: p.Praise, Value: row.Praise},
		{Placeholder: p.FromName, Value: row.FromName},
	}

	out := pairs[:0]
	for _, r := range pairs {
		if r.Placeholder != "" {
			out = append(out, r)
		}
	}
	return out
}

// Replacement is one literal substitution.
type Replacement struct {
	Placeholder string
	Value       string
}
