package model

// Category is the bucket a commit subject lands in. Values are ordered by
// classification precedence.
type Category int

const (
	Features Category = iota
	Fixes
	Improvements
	Other
)

func (c Category) String() string {
	switch c {
	case Features:
		return "features"
	case Fixes:
		return "fixes"
	case Improvements:
		return "improvements"
	case Other:
		return "other"
	}
	return "unknown"
}

// Buckets groups commit subjects by category, keeping the order they were seen in.
type Buckets map[Category][]string

// Add appends a subject to its category.
func (b Buckets) Add(c Category, subject string) {
	b[c] = append(b[c], subject)
}

// Empty reports whether no renderable category has entries.
func (b Buckets) Empty() bool {
	return len(b[Features]) == 0 && len(b[Fixes]) == 0 && len(b[Improvements]) == 0
}

// ReleaseNote bundles what the renderer needs for one run.
type ReleaseNote struct {
	Version string
	FromRef string
	Commits []string
	Buckets Buckets
}
