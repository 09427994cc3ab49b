package types

// UnknownValue is the sentinel substituted for course fields that are
// missing, empty, or carry a junk literal ("not found", "n/a", "none",
// "nan", case-insensitive).
const UnknownValue = "N/A"

// DisabledURL is the sentinel substituted for course URLs that are
// missing or not http(s). The presentation layer renders it as a
// disabled link, never as clickable raw text.
const DisabledURL = "#"

// CourseRecord is a display-ready course keyed by its integer index into
// the course corpus. Every field has already been passed through sentinel
// cleaning: the zero-information cases resolve to UnknownValue (or
// DisabledURL for the link) rather than raw garbage.
type CourseRecord struct {
	Index        int    `json:"index"`
	Title        string `json:"title"`
	Instructor   string `json:"instructor"`
	Organization string `json:"organization"`
	Level        string `json:"level"`
	Enrolled     string `json:"enrolled"`
	Rating       string `json:"rating"`
	URL          string `json:"url"`
}
