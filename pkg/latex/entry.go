package latex

// EntryType identifies which entry macro produced an entry.
type EntryType string

const (
	EntrySection    EntryType = "section"
	EntrySubsection EntryType = "subsection"
	EntryParagraph  EntryType = "paragraph"
)

// Entry is one bilingual unit: a type tag plus one HTML paragraph list per language.
type Entry struct {
	Type      EntryType
	LanguageA []string
	LanguageB []string
}

// EntryMacro maps an entry macro to the type of entry it produces.
type EntryMacro struct {
	Name string // including the leading backslash
	Type EntryType
}

// EntryMacros lists the entry macros in match order. Matching is by prefix,
// so longer names sharing a prefix must come first.
var EntryMacros = []EntryMacro{
	{Name: `\transSec`, Type: EntrySection},
	{Name: `\transSubSec`, Type: EntrySubsection},
	{Name: `\trans`, Type: EntryParagraph},
}
