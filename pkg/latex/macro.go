// macro.go defines the table of inline macros understood by the HTML converter.
package latex

import "strings"

// Behavior describes how a macro is rendered to HTML.
type Behavior int

const (
	BehaviorDropEmpty   Behavior = iota // unknown macro: keep the argument content, emit nothing without one
	BehaviorWrap                        // wrap the converted argument in Tag
	BehaviorColor                       // span classed by the converted first argument
	BehaviorQuote                       // low/high quotation marks around the argument
	BehaviorAlternative                 // two alternatives joined by " / "
	BehaviorUnwrap                      // annotation marker: drop the macro, keep the argument
)

// MacroType defines the rendering of a specific macro.
type MacroType struct {
	Name     string   // canonical lowercase name
	Args     int      // number of braced arguments consumed
	Behavior Behavior // how the arguments are rendered
	Tag      string   // element name for BehaviorWrap
}

// MacroRegistry maps macro names to their type definitions.
// Adding a new macro = adding one entry here.
var MacroRegistry = map[string]MacroType{
	"textcolor": {
		Name:     "textcolor",
		Args:     2,
		Behavior: BehaviorColor,
	},
	"emph": {
		Name:     "emph",
		Args:     1,
		Behavior: BehaviorWrap,
		Tag:      "em",
	},
	"enquote": {
		Name:     "enquote",
		Args:     1,
		Behavior: BehaviorQuote,
	},
	"alt": {
		Name:     "alt",
		Args:     2,
		Behavior: BehaviorAlternative,
	},
	"anm": {
		Name:     "anm",
		Args:     1,
		Behavior: BehaviorUnwrap,
	},
	"todo": {
		Name:     "todo",
		Args:     1,
		Behavior: BehaviorUnwrap,
	},
	"evl": {
		Name:     "evl",
		Args:     1,
		Behavior: BehaviorUnwrap,
	},
}

// unknownMacro is used for every name missing from MacroRegistry.
var unknownMacro = MacroType{Args: 1, Behavior: BehaviorDropEmpty}

// LookupMacro returns the MacroType for a given name, normalizing to lowercase.
// Returns ok=false if macro is not registered.
func LookupMacro(name string) (MacroType, bool) {
	mt, ok := MacroRegistry[strings.ToLower(name)]
	return mt, ok
}
