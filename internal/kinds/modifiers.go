package kinds

// Modifier is the closed enumeration of access and non-access declaration
// modifiers recognised by modifierKind.
type Modifier int

const (
	Public Modifier = iota
	Private
	Protected
	Static
	Final
	Abstract
	Native
	Synchronized
	Transient
)

func (m Modifier) String() string {
	switch m {
	case Public:
		return "public"
	case Private:
		return "private"
	case Protected:
		return "protected"
	case Static:
		return "static"
	case Final:
		return "final"
	case Abstract:
		return "abstract"
	case Native:
		return "native"
	case Synchronized:
		return "synchronized"
	case Transient:
		return "transient"
	default:
		return "unknown"
	}
}

// modifierKeywords maps a modifier keyword terminal tag to its Modifier.
//
// volatile, strictfp and default are not modelled: spec.md's Open Questions
// flag "method modifiers ... are dropped" as a scope decision to make
// explicitly rather than guess at, and DESIGN.md records the decision to
// stop at the nine keywords spec.md's §4.1 names ("the nine access/non-access
// modifier keywords") rather than silently widen the enum.
var modifierKeywords = map[string]Modifier{
	"public":       Public,
	"private":      Private,
	"protected":    Protected,
	"static":       Static,
	"final":        Final,
	"abstract":     Abstract,
	"native":       Native,
	"synchronized": Synchronized,
	"transient":    Transient,
}

// ModifierKind maps a modifier keyword to its Modifier. ok is false for any
// keyword outside the closed nine-keyword domain.
func ModifierKind(keyword string) (Modifier, bool) {
	m, ok := modifierKeywords[keyword]
	return m, ok
}
