package defaults

import (
	"fmt"

	"github.com/agnivade/levenshtein"

	"github.com/broady/jsonstruct/jsonstructgen/ir"
)

// maxSuggestionDistance bounds how far a member may be from the default
// text to be offered as a suggestion.
const maxSuggestionDistance = 3

func unknownMemberWarning(enum *ir.EnumDescriptor, text string) ir.Warning {
	msg := fmt.Sprintf("default %q is not a member of enum %s", text, enum.Name.Name)
	if s, ok := closestMember(enum.Members, text); ok {
		msg += fmt.Sprintf("; did you mean %q?", s)
	}
	return ir.Warning{
		Code:     "unknown_enum_default",
		Message:  msg,
		TypeName: enum.Name.Name,
	}
}

// closestMember returns the member value nearest to text by edit distance.
func closestMember(members []ir.EnumMember, text string) (string, bool) {
	best, bestDist := "", maxSuggestionDistance+1
	for _, m := range members {
		if d := levenshtein.ComputeDistance(m.Value, text); d < bestDist {
			best, bestDist = m.Value, d
		}
	}
	return best, best != ""
}
