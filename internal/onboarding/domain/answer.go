package domain

// AnswerKind tags the shape of an Answer so consumers can switch
// exhaustively instead of sniffing runtime types.
type AnswerKind int

const (
	AnswerText AnswerKind = iota + 1
	AnswerSelection
	AnswerMultiSelection
)

// Answer is a tagged union over the three value shapes a question can
// produce. Exactly one of Text/Values is meaningful depending on Kind:
// Text for AnswerText and AnswerSelection, Values for AnswerMultiSelection.
type Answer struct {
	Kind   AnswerKind
	Text   string
	Values []string
}

// NewTextAnswer wraps a free-text (or email) answer.
func NewTextAnswer(text string) Answer {
	return Answer{Kind: AnswerText, Text: text}
}

// NewSelectionAnswer wraps a single-select option value.
func NewSelectionAnswer(value string) Answer {
	return Answer{Kind: AnswerSelection, Text: value}
}

// NewMultiSelectionAnswer wraps a multi-select option value set.
func NewMultiSelectionAnswer(values []string) Answer {
	vs := make([]string, len(values))
	copy(vs, values)
	return Answer{Kind: AnswerMultiSelection, Values: vs}
}

// AnswerSet maps question ID to answer. Keys grow monotonically while the
// user advances; only "back" removes the trailing entry.
type AnswerSet map[int]Answer

// Clone returns a deep copy, used to snapshot sessions.
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for id, ans := range a {
		if ans.Kind == AnswerMultiSelection {
			vs := make([]string, len(ans.Values))
			copy(vs, ans.Values)
			ans.Values = vs
		}
		out[id] = ans
	}
	return out
}
