package vim

// TextObjectKind classifies the region a text object selects.
type TextObjectKind uint8

const (
	// ObjectNone represents no text object.
	ObjectNone TextObjectKind = iota

	// ObjectWord selects a word of consistent character class (iw/aw).
	ObjectWord

	// ObjectWORD selects a whitespace-delimited chunk (iW/aW).
	ObjectWORD

	// ObjectQuoted selects a region between matching quote characters.
	ObjectQuoted

	// ObjectBracket selects a region between matching bracket pairs.
	ObjectBracket

	// ObjectSentence selects a sentence (is/as).
	ObjectSentence

	// ObjectParagraph selects a paragraph (ip/ap).
	ObjectParagraph
)

// String returns the kind name.
func (k TextObjectKind) String() string {
	switch k {
	case ObjectWord:
		return "word"
	case ObjectWORD:
		return "WORD"
	case ObjectQuoted:
		return "quoted"
	case ObjectBracket:
		return "bracket"
	case ObjectSentence:
		return "sentence"
	case ObjectParagraph:
		return "paragraph"
	default:
		return "none"
	}
}

// TextObject is a fully specified text-object target: the kind plus the
// delimiter characters for quoted and bracketed objects.
type TextObject struct {
	// Kind is the object class.
	Kind TextObjectKind

	// Delim is the quote character for ObjectQuoted.
	Delim rune

	// Open and Close are the bracket pair for ObjectBracket.
	Open, Close rune
}

// textObjectKeys maps the key following an i/a prefix to its object.
var textObjectKeys = map[rune]TextObject{
	'w': {Kind: ObjectWord},
	'W': {Kind: ObjectWORD},
	's': {Kind: ObjectSentence},
	'p': {Kind: ObjectParagraph},

	'"':  {Kind: ObjectQuoted, Delim: '"'},
	'\'': {Kind: ObjectQuoted, Delim: '\''},
	'`':  {Kind: ObjectQuoted, Delim: '`'},

	'(': {Kind: ObjectBracket, Open: '(', Close: ')'},
	')': {Kind: ObjectBracket, Open: '(', Close: ')'},
	'b': {Kind: ObjectBracket, Open: '(', Close: ')'},
	'{': {Kind: ObjectBracket, Open: '{', Close: '}'},
	'}': {Kind: ObjectBracket, Open: '{', Close: '}'},
	'B': {Kind: ObjectBracket, Open: '{', Close: '}'},
	'[': {Kind: ObjectBracket, Open: '[', Close: ']'},
	']': {Kind: ObjectBracket, Open: '[', Close: ']'},
	'<': {Kind: ObjectBracket, Open: '<', Close: '>'},
	'>': {Kind: ObjectBracket, Open: '<', Close: '>'},
}

// TextObjectForKey returns the text object bound to the key that follows an
// i or a prefix.
func TextObjectForKey(r rune) (TextObject, bool) {
	obj, ok := textObjectKeys[r]
	return obj, ok
}
