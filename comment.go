// Package commentscore defines the JSON wire contracts for a hosted
// comment-scoring HTTP API: the request and response shapes of its
// analyze and suggest-score endpoints, together with the substructures
// they share. Values of these types are meant to be handed directly to
// encoding/json on either side of the HTTP boundary.
//
// The package deliberately contains no behavior. There is no transport,
// no authentication, no retry policy, no caching, and no validation
// here. Constraints the service imposes (required fields, score ranges,
// span ordering) are documented on the corresponding types so both sides
// agree on the wire shape, but the service is where they are enforced.
// The fields a request cannot omit carry `validate:"required"` tags for
// consuming applications that want to run a struct validator before
// spending a network call; this package never runs one itself.
//
// Optionality follows the wire contract. Optional fields carry omitempty
// and are absent from the serialized form when unset. Where absence
// means something different from the zero value, such as a summary score
// filtered out by a reporting threshold, the field is a pointer and
// absence round-trips as nil.
package commentscore

// TextType identifies how the service should interpret a block of text.
// The service accepts the two documented values; nothing here rejects
// other strings.
type TextType string

const (
	// TextTypePlainText treats the text as plain UTF-8 without markup.
	// This is the service-side default when no type is given.
	TextTypePlainText TextType = "PLAIN_TEXT"

	// TextTypeHTML treats the text as HTML and scores its visible content.
	TextTypeHTML TextType = "HTML"
)

// Comment is the unit of text submitted for scoring.
type Comment struct {
	// Text is the content to score. It is the one field of a comment the
	// service always requires.
	Text string `json:"text" validate:"required"`

	// Type declares how Text should be interpreted. Absent means plain
	// text.
	Type TextType `json:"type,omitempty"`
}

// ContextEntry is one piece of the conversation surrounding a comment,
// such as the article under discussion or an earlier comment in the
// thread.
type ContextEntry struct {
	// Text is the context content. The service bounds each entry at
	// roughly one megabyte; the bound is not checked here.
	Text string `json:"text,omitempty"`

	// Type declares how Text should be interpreted, with the same values
	// and default as Comment.Type.
	Type TextType `json:"type,omitempty"`
}

// Context carries the conversational surroundings of a comment.
type Context struct {
	// Entries is the surrounding text, as an ordered sequence. The order
	// is significant to the caller and preserved on the wire, but nothing
	// here inspects it.
	Entries []ContextEntry `json:"entries,omitempty"`
}
