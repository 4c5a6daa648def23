package commentscore

// AnalyzeRequest asks the service to score a comment on a set of
// attributes. The comment text and the requested-attribute mapping are
// the only two fields the service treats as mandatory; every other field
// is optional and independently defaulted.
type AnalyzeRequest struct {
	// Comment is the text to score.
	Comment Comment `json:"comment" validate:"required"`

	// Context is the conversational surroundings of the comment.
	Context *Context `json:"context,omitempty"`

	// RequestedAttributes maps each attribute to score onto its
	// configuration. An empty configuration for a key is valid and asks
	// for that attribute's defaults; map keys are unique by construction.
	// The mapping itself must be present, though it may be empty.
	RequestedAttributes map[Attribute]AttributeConfig `json:"requestedAttributes" validate:"required"`

	// Languages hints the comment's languages as ISO 639-1 codes, in
	// caller-significant order. Absent lets the service detect them.
	Languages []string `json:"languages,omitempty"`

	// DoNotStore asks the service not to retain the comment after
	// scoring. Defaults to false.
	DoNotStore bool `json:"doNotStore,omitempty"`

	// ClientToken is an opaque caller-supplied value echoed back
	// unchanged in the response, for request/response correlation.
	ClientToken string `json:"clientToken,omitempty"`

	// SessionID is an opaque caller-chosen session identifier.
	SessionID string `json:"sessionId,omitempty"`

	// CommunityID is an opaque identifier of the community the comment
	// was posted in.
	CommunityID string `json:"communityId,omitempty"`

	// SpanAnnotations asks for per-span scores alongside the summary
	// scores. Defaults to false.
	SpanAnnotations bool `json:"spanAnnotations,omitempty"`
}

// AnalyzeResponse carries the scores produced for an analyze request.
type AnalyzeResponse struct {
	// AttributeScores maps each scored attribute onto its result. The
	// service keys it with names from the request's RequestedAttributes;
	// a threshold configuration can leave an entry without a summary
	// score, or leave an attribute out entirely.
	AttributeScores map[Attribute]AttributeScore `json:"attributeScores,omitempty"`

	// Languages reports the languages scoring ran under: the request's
	// hint echoed back, or whatever the service detected.
	Languages []string `json:"languages,omitempty"`

	// ClientToken echoes the request's token, when one was supplied.
	ClientToken string `json:"clientToken,omitempty"`
}
