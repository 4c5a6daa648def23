package commentscore

// SuggestScoreRequest submits feedback: the scores the caller believes a
// comment should have received. It reuses AttributeScore, so callers
// supply exactly the shape an analyze call produces.
type SuggestScoreRequest struct {
	// Comment is the text the suggested scores apply to.
	Comment Comment `json:"comment" validate:"required"`

	// Context is the conversational surroundings of the comment.
	Context *Context `json:"context,omitempty"`

	// AttributeScores maps each attribute onto the score the caller
	// believes is correct. The mapping must be present.
	AttributeScores map[Attribute]AttributeScore `json:"attributeScores" validate:"required"`

	// Languages lists the comment's languages as ISO 639-1 codes.
	Languages []string `json:"languages,omitempty"`

	// CommunityID is an opaque identifier of the community the comment
	// was posted in.
	CommunityID string `json:"communityId,omitempty"`

	// ClientToken is an opaque caller-supplied value echoed back
	// unchanged in the response.
	ClientToken string `json:"clientToken,omitempty"`
}

// SuggestScoreResponse acknowledges submitted feedback. It carries no
// data beyond the echoed correlation token.
type SuggestScoreResponse struct {
	// ClientToken echoes the request's token, when one was supplied.
	ClientToken string `json:"clientToken,omitempty"`
}
