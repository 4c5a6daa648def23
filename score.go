package commentscore

// ScoreType identifies the kind of numeric value a Score carries. The
// service recommends probabilities and may add further kinds without
// notice, so the type is an open string, not a closed enumeration.
type ScoreType string

// ScoreTypeProbability is the one score type the service documents for
// requests today: the probability, in [0, 1], that the attribute applies
// to the text.
const ScoreTypeProbability ScoreType = "PROBABILITY"

// Score is a single numeric scoring result.
type Score struct {
	// Value is the score itself. Probability scores lie in [0, 1] by
	// convention; the range is documented, not enforced, and zero is a
	// meaningful score rather than an absent one.
	Value float64 `json:"value"`

	// Type mirrors the ScoreType requested for the attribute, when the
	// service reports it.
	Type ScoreType `json:"type,omitempty"`
}

// SpanScore scores one contiguous character range of the original text.
type SpanScore struct {
	// Begin is the inclusive start offset of the span, in characters from
	// the start of the submitted text.
	Begin int `json:"begin"`

	// End is the exclusive end offset of the span. The service guarantees
	// begin <= end; nothing here re-checks it.
	End int `json:"end"`

	// Score is the span's score.
	Score Score `json:"score"`
}

// AttributeScore is the scoring result for one requested attribute.
type AttributeScore struct {
	// SummaryScore scores the whole text for the attribute. A nil summary
	// is meaningful, not an error: it is what a score threshold filters
	// out, and it is distinct from a present score of zero.
	SummaryScore *Score `json:"summaryScore,omitempty"`

	// SpanScores carries per-span scores in the order the service
	// produced them. Present when span annotations were requested.
	SpanScores []SpanScore `json:"spanScores,omitempty"`
}
