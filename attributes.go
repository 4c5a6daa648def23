package commentscore

// Attribute names a dimension the service scores text on. Requested
// attributes and returned scores are both keyed by it. The type is open:
// callers may pass any attribute name the service supports, including
// names published after this package, and unknown keys decode like any
// other.
type Attribute string

// Production attributes.
const (
	AttributeToxicity       Attribute = "TOXICITY"        // Rude, disrespectful, or unreasonable.
	AttributeSevereToxicity Attribute = "SEVERE_TOXICITY" // Very hateful, aggressive, disrespectful.
	AttributeIdentityAttack Attribute = "IDENTITY_ATTACK" // Negative or hateful toward an identity.
	AttributeInsult         Attribute = "INSULT"          // Insulting toward a person or group.
	AttributeProfanity      Attribute = "PROFANITY"       // Swear words or other obscene language.
	AttributeThreat         Attribute = "THREAT"          // Intention to inflict pain or violence.
)

// Experimental attributes. Expect lower accuracy and occasional renames
// on the service side.
const (
	AttributeSexuallyExplicit Attribute = "SEXUALLY_EXPLICIT" // References to sexual acts or lewd content.
	AttributeFlirtation       Attribute = "FLIRTATION"        // Pickup lines, innuendo, compliments on appearance.
)

// Attributes trained on New York Times moderation decisions. All
// experimental.
const (
	AttributeAttackOnAuthor    Attribute = "ATTACK_ON_AUTHOR"    // Attack on the author of the article.
	AttributeAttackOnCommenter Attribute = "ATTACK_ON_COMMENTER" // Attack on a fellow commenter.
	AttributeIncoherent        Attribute = "INCOHERENT"          // Hard to understand, nonsensical.
	AttributeInflammatory      Attribute = "INFLAMMATORY"        // Intending to provoke or inflame.
	AttributeLikelyToReject    Attribute = "LIKELY_TO_REJECT"    // Likelihood NYT moderation would reject it.
	AttributeObscene           Attribute = "OBSCENE"             // Obscene or vulgar language.
	AttributeSpam              Attribute = "SPAM"                // Irrelevant, unsolicited commercial content.
	AttributeUnsubstantial     Attribute = "UNSUBSTANTIAL"       // Trivial or short comments.
)

// AttributeConfig sets the per-attribute options of an analyze request.
// The zero value is valid and common: an empty configuration asks for the
// service-side defaults.
type AttributeConfig struct {
	// ScoreType selects the kind of score returned for this attribute.
	// Absent means the service default, a probability.
	ScoreType ScoreType `json:"scoreType,omitempty"`

	// ScoreThreshold, when set, asks the service to omit scores below it
	// for this attribute. Conventionally in [0, 1]; the range is
	// documented, not checked here. Nil returns all scores, which is not
	// the same as a threshold of zero.
	ScoreThreshold *float64 `json:"scoreThreshold,omitempty"`
}
