package domain

// FallbackFactText replaces the fact text whenever the upstream source
// cannot produce one.
const FallbackFactText = "some cats throw exceptions."

// CatFact is a single fact about cats. It is built per request and never stored.
type CatFact struct {
	Text string
}

// NewCatFact returns a CatFact with the given text, or ErrEmptyContent if
// the text is empty.
func NewCatFact(text string) (CatFact, error) {
	if text == "" {
		return CatFact{}, NewValidationError("text", "is required", ErrEmptyContent)
	}
	return CatFact{Text: text}, nil
}

// FallbackCatFact returns the fact served when fetching fails.
func FallbackCatFact() CatFact {
	return CatFact{Text: FallbackFactText}
}
