package parser

// ParseString tokenizes and parses source text in one step.
func ParseString(sourceName, src string) (Node, error) {
	tokens, err := Tokenize(sourceName, src)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}
