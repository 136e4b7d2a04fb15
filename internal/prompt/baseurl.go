package prompt

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
)

// ValidationError reports unusable base URL input.
type ValidationError struct {
	Input  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ValidateBaseURL accepts absolute URLs with a scheme and a host.
func ValidateBaseURL(input string) error {
	s := strings.TrimSpace(input)
	if s == "" {
		return &ValidationError{Input: input, Reason: "API base URL cannot be empty"}
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" || strings.ContainsAny(s, " \t") {
		return &ValidationError{Input: input, Reason: "Please enter a valid URL (e.g., https://example.com/api)"}
	}
	return nil
}

// AskBaseURL prompts until a valid base URL is entered. An empty answer takes
// def. If input ends before a valid answer, the last validation error is
// returned.
func (p *Prompter) AskBaseURL(def string) (string, error) {
	if !p.interactive {
		return "", ErrInteractionUnavailable
	}

	var lastErr error
	for {
		if def != "" {
			fmt.Fprintf(p.out, "? Enter the API base URL: (%s) ", def)
		} else {
			fmt.Fprint(p.out, "? Enter the API base URL: ")
		}

		answer, err := p.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) && lastErr != nil {
				return "", lastErr
			}
			return "", fmt.Errorf("reading base URL: %w", err)
		}
		if answer == "" {
			answer = def
		}

		if err := ValidateBaseURL(answer); err != nil {
			fmt.Fprintf(p.out, ">> %v\n", err)
			lastErr = err
			continue
		}
		return answer, nil
	}
}
