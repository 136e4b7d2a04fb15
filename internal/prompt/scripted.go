package prompt

import (
	"fmt"

	"github.com/apiscaffold/apiscaffold/internal/scaffold"
)

// Scripted answers conflicts from a fixed sequence of decisions, in order.
// It records every question it was asked.
type Scripted struct {
	Decisions []scaffold.Decision
	Asked     []string
}

// NewScripted returns a Scripted resolver that will answer with decisions.
func NewScripted(decisions ...scaffold.Decision) *Scripted {
	return &Scripted{Decisions: decisions}
}

// Resolve pops the next decision. Running out is ErrInteractionUnavailable,
// the same answer a non-interactive session gives.
func (s *Scripted) Resolve(kind scaffold.Kind, path string) (scaffold.Decision, error) {
	s.Asked = append(s.Asked, kind.String()+" "+path)
	if len(s.Decisions) == 0 {
		return "", fmt.Errorf("%s %s: %w", kind, path, ErrInteractionUnavailable)
	}
	d := s.Decisions[0]
	s.Decisions = s.Decisions[1:]
	return d, nil
}
