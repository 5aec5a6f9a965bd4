// Package compare checks flattened locale key sets against a reference locale.
package compare

import (
	"github.com/finops-claw-gang/keycheck/internal/domain"
	"github.com/finops-claw-gang/keycheck/internal/keyset"
)

// Flattened is one locale's document identity and its flattened key set.
type Flattened struct {
	domain.Resource
	Keys keyset.Set
}
