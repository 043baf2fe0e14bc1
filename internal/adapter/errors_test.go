// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmbiguousError(t *testing.T) {
	err := &AmbiguousError{
		Kind:       "board",
		Name:       "Roadmap",
		Candidates: []string{"Roadmap 2025", "Roadmap 2026"},
	}

	assert.ErrorIs(t, err, ErrAmbiguous)
	assert.Contains(t, err.Error(), "Roadmap 2025, Roadmap 2026")
	assert.Contains(t, err.Error(), `"Roadmap"`)

	var target *AmbiguousError
	assert.True(t, errors.As(error(err), &target))
}
