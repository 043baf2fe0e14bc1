// SPDX-License-Identifier: Apache-2.0

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateBlock_Validate(t *testing.T) {
	assert.NoError(t, CreateBlock{Type: BlockTypeText, Title: "hello"}.Validate())
	assert.NoError(t, CreateBlock{Type: BlockTypeDivider}.Validate())

	assert.Error(t, CreateBlock{Title: "typeless"}.Validate())
	assert.Error(t, CreateBlock{Type: "banner"}.Validate())
}

func TestBlockPatch_Validate(t *testing.T) {
	text := BlockTypeText
	bogus := BlockType("banner")

	assert.NoError(t, BlockPatch{}.Validate())
	assert.NoError(t, BlockPatch{Type: &text}.Validate())
	assert.Error(t, BlockPatch{Type: &bogus}.Validate())
}
