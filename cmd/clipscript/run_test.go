package main

import (
	"errors"
	"testing"

	"github.com/clipscript/clipscript/internal/errs"
	"github.com/clipscript/clipscript/internal/token"
	"github.com/deepnoodle-ai/wonton/assert"
)

func TestFriendlyMessageWrapsStructuredError(t *testing.T) {
	span := token.Span{Start: token.Position{Line: 3, Column: 5}}
	err := errs.New(errs.Type, "bad thing", span)
	assert.Equal(t, friendlyMessage(err), "Type Error [at line 3, col 5]: bad thing")
}

func TestFriendlyMessagePassesThroughPlainErrors(t *testing.T) {
	err := errors.New("plain failure")
	assert.Equal(t, friendlyMessage(err), "plain failure")
}
