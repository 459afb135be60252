package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestReportError(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithConfig(log.Config{
		Output:     &buf,
		TimeFormat: "-",
	})

	reportError(logger, errors.New("2 of 3 files failed to assemble"))
	assert.Contains(t, buf.String(), "Command failed")
	assert.Contains(t, buf.String(), "2 of 3 files failed to assemble")

	buf.Reset()
	reportError(logger, fmt.Errorf("assembling game.c8s: %w", context.Canceled))
	assert.Empty(t, buf.String())
}
