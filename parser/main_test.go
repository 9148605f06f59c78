package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// requireParseError asserts err is a *ParseError and returns it.
func requireParseError(t *testing.T, err error) *ParseError {
	t.Helper()
	perr, ok := err.(*ParseError)
	require.True(t, ok, "expected *ParseError, got %T: %v", err, err)
	return perr
}
