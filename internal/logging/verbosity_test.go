package logging

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func Test_SetVerbosity(t *testing.T) {
	orig := log.GetLevel()
	defer log.SetLevel(orig)

	cases := []struct {
		count int
		name  string
	}{
		{0, "PANIC"},
		{1, "FATAL"},
		{2, "ERROR"},
		{3, "WARN"},
		{4, "INFO"},
		{5, "DEBUG"},
		{6, "TRACE"},
		{9, "TRACE"},
	}

	for _, c := range cases {
		SetVerbosity(make([]bool, c.count))
		require.Equal(t, c.name, VerbosityName(), "Invalid verbosity for %d flags", c.count)
	}

	SetVerbosity(make([]bool, 9))
	require.Equal(t, log.TraceLevel, log.GetLevel())
}
