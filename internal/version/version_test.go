package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_AppVersion(t *testing.T) {
	origTag, origVersion := GitTag, Version
	defer func() {
		GitTag, Version = origTag, origVersion
	}()

	GitTag, Version = "", ""
	require.Equal(t, UnknownVersion, AppVersion())

	Version = "1.2.3"
	require.Equal(t, "1.2.3", AppVersion())

	GitTag = "v1.2.4"
	require.Equal(t, "v1.2.4", AppVersion(), "Git tag should win over the VERSION file")
}
