package examplesdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamesIsSortedAndNonEmpty(t *testing.T) {
	names := Names()
	require.NotEmpty(t, names)
	for i := 1; i < len(names); i++ {
		assert.LessOrEqual(t, names[i-1], names[i])
	}
}

func TestGetUnknownFixtureReturnsError(t *testing.T) {
	_, err := Get("no-such-fixture")
	assert.Error(t, err)
}

func TestGetKnownFixture(t *testing.T) {
	f, err := Get("cpl_modus_ponens")
	require.NoError(t, err)
	assert.Equal(t, "CPL", f.Logic)
	assert.True(t, f.Valid)
}

func TestArgumentParsesEveryFixture(t *testing.T) {
	for _, name := range Names() {
		f, err := Get(name)
		require.NoError(t, err, name)

		arg, logicName, wantValid, err := Argument(name)
		require.NoError(t, err, name)
		assert.Equal(t, f.Logic, logicName, name)
		assert.Equal(t, f.Valid, wantValid, name)
		assert.Len(t, arg.Premises, len(f.Premises), name)
		assert.NotNil(t, arg.Conclusion, name)
	}
}

func TestArgumentUnknownFixtureReturnsError(t *testing.T) {
	_, _, _, err := Argument("does-not-exist")
	assert.Error(t, err)
}
