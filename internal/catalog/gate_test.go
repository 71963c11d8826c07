package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGateStartsUnlockedWithoutPassword(t *testing.T) {
	g := NewGate(func() string { return "" })
	require.True(t, g.Unlocked())
	require.True(t, g.AttemptUnlock("anything"))
}

func TestGateStartsLockedWithPassword(t *testing.T) {
	g := NewGate(func() string { return "secret" })
	require.False(t, g.Unlocked())
}

func TestGateUnlockExactMatch(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{"exact match", "secret", true},
		{"wrong password", "nope", false},
		{"case matters", "Secret", false},
		{"whitespace matters", " secret", false},
		{"empty candidate", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGate(func() string { return "secret" })
			require.Equal(t, tt.want, g.AttemptUnlock(tt.candidate))
			require.Equal(t, tt.want, g.Unlocked())
		})
	}
}

func TestGateUnlockIsPermanent(t *testing.T) {
	g := NewGate(func() string { return "secret" })
	require.True(t, g.AttemptUnlock("secret"))

	// A later failed attempt must not re-lock the gate.
	require.True(t, g.AttemptUnlock("wrong"))
	require.True(t, g.Unlocked())
}

func TestGateUnlimitedRetries(t *testing.T) {
	g := NewGate(func() string { return "secret" })
	for i := 0; i < 50; i++ {
		require.False(t, g.AttemptUnlock("wrong"))
	}
	require.True(t, g.AttemptUnlock("secret"))
}

func TestGateConsultsPasswordSourceEachAttempt(t *testing.T) {
	pw := "old"
	g := NewGate(func() string { return pw })

	require.False(t, g.AttemptUnlock("new"))
	pw = "new"
	require.True(t, g.AttemptUnlock("new"))
}
