package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession(t *testing.T) {
	t.Run("Set and Get round trip typed values", func(t *testing.T) {
		session := NewSession(nil)
		require.NoError(t, session.Set("recent", []RecentClinic{{ClinicID: "c1", Name: "Acme"}}))

		var got []RecentClinic
		found, err := session.Get("recent", &got)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "Acme", got[0].Name)
	})

	t.Run("Missing key", func(t *testing.T) {
		var got string
		found, err := NewSession(nil).Get("nope", &got)
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Flash is consumed on first read", func(t *testing.T) {
		session := NewSession(nil)
		require.NoError(t, session.Flash("error", "boom"))
		assert.False(t, session.Has("error"), "flash values live under a prefixed key")

		var message string
		found, err := session.PopFlash("error", &message)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "boom", message)

		found, _ = session.PopFlash("error", &message)
		assert.False(t, found, "second read should find nothing")
		assert.True(t, session.IsEmpty())
	})

	t.Run("Unset removes the key", func(t *testing.T) {
		session := NewSession(nil)
		require.NoError(t, session.Set("k", 1))
		session.Unset("k")
		assert.False(t, session.Has("k"))
	})

	t.Run("Undecodable value reports an error", func(t *testing.T) {
		session := NewSession(nil)
		require.NoError(t, session.Set("k", "text"))

		var number int
		found, err := session.Get("k", &number)
		assert.True(t, found)
		assert.Error(t, err)
	})
}

func TestRecencyKeys(t *testing.T) {
	assert.Equal(t, "u1", RecentUser{UserID: "u1"}.RecencyKey())
	assert.Equal(t, "c1/u1", RecentClinician{ClinicID: "c1", ClinicianID: "u1"}.RecencyKey())
	assert.Equal(t, "c2/p1", RecentPatient{ClinicID: "c2", PatientID: "p1"}.RecencyKey())
}
