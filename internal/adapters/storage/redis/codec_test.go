package redis

import (
	"encoding/json"
	"testing"
	"time"

	"organ-match/internal/domain/profiles"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_RoundTripKeepsOptionalFields(t *testing.T) {
	hs := 7
	in := profiles.Profile{
		ID: "DONOR_1", Role: profiles.RoleDonor, Name: "Ana", Age: 33,
		BloodType: profiles.BloodBneg, Organ: profiles.OrganLung, TissueType: profiles.TissueHLADR,
		Location: "Austin", Email: "ana@example.com", PasswordHash: "x",
		HealthScore: &hs, Active: true,
		RegisteredAt: time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC),
	}

	blob, err := json.Marshal(encode(in))
	require.NoError(t, err)
	assert.Contains(t, string(blob), `"health_score":7`)
	assert.NotContains(t, string(blob), `"urgency"`)

	out, err := decode(string(blob))
	require.NoError(t, err)
	assert.Equal(t, in.ID, out.ID)
	require.NotNil(t, out.HealthScore)
	assert.Equal(t, 7, *out.HealthScore)
	assert.True(t, in.RegisteredAt.Equal(out.RegisteredAt))
}

func TestCodec_RejectsGarbage(t *testing.T) {
	_, err := decode("{not json")
	assert.Error(t, err)
}

func TestCollectionKey(t *testing.T) {
	k, err := collectionKey(profiles.RoleReceiver)
	require.NoError(t, err)
	assert.Equal(t, "organ_receivers", k)

	_, err = collectionKey("admin")
	assert.Error(t, err)
}
