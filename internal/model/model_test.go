package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagType(t *testing.T) {
	t.Run("validity", func(t *testing.T) {
		for _, tt := range []TagType{TagTypeItem, TagTypePet, TagTypeEmergency, TagTypeAny} {
			assert.True(t, tt.IsValid(), string(tt))
		}
		assert.False(t, TagType("car").IsValid())
		assert.False(t, TagType("").IsValid())
	})

	t.Run("concreteness", func(t *testing.T) {
		assert.True(t, TagTypeItem.IsConcrete())
		assert.True(t, TagTypePet.IsConcrete())
		assert.True(t, TagTypeEmergency.IsConcrete())
		assert.False(t, TagTypeAny.IsConcrete())
		assert.False(t, TagType("car").IsConcrete())
	})
}

func TestDecodeDetails(t *testing.T) {
	t.Run("decodes by record type", func(t *testing.T) {
		cases := []struct {
			recordType TagType
			raw        string
			want       TagDetails
		}{
			{TagTypeItem, `{"name":"Wallet","color":"brown"}`, ItemDetails{Name: "Wallet", Color: "brown"}},
			{TagTypePet, `{"name":"Rex","breed":"Beagle"}`, PetDetails{Name: "Rex", Breed: "Beagle"}},
			{TagTypeEmergency, `{"name":"Jane","bloodType":"O+"}`, EmergencyDetails{Name: "Jane", BloodType: "O+"}},
		}

		for _, tt := range cases {
			r := QRTagRecord{Type: tt.recordType, Details: json.RawMessage(tt.raw)}
			got, err := r.DecodeDetails()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.recordType, got.TagType())
		}
	})

	t.Run("nil for empty details", func(t *testing.T) {
		r := QRTagRecord{Type: TagTypeItem}
		got, err := r.DecodeDetails()
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("nil for any type", func(t *testing.T) {
		r := QRTagRecord{Type: TagTypeAny, Details: json.RawMessage(`{"name":"x"}`)}
		got, err := r.DecodeDetails()
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("malformed details error", func(t *testing.T) {
		r := QRTagRecord{Type: TagTypePet, Details: json.RawMessage(`{`)}
		_, err := r.DecodeDetails()
		assert.Error(t, err)
	})
}

func TestActivationPayloadJSON(t *testing.T) {
	// The tagged union serializes the selected shape under "details".
	p := ActivationPayload{
		Type:    TagTypePet,
		Contact: ContactInfo{Name: "Jane", Email: "jane@example.com", Phone: "+27821234567"},
		Details: PetDetails{Name: "Rex"},
	}

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"type":"pet"`)
	assert.Contains(t, string(raw), `"details":{"name":"Rex"`)
	assert.NotContains(t, string(raw), `"breed"`, "empty optional fields omitted")
	assert.NotContains(t, string(raw), "backupPhone", "empty backup phone omitted")
}
