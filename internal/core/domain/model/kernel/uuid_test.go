package kernel_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	id := kernel.NewUUID()

	require.NoError(t, id.Validate())
	assert.NotEmpty(t, id.String())
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id.String())
}

func TestUUIDFromString(t *testing.T) {
	t.Run("valid_string_round_trips", func(t *testing.T) {
		original := kernel.NewUUID()

		parsed, err := kernel.UUIDFromString(original.String())

		require.NoError(t, err)
		assert.True(t, original.IsEqual(parsed))
	})

	t.Run("invalid_string_is_invalid_value", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("empty_string_is_invalid_value", func(t *testing.T) {
		_, err := kernel.UUIDFromString("")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("valid_bytes_round_trip", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("wrong_length_is_invalid_value", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x01, 0x02})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("nil_uuid_bytes_fail_validation", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var id kernel.UUID
		require.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("constructed_value_is_valid", func(t *testing.T) {
		require.NoError(t, kernel.NewUUID().Validate())
	})
}

func TestUUID_IsEqual(t *testing.T) {
	a := kernel.NewUUID()
	b := kernel.NewUUID()
	c := a

	assert.False(t, a.IsEqual(b))
	assert.True(t, a.IsEqual(c))
}

func TestRoleFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    kernel.Role
		wantErr bool
	}{
		{name: "admin", input: "admin", want: kernel.RoleAdmin},
		{name: "customer", input: "customer", want: kernel.RoleCustomer},
		{name: "empty_defaults_to_customer", input: "", want: kernel.RoleCustomer},
		{name: "unknown_role_rejected", input: "superuser", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := kernel.RoleFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, role)
		})
	}
}

func TestRole_IsAdmin(t *testing.T) {
	assert.True(t, kernel.RoleAdmin.IsAdmin())
	assert.False(t, kernel.RoleCustomer.IsAdmin())
}
