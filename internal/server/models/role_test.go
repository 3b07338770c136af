package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/dmitrijs2005/motorpool/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{in: "Admin", want: RoleAdmin},
		{in: "Editor", want: RoleEditor},
		{in: "admin", wantErr: true},
		{in: "Adm", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRole(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, common.ErrUnknownRole))
				assert.Equal(t, RoleUnknown, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRole_JSONText(t *testing.T) {
	b, err := json.Marshal(struct{ Perfil Role }{RoleEditor})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Perfil":"Editor"}`, string(b))

	var out struct{ Perfil Role }
	require.NoError(t, json.Unmarshal([]byte(`{"Perfil":"Admin"}`), &out))
	assert.Equal(t, RoleAdmin, out.Perfil)

	assert.Error(t, json.Unmarshal([]byte(`{"Perfil":"Root"}`), &out))

	_, err = json.Marshal(struct{ Perfil Role }{RoleUnknown})
	assert.Error(t, err)
}

func TestRoleSet_Contains(t *testing.T) {
	adminOnly := NewRoleSet(RoleAdmin)
	staff := NewRoleSet(RoleAdmin, RoleEditor)
	empty := NewRoleSet()

	assert.True(t, adminOnly.Contains(RoleAdmin))
	assert.False(t, adminOnly.Contains(RoleEditor))
	assert.True(t, staff.Contains(RoleEditor))
	assert.False(t, staff.Contains(RoleUnknown))
	assert.False(t, empty.Contains(RoleAdmin))
	assert.False(t, NewRoleSet(Role(42)).Contains(Role(42)))

	assert.Equal(t, "Admin,Editor", staff.String())
	assert.Equal(t, "Admin", adminOnly.String())
}
