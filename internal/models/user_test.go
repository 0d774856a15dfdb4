package models

import (
	"strings"
	"testing"
)

func validUser() *User {
	return &User{
		Username:    "matcha_fan",
		Email:       "matcha_fan@example.com",
		DisplayName: "Matcha Fan",
		Role:        RoleMember,
	}
}

func TestUserBeforeSave(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(u *User)
		wantErr bool
	}{
		{"valid member", func(u *User) {}, false},
		{"valid admin", func(u *User) { u.Role = RoleAdmin }, false},
		{"username too short", func(u *User) { u.Username = "ab" }, true},
		{"username uppercase", func(u *User) { u.Username = "MatchaFan" }, true},
		{"username with spaces", func(u *User) { u.Username = "matcha fan" }, true},
		{"username too long", func(u *User) { u.Username = strings.Repeat("a", 31) }, true},
		{"empty display name", func(u *User) { u.DisplayName = "   " }, true},
		{"display name too long", func(u *User) { u.DisplayName = strings.Repeat("x", 101) }, true},
		{"bio at limit", func(u *User) { u.Bio = strings.Repeat("b", 2000) }, false},
		{"bio too long", func(u *User) { u.Bio = strings.Repeat("b", 2001) }, true},
		{"invalid role", func(u *User) { u.Role = "superuser" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(u)
			err := u.BeforeSave(nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("BeforeSave() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
