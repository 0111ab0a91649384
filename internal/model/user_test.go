package model

import "testing"

func TestParseRole(t *testing.T) {
	cases := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"", RoleCandidate, false},
		{"candidate", RoleCandidate, false},
		{"Job Seeker", RoleCandidate, false},
		{"  ADMIN  ", RoleAdmin, false},
		{"Interviewer", RoleInterviewer, false},
		{"superuser", "", true},
	}
	for _, c := range cases {
		got, err := ParseRole(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseRole(%q): expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRole(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseRole(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRoleDisplayName(t *testing.T) {
	if RoleCandidate.DisplayName() != "Job Seeker" {
		t.Errorf("candidate display = %q", RoleCandidate.DisplayName())
	}
	if RoleAdmin.DisplayName() != "Admin" {
		t.Errorf("admin display = %q", RoleAdmin.DisplayName())
	}
}
