package utils

import "testing"

func TestIsValidUsername(t *testing.T) {
	cases := []struct {
		username string
		want     bool
	}{
		{"priya", true},
		{"user_42", true},
		{"ab", false},
		{"", false},
		{"has space", false},
		{"semi;colon", false},
		{"waytoolongusernamewaytoolongusername", false},
	}
	for _, c := range cases {
		if got := IsValidUsername(c.username); got != c.want {
			t.Errorf("IsValidUsername(%q) = %v, want %v", c.username, got, c.want)
		}
	}
}

func TestIsComplexPassword(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"Str0ng!pass", true},
		{"short1!A", true},
		{"alllowercase1!", false},
		{"ALLUPPERCASE1!", false},
		{"NoDigits!!", false},
		{"NoSymbols11", false},
		{"Sh0rt!", false},
	}
	for _, c := range cases {
		if got := IsComplexPassword(c.password); got != c.want {
			t.Errorf("IsComplexPassword(%q) = %v, want %v", c.password, got, c.want)
		}
	}
}
