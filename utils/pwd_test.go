package utils

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	hash := GetPwd("correct horse battery staple")
	if hash == "correct horse battery staple" {
		t.Fatal("password stored in plaintext")
	}
	if !CheckPwd("correct horse battery staple", hash) {
		t.Fatal("correct password rejected")
	}
	if CheckPwd("wrong password", hash) {
		t.Fatal("wrong password accepted")
	}
}

func TestPasswordHashSalted(t *testing.T) {
	a := GetPwd("same password")
	b := GetPwd("same password")
	if a == b {
		t.Fatal("bcrypt hashes should differ per call")
	}
}
