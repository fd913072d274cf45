package loader

import (
	"errors"
	"testing"
)

func TestError_Format(t *testing.T) {
	withKey := &Error{Source: "awsssm", Op: "load", Key: "db.password", Err: errors.New("timeout")}
	if got, want := withKey.Error(), `awsssm load "db.password": timeout`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	withoutKey := &Error{Source: "awsec2tag", Op: "construct", Err: errors.New("no credentials")}
	if got, want := withoutKey.Error(), "awsec2tag construct: no credentials"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestError_Unwrap(t *testing.T) {
	err := &Error{Source: "env", Op: "load", Key: "HOME", Err: ErrNotFound}

	if !errors.Is(err, ErrNotFound) {
		t.Error("errors.Is did not find the wrapped sentinel")
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound(err) = false, want true")
	}
	if IsNotFound(errors.New("other")) {
		t.Error("IsNotFound matched an unrelated error")
	}
}
