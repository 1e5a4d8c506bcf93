package errors

import (
	"errors"
	"testing"
)

func TestResolveErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *ResolveError
		want string
	}{
		{
			name: "sentinel only",
			err:  &ResolveError{Err: ErrUnrecognized},
			want: "unrecognized move text",
		},
		{
			name: "with input",
			err:  &ResolveError{Err: ErrIllegalMove, Input: "Qh5"},
			want: `input "Qh5": illegal move`,
		},
		{
			name: "with candidates",
			err:  &ResolveError{Err: ErrAmbiguous, Input: "Rd1", Candidates: 2},
			want: `input "Rd1", 2 candidates: ambiguous move`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveErrorUnwrap(t *testing.T) {
	err := error(&ResolveError{Err: ErrAmbiguous, Input: "Rd1", Candidates: 2})

	if !errors.Is(err, ErrAmbiguous) {
		t.Error("errors.Is should see through ResolveError")
	}
	if errors.Is(err, ErrIllegalMove) {
		t.Error("errors.Is must not match a different sentinel")
	}

	var rerr *ResolveError
	if !errors.As(err, &rerr) {
		t.Fatal("errors.As should recover the ResolveError")
	}
	if rerr.Candidates != 2 {
		t.Errorf("Candidates = %d, want 2", rerr.Candidates)
	}
}

func TestWrapPreservesSentinel(t *testing.T) {
	err := Wrap(ErrInvalidFEN, "parse position")
	if !errors.Is(err, ErrInvalidFEN) {
		t.Error("Wrap should preserve the sentinel")
	}
	if got, want := err.Error(), "parse position: invalid FEN string"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrapfNil(t *testing.T) {
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("wrapping nil should stay nil")
	}
}
