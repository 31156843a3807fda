package globals

import "testing"

func TestEnvOr(t *testing.T) {
	t.Setenv("SOME_KEY", "")
	if got := envOr("SOME_KEY", "fallback"); got != "fallback" {
		t.Errorf("envOr on empty = %q, want fallback", got)
	}

	t.Setenv("SOME_KEY", "value")
	if got := envOr("SOME_KEY", "fallback"); got != "value" {
		t.Errorf("envOr on set = %q, want value", got)
	}
}
