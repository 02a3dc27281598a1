package http

import (
	"encoding/json"
	"testing"
)

func TestFlexBoolAcceptsStringsAndBools(t *testing.T) {
	cases := map[string]bool{
		`{"newsletter":true}`:    true,
		`{"newsletter":"true"}`:  true,
		`{"newsletter":false}`:   false,
		`{"newsletter":"false"}`: false,
		`{"newsletter":null}`:    false,
		`{"newsletter":""}`:      false,
		`{}`:                     false,
	}
	for body, want := range cases {
		var req SubmitRequest
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			t.Errorf("unmarshal %s: %v", body, err)
			continue
		}
		if bool(req.Newsletter) != want {
			t.Errorf("newsletter from %s = %v, want %v", body, req.Newsletter, want)
		}
	}
}

func TestFlexBoolRejectsGarbage(t *testing.T) {
	var req SubmitRequest
	if err := json.Unmarshal([]byte(`{"newsletter":"maybe"}`), &req); err == nil {
		t.Fatal("expected error for non-boolean string")
	}
}
