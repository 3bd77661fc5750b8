package domain

import (
	"net/http"
	"testing"
)

func TestLookupCarrierError(t *testing.T) {
	cases := []struct {
		code       int
		wantStatus int
	}{
		{936, http.StatusTeapot},
		{80859, http.StatusNotFound},
		{60020, http.StatusConflict},
		{82500, http.StatusNotAcceptable},
		{82518, http.StatusNotAcceptable},
	}

	for _, c := range cases {
		e, ok := LookupCarrierError(c.code)
		if !ok {
			t.Errorf("code %d: not found", c.code)
			continue
		}
		if e.HTTPStatus != c.wantStatus {
			t.Errorf("code %d: status = %d, want %d", c.code, e.HTTPStatus, c.wantStatus)
		}
		if e.Message == "" || e.MessageTR == "" {
			t.Errorf("code %d: missing message text", c.code)
		}
	}
}

func TestLookupCarrierErrorUnknown(t *testing.T) {
	if _, ok := LookupCarrierError(99999); ok {
		t.Fatal("unknown code should not resolve")
	}
}
