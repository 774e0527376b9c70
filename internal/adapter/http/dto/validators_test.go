package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := CreateSessionRequest{
		Source:   "  fund-wallet  ",
		Merchant: " Lagos Voucher Hub ",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "fund-wallet", req.Source)
	assert.Equal(t, "Lagos Voucher Hub", req.Merchant)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	req := CreateSessionRequest{
		Merchant: "shop <script>alert('x')</script>",
	}
	SanitizeStruct(&req)

	assert.Contains(t, req.Merchant, "&lt;script&gt;")
	assert.NotContains(t, req.Merchant, "<script>")
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	req := CreateSessionRequest{Source: "  x  "}
	SanitizeStruct(req)
	assert.Equal(t, "  x  ", req.Source)
}

func TestValidateSafeID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"m500", true},
		{"sm-lagos-hub", true},
		{"u_tunde.2", true},
		{"", false},
		{"a b", false},
		{"x;drop", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, safeStringRe.MatchString(tt.id), tt.id)
	}
}
