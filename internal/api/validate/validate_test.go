package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollect(t *testing.T) {
	errs := Collect(
		Required("query", "  "),
		Required("operationName", "ok"),
		MaxLen("query", strings.Repeat("a", 11), 10),
	)

	assert.Len(t, errs, 2)
	assert.Equal(t, "query: required; query: must be at most 10 bytes", errs.Error())
}

func TestRequest(t *testing.T) {
	cases := []struct {
		name   string
		query  string
		opName string
		want   []string
	}{
		{"valid", "{ topStocks { stock_symbol } }", "", nil},
		{"named", "query Top { topStocks { stock_symbol } }", "Top", nil},
		{"empty query", " ", "", []string{"query"}},
		{"too long", strings.Repeat("{", 33), "", []string{"query"}},
		{"bad operation name", "{ topStocks { stock_symbol } }", "1; drop", []string{"operationName"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var fields []string
			for _, e := range Request(tc.query, tc.opName, 32) {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tc.want, fields)
		})
	}
}
