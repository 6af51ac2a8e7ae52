// Package validate checks a GraphQL request envelope before it reaches the
// executor.
package validate

import (
	"regexp"
	"strconv"
	"strings"
)

type ErrField struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

type Errs []ErrField

func (e Errs) Error() string {
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ef.Field + ": " + ef.Msg)
	}
	return b.String()
}

// Collect drops the nil results of the field checks.
func Collect(fields ...*ErrField) Errs {
	var out Errs
	for _, f := range fields {
		if f != nil {
			out = append(out, *f)
		}
	}
	return out
}

// Request checks the query document and the optional operation name.
func Request(query, operationName string, maxQueryBytes int) Errs {
	return Collect(
		Required("query", query),
		MaxLen("query", query, maxQueryBytes),
		OperationName(operationName),
	)
}

func Required(field, value string) *ErrField {
	if strings.TrimSpace(value) == "" {
		return &ErrField{Field: field, Msg: "required"}
	}
	return nil
}

func MaxLen(field, value string, max int) *ErrField {
	if len(value) > max {
		return &ErrField{Field: field, Msg: "must be at most " + strconv.Itoa(max) + " bytes"}
	}
	return nil
}

var nameRe = regexp.MustCompile(`^[_A-Za-z][_0-9A-Za-z]*$`)

// OperationName accepts an empty name or a GraphQL Name token.
func OperationName(name string) *ErrField {
	if name == "" || nameRe.MatchString(name) {
		return nil
	}
	return &ErrField{Field: "operationName", Msg: "must be a GraphQL name"}
}
