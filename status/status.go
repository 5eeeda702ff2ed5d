// Package status defines the closed set of outcomes returned by every
// mutating operation on a categorical array.
//
// Rather than returning arbitrary wrapped errors, operations in this module
// return one of a small, enumerable set of Status values. A Status
// implements the standard error interface, so it composes with
// fmt.Errorf("%w", ...) and errors.Is at call sites that want to wrap it,
// while remaining directly comparable for switch-style dispatch.
package status

import "fmt"

// Status is a closed-taxonomy outcome code. The zero value is OK.
type Status int

// The full set of outcomes any operation in this module can return.
const (
	OK Status = iota
	CategoryExists
	CategoryDoesNotExist
	LabelExistsInOtherCategory
	LabelIsInvalidCollapsedExpression
	WrongCategorySize
	CategoriesDoNotMatch
	CatOverflow
	CollapsedExpressionInWrongCategory
	OutOfBounds
	WrongIndexSize
	IncompatibleSizes
)

var names = [...]string{
	OK:                                 "OK",
	CategoryExists:                     "CATEGORY_EXISTS",
	CategoryDoesNotExist:               "CATEGORY_DOES_NOT_EXIST",
	LabelExistsInOtherCategory:         "LABEL_EXISTS_IN_OTHER_CATEGORY",
	LabelIsInvalidCollapsedExpression:  "LABEL_IS_INVALID_COLLAPSED_EXPRESSION",
	WrongCategorySize:                  "WRONG_CATEGORY_SIZE",
	CategoriesDoNotMatch:               "CATEGORIES_DO_NOT_MATCH",
	CatOverflow:                        "CAT_OVERFLOW",
	CollapsedExpressionInWrongCategory: "COLLAPSED_EXPRESSION_IN_WRONG_CATEGORY",
	OutOfBounds:                        "OUT_OF_BOUNDS",
	WrongIndexSize:                     "WRONG_INDEX_SIZE",
	IncompatibleSizes:                  "INCOMPATIBLE_SIZES",
}

// String renders the status using its taxonomy name, e.g. "CATEGORY_EXISTS".
func (s Status) String() string {
	if int(s) < 0 || int(s) >= len(names) {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return names[s]
}

// Error satisfies the error interface so a Status can be returned and
// wrapped anywhere an error is expected. OK.Error() still renders "OK"
// rather than "" — callers must check Ok(), not compare against nil.
func (s Status) Error() string {
	return s.String()
}

// Ok reports whether s is the OK status.
func (s Status) Ok() bool {
	return s == OK
}
