// Package taxonomy provides product categories and tags, including the
// pure name-validation rules shared with the UI.
package taxonomy

const minNameLength = 2

// Validation messages are part of the UI contract; do not reword.
const (
	MsgCategoryTooShort = "Category name too short."
	MsgTagTooShort      = "Tag name too short."
)

// Result is the outcome of a name validation.
// Failures are values, not errors; callers decide status and messaging.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// ValidateCategoryName checks a category name against shape rules.
func ValidateCategoryName(name string) Result {
	if len([]rune(name)) < minNameLength {
		return Result{Valid: false, Errors: []string{MsgCategoryTooShort}}
	}
	return Result{Valid: true}
}

// ValidateTagName checks a tag name against shape rules.
func ValidateTagName(name string) Result {
	if len([]rune(name)) < minNameLength {
		return Result{Valid: false, Errors: []string{MsgTagTooShort}}
	}
	return Result{Valid: true}
}
