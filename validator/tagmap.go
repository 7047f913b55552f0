package validator

// TagMap — соответствие validator-тегов машинным кодам.
// Используется и в errors.FromPlayground.
var TagMap = map[string]string{
	"required":  "required",
	"omitempty": "optional",
	"oneof":     "invalid_choice",
	"max":       "too_long",
	"min":       "too_short",
	"gte":       "too_small_or_equal",
	"lte":       "too_large_or_equal",
	"len":       "invalid_length",
	"alphanum":  "only_letters_and_digits_allowed",
}

func mapTagToCode(tag string) string {
	if code, ok := TagMap[tag]; ok {
		return code
	}
	return "invalid"
}
