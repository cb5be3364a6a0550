package value

import "fmt"

// OptionKind — замкнутый набор видов опций кастомизации.
type OptionKind string

const (
	OptionKindDropdown OptionKind = "dropdown"
	OptionKindText     OptionKind = "text"
	OptionKindNumber   OptionKind = "number"
)

func (k OptionKind) String() string {
	return string(k)
}

func (k OptionKind) Valid() bool {
	switch k {
	case OptionKindDropdown, OptionKindText, OptionKindNumber:
		return true
	default:
		return false
	}
}

func ParseOptionKind(s string) (OptionKind, error) {
	kind := OptionKind(s)
	if !kind.Valid() {
		return "", fmt.Errorf("unknown option kind %q", s)
	}

	return kind, nil
}
