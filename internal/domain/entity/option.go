package entity

import "github.com/enfash/PrintSwift-sub000/internal/domain/value"

type OptionValue struct {
	Value          string  `json:"value"`
	CostAdjustment float64 `json:"cost_adjustment"`
}

// OptionDefinition — опция кастомизации товара. Values заполняется только для
// dropdown, Min/Max/Placeholder — подсказки формы для number и text.
type OptionDefinition struct {
	Label       string           `json:"label"`
	Kind        value.OptionKind `json:"kind"`
	Values      []OptionValue    `json:"values,omitempty"`
	Min         *float64         `json:"min,omitempty"`
	Max         *float64         `json:"max,omitempty"`
	Placeholder string           `json:"placeholder,omitempty"`
}

// Lookup ищет значение dropdown по точному совпадению.
func (d OptionDefinition) Lookup(v string) (OptionValue, bool) {
	for _, candidate := range d.Values {
		if candidate.Value == v {
			return candidate, true
		}
	}

	return OptionValue{}, false
}

type SelectedOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
