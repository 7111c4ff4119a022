package domain

// AnswerType describes what kind of input a question expects.
type AnswerType string

const (
	AnswerTypeText         AnswerType = "text"
	AnswerTypeEmail        AnswerType = "email"
	AnswerTypeSingleSelect AnswerType = "single-select"
	AnswerTypeMultiSelect  AnswerType = "multi-select"
)

// Option is one selectable choice for a select-type question.
type Option struct {
	Value string
	Label string
}

// Question is a single step of the intake flow. Questions are defined once
// at process start (from the embedded catalog) and never mutated; IDs are
// 1-based and sequential.
type Question struct {
	ID      int
	Key     string // stable handle, e.g. "fitness-level"
	Prompt  string
	Type    AnswerType
	Options []Option // only for select types
}

// HasOption reports whether value is a valid option for this question.
func (q Question) HasOption(value string) bool {
	for _, o := range q.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// OptionValues returns the option values in catalog order.
func (q Question) OptionValues() []string {
	vals := make([]string, 0, len(q.Options))
	for _, o := range q.Options {
		vals = append(vals, o.Value)
	}
	return vals
}
