// Package convert implements the conversion engine: given a value and two
// registered units it computes the converted value, enforcing family
// compatibility. Temperature pairs are converted by closed-form formula;
// every other family converts through the ratio of the units' scale
// factors. The engine holds no state between calls and every call is a
// pure function of its inputs.
package convert
