// Package entities holds the domain types exchanged between layers.
package entities

// TargetList is the parsed form of a targets file: an ordered list of URLs to
// feed into scope and spider operations. Order is preserved from the document.
type TargetList struct {
	Paths []string `yaml:"paths"`
}
