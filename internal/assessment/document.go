// Package assessment loads the inputs the analyzers run against. A document
// groups every request kind so one file can drive a full assessment.
package assessment

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/khanhnv2901/crowdrisk/internal/compliance"
	"github.com/khanhnv2901/crowdrisk/internal/cryptorisk"
	"github.com/khanhnv2901/crowdrisk/internal/market"
	sharedErrors "github.com/khanhnv2901/crowdrisk/internal/shared/errors"
)

//go:embed sample.yaml
var sampleYAML []byte

// Document is an assessment input file. JSON documents parse as well since
// YAML is a superset.
type Document struct {
	Systems       []compliance.System        `json:"systems,omitempty" yaml:"systems,omitempty"`
	KeyGeneration []compliance.KeyGenParams  `json:"key_generation,omitempty" yaml:"key_generation,omitempty"`
	Wallets       []cryptorisk.WalletConfig  `json:"wallets,omitempty" yaml:"wallets,omitempty"`
	Protocols     []string                   `json:"protocols,omitempty" yaml:"protocols,omitempty"`
	Signing       []cryptorisk.SigningConfig `json:"signing,omitempty" yaml:"signing,omitempty"`
	MarketData    []cryptorisk.MarketDatum   `json:"market_data,omitempty" yaml:"market_data,omitempty"`
	Networks      []market.NetworkEconomics  `json:"networks,omitempty" yaml:"networks,omitempty"`
	Fees          []market.FeeData           `json:"fees,omitempty" yaml:"fees,omitempty"`
	Mempools      []market.MempoolData       `json:"mempools,omitempty" yaml:"mempools,omitempty"`
	Agility       []market.AgilityDescriptor `json:"agility,omitempty" yaml:"agility,omitempty"`
}

// IsEmpty reports whether the document carries no input at all.
func (d Document) IsEmpty() bool {
	return len(d.Systems) == 0 && len(d.KeyGeneration) == 0 &&
		len(d.Wallets) == 0 && len(d.Protocols) == 0 && len(d.Signing) == 0 &&
		len(d.MarketData) == 0 && len(d.Networks) == 0 && len(d.Fees) == 0 &&
		len(d.Mempools) == 0 && len(d.Agility) == 0
}

// Load reads and parses the document at path.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read assessment %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return Document{}, fmt.Errorf("assessment %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a document, rejecting unknown keys so typos surface early.
func Parse(data []byte) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Document{}, sharedErrors.ErrEmptyDocument
		}
		return Document{}, fmt.Errorf("%w: %w", sharedErrors.ErrDeserializationFailed, err)
	}
	if doc.IsEmpty() {
		return Document{}, sharedErrors.ErrEmptyDocument
	}
	return doc, nil
}

// Default returns the built-in sample assessment.
func Default() Document {
	doc, err := Parse(sampleYAML)
	if err != nil {
		panic(fmt.Sprintf("assessment: invalid built-in sample: %v", err))
	}
	return doc
}

// LoadOrDefault loads path, or returns the built-in sample when path is empty.
func LoadOrDefault(path string) (Document, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
