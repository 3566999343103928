package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/alexanderramin/chartwise/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed charts.yaml
var builtinYAML []byte

// Document is the YAML representation of a catalog.
type Document struct {
	Charts          []ChartDoc `yaml:"charts"`
	Recommendations []RuleDoc  `yaml:"recommendations"`
}

// ChartDoc is the YAML form of a chart record.
type ChartDoc struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Category    string   `yaml:"category"`
	Description string   `yaml:"description"`
	UseCases    []string `yaml:"use_cases"`
	Pros        []string `yaml:"pros"`
	Cons        []string `yaml:"cons"`
	DataTypes   []string `yaml:"data_types,flow"`
	Examples    string   `yaml:"examples"`
	Libraries   []string `yaml:"libraries,flow"`
}

// RuleDoc is the YAML form of a recommendation rule.
type RuleDoc struct {
	DataType string `yaml:"data_type"`
	Purpose  string `yaml:"purpose"`
	Chart    string `yaml:"chart"`
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Parse(builtinYAML)
	if err != nil {
		// The embedded file is covered by tests; failing here is a build defect.
		panic(fmt.Sprintf("built-in catalog: %v", err))
	}
	return c
}

// LoadFile reads and validates a catalog YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML catalog document and builds a validated Catalog.
func Parse(data []byte) (*Catalog, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return New(doc.charts(), doc.rules())
}

// Marshal encodes a catalog as a YAML document.
func Marshal(c *Catalog) ([]byte, error) {
	doc := Document{}
	for _, ch := range c.All() {
		doc.Charts = append(doc.Charts, ChartDoc{
			ID:          ch.ID,
			Name:        ch.Name,
			Category:    string(ch.Category),
			Description: ch.Description,
			UseCases:    ch.UseCases,
			Pros:        ch.Pros,
			Cons:        ch.Cons,
			DataTypes:   ch.DataTypes,
			Examples:    ch.Examples,
			Libraries:   ch.Libraries,
		})
	}
	for _, r := range c.Rules() {
		doc.Recommendations = append(doc.Recommendations, RuleDoc{
			DataType: r.DataType,
			Purpose:  r.Purpose,
			Chart:    r.ChartID,
		})
	}
	out, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("encoding catalog: %w", err)
	}
	return out, nil
}

func (d Document) charts() []domain.Chart {
	out := make([]domain.Chart, 0, len(d.Charts))
	for _, cd := range d.Charts {
		out = append(out, domain.Chart{
			ID:          cd.ID,
			Name:        cd.Name,
			Category:    domain.Category(cd.Category),
			Description: cd.Description,
			UseCases:    cd.UseCases,
			Pros:        cd.Pros,
			Cons:        cd.Cons,
			DataTypes:   cd.DataTypes,
			Examples:    cd.Examples,
			Libraries:   cd.Libraries,
		})
	}
	return out
}

func (d Document) rules() []domain.RecommendationRule {
	out := make([]domain.RecommendationRule, 0, len(d.Recommendations))
	for _, rd := range d.Recommendations {
		out = append(out, domain.RecommendationRule{
			DataType: rd.DataType,
			Purpose:  rd.Purpose,
			ChartID:  rd.Chart,
		})
	}
	return out
}
