package domain

import "fmt"

// SmartphoneSpec lists the attributes a Smartphone adds to a product.
type SmartphoneSpec struct {
	Efficiency float64 `yaml:"efficiency" json:"efficiency" mapstructure:"efficiency"`
	Model      string  `yaml:"model" json:"model" mapstructure:"model"`
	Memory     int     `yaml:"memory" json:"memory" mapstructure:"memory"` // GB
	Color      string  `yaml:"color" json:"color" mapstructure:"color"`
}

// Smartphone is a product variant with hardware attributes.
type Smartphone struct {
	core
	spec SmartphoneSpec
}

// NewSmartphone validates rec and builds a smartphone.
func NewSmartphone(rec Record, spec SmartphoneSpec, opts ...Option) (*Smartphone, error) {
	c, err := newCore(rec, opts)
	if err != nil {
		return nil, err
	}
	return &Smartphone{core: c, spec: spec}, nil
}

func (s *Smartphone) Efficiency() float64  { return s.spec.Efficiency }
func (s *Smartphone) Model() string        { return s.spec.Model }
func (s *Smartphone) Memory() int          { return s.spec.Memory }
func (s *Smartphone) Color() string        { return s.spec.Color }
func (s *Smartphone) Spec() SmartphoneSpec { return s.spec }

func (s *Smartphone) Kind() Kind { return KindSmartphone }

// Combine returns the stock value of both smartphones.
func (s *Smartphone) Combine(other Product) (float64, error) { return Combine(s, other) }

func (s *Smartphone) String() string {
	return fmt.Sprintf("Smartphone('%s', '%s', %s, %d, %s, '%s', %d, '%s')",
		s.name, s.description, FormatAmount(s.price), s.quantity,
		FormatAmount(s.spec.Efficiency), s.spec.Model, s.spec.Memory, s.spec.Color)
}

func (s *Smartphone) base() *core {
	if s == nil {
		return nil
	}
	return &s.core
}

// LawnGrassSpec lists the attributes LawnGrass adds to a product.
type LawnGrassSpec struct {
	Country           string `yaml:"country" json:"country" mapstructure:"country"`
	GerminationPeriod int    `yaml:"germination_period" json:"germination_period" mapstructure:"germination_period"` // days
	Color             string `yaml:"color" json:"color" mapstructure:"color"`
}

// LawnGrass is a product variant for seed mixes.
type LawnGrass struct {
	core
	spec LawnGrassSpec
}

// NewLawnGrass validates rec and builds a lawn grass product.
func NewLawnGrass(rec Record, spec LawnGrassSpec, opts ...Option) (*LawnGrass, error) {
	c, err := newCore(rec, opts)
	if err != nil {
		return nil, err
	}
	return &LawnGrass{core: c, spec: spec}, nil
}

func (g *LawnGrass) Country() string        { return g.spec.Country }
func (g *LawnGrass) GerminationPeriod() int { return g.spec.GerminationPeriod }
func (g *LawnGrass) Color() string          { return g.spec.Color }
func (g *LawnGrass) Spec() LawnGrassSpec    { return g.spec }

func (g *LawnGrass) Kind() Kind { return KindLawnGrass }

// Combine returns the stock value of both lawn grass products.
func (g *LawnGrass) Combine(other Product) (float64, error) { return Combine(g, other) }

func (g *LawnGrass) String() string {
	return fmt.Sprintf("LawnGrass('%s', '%s', %s, %d, '%s', %d, '%s')",
		g.name, g.description, FormatAmount(g.price), g.quantity,
		g.spec.Country, g.spec.GerminationPeriod, g.spec.Color)
}

func (g *LawnGrass) base() *core {
	if g == nil {
		return nil
	}
	return &g.core
}

var (
	_ Product = (*Item)(nil)
	_ Product = (*Smartphone)(nil)
	_ Product = (*LawnGrass)(nil)
)
