package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type InputParameters1D struct {
	Title      string  `yaml:"Title"`
	Equation   string  `yaml:"Equation"`   // Burgers or Euler
	FluxType   string  `yaml:"FluxType"`   // Roe or HLL
	Scheme     string  `yaml:"Scheme"`     // Classic or WENO
	Order      int     `yaml:"Order"`      // 1 or 2, Classic scheme only
	Limiter    string  `yaml:"Limiter"`    // None, MinMod, MC, Superbee
	EntropyFix bool    `yaml:"EntropyFix"` // scalar Roe solver only
	CFL        float64 `yaml:"CFL"`
	FinalTime  float64 `yaml:"FinalTime"`
	Gamma      float64 `yaml:"Gamma"`
	K          int     `yaml:"K"`
	XMin       float64 `yaml:"XMin"`
	XMax       float64 `yaml:"XMax"`
}

// NewDefaults carries the validated run setup for the Euler shock tube
func NewDefaults() *InputParameters1D {
	return &InputParameters1D{
		Title:     "Sod Shock Tube",
		Equation:  "Euler",
		FluxType:  "Roe",
		Scheme:    "Classic",
		Order:     1,
		Limiter:   "None",
		CFL:       0.9,
		FinalTime: 0.2,
		Gamma:     1.4,
		K:         500,
		XMin:      0,
		XMax:      1,
	}
}

func (ip *InputParameters1D) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, ip); err != nil {
		return err
	}
	return ip.Validate()
}

func (ip *InputParameters1D) Validate() error {
	switch ip.Equation {
	case "Burgers", "Euler":
	default:
		return fmt.Errorf("unknown equation %q, want Burgers or Euler", ip.Equation)
	}
	switch ip.FluxType {
	case "Roe", "HLL":
	default:
		return fmt.Errorf("unknown flux type %q, want Roe or HLL", ip.FluxType)
	}
	switch ip.Scheme {
	case "Classic", "WENO":
	default:
		return fmt.Errorf("unknown scheme %q, want Classic or WENO", ip.Scheme)
	}
	if ip.Order != 1 && ip.Order != 2 {
		return fmt.Errorf("order must be 1 or 2, have %d", ip.Order)
	}
	if ip.EntropyFix && ip.Equation != "Burgers" {
		return fmt.Errorf("the entropy fix option applies to the scalar equation only")
	}
	if ip.CFL <= 0 {
		return fmt.Errorf("CFL must be positive, have %v", ip.CFL)
	}
	if ip.K < 1 {
		return fmt.Errorf("need at least one cell, have K = %d", ip.K)
	}
	if ip.XMax <= ip.XMin {
		return fmt.Errorf("invalid domain [%v,%v]", ip.XMin, ip.XMax)
	}
	if ip.Equation == "Euler" && ip.Gamma <= 1 {
		return fmt.Errorf("gamma must be greater than one, have %v", ip.Gamma)
	}
	return nil
}

func (ip *InputParameters1D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t\t= Equation\n", ip.Equation)
	fmt.Printf("[%s]\t\t\t= Flux Type\n", ip.FluxType)
	fmt.Printf("[%s]\t\t= Scheme\n", ip.Scheme)
	fmt.Printf("[%d]\t\t\t\t= Order\n", ip.Order)
	fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Printf("[%d]\t\t\t= Number of Cells\n", ip.K)
}
