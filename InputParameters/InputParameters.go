package InputParameters

import (
	"fmt"
	"math"
	"sort"

	"github.com/ghodss/yaml"
	"github.com/notargets/fvweno/riemann"
	"github.com/notargets/fvweno/types"
	"github.com/notargets/fvweno/weno"
)

// Parameters obtained from the YAML input file
type InputParameters1D struct {
	Title          string  `yaml:"Title"`
	CFL            float64 `yaml:"CFL"`
	FinalTime      float64 `yaml:"FinalTime"`
	Gamma          float64 `yaml:"Gamma"`
	XMin           float64 `yaml:"XMin"`
	XMax           float64 `yaml:"XMax"`
	K              int     `yaml:"K"` // Number of interior cells
	Reconstruction string  `yaml:"Reconstruction"`
	Epsilon        float64 `yaml:"Epsilon"` // WENO weight regularization, 0 is the default
	FluxType       string  `yaml:"FluxType"`
	InitType       string  `yaml:"InitType"`
	BCLeft         string  `yaml:"BCLeft"`
	BCRight        string  `yaml:"BCRight"`
	MaxIterations  int     `yaml:"MaxIterations"` // 0 is no limit
	ParallelDegree int     `yaml:"ParallelDegree"`
}

// NewInputParameters1D returns the Sod shock tube setup, parsed files override individual fields
func NewInputParameters1D() *InputParameters1D {
	return &InputParameters1D{
		Title:          "Sod Shock Tube",
		CFL:            0.55,
		FinalTime:      0.2,
		Gamma:          1.4,
		XMin:           0,
		XMax:           1,
		K:              200,
		Reconstruction: "WENO7",
		FluxType:       "HLLC",
		InitType:       "Sod",
		BCLeft:         "Out",
		BCRight:        "Out",
	}
}

func (ip *InputParameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters1D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Printf("%8.5f\t\t= Gamma\n", ip.Gamma)
	fmt.Printf("[%v, %v]\t\t= Domain\n", ip.XMin, ip.XMax)
	fmt.Printf("[%d]\t\t\t= Interior Cells\n", ip.K)
	fmt.Printf("[%s]\t\t\t= Reconstruction\n", ip.Reconstruction)
	fmt.Printf("[%s]\t\t\t= Flux Type\n", ip.FluxType)
	fmt.Printf("[%s]\t\t\t= InitType\n", ip.InitType)
	fmt.Printf("[%s, %s]\t\t= BCs\n", ip.BCLeft, ip.BCRight)
	if ip.MaxIterations > 0 {
		fmt.Printf("[%d]\t\t\t= Max Iterations\n", ip.MaxIterations)
	}
}

// Resolve checks the numeric ranges and turns the names into their enumerations
func (ip *InputParameters1D) Resolve() (method weno.Method, ft riemann.FluxType,
	bcLeft, bcRight types.BCFLAG, err error) {
	if err = checkCommon(ip.CFL, ip.FinalTime, ip.Gamma, ip.Epsilon, ip.MaxIterations); err != nil {
		return
	}
	if !(ip.XMax > ip.XMin) {
		err = types.NewConfigurationError("input", "XMax = %v must exceed XMin = %v", ip.XMax, ip.XMin)
		return
	}
	if ip.K < 1 {
		err = types.NewConfigurationError("input", "K = %d, need at least one cell", ip.K)
		return
	}
	if method, err = weno.NewMethod(ip.Reconstruction); err != nil {
		return
	}
	if ft, err = riemann.NewFluxType(ip.FluxType); err != nil {
		return
	}
	if bcLeft, err = types.NewBCFLAG(ip.BCLeft); err != nil {
		return
	}
	bcRight, err = types.NewBCFLAG(ip.BCRight)
	return
}

type InputParameters2D struct {
	Title          string            `yaml:"Title"`
	CFL            float64           `yaml:"CFL"`
	FinalTime      float64           `yaml:"FinalTime"`
	Gamma          float64           `yaml:"Gamma"`
	XMin           float64           `yaml:"XMin"`
	XMax           float64           `yaml:"XMax"`
	YMin           float64           `yaml:"YMin"`
	YMax           float64           `yaml:"YMax"`
	M              int               `yaml:"M"` // Interior cells along x
	N              int               `yaml:"N"` // Interior cells along y
	FluxType       string            `yaml:"FluxType"`
	InitType       string            `yaml:"InitType"`
	Minf           float64           `yaml:"Minf"`
	Alpha          float64           `yaml:"Alpha"` // Flow angle in degrees
	BCs            map[string]string `yaml:"BCs"`   // Keyed by West, East, South, North
	MaxIterations  int               `yaml:"MaxIterations"`
	ParallelDegree int               `yaml:"ParallelDegree"`
}

var BCSides = []string{"West", "East", "South", "North"}

func NewInputParameters2D() *InputParameters2D {
	return &InputParameters2D{
		Title:     "Lax Liu Configuration 3",
		CFL:       0.4,
		FinalTime: 0.3,
		Gamma:     1.4,
		XMax:      1,
		YMax:      1,
		M:         100,
		N:         100,
		FluxType:  "HLLE2d",
		InitType:  "Quadrant3",
		Minf:      0.5,
	}
}

func (ip *InputParameters2D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters2D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Printf("%8.5f\t\t= Gamma\n", ip.Gamma)
	fmt.Printf("[%v, %v] x [%v, %v]\t= Domain\n", ip.XMin, ip.XMax, ip.YMin, ip.YMax)
	fmt.Printf("[%d x %d]\t\t= Interior Cells\n", ip.M, ip.N)
	fmt.Printf("[%s]\t\t\t= Flux Type\n", ip.FluxType)
	fmt.Printf("[%s]\t\t= InitType\n", ip.InitType)
	keys := make([]string, len(ip.BCs))
	i := 0
	for k := range ip.BCs {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("BCs[%s] = %v\n", key, ip.BCs[key])
	}
}

// Resolve checks the numeric ranges, parses the flux name and the boundary conditions in the order
// West, East, South, North. Sides missing from BCs are outflow.
func (ip *InputParameters2D) Resolve() (ft riemann.FluxType2D, bcs [4]types.BCFLAG, err error) {
	if err = checkCommon(ip.CFL, ip.FinalTime, ip.Gamma, 0, ip.MaxIterations); err != nil {
		return
	}
	if !(ip.XMax > ip.XMin) || !(ip.YMax > ip.YMin) {
		err = types.NewConfigurationError("input", "domain [%v, %v] x [%v, %v] is empty",
			ip.XMin, ip.XMax, ip.YMin, ip.YMax)
		return
	}
	if ip.M < 1 || ip.N < 1 {
		err = types.NewConfigurationError("input", "M = %d, N = %d, need at least one cell", ip.M, ip.N)
		return
	}
	if ft, err = riemann.NewFluxType2D(ip.FluxType); err != nil {
		return
	}
	for key := range ip.BCs {
		var found bool
		for _, side := range BCSides {
			found = found || key == side
		}
		if !found {
			err = types.NewConfigurationError("input", "boundary %q is not one of %v", key, BCSides)
			return
		}
	}
	for i, side := range BCSides {
		if bcs[i], err = types.NewBCFLAG(ip.BCs[side]); err != nil {
			return
		}
	}
	return
}

func checkCommon(CFL, FinalTime, Gamma, Epsilon float64, MaxIterations int) (err error) {
	switch {
	case !(CFL > 0) || math.IsInf(CFL, 0):
		err = types.NewConfigurationError("input", "CFL = %v must be positive", CFL)
	case !(FinalTime >= 0) || math.IsInf(FinalTime, 0):
		err = types.NewConfigurationError("input", "FinalTime = %v must be non negative", FinalTime)
	case !(Gamma > 1):
		err = types.NewConfigurationError("input", "Gamma = %v must be > 1", Gamma)
	case Epsilon < 0:
		err = types.NewConfigurationError("input", "Epsilon = %v must be non negative", Epsilon)
	case MaxIterations < 0:
		err = types.NewConfigurationError("input", "MaxIterations = %d must be non negative", MaxIterations)
	}
	return
}
