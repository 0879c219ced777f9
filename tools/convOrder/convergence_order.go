package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"

	"github.com/notargets/fvweno/utils"
)

var (
	csvFile string
)

// Reads a refinement study with a header row and the columns
//
//	Title, NumCells, Method, CFL, RhoL1, RhoLinf
//
// and prints the observed order of accuracy of each Title/Method study
func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "file containing entries of a convergence study")
	flag.Parse()
	csvFile = *csvFilePtr
	if len(csvFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", csvFile)
	f, err := os.Open(csvFile)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer f.Close()
	studies, err := readCSV(bufio.NewReader(f))
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	keys := make([]string, 0, len(studies))
	for key := range studies {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		studies[key].Print()
	}
}

type ConvergenceStudy struct {
	title, method  string
	CFL            float64
	numCells       []int
	rhoL1, rhoLinf []float64
}

func NewConvergenceStudy(title, method string, CFL float64) *ConvergenceStudy {
	return &ConvergenceStudy{
		title:  title,
		method: method,
		CFL:    CFL,
	}
}

func (cs *ConvergenceStudy) Add(numCells int, rhoL1, rhoLinf float64) {
	cs.numCells = append(cs.numCells, numCells)
	cs.rhoL1 = append(cs.rhoL1, rhoL1)
	cs.rhoLinf = append(cs.rhoLinf, rhoLinf)
}

// Orders returns the least squares observed orders in the L1 and Linf norms
func (cs *ConvergenceStudy) Orders() (l1, linf float64, err error) {
	h := make([]float64, len(cs.numCells))
	for i, n := range cs.numCells {
		h[i] = 1. / float64(n)
	}
	if l1, err = utils.ConvergenceOrder(h, cs.rhoL1); err != nil {
		return
	}
	linf, err = utils.ConvergenceOrder(h, cs.rhoLinf)
	return
}

func (cs *ConvergenceStudy) Print() {
	fmt.Printf("Title = %s, Method = %s, CFL = %5.2f\n", cs.title, cs.method, cs.CFL)
	fmt.Printf("%8s%12s%8s%12s%8s\n", "K", "L1", "order", "Linf", "order")
	for i := range cs.numCells {
		fmt.Printf("%8d%12.4e", cs.numCells[i], cs.rhoL1[i])
		if i == 0 {
			fmt.Printf("%8s%12.4e%8s\n", "", cs.rhoLinf[i], "")
			continue
		}
		r := math.Log(float64(cs.numCells[i]) / float64(cs.numCells[i-1]))
		fmt.Printf("%8.2f%12.4e%8.2f\n",
			math.Log(cs.rhoL1[i-1]/cs.rhoL1[i])/r, cs.rhoLinf[i], math.Log(cs.rhoLinf[i-1]/cs.rhoLinf[i])/r)
	}
	if l1, linf, err := cs.Orders(); err != nil {
		fmt.Printf("Unable to fit orders: %v\n", err)
	} else {
		fmt.Printf("Least squares order: L1 = %5.2f, Linf = %5.2f\n\n", l1, linf)
	}
}

func readCSV(r io.Reader) (studies map[string]*ConvergenceStudy, err error) {
	var (
		records [][]string
		cs      *ConvergenceStudy
		ok      bool
	)
	studies = make(map[string]*ConvergenceStudy)
	if records, err = csv.NewReader(r).ReadAll(); err != nil {
		return
	}
	for i, rec := range records {
		if i == 0 {
			continue
		}
		if len(rec) < 6 {
			return nil, fmt.Errorf("line %d: have %d columns, need 6", i+1, len(rec))
		}
		var (
			title, method = rec[0], rec[2]
			vals          [3]float64
			npts          int
		)
		if npts, err = strconv.Atoi(rec[1]); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		for j, txt := range []string{rec[3], rec[4], rec[5]} {
			if vals[j], err = strconv.ParseFloat(txt, 64); err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
		}
		combTitle := title + method
		if cs, ok = studies[combTitle]; !ok {
			cs = NewConvergenceStudy(title, method, vals[0])
			studies[combTitle] = cs
		}
		cs.Add(npts, vals[1], vals[2])
	}
	return
}
