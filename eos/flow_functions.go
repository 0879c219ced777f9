package eos

import (
	"math"
)

type FlowFunction uint8

func (ff FlowFunction) String() string {
	strings := []string{
		"Density",
		"XMomentum",
		"YMomentum",
		"Energy",
		"Mach",
		"Static Pressure",
		"Dynamic Pressure",
		"Sound Speed",
		"Velocity",
		"XVelocity",
		"YVelocity",
		"Enthalpy",
		"Internal Energy",
	}
	return strings[int(ff)]
}

const (
	Density FlowFunction = iota
	XMomentum
	YMomentum
	Energy
	Mach            // 4
	StaticPressure  // 5
	DynamicPressure // 6
	SoundSpeed      // 7
	Velocity        // 8
	XVelocity       // 9
	YVelocity       // 10
	Enthalpy        // 11
	InternalEnergy  // 12
)

// GetFlowFunction derives a reporting quantity from a conserved state. It does not validate the state,
// use Primitives when a non physical state must be detected.
func (g *IdealGas) GetFlowFunction(q State, ff FlowFunction) (f float64) {
	var (
		rho, rhoU, rhoV, E = q[0], q[1], q[2], q[3]
		oorho              = 1. / rho
		qq, p              float64
	)
	switch ff {
	case StaticPressure, SoundSpeed, Enthalpy, Mach, InternalEnergy, DynamicPressure:
		qq = 0.5 * (rhoU*rhoU + rhoV*rhoV) * oorho
		p = g.gm1 * (E - qq)
	}
	switch ff {
	case Density:
		f = rho
	case XMomentum:
		f = rhoU
	case YMomentum:
		f = rhoV
	case Energy:
		f = E
	case StaticPressure:
		f = p
	case DynamicPressure:
		f = qq
	case SoundSpeed:
		f = math.Sqrt(math.Abs(g.Gamma * p * oorho))
	case Velocity:
		f = math.Sqrt(rhoU*rhoU+rhoV*rhoV) * oorho
	case XVelocity:
		f = rhoU * oorho
	case YVelocity:
		f = rhoV * oorho
	case Mach:
		C := math.Sqrt(math.Abs(g.Gamma * p * oorho))
		U := math.Sqrt(rhoU*rhoU+rhoV*rhoV) * oorho
		f = U / C
	case Enthalpy:
		f = (E + p) * oorho
	case InternalEnergy:
		f = p / (g.gm1 * rho)
	}
	return
}
