package config

import "sort"

// Presets are ready-made demonstration scenes keyed by name.
var Presets = map[string]*Config{
	"bar": {
		Field: "B", SumUp: true, Squeeze: true,
		Sources: []SourceConfig{{
			Kind:          "cuboid",
			Magnetization: [3]float64{0, 0, 1000},
			Dimension:     [3]float64{1, 1, 1},
		}},
		Sensors: []SensorConfig{{Position: [3]float64{0, 0, 2}}},
		Scan:    ScanConfig{Axis: "z", Start: 1, Stop: 8, Steps: 120},
	},
	"ring": {
		Field: "B", SumUp: true, Squeeze: true,
		Sources: []SourceConfig{{
			Kind:          "cylinder_segment",
			Magnetization: [3]float64{0, 0, 800},
			D1:            2, D2: 4, Height: 1,
			Phi1: 0, Phi2: 360,
		}},
		Sensors: []SensorConfig{{Position: [3]float64{0, 0, 2}}},
		Scan:    ScanConfig{Axis: "z", Start: -5, Stop: 5, Steps: 120},
	},
	"coil": {
		Field: "B", SumUp: true, Squeeze: true,
		Sources: []SourceConfig{
			{Kind: "loop", Current: 10, Diameter: 4, Position: [3]float64{0, 0, -0.5}},
			{Kind: "loop", Current: 10, Diameter: 4, Position: [3]float64{0, 0, 0}},
			{Kind: "loop", Current: 10, Diameter: 4, Position: [3]float64{0, 0, 0.5}},
		},
		Sensors: []SensorConfig{{Position: [3]float64{0, 0, 3}}},
		Scan:    ScanConfig{Axis: "z", Start: -6, Stop: 6, Steps: 120},
	},
	"helmholtz": {
		Field: "B", SumUp: true, Squeeze: true,
		Sources: []SourceConfig{
			{Kind: "loop", Current: 100, Diameter: 4, Position: [3]float64{0, 0, -1}},
			{Kind: "loop", Current: 100, Diameter: 4, Position: [3]float64{0, 0, 1}},
		},
		Sensors: []SensorConfig{{Position: [3]float64{0, 0, 0}}},
		Scan:    ScanConfig{Axis: "z", Start: -3, Stop: 3, Steps: 120},
	},
	"gap": {
		Field: "B", SumUp: true, Squeeze: true,
		Sources: []SourceConfig{
			{Kind: "cuboid", Magnetization: [3]float64{0, 0, 1000}, Dimension: [3]float64{4, 4, 2}, Position: [3]float64{0, 0, -2.5}},
			{Kind: "cuboid", Magnetization: [3]float64{0, 0, 1000}, Dimension: [3]float64{4, 4, 2}, Position: [3]float64{0, 0, 2.5}},
		},
		Sensors: []SensorConfig{{Position: [3]float64{0, 0, 0}}},
		Scan:    ScanConfig{Axis: "x", Start: -4, Stop: 4, Steps: 120},
	},
	"wire": {
		Field: "H", SumUp: true, Squeeze: true,
		Sources: []SourceConfig{{
			Kind:    "polyline",
			Current: 50,
			Vertices: [][3]float64{
				{0, 0, -100}, {0, 0, 100},
			},
		}},
		Sensors: []SensorConfig{{Position: [3]float64{2, 0, 0}}},
		Scan:    ScanConfig{Axis: "x", Start: 0.5, Stop: 10, Steps: 120},
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
