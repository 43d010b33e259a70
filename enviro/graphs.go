package enviro

// field is one munin data series within a graph.
type field struct {
	key   string
	label string
}

// graph is one munin multigraph block.
type graph struct {
	name   string
	title  string
	vlabel string
	fields []field
}

// graphs lists the seven munin graphs in emission order. Every quantity
// here is non-negative, so config mode pins the lower limit to zero for
// all of them.
var graphs = []graph{
	{"temperature", "Temperature", "C", []field{
		{"temperature", "Temperature"},
		{"raw_temperature", "Raw Temperature"},
		{"cpu_temperature", "CPU Temperature"},
	}},
	{"humidity", "Humidity", "%RH", []field{
		{"humidity", "Humidity"},
		{"raw_humidity", "Raw Humidity"},
	}},
	{"pressure", "Pressure", "hPa", []field{
		{"pressure", "Pressure"},
	}},
	{"altitude", "Altitude", "m", []field{
		{"altitude", "Altitude"},
	}},
	{"light", "Light", "Lux", []field{
		{"light", "Light"},
	}},
	{"gas", "Gas", "kO", []field{
		{"oxidising", "Oxidising"},
		{"reducing", "Reducing"},
		{"nh3", "NH3"},
	}},
	{"noise", "Noise", "amp", []field{
		{"low", "Low"},
		{"mid", "Mid"},
		{"high", "High"},
		{"amp", "Amp"},
	}},
}
