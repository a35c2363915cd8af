package unit

// builtins returns the static table of builtin units. The slice index of
// each descriptor is its Unit constant; keep the two in sync.
func builtins() []Descriptor {
	return []Descriptor{
		{Temperature, "celsius", 0},
		{Temperature, "fahrenheit", 0},
		{Temperature, "kelvin", 0},

		{Length, "meters", 1.0},
		{Length, "centimeters", 100.0},
		{Length, "decimeters", 10.0},
		{Length, "decameters", 0.1},
		{Length, "hectometers", 0.01},
		{Length, "kilometers", 0.001},
		{Length, "millimeters", 1000.0},
		{Length, "miles", 0.000621371},
		{Length, "inches", 39.3701},
		{Length, "feet", 3.28084},

		{Time, "seconds", 1.0},
		{Time, "milliseconds", 1000.0},
		{Time, "minutes", 1.0 / 60.0},
		{Time, "hours", 1.0 / 3600.0},
		{Time, "days", 1.0 / 86400.0},
		{Time, "months", 1.0 / 2592000.0},
		{Time, "years", 1.0 / 31536000.0},

		{Mass, "grams", 1.0},
		{Mass, "centigrams", 100.0},
		{Mass, "decigrams", 10.0},
		{Mass, "decagrams", 0.1},
		{Mass, "hectograms", 0.01},
		{Mass, "milligrams", 1000.0},
		{Mass, "kilograms", 0.001},
		{Mass, "pounds", 0.00220462},
		{Mass, "ounces", 0.03527396},

		{Digital, "bytes", 1.0},
		{Digital, "kilobytes", 1.0 / 1024.0},
		{Digital, "megabytes", 1.0 / 1048576.0},
		{Digital, "gigabytes", 1.0 / 1073741824.0},
		{Digital, "terabytes", 1.0 / 1099511627776.0},
		{Digital, "petabytes", 1.0 / 1125899906842624.0},
		{Digital, "exabytes", 1.0 / 1152921504606846976.0},
	}
}
