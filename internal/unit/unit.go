package unit

// Unit identifies a single registered unit. Builtin units are the package
// constants below; units registered from a unit file receive the subsequent
// identifiers in registration order.
type Unit int

// Builtin units. The constant order matches the builtin table in
// builtins(), which is what makes Registry.Describe a plain slice index.
const (
	Celsius Unit = iota
	Fahrenheit
	Kelvin

	Meters
	Centimeters
	Decimeters
	Decameters
	Hectometers
	Kilometers
	Millimeters
	Miles
	Inches
	Feet

	Seconds
	Milliseconds
	Minutes
	Hours
	Days
	Months
	Years

	Grams
	Centigrams
	Decigrams
	Decagrams
	Hectograms
	Milligrams
	Kilograms
	Pounds
	Ounces

	Bytes
	Kilobytes
	Megabytes
	Gigabytes
	Terabytes
	Petabytes
	Exabytes
)

// Family groups units that measure the same physical quantity. Conversion
// is only defined between units of the same family.
type Family int

const (
	Temperature Family = iota
	Length
	Time
	Mass
	Digital
)

// Families returns all families in their fixed display order.
func Families() []Family {
	return []Family{Temperature, Length, Time, Mass, Digital}
}

// String returns the display form used by the unit listing.
func (f Family) String() string {
	switch f {
	case Temperature:
		return "TEMPERATURE"
	case Length:
		return "LENGTH"
	case Time:
		return "TIME"
	case Mass:
		return "MASS"
	case Digital:
		return "DIGITAL STORAGE"
	default:
		return "UNKNOWN"
	}
}

// Descriptor holds the metadata for one unit.
//
// Factor is the number of this unit that equals one base unit of its family
// (meters, seconds, grams or bytes). It is meaningful only for scalar
// families; temperature conversion is formula-based and the engine never
// reads Factor for temperature units.
type Descriptor struct {
	Family Family
	Name   string
	Factor float64
}
