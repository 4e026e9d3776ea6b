package domain

// Spoolman projections, limited to the fields the create-request flow reads.
// The integration itself lives behind the print service; these types only
// describe the contract it exposes.

// Spool is a filament spool registered in Spoolman.
type Spool struct {
	ID              int      `json:"id"`
	Filament        Filament `json:"filament"`
	RemainingWeight float64  `json:"remaining_weight"`
	Location        string   `json:"location"`
	Archived        bool     `json:"archived"`
}

// Filament describes the material loaded on a spool.
type Filament struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Material string `json:"material"`
	ColorHex string `json:"color_hex"`
	Vendor   Vendor `json:"vendor"`
}

// Vendor is the filament manufacturer.
type Vendor struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Display returns a one-line description of a spool for selection lists.
func (s Spool) Display() string {
	name := s.Filament.Name
	if s.Filament.Vendor.Name != "" {
		name = s.Filament.Vendor.Name + " " + name
	}
	if s.Filament.Material != "" {
		name += " (" + s.Filament.Material + ")"
	}
	return name
}
