package railreach

// Dataset is everything parsed out of the source document in one run. It is
// never mutated after extraction; every renderer reads from the same frozen
// copy.
type Dataset struct {
	Terminals map[string]*Terminal
	Stations  []*Station

	// RawBlocks is the original text of the two embedded literal blocks,
	// byte-for-byte, for verbatim re-emission as the shared data asset.
	RawBlocks string
}

// Station finds a station by display name, or nil.
func (d *Dataset) Station(name string) *Station {
	for _, station := range d.Stations {
		if station.Name == name {
			return station
		}
	}

	return nil
}
